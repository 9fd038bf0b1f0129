package httpserver

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shopease/internal/domain"
	authsvc "shopease/internal/service/auth"
	cartsvc "shopease/internal/service/cart"
	catalogsvc "shopease/internal/service/catalog"
	ordersvc "shopease/internal/service/order"
)

// CatalogService serves product and category reads.
type CatalogService interface {
	List(ctx context.Context, params catalogsvc.Params) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int) ([]domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Category(ctx context.Context, id int) (*domain.Category, error)
	Search(ctx context.Context, query string) ([]catalogsvc.SearchResult, error)
}

// CartService manages session-scoped carts.
type CartService interface {
	Get(sessionID string) cartsvc.Summary
	AddItem(ctx context.Context, sessionID string, productID, quantity int) (cartsvc.Summary, error)
	RemoveItem(sessionID string, productID int) cartsvc.Summary
	IncreaseQuantity(sessionID string, productID int) cartsvc.Summary
	DecreaseQuantity(sessionID string, productID int) cartsvc.Summary
	ApplyCoupon(sessionID, code string) (cartsvc.Summary, error)
	RemoveCoupon(sessionID string) cartsvc.Summary
	Clear(sessionID string) cartsvc.Summary
	Drop(sessionID string)
}

// WishlistService manages session-scoped wishlists.
type WishlistService interface {
	Get(sessionID string) []domain.Product
	Add(ctx context.Context, sessionID string, productID int) ([]domain.Product, error)
	Remove(sessionID string, productID int) []domain.Product
	Toggle(ctx context.Context, sessionID string, productID int) ([]domain.Product, error)
	Clear(sessionID string) []domain.Product
	Drop(sessionID string)
}

// AuthService handles registration, login, and session resolution.
type AuthService interface {
	Register(ctx context.Context, sessionID string, in authsvc.RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, sessionID, username, password string) (*domain.User, string, error)
	Logout(ctx context.Context, sessionID string) error
	StartSession(ctx context.Context) (string, error)
	SessionExists(ctx context.Context, sessionID string) bool
	CurrentUser(ctx context.Context, sessionID string) (*domain.User, error)
}

// OrderService validates and persists checkouts.
type OrderService interface {
	Create(ctx context.Context, userID int, in ordersvc.CreateInput) (*domain.OrderWithItems, error)
	List(ctx context.Context, userID int) ([]domain.OrderWithItems, error)
	Get(ctx context.Context, orderID, requestingUserID int) (*domain.OrderWithItems, error)
}

// Deps carries the services the router needs.
type Deps struct {
	CatalogSvc  CatalogService
	CartSvc     CartService
	WishlistSvc WishlistService
	AuthSvc     AuthService
	OrderSvc    OrderService
}

// Options tunes router behavior.
type Options struct {
	AllowedOrigins []string
	SessionTTL     time.Duration
	SecureCookies  bool
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps, opts Options) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(opts.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = opts.AllowedOrigins
		corsCfg.AllowCredentials = true
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler)

	h := &handlers{deps: deps, opts: opts, logger: logger}

	api := router.Group("/api")
	api.Use(h.sessionMiddleware())

	api.POST("/auth/register", h.register)
	api.POST("/auth/login", h.login)
	api.POST("/auth/logout", h.logout)
	api.GET("/auth/user", h.currentUser)

	api.GET("/products", h.listProducts)
	api.GET("/products/:id", h.getProduct)
	api.GET("/categories", h.listCategories)
	api.GET("/categories/:id", h.getCategory)
	api.GET("/categories/:id/products", h.listCategoryProducts)
	api.GET("/search", h.search)

	cartGroup := api.Group("/cart")
	cartGroup.Use(h.ensureSession())
	cartGroup.GET("", h.getCart)
	cartGroup.DELETE("", h.clearCart)
	cartGroup.POST("/items", h.addCartItem)
	cartGroup.DELETE("/items/:productId", h.removeCartItem)
	cartGroup.POST("/items/:productId/increase", h.increaseCartItem)
	cartGroup.POST("/items/:productId/decrease", h.decreaseCartItem)
	cartGroup.POST("/coupon", h.applyCoupon)
	cartGroup.DELETE("/coupon", h.removeCoupon)

	wish := api.Group("/wishlist")
	wish.Use(h.ensureSession())
	wish.GET("", h.getWishlist)
	wish.DELETE("", h.clearWishlist)
	wish.POST("/items", h.addWishlistItem)
	wish.DELETE("/items/:productId", h.removeWishlistItem)
	wish.POST("/items/:productId/toggle", h.toggleWishlistItem)

	orders := api.Group("/orders")
	orders.Use(h.requireAuth())
	orders.POST("", h.createOrder)
	orders.GET("", h.listOrders)
	orders.GET("/:id", h.getOrder)

	return router, nil
}

type handlers struct {
	deps   Deps
	opts   Options
	logger *log.Logger
}
