package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shopease/internal/config"
	"shopease/internal/httpserver"
	categoryrepo "shopease/internal/repository/category"
	orderrepo "shopease/internal/repository/order"
	productrepo "shopease/internal/repository/product"
	sessionrepo "shopease/internal/repository/session"
	userrepo "shopease/internal/repository/user"
	authsvc "shopease/internal/service/auth"
	cartsvc "shopease/internal/service/cart"
	catalogsvc "shopease/internal/service/catalog"
	ordersvc "shopease/internal/service/order"
	wishlistsvc "shopease/internal/service/wishlist"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	productRepo := productrepo.NewMemory(productrepo.Catalog())
	categoryRepo := categoryrepo.NewMemory(categoryrepo.Catalog())
	userRepo := userrepo.NewMemory()
	orderRepo := orderrepo.NewMemory()
	sessionRepo := sessionrepo.NewMemory()

	catalogService := catalogsvc.New(productRepo, categoryRepo)
	cartService := cartsvc.New(productRepo)
	wishlistService := wishlistsvc.New(productRepo)
	authService := authsvc.New(userRepo, sessionRepo, cfg.SessionTTL)
	orderService := ordersvc.New(orderRepo, productRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		CatalogSvc:  catalogService,
		CartSvc:     cartService,
		WishlistSvc: wishlistService,
		AuthSvc:     authService,
		OrderSvc:    orderService,
	}, httpserver.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		SessionTTL:     cfg.SessionTTL,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
