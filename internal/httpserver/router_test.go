package httpserver

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

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

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// newTestRouter wires the router against fresh in-memory stores.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	productRepo := productrepo.NewMemory(productrepo.Catalog())
	categoryRepo := categoryrepo.NewMemory(categoryrepo.Catalog())

	router, err := buildRouter(logDiscard(), Deps{
		CatalogSvc:  catalogsvc.New(productRepo, categoryRepo),
		CartSvc:     cartsvc.New(productRepo),
		WishlistSvc: wishlistsvc.New(productRepo),
		AuthSvc:     authsvc.New(userrepo.NewMemory(), sessionrepo.NewMemory(), time.Hour),
		OrderSvc:    ordersvc.New(orderrepo.NewMemory(), productRepo),
	}, Options{SessionTTL: time.Hour})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

// client drives the router while carrying session cookies across requests,
// the way a browser would.
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
}

func newClient(t *testing.T, router *gin.Engine) *client {
	return &client{t: t, router: router}
}

func (cl *client) do(method, path, body string) *httptest.ResponseRecorder {
	cl.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cl.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	cl.router.ServeHTTP(rec, req)

	res := rec.Result()
	for _, c := range res.Cookies() {
		cl.setCookie(c)
	}
	return rec
}

func (cl *client) setCookie(c *http.Cookie) {
	for i, existing := range cl.cookies {
		if existing.Name == c.Name {
			cl.cookies[i] = c
			return
		}
	}
	cl.cookies = append(cl.cookies, c)
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
