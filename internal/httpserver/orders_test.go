package httpserver

import (
	"net/http"
	"strings"
	"testing"

	"shopease/internal/domain"
	cartsvc "shopease/internal/service/cart"
)

const orderBody = `{
	"items": [
		{"productId": 3, "quantity": 2, "price": 449900},
		{"productId": 5, "quantity": 1, "price": 299900}
	],
	"shippingAddress": {"street": "12 MG Road", "city": "Bengaluru", "state": "KA", "zip": "560001", "country": "IN"},
	"paymentMethod": "upi",
	"totalAmount": 1079730
}`

func TestOrders_RequireAuth(t *testing.T) {
	cl := newClient(t, newTestRouter(t))

	for _, probe := range []struct{ method, path, body string }{
		{http.MethodPost, "/api/orders", orderBody},
		{http.MethodGet, "/api/orders", ""},
		{http.MethodGet, "/api/orders/1", ""},
	} {
		rec := cl.do(probe.method, probe.path, probe.body)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d body=%s", probe.method, probe.path, rec.Code, rec.Body.String())
		}
	}
}

func TestCreateOrder_Created(t *testing.T) {
	cl := newClient(t, newTestRouter(t))
	cl.do(http.MethodPost, "/api/auth/register", registerBody)

	rec := cl.do(http.MethodPost, "/api/orders", orderBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Order domain.Order       `json:"order"`
		Items []domain.OrderItem `json:"items"`
	}
	decodeJSON(t, rec, &resp)
	if resp.Order.Status != domain.OrderStatusPending {
		t.Fatalf("expected pending order, got %q", resp.Order.Status)
	}
	if resp.Order.TotalAmount != 1079730 {
		t.Fatalf("unexpected total %d", resp.Order.TotalAmount)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(resp.Items))
	}
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	cl := newClient(t, newTestRouter(t))
	cl.do(http.MethodPost, "/api/auth/register", registerBody)

	body := `{"items": [], "shippingAddress": {}, "paymentMethod": "upi", "totalAmount": 0}`
	rec := cl.do(http.MethodPost, "/api/orders", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "at least one item") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	// nothing was persisted
	rec = cl.do(http.MethodGet, "/api/orders", "")
	if rec.Body.String() != "[]" {
		t.Fatalf("expected no orders, got %s", rec.Body.String())
	}
}

func TestListOrders_ScopedToCaller(t *testing.T) {
	router := newTestRouter(t)

	alice := newClient(t, router)
	alice.do(http.MethodPost, "/api/auth/register", registerBody)
	if rec := alice.do(http.MethodPost, "/api/orders", orderBody); rec.Code != http.StatusCreated {
		t.Fatalf("alice order failed: %d %s", rec.Code, rec.Body.String())
	}

	bob := newClient(t, router)
	bob.do(http.MethodPost, "/api/auth/register", strings.ReplaceAll(registerBody, "alice", "bob"))

	rec := bob.do(http.MethodGet, "/api/orders", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "[]" {
		t.Fatalf("expected empty list for bob, got %d %s", rec.Code, rec.Body.String())
	}

	var orders []domain.OrderWithItems
	rec = alice.do(http.MethodGet, "/api/orders", "")
	decodeJSON(t, rec, &orders)
	if len(orders) != 1 || len(orders[0].Items) != 2 {
		t.Fatalf("unexpected orders for alice: %+v", orders)
	}
}

func TestGetOrder_ForbiddenVsNotFound(t *testing.T) {
	router := newTestRouter(t)

	alice := newClient(t, router)
	alice.do(http.MethodPost, "/api/auth/register", registerBody)
	alice.do(http.MethodPost, "/api/orders", orderBody)

	bob := newClient(t, router)
	bob.do(http.MethodPost, "/api/auth/register", strings.ReplaceAll(registerBody, "alice", "bob"))

	// exists but not bob's: 403, not 404
	rec := bob.do(http.MethodGet, "/api/orders/1", "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = alice.do(http.MethodGet, "/api/orders/999", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = alice.do(http.MethodGet, "/api/orders/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for owner, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCheckoutFlow(t *testing.T) {
	cl := newClient(t, newTestRouter(t))

	if rec := cl.do(http.MethodPost, "/api/auth/register", registerBody); rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	cl.do(http.MethodPost, "/api/auth/logout", "")
	if rec := cl.do(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"secret1"}`); rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}

	cl.do(http.MethodPost, "/api/cart/items", `{"productId":3,"quantity":2}`)
	cl.do(http.MethodPost, "/api/cart/items", `{"productId":5,"quantity":1}`)
	rec := cl.do(http.MethodPost, "/api/cart/coupon", `{"code":"WELCOME20"}`)

	var summary cartsvc.Summary
	decodeJSON(t, rec, &summary)
	if summary.Subtotal != 1199700 || summary.Tax != 119970 || summary.Discount != 239940 || summary.Total != 1079730 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	rec = cl.do(http.MethodPost, "/api/orders", orderBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("checkout failed: %d %s", rec.Code, rec.Body.String())
	}

	// the confirmed order empties the cart
	rec = cl.do(http.MethodGet, "/api/cart", "")
	summary = cartsvc.Summary{}
	decodeJSON(t, rec, &summary)
	if len(summary.Items) != 0 || summary.Coupon != nil || summary.Total != 0 {
		t.Fatalf("expected cleared cart, got %+v", summary)
	}

	var orders []domain.OrderWithItems
	rec = cl.do(http.MethodGet, "/api/orders", "")
	decodeJSON(t, rec, &orders)
	if len(orders) != 1 {
		t.Fatalf("expected one order, got %d", len(orders))
	}
	if orders[0].TotalAmount != 1079730 || len(orders[0].Items) != 2 {
		t.Fatalf("unexpected order: %+v", orders[0])
	}
}
