package cart

import (
	"testing"

	"shopease/internal/domain"
)

func product(id int, price int64) domain.Product {
	return domain.Product{ID: id, Name: "P", Price: price}
}

func TestAdd_CoalescesByProductID(t *testing.T) {
	c := New()
	c.Add(product(3, 1000), 1)
	c.Add(product(3, 1000), 1)

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
	if items[0].LineID == "" {
		t.Fatalf("expected a synthetic line id")
	}
}

func TestAdd_DefaultsQuantityToOne(t *testing.T) {
	c := New()
	c.Add(product(1, 500), 0)
	if got := c.Items()[0].Quantity; got != 1 {
		t.Fatalf("expected quantity 1, got %d", got)
	}
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	c := New()
	c.Add(product(1, 100), 1)
	c.Add(product(2, 200), 1)
	c.Add(product(1, 100), 5)

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].Product.ID != 1 || items[1].Product.ID != 2 {
		t.Fatalf("unexpected line order %+v", items)
	}
	if items[0].Quantity != 6 {
		t.Fatalf("expected existing line bumped to 6, got %d", items[0].Quantity)
	}
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(product(1, 100), 1)
	c.Add(product(2, 200), 1)

	c.Remove(1)
	items := c.Items()
	if len(items) != 1 || items[0].Product.ID != 2 {
		t.Fatalf("unexpected items after remove %+v", items)
	}

	// removing an absent product is a no-op
	c.Remove(99)
	if len(c.Items()) != 1 {
		t.Fatalf("remove of absent product mutated the cart")
	}
}

func TestIncreaseDecrease(t *testing.T) {
	c := New()
	c.Add(product(1, 100), 1)

	c.Increase(1)
	if got := c.Items()[0].Quantity; got != 2 {
		t.Fatalf("expected 2 after increase, got %d", got)
	}

	c.Decrease(1)
	if got := c.Items()[0].Quantity; got != 1 {
		t.Fatalf("expected 1 after decrease, got %d", got)
	}

	// decrease floors at 1, never removes or goes negative
	c.Decrease(1)
	if got := c.Items()[0].Quantity; got != 1 {
		t.Fatalf("expected decrease at 1 to be a no-op, got %d", got)
	}

	// absent product ids are silent no-ops
	c.Increase(42)
	c.Decrease(42)
	if len(c.Items()) != 1 {
		t.Fatalf("increase/decrease of absent product mutated the cart")
	}
}

func TestCoupon_ReplaceAndRemove(t *testing.T) {
	c := New()
	c.ApplyCoupon(domain.Coupon{Code: "SAVE10", Percent: 10})
	c.ApplyCoupon(domain.Coupon{Code: "WELCOME20", Percent: 20})

	cp := c.Coupon()
	if cp == nil || cp.Code != "WELCOME20" || cp.Percent != 20 {
		t.Fatalf("expected WELCOME20 to replace SAVE10, got %+v", cp)
	}

	c.RemoveCoupon()
	if c.Coupon() != nil {
		t.Fatalf("expected coupon cleared")
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(product(1, 100), 2)
	c.ApplyCoupon(domain.Coupon{Code: "SAVE10", Percent: 10})

	c.Clear()
	if len(c.Items()) != 0 || c.Coupon() != nil {
		t.Fatalf("expected empty cart after clear")
	}
}

func TestVisibilityFlag(t *testing.T) {
	c := New()
	if c.IsOpen() {
		t.Fatalf("new cart should be closed")
	}
	c.Open()
	if !c.IsOpen() {
		t.Fatalf("expected open")
	}
	c.Toggle()
	if c.IsOpen() {
		t.Fatalf("expected closed after toggle")
	}
	c.Close()
	if c.IsOpen() {
		t.Fatalf("expected closed")
	}

	// visibility is orthogonal to item state
	c.Add(product(1, 100), 1)
	c.Toggle()
	if len(c.Items()) != 1 {
		t.Fatalf("toggling visibility must not touch items")
	}
}
