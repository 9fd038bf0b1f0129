// Package cart implements the cart state machine: line items coalesced by
// product id, a single coupon slot, and a display-only visibility flag.
package cart

import (
	"github.com/google/uuid"

	"shopease/internal/domain"
)

// Cart holds the line items and coupon for one session. Every operation is a
// total function over the current state; acting on an absent product id is a
// silent no-op. Cart is not safe for concurrent use; callers serialize access.
type Cart struct {
	items  []domain.CartItem
	coupon *domain.Coupon
	open   bool
}

func New() *Cart {
	return &Cart{}
}

// Add puts quantity units of product in the cart. An existing line for the
// same product id has its quantity incremented and keeps its position; a new
// product appends a fresh line. Quantity defaults to 1 when non-positive.
func (c *Cart) Add(product domain.Product, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity += quantity
			return
		}
	}
	c.items = append(c.items, domain.CartItem{
		LineID:   uuid.NewString(),
		Product:  product,
		Quantity: quantity,
	})
}

// Remove deletes the line for productID, if any.
func (c *Cart) Remove(productID int) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Increase bumps the line quantity by one.
func (c *Cart) Increase(productID int) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity++
			return
		}
	}
}

// Decrease lowers the line quantity by one but never below 1. Dropping the
// line entirely is Remove's job, not a side effect of decrementing.
func (c *Cart) Decrease(productID int) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			if c.items[i].Quantity > 1 {
				c.items[i].Quantity--
			}
			return
		}
	}
}

// ApplyCoupon sets the coupon slot, replacing any previous coupon.
func (c *Cart) ApplyCoupon(coupon domain.Coupon) {
	c.coupon = &coupon
}

// RemoveCoupon clears the coupon slot.
func (c *Cart) RemoveCoupon() {
	c.coupon = nil
}

// Clear empties all line items and clears any coupon.
func (c *Cart) Clear() {
	c.items = nil
	c.coupon = nil
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Coupon returns the applied coupon, or nil.
func (c *Cart) Coupon() *domain.Coupon {
	if c.coupon == nil {
		return nil
	}
	cp := *c.coupon
	return &cp
}

// Open, Close, and Toggle manage the sidebar visibility flag. It has no
// business meaning beyond display.
func (c *Cart) Open()   { c.open = true }
func (c *Cart) Close()  { c.open = false }
func (c *Cart) Toggle() { c.open = !c.open }

func (c *Cart) IsOpen() bool { return c.open }
