// Package cart exposes session-scoped carts with computed totals.
package cart

import (
	"context"
	"errors"
	"sync"

	"shopease/internal/cart"
	"shopease/internal/domain"
	"shopease/internal/pricing"
	productrepo "shopease/internal/repository/product"
)

type Service struct {
	products productrepo.Repository

	mu    sync.Mutex
	carts map[string]*cart.Cart
}

func New(products productrepo.Repository) *Service {
	return &Service{
		products: products,
		carts:    make(map[string]*cart.Cart),
	}
}

// Summary is a cart snapshot with totals recomputed on read. Amounts are in
// the minor currency unit.
type Summary struct {
	Items    []domain.CartItem `json:"items"`
	Coupon   *domain.Coupon    `json:"coupon,omitempty"`
	Subtotal int64             `json:"subtotal"`
	Tax      int64             `json:"tax"`
	Discount int64             `json:"discount"`
	Total    int64             `json:"total"`
}

// Get returns the current cart summary for the session, creating an empty
// cart on first touch.
func (s *Service) Get(sessionID string) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return summarize(s.cart(sessionID))
}

// AddItem puts quantity units of the product in the session cart, coalescing
// with an existing line for the same product.
func (s *Service) AddItem(ctx context.Context, sessionID string, productID, quantity int) (Summary, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Summary{}, domain.ErrNotFound
		}
		return Summary{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.Add(*p, quantity)
	return summarize(c), nil
}

// RemoveItem deletes the line for productID; absent ids are a no-op.
func (s *Service) RemoveItem(sessionID string, productID int) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.Remove(productID)
	return summarize(c)
}

// IncreaseQuantity bumps the line quantity by one; absent ids are a no-op.
func (s *Service) IncreaseQuantity(sessionID string, productID int) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.Increase(productID)
	return summarize(c)
}

// DecreaseQuantity lowers the line quantity by one, flooring at 1.
func (s *Service) DecreaseQuantity(sessionID string, productID int) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.Decrease(productID)
	return summarize(c)
}

// ApplyCoupon validates the code against the registry and sets it on the
// cart, replacing any previous coupon.
func (s *Service) ApplyCoupon(sessionID, code string) (Summary, error) {
	coupon, ok := pricing.LookupCoupon(code)
	if !ok {
		return Summary{}, domain.NewValidationError("Invalid coupon code")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.ApplyCoupon(coupon)
	return summarize(c), nil
}

// RemoveCoupon clears the coupon slot.
func (s *Service) RemoveCoupon(sessionID string) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.RemoveCoupon()
	return summarize(c)
}

// Clear empties the session cart, items and coupon both.
func (s *Service) Clear(sessionID string) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.Clear()
	return summarize(c)
}

// Drop discards the cart entirely, used when a session is destroyed.
func (s *Service) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// cart is called with the lock held.
func (s *Service) cart(sessionID string) *cart.Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = cart.New()
		s.carts[sessionID] = c
	}
	return c
}

func summarize(c *cart.Cart) Summary {
	items := c.Items()
	coupon := c.Coupon()
	subtotal := pricing.Subtotal(items)
	return Summary{
		Items:    items,
		Coupon:   coupon,
		Subtotal: subtotal,
		Tax:      pricing.Tax(subtotal),
		Discount: pricing.Discount(subtotal, coupon),
		Total:    pricing.Total(items, coupon),
	}
}
