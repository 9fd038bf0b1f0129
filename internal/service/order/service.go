// Package order validates and persists checkout submissions.
package order

import (
	"context"
	"errors"
	"fmt"

	"shopease/internal/domain"
	"shopease/internal/pricing"
	orderrepo "shopease/internal/repository/order"
	productrepo "shopease/internal/repository/product"
)

type Service struct {
	repo     orderrepo.Repository
	products productrepo.Repository
}

func New(repo orderrepo.Repository, products productrepo.Repository) *Service {
	return &Service{repo: repo, products: products}
}

// ItemInput is one submitted cart line: the product, how many, and the unit
// price the client saw.
type ItemInput struct {
	ProductID int   `json:"productId"`
	Quantity  int   `json:"quantity"`
	Price     int64 `json:"price"`
}

// CreateInput is the checkout payload.
type CreateInput struct {
	Items           []ItemInput    `json:"items"`
	ShippingAddress domain.Address `json:"shippingAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
	TotalAmount     int64          `json:"totalAmount"`
}

// Create validates the submission and persists the order with its items as
// one atomic aggregate. Submitted unit prices must match the catalog's
// current effective prices, and the submitted total must be consistent with
// subtotal + tax - discount for no coupon or one of the registered coupon
// percentages; nothing is written when validation fails.
func (s *Service) Create(ctx context.Context, userID int, in CreateInput) (*domain.OrderWithItems, error) {
	if len(in.Items) == 0 {
		return nil, domain.NewValidationError("Order must contain at least one item")
	}
	if !domain.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.NewValidationError("Invalid payment method")
	}

	var subtotal int64
	items := make([]domain.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return nil, domain.NewValidationError("Item quantity must be at least 1")
		}
		p, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError(fmt.Sprintf("Unknown product %d", item.ProductID))
			}
			return nil, err
		}
		if item.Price != p.EffectivePrice() {
			return nil, domain.NewValidationError(fmt.Sprintf("Price mismatch for product %d", item.ProductID))
		}
		subtotal += item.Price * int64(item.Quantity)
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	if !totalConsistent(subtotal, in.TotalAmount) {
		return nil, domain.NewValidationError("Total amount does not match the order items")
	}

	return s.repo.CreateWithItems(ctx, domain.Order{
		UserID:          userID,
		TotalAmount:     in.TotalAmount,
		Status:          domain.OrderStatusPending,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
	}, items)
}

// List returns the caller's orders with their items, never another user's.
func (s *Service) List(ctx context.Context, userID int) ([]domain.OrderWithItems, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get distinguishes "doesn't exist" (ErrNotFound) from "exists but not
// yours" (ErrForbidden).
func (s *Service) Get(ctx context.Context, orderID, requestingUserID int) (*domain.OrderWithItems, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != requestingUserID {
		return nil, domain.ErrForbidden
	}
	return o, nil
}

// totalConsistent accepts a client-computed total when it equals
// subtotal + tax - discount for a zero coupon or any registered coupon
// percentage.
func totalConsistent(subtotal, total int64) bool {
	tax := pricing.Tax(subtotal)
	if total == subtotal+tax {
		return true
	}
	for _, pct := range pricing.CouponPercents() {
		discount := pricing.Discount(subtotal, &domain.Coupon{Percent: pct})
		if total == subtotal+tax-discount {
			return true
		}
	}
	return false
}
