package order

import (
	"context"

	"shopease/internal/domain"
)

type Repository interface {
	// CreateWithItems persists the order and its items as one atomic unit:
	// either the whole aggregate is committed or nothing is.
	CreateWithItems(ctx context.Context, o domain.Order, items []domain.OrderItem) (*domain.OrderWithItems, error)
	ListByUser(ctx context.Context, userID int) ([]domain.OrderWithItems, error)
	GetByID(ctx context.Context, id int) (*domain.OrderWithItems, error)
}
