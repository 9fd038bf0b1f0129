package product

import (
	"context"

	"shopease/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int) ([]domain.Product, error)
}
