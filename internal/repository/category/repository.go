package category

import (
	"context"

	"shopease/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int) (*domain.Category, error)
}
