package category

import (
	"context"

	"shopease/internal/domain"
)

type memoryRepo struct {
	categories []domain.Category
}

// NewMemory returns a Repository over the given fixed category list.
func NewMemory(categories []domain.Category) Repository {
	out := make([]domain.Category, len(categories))
	copy(out, categories)
	return &memoryRepo{categories: out}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}
