package product

import (
	"context"
	"sync"

	"shopease/internal/domain"
)

// memoryRepo serves the read-only catalog from process memory. Products are
// immutable after construction; the mutex only guards the backing slice
// against data races on concurrent reads of returned copies.
type memoryRepo struct {
	mu       sync.RWMutex
	products []domain.Product
}

// NewMemory returns a Repository over the given fixed product collection,
// preserving source order.
func NewMemory(products []domain.Product) Repository {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return &memoryRepo{products: out}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) ListByCategory(_ context.Context, categoryID int) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, 0)
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}
