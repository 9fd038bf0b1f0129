package order

import (
	"context"
	"sort"
	"sync"
	"time"

	"shopease/internal/domain"
)

// memoryRepo keeps orders and order items in process-memory maps with
// independent auto-increment counters starting at 1. The whole aggregate is
// written under one lock, so a partially created order is never observable.
type memoryRepo struct {
	mu        sync.RWMutex
	orders    map[int]domain.Order
	items     map[int]domain.OrderItem
	nextOrder int
	nextItem  int
}

func NewMemory() Repository {
	return &memoryRepo{
		orders:    make(map[int]domain.Order),
		items:     make(map[int]domain.OrderItem),
		nextOrder: 1,
		nextItem:  1,
	}
}

func (r *memoryRepo) CreateWithItems(_ context.Context, o domain.Order, items []domain.OrderItem) (*domain.OrderWithItems, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.nextOrder
	r.nextOrder++
	o.CreatedAt = time.Now().UTC()
	r.orders[o.ID] = o

	created := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		item.ID = r.nextItem
		r.nextItem++
		item.OrderID = o.ID
		r.items[item.ID] = item
		created = append(created, item)
	}

	return &domain.OrderWithItems{Order: o, Items: created}, nil
}

func (r *memoryRepo) ListByUser(_ context.Context, userID int) ([]domain.OrderWithItems, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.OrderWithItems, 0)
	for _, o := range r.orders {
		if o.UserID != userID {
			continue
		}
		out = append(out, domain.OrderWithItems{Order: o, Items: r.itemsForOrder(o.ID)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int) (*domain.OrderWithItems, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.OrderWithItems{Order: o, Items: r.itemsForOrder(o.ID)}, nil
}

// itemsForOrder is called with the lock held.
func (r *memoryRepo) itemsForOrder(orderID int) []domain.OrderItem {
	items := make([]domain.OrderItem, 0)
	for _, item := range r.items {
		if item.OrderID == orderID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}
