// Package wishlist implements the saved-products set: an ordered collection
// of products deduplicated by product id.
package wishlist

import (
	"shopease/internal/domain"
)

// Wishlist holds the saved products for one session in insertion order. Not
// safe for concurrent use; callers serialize access.
type Wishlist struct {
	items []domain.Product
}

func New() *Wishlist {
	return &Wishlist{}
}

// Add appends product unless a product with the same id is already saved.
func (w *Wishlist) Add(product domain.Product) {
	if w.Contains(product.ID) {
		return
	}
	w.items = append(w.items, product)
}

// Remove deletes the entry for productID, if any.
func (w *Wishlist) Remove(productID int) {
	for i := range w.items {
		if w.items[i].ID == productID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return
		}
	}
}

// Toggle removes the product when saved and saves it when absent. It reports
// whether the product is saved afterward.
func (w *Wishlist) Toggle(product domain.Product) bool {
	if w.Contains(product.ID) {
		w.Remove(product.ID)
		return false
	}
	w.items = append(w.items, product)
	return true
}

// Clear discards every saved product.
func (w *Wishlist) Clear() {
	w.items = nil
}

// Contains reports whether productID is saved.
func (w *Wishlist) Contains(productID int) bool {
	for i := range w.items {
		if w.items[i].ID == productID {
			return true
		}
	}
	return false
}

// Items returns a copy of the saved products in insertion order.
func (w *Wishlist) Items() []domain.Product {
	out := make([]domain.Product, len(w.items))
	copy(out, w.items)
	return out
}
