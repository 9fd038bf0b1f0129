// Package wishlist exposes session-scoped wishlists over the catalog.
package wishlist

import (
	"context"
	"errors"
	"sync"

	"shopease/internal/domain"
	productrepo "shopease/internal/repository/product"
	"shopease/internal/wishlist"
)

type Service struct {
	products productrepo.Repository

	mu    sync.Mutex
	lists map[string]*wishlist.Wishlist
}

func New(products productrepo.Repository) *Service {
	return &Service{
		products: products,
		lists:    make(map[string]*wishlist.Wishlist),
	}
}

// Get returns the saved products for the session, creating an empty wishlist
// on first touch.
func (s *Service) Get(sessionID string) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(sessionID).Items()
}

// Add saves the product on the session wishlist; saving a product twice is a
// no-op.
func (s *Service) Add(ctx context.Context, sessionID string, productID int) ([]domain.Product, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.list(sessionID)
	w.Add(*p)
	return w.Items(), nil
}

// Remove drops the product from the wishlist; absent ids are a no-op.
func (s *Service) Remove(sessionID string, productID int) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.list(sessionID)
	w.Remove(productID)
	return w.Items()
}

// Toggle saves the product when absent and removes it when saved.
func (s *Service) Toggle(ctx context.Context, sessionID string, productID int) ([]domain.Product, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.list(sessionID)
	w.Toggle(*p)
	return w.Items(), nil
}

// Clear empties the session wishlist.
func (s *Service) Clear(sessionID string) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.list(sessionID)
	w.Clear()
	return w.Items()
}

// Drop discards the wishlist entirely, used when a session is destroyed.
func (s *Service) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lists, sessionID)
}

// list is called with the lock held.
func (s *Service) list(sessionID string) *wishlist.Wishlist {
	w, ok := s.lists[sessionID]
	if !ok {
		w = wishlist.New()
		s.lists[sessionID] = w
	}
	return w
}
