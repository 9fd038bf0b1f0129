package session

import (
	"context"
	"sync"
	"time"

	"shopease/internal/domain"
)

type memoryRepo struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

func NewMemory() Repository {
	return &memoryRepo{sessions: make(map[string]domain.Session)}
}

func (r *memoryRepo) Create(_ context.Context, s domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.ID]; ok {
		return domain.ErrAlreadyExists
	}
	r.sessions[s.ID] = s
	return nil
}

func (r *memoryRepo) Get(_ context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if time.Now().After(s.ExpiresAt) {
		delete(r.sessions, id)
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *memoryRepo) BindUser(_ context.Context, id string, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.UserID = userID
	r.sessions[id] = s
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
