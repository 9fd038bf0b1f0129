package user

import (
	"context"
	"strings"
	"sync"
	"time"

	"shopease/internal/domain"
)

// memoryRepo stores users in a process-memory map keyed by an auto-increment
// id starting at 1. Construct one per process or test run and inject it;
// state is lost on restart.
type memoryRepo struct {
	mu     sync.RWMutex
	users  map[int]domain.User
	nextID int
}

func NewMemory() Repository {
	return &memoryRepo{
		users:  make(map[int]domain.User),
		nextID: 1,
	}
}

func (r *memoryRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Username, u.Username) {
			return nil, domain.ErrUsernameTaken
		}
		if strings.EqualFold(existing.Email, u.Email) {
			return nil, domain.ErrEmailTaken
		}
	}
	u.ID = r.nextID
	r.nextID++
	u.CreatedAt = time.Now().UTC()
	r.users[u.ID] = u
	return &u, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *memoryRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}
