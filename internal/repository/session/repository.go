package session

import (
	"context"

	"shopease/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, s domain.Session) error
	// Get returns the session for the id, treating expired sessions as
	// missing.
	Get(ctx context.Context, id string) (*domain.Session, error)
	// BindUser attaches a user id to an existing session.
	BindUser(ctx context.Context, id string, userID int) error
	Delete(ctx context.Context, id string) error
}
