package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"shopease/internal/domain"
	sessionrepo "shopease/internal/repository/session"
)

// sessionManager issues opaque random session ids and resolves them through
// the session repository.
type sessionManager struct {
	repo sessionrepo.Repository
	ttl  time.Duration
}

func newSessionManager(repo sessionrepo.Repository, ttl time.Duration) *sessionManager {
	return &sessionManager{repo: repo, ttl: ttl}
}

// Establish binds userID to the named session, or issues a new session when
// sessionID is empty or no longer live. userID 0 means anonymous.
func (m *sessionManager) Establish(ctx context.Context, sessionID string, userID int) (string, error) {
	if sessionID != "" {
		if _, err := m.repo.Get(ctx, sessionID); err == nil {
			if err := m.repo.BindUser(ctx, sessionID, userID); err != nil {
				return "", err
			}
			return sessionID, nil
		}
	}

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		id, err := randomSessionID()
		if err != nil {
			return "", err
		}
		err = m.repo.Create(ctx, domain.Session{
			ID:        id,
			UserID:    userID,
			CreatedAt: now,
			ExpiresAt: now.Add(m.ttl),
		})
		if err == nil {
			return id, nil
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		return "", err
	}
	return "", errors.New("session id collision")
}

func (m *sessionManager) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	return m.repo.Get(ctx, sessionID)
}

func (m *sessionManager) Destroy(ctx context.Context, sessionID string) error {
	return m.repo.Delete(ctx, sessionID)
}

func randomSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
