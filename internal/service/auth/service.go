// Package auth implements registration, login, and the session gate backing
// order endpoints.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shopease/internal/domain"
	sessionrepo "shopease/internal/repository/session"
	userrepo "shopease/internal/repository/user"
)

const minPasswordLen = 6

// Service handles signup/login flows and session resolution.
type Service struct {
	users    userrepo.Repository
	sessions *sessionManager
}

// New creates a Service issuing sessions with the given lifetime.
func New(users userrepo.Repository, sessions sessionrepo.Repository, sessionTTL time.Duration) *Service {
	return &Service{
		users:    users,
		sessions: newSessionManager(sessions, sessionTTL),
	}
}

// RegisterInput captures the signup payload.
type RegisterInput struct {
	Username        string
	Password        string
	ConfirmPassword string
	Email           string
	FullName        string
	PhoneNumber     string
	Address         domain.Address
}

// Register creates the user and binds a session to it. When sessionID names
// an existing session (e.g. one carrying an anonymous cart), the user is
// bound to it; otherwise a fresh session is issued. Returns the user and the
// session id.
func (s *Service) Register(ctx context.Context, sessionID string, in RegisterInput) (*domain.User, string, error) {
	if err := validateRegister(in); err != nil {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	created, err := s.users.Create(ctx, domain.User{
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: string(hashed),
		Email:        strings.TrimSpace(strings.ToLower(in.Email)),
		FullName:     strings.TrimSpace(in.FullName),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		Address:      in.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			return nil, "", domain.NewValidationError("Username already exists")
		case errors.Is(err, domain.ErrEmailTaken):
			return nil, "", domain.NewValidationError("Email already exists")
		}
		return nil, "", err
	}

	sid, err := s.sessions.Establish(ctx, sessionID, created.ID)
	if err != nil {
		return nil, "", err
	}
	return created, sid, nil
}

// Login validates credentials and binds a session to the user. An unknown
// username and a wrong password report the same ErrUnauthorized.
func (s *Service) Login(ctx context.Context, sessionID, username, password string) (*domain.User, string, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrUnauthorized
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrUnauthorized
	}

	sid, err := s.sessions.Establish(ctx, sessionID, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, sid, nil
}

// Logout destroys the session.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Destroy(ctx, sessionID)
}

// StartSession issues a fresh anonymous session, used to give cart state a
// home before any login.
func (s *Service) StartSession(ctx context.Context) (string, error) {
	return s.sessions.Establish(ctx, "", 0)
}

// SessionExists reports whether sessionID names a live session.
func (s *Service) SessionExists(ctx context.Context, sessionID string) bool {
	_, err := s.sessions.Get(ctx, sessionID)
	return err == nil
}

// CurrentUser resolves the session to its user. A missing or anonymous
// session is ErrUnauthorized; a session pointing at a user that no longer
// exists is destroyed and also reported as ErrUnauthorized.
func (s *Service) CurrentUser(ctx context.Context, sessionID string) (*domain.User, error) {
	if sessionID == "" {
		return nil, domain.ErrUnauthorized
	}
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if sess.Anonymous() {
		return nil, domain.ErrUnauthorized
	}
	u, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// stale session for a deleted user
			_ = s.sessions.Destroy(ctx, sessionID)
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return u, nil
}

func validateRegister(in RegisterInput) error {
	verr := &domain.ValidationError{Message: "Invalid registration data"}
	if strings.TrimSpace(in.Username) == "" {
		verr.FieldError("username", "username is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		verr.FieldError("email", "email is required")
	}
	if strings.TrimSpace(in.FullName) == "" {
		verr.FieldError("fullName", "full name is required")
	}
	if len(in.Password) < minPasswordLen {
		verr.FieldError("password", "password must be at least 6 characters")
	}
	if in.Password != in.ConfirmPassword {
		verr.FieldError("confirmPassword", "Passwords don't match")
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
