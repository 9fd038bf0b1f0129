package domain

import "time"

// Session is an opaque server-side session. UserID is zero until a login or
// registration binds an account to it; anonymous sessions carry carts only.
type Session struct {
	ID        string
	UserID    int
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Anonymous reports whether the session has no bound user.
func (s Session) Anonymous() bool {
	return s.UserID == 0
}
