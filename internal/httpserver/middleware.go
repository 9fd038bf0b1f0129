package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease/internal/domain"
)

const sessionCookie = "shopease_session"

const (
	ctxSessionID = "sessionID"
	ctxUser      = "currentUser"
)

// sessionMiddleware resolves the session cookie, if any, and stashes the
// live session id in the request context. It never rejects.
func (h *handlers) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(sessionCookie); err == nil && cookie != "" {
			if h.deps.AuthSvc.SessionExists(c.Request.Context(), cookie) {
				c.Set(ctxSessionID, cookie)
			}
		}
		c.Next()
	}
}

// ensureSession guarantees a session exists for cart routes, issuing an
// anonymous one on first touch.
func (h *handlers) ensureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionID(c) == "" {
			sid, err := h.deps.AuthSvc.StartSession(c.Request.Context())
			if err != nil {
				h.logger.Printf("start session: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
				return
			}
			h.setSessionCookie(c, sid)
			c.Set(ctxSessionID, sid)
		}
		c.Next()
	}
}

// requireAuth gates order endpoints: it short-circuits with 401 before any
// order logic runs unless the session resolves to a user.
func (h *handlers) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := h.deps.AuthSvc.CurrentUser(c.Request.Context(), sessionID(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Set(ctxUser, u)
		c.Next()
	}
}

func (h *handlers) setSessionCookie(c *gin.Context, sid string) {
	maxAge := int(h.opts.SessionTTL.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, sid, maxAge, "/", "", h.opts.SecureCookies, true)
}

func (h *handlers) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", h.opts.SecureCookies, true)
}

func sessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}

func currentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(ctxUser); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}
