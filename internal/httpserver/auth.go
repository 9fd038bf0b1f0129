package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease/internal/domain"
	authsvc "shopease/internal/service/auth"
)

type registerRequest struct {
	Username        string         `json:"username"`
	Password        string         `json:"password"`
	ConfirmPassword string         `json:"confirmPassword"`
	Email           string         `json:"email"`
	FullName        string         `json:"fullName"`
	PhoneNumber     string         `json:"phoneNumber"`
	Address         domain.Address `json:"address"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *handlers) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, sid, err := h.deps.AuthSvc.Register(c.Request.Context(), sessionID(c), authsvc.RegisterInput{
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Email:           req.Email,
		FullName:        req.FullName,
		PhoneNumber:     req.PhoneNumber,
		Address:         req.Address,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setSessionCookie(c, sid)
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	user, sid, err := h.deps.AuthSvc.Login(c.Request.Context(), sessionID(c), req.Username, req.Password)
	if err != nil {
		if err == domain.ErrUnauthorized {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		h.respondError(c, err)
		return
	}

	h.setSessionCookie(c, sid)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *handlers) logout(c *gin.Context) {
	sid := sessionID(c)
	if sid != "" {
		if err := h.deps.AuthSvc.Logout(c.Request.Context(), sid); err != nil {
			h.respondError(c, err)
			return
		}
		// cart and wishlist are scoped to the session and die with it
		h.deps.CartSvc.Drop(sid)
		h.deps.WishlistSvc.Drop(sid)
	}
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *handlers) currentUser(c *gin.Context) {
	user, err := h.deps.AuthSvc.CurrentUser(c.Request.Context(), sessionID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
