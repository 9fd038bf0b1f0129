package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease/internal/domain"
)

type wishlistItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
}

func (h *handlers) getWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.WishlistSvc.Get(sessionID(c)))
}

func (h *handlers) addWishlistItem(c *gin.Context) {
	var req wishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "productId is required"})
		return
	}

	items, err := h.deps.WishlistSvc.Add(c.Request.Context(), sessionID(c), req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *handlers) removeWishlistItem(c *gin.Context) {
	productID, ok := pathProductID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.deps.WishlistSvc.Remove(sessionID(c), productID))
}

func (h *handlers) toggleWishlistItem(c *gin.Context) {
	productID, ok := pathProductID(c)
	if !ok {
		return
	}

	items, err := h.deps.WishlistSvc.Toggle(c.Request.Context(), sessionID(c), productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *handlers) clearWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.WishlistSvc.Clear(sessionID(c)))
}
