package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopease/internal/domain"
)

type addItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity"`
}

type couponRequest struct {
	Code string `json:"code" binding:"required"`
}

func (h *handlers) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.CartSvc.Get(sessionID(c)))
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "productId is required"})
		return
	}

	summary, err := h.deps.CartSvc.AddItem(c.Request.Context(), sessionID(c), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *handlers) removeCartItem(c *gin.Context) {
	productID, ok := pathProductID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.deps.CartSvc.RemoveItem(sessionID(c), productID))
}

func (h *handlers) increaseCartItem(c *gin.Context) {
	productID, ok := pathProductID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.deps.CartSvc.IncreaseQuantity(sessionID(c), productID))
}

func (h *handlers) decreaseCartItem(c *gin.Context) {
	productID, ok := pathProductID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.deps.CartSvc.DecreaseQuantity(sessionID(c), productID))
}

func (h *handlers) applyCoupon(c *gin.Context) {
	var req couponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter a coupon code"})
		return
	}

	summary, err := h.deps.CartSvc.ApplyCoupon(sessionID(c), req.Code)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *handlers) removeCoupon(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.CartSvc.RemoveCoupon(sessionID(c)))
}

func (h *handlers) clearCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.CartSvc.Clear(sessionID(c)))
}

func pathProductID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return 0, false
	}
	return id, true
}
