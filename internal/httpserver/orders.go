package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	ordersvc "shopease/internal/service/order"
)

func (h *handlers) createOrder(c *gin.Context) {
	user := currentUser(c)

	var in ordersvc.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	created, err := h.deps.OrderSvc.Create(c.Request.Context(), user.ID, in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// checkout succeeded; the session cart is done
	h.deps.CartSvc.Clear(sessionID(c))

	c.JSON(http.StatusCreated, gin.H{"order": created.Order, "items": created.Items})
}

func (h *handlers) listOrders(c *gin.Context) {
	orders, err := h.deps.OrderSvc.List(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *handlers) getOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	o, err := h.deps.OrderSvc.Get(c.Request.Context(), id, currentUser(c).ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}
