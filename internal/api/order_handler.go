package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookorbit-backend-go/internal/core"
)

// OrderHandler handles the order lifecycle endpoints.
type OrderHandler struct {
	orderService core.OrderService
	logger       *zap.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os core.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{orderService: os, logger: logger}
}

// CreateOrder handles POST /orders. The body is an arbitrary cart payload;
// ownership and lifecycle fields are set server-side.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request payload"})
		return
	}

	id, err := h.orderService.CreateOrder(c.Request.Context(), email, payload)
	if err != nil {
		h.logger.Error("create order failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Server error"})
		return
	}
	c.JSON(http.StatusOK, InsertResult{InsertedID: id})
}

// ListMine handles GET /orders/my, newest first.
func (h *OrderHandler) ListMine(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	orders, err := h.orderService.ListMine(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("list orders failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CancelOrder handles PATCH /orders/:id/cancel. Only the owner may cancel,
// and only while the order is still pending.
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	err := h.orderService.CancelOrder(c.Request.Context(), email, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Order not found"})
		case errors.Is(err, core.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Message: "Forbidden"})
		case errors.Is(err, core.ErrInvalidState):
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Only pending orders can be cancelled"})
		default:
			h.logger.Error("cancel order failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to cancel order"})
		}
		return
	}
	c.JSON(http.StatusOK, UpdateResult{ModifiedCount: 1})
}
