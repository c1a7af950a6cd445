package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookorbit-backend-go/internal/core"
	"bookorbit-backend-go/internal/models"
)

// UserHandler handles the user profile endpoints.
type UserHandler struct {
	userService core.UserService
	logger      *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{userService: us, logger: logger}
}

// UpsertUser handles PUT /users. The client calls it on every login to sync
// the profile; it is unauthenticated by design, matching the login flow where
// the profile sync happens alongside token issuance.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var req models.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Email required"})
		return
	}

	user, err := h.userService.UpsertUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Email required"})
			return
		}
		h.logger.Error("upsert user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to upsert user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetRole handles GET /users/role for the authenticated caller.
func (h *UserHandler) GetRole(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	role, err := h.userService.GetRole(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("fetch role failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch role"})
		return
	}
	c.JSON(http.StatusOK, RoleResponse{Role: role})
}
