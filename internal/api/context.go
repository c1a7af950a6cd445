package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookorbit-backend-go/internal/middleware"
)

// callerEmail returns the authenticated email the auth middleware put into the
// context. The middleware guarantees presence on protected routes; an empty
// value means the route was wired without it.
func callerEmail(c *gin.Context) (string, bool) {
	email := c.GetString(middleware.ContextUserEmail)
	if email == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized access"})
		return "", false
	}
	return email, true
}
