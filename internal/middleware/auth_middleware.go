package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set for downstream handlers.
const (
	ContextUserEmail = "userEmail"
	ContextUserUID   = "userUID"
)

// TokenVerifier is the slice of the Firebase Auth client the middleware needs.
// *auth.Client satisfies it; tests substitute a fake.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AuthMiddleware provides Gin middleware for bearer-token authentication
// delegated to the identity provider.
type AuthMiddleware struct {
	verifier TokenVerifier
	logger   *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware instance.
func NewAuthMiddleware(verifier TokenVerifier, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// VerifyToken verifies the Authorization bearer token and puts the verified
// claims into the Gin context. Requests without a valid token carrying an
// email claim terminate here with 401, before any handler runs.
func (m *AuthMiddleware) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c)
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c)
			return
		}

		token, err := m.verifier.VerifyIDToken(c.Request.Context(), parts[1])
		if err != nil {
			m.logger.Warn("token verification failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			abortUnauthorized(c)
			return
		}

		email, _ := token.Claims["email"].(string)
		if email == "" {
			m.logger.Warn("verified token has no email claim", zap.String("uid", token.UID))
			abortUnauthorized(c)
			return
		}

		c.Set(ContextUserEmail, email)
		c.Set(ContextUserUID, token.UID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
}
