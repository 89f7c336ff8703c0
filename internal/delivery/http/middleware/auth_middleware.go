package middleware

import (
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// Authenticate resolves the caller's identity from a bearer token and stores
// it on the context. Requests without a credential pass through anonymous;
// the per-route access policy decides whether that is acceptable. A presented
// but invalid token is rejected outright.
func Authenticate(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		raw := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Parse(raw)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyAccountID), claims.SubjectID)
		c.Set(string(domain.KeyAccountEmail), claims.Email)
		c.Set(string(domain.KeyAccountRole), claims.Role)

		c.Next()
	}
}

// CurrentIdentity rebuilds the identity placed on the context by
// Authenticate. Returns nil when the request is anonymous.
func CurrentIdentity(c *gin.Context) *domain.Identity {
	subject := c.GetString(string(domain.KeyAccountID))
	if subject == "" {
		return nil
	}
	return &domain.Identity{
		SubjectID: subject,
		Email:     c.GetString(string(domain.KeyAccountEmail)),
		Role:      c.GetString(string(domain.KeyAccountRole)),
	}
}
