package middleware

import (
	"errors"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Require is the single access-policy dispatcher: every route declares its
// policy once at registration and the decision runs before the handler.
// ownerParam names the route parameter holding the resource reference for
// ownership checks; pass "" for policies that do not test ownership.
func Require(policy domain.AccessPolicy, ownerParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var resourceRef string
		if ownerParam != "" {
			resourceRef = c.Param(ownerParam)
		}

		if err := domain.Authorize(policy, CurrentIdentity(c), resourceRef); err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
			} else {
				response.Error(c, http.StatusForbidden, "Insufficient permissions", nil)
			}
			c.Abort()
			return
		}

		c.Next()
	}
}
