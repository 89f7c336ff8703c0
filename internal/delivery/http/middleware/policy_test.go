package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPolicyRouter(tokens *token.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Authenticate(tokens))

	r.GET("/public", middleware.Require(domain.PolicyPublic, ""), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/admin", middleware.Require(domain.PolicyElevated, ""), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/accounts/:id", middleware.Require(domain.PolicyElevatedOrOwner, "id"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPolicyDispatch(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	r := newPolicyRouter(tokens)

	adminToken, err := tokens.Issue("admin-1", "admin@example.com", domain.RoleAdmin)
	require.NoError(t, err)
	memberToken, err := tokens.Issue("acct-1", "member@example.com", domain.RoleMember)
	require.NoError(t, err)

	t.Run("Public route admits anonymous callers", func(t *testing.T) {
		w := doRequest(t, r, "/public", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Elevated route returns 401 for anonymous", func(t *testing.T) {
		w := doRequest(t, r, "/admin", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Elevated route returns 403 for members", func(t *testing.T) {
		w := doRequest(t, r, "/admin", memberToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Elevated route admits admins", func(t *testing.T) {
		w := doRequest(t, r, "/admin", adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Owner route admits the owner", func(t *testing.T) {
		w := doRequest(t, r, "/accounts/acct-1", memberToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Owner route admits admins over foreign resources", func(t *testing.T) {
		w := doRequest(t, r, "/accounts/acct-9", adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Owner route returns 403 for other members", func(t *testing.T) {
		w := doRequest(t, r, "/accounts/acct-9", memberToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Invalid bearer token is rejected before any policy", func(t *testing.T) {
		w := doRequest(t, r, "/public", "not-a-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
