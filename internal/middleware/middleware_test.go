package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tekfix_jobboard/internal/auth"
	"tekfix_jobboard/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(codec auth.TokenCodec) *gin.Engine {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/me", AuthMiddleware(codec), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": GetUserID(c)})
	})
	r.GET("/admin", AuthMiddleware(codec), RequirePermission(auth.PermAdminDashboard), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	codec := auth.PlainCodec{}
	r := newRouter(codec)

	seekerToken, err := codec.Issue(&models.User{BaseModel: models.BaseModel{ID: "3"}, Role: models.UserRoleSeeker})
	require.NoError(t, err)
	adminToken, err := codec.Issue(&models.User{BaseModel: models.BaseModel{ID: "1"}, Role: models.UserRoleAdmin})
	require.NoError(t, err)

	w := do(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(r, "/me", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")

	w = do(r, "/me", seekerToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"3"}`, w.Body.String())

	assert.Equal(t, http.StatusForbidden, do(r, "/admin", seekerToken).Code)
	assert.Equal(t, http.StatusNoContent, do(r, "/admin", adminToken).Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.POST("/login", RateLimitMiddleware(NewIPRateLimiter(1, 2)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)

	// другой IP не затронут
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIPRateLimiter_Sweep(t *testing.T) {
	// 10 микросекунд на токен: ведро успевает наполниться за время теста
	limiter := NewIPRateLimiter(6_000_000, 2)
	require.True(t, limiter.Allow("10.0.0.1"))
	require.True(t, limiter.Allow("10.0.0.2"))
	assert.Equal(t, 2, limiter.Size())

	assert.Eventually(t, func() bool {
		limiter.Sweep()
		return limiter.Size() == 0
	}, time.Second, 5*time.Millisecond)

	// вычищенный IP снова получает полный лимит
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.Equal(t, 1, limiter.Size())
}
