package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servicescale/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const testSecret = "test-secret"

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(testSecret))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, auth.OwnerID(c.Request.Context()))
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter()

	t.Run("valid token sets the owner", func(t *testing.T) {
		token, err := auth.GenerateJWT("owner-42", testSecret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "owner-42", w.Body.String())
	})

	cases := map[string]string{
		"missing header":  "",
		"wrong scheme":    "Basic abc",
		"garbage token":   "Bearer not-a-jwt",
		"too many tokens": "Bearer a b",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
		})
	}

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := auth.GenerateJWT("owner-42", "other", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestOwnerRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(ContextKeyOwnerID, c.GetHeader("X-Owner"))
		c.Next()
	})
	r.Use(NewOwnerRateLimiter(0, 1).Middleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(owner string) int {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Owner", owner)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("a"))
	assert.Equal(t, http.StatusTooManyRequests, call("a"))
	assert.Equal(t, http.StatusOK, call("b"), "buckets are per owner")
}

func TestOwnerRateLimiter_ZeroBurstStillAdmits(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewOwnerRateLimiter(rate.Limit(10), 0).Middleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOwnerRateLimiter_DropsIdleBuckets(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewOwnerRateLimiter(rate.Limit(1), 1)
	l.now = func() time.Time { return now }

	l.limiter("a")
	l.limiter("b")
	require.Equal(t, 2, l.size())

	now = now.Add(limiterIdleTTL / 2)
	l.limiter("b")

	now = now.Add(limiterIdleTTL/2 + time.Minute)
	l.limiter("c")
	assert.Equal(t, 2, l.size(), "a went idle, b was seen recently")
}
