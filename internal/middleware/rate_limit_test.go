package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(rl *ShardedRateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(rl.RateLimit())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRateLimit_AllowsUpToLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewShardedRateLimiter(3, time.Minute, 4)
	defer rl.Stop()
	router := newRateLimitedRouter(rl)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_WindowReset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewShardedRateLimiter(1, 20*time.Millisecond, 1)
	defer rl.Stop()
	router := newRateLimitedRouter(rl)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	time.Sleep(30 * time.Millisecond)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClientRateLimit_SeparatesClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewShardedRateLimiter(1, time.Minute, 4)
	defer rl.Stop()

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(ClientIDKey, c.GetHeader("X-Test-Client"))
		c.Next()
	})
	router.Use(rl.ClientRateLimit())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func(client string) int {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Test-Client", client)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("alpha"))
	assert.Equal(t, http.StatusTooManyRequests, send("alpha"))
	// A different client keeps its own budget.
	assert.Equal(t, http.StatusOK, send("beta"))
}

func TestShardedRateLimiter_CleanupExpired(t *testing.T) {
	rl := NewShardedRateLimiter(5, 5*time.Millisecond, 2)
	defer rl.Stop()

	rl.checkRateLimit("a")
	rl.checkRateLimit("b")

	total, _ := rl.Stats()
	assert.Equal(t, 2, total)

	time.Sleep(15 * time.Millisecond)
	rl.cleanupExpired()

	total, _ = rl.Stats()
	assert.Equal(t, 0, total)
}
