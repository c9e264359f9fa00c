package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRateLimitRejectsBeyondWindow(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RedisRateLimitMiddleware(client, 1, 1, time.Minute), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	// allowed = 1*60 + 1 = 61 per window
	for i := 0; i < 61; i++ {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.RemoteAddr = "10.3.0.1:1"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}
	req := httptest.NewRequest("GET", "/ping", nil)
	req.RemoteAddr = "10.3.0.1:1"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRedisRateLimitNilClientFallsBack(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RedisRateLimitMiddleware(nil, 100, 100, time.Second), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	req := httptest.NewRequest("GET", "/ping", nil)
	req.RemoteAddr = "10.3.0.9:1"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
