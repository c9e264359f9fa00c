package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinarfoundation/charity-site/internal/sessions"
)

func protectedRouter(svc *sessions.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", SessionAuth(svc), func(c *gin.Context) {
		email, _ := Identity(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "email": email})
	})
	return r
}

func TestSessionAuthMissingHeader(t *testing.T) {
	svc := sessions.NewService(sessions.NewMemoryRepository(), time.Hour)
	r := protectedRouter(svc)

	req := httptest.NewRequest("GET", "/admin/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestSessionAuthUnknownToken(t *testing.T) {
	svc := sessions.NewService(sessions.NewMemoryRepository(), time.Hour)
	r := protectedRouter(svc)

	req := httptest.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set(SessionHeader, "bogus")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthValidToken(t *testing.T) {
	svc := sessions.NewService(sessions.NewMemoryRepository(), time.Hour)
	token, err := svc.Issue(t.Context(), "admin@example.org")
	require.NoError(t, err)
	r := protectedRouter(svc)

	req := httptest.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set(SessionHeader, token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.org")
}

func TestSessionAuthExpiredToken(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := issued
	svc := sessions.NewService(sessions.NewMemoryRepository(), 2*time.Hour).
		WithClock(func() time.Time { return current })
	token, err := svc.Issue(t.Context(), "admin@example.org")
	require.NoError(t, err)
	r := protectedRouter(svc)

	current = issued.Add(2*time.Hour + time.Second)
	req := httptest.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set(SessionHeader, token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
