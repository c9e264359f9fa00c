package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chinarfoundation/charity-site/internal/sessions"
)

// SessionHeader carries the opaque admin session token.
const SessionHeader = "X-Session-Id"

// identityKey is the gin context key the authenticated admin email is stored under.
const identityKey = "adminEmail"

// SessionValidator is the minimal interface the middleware depends on.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (*sessions.Session, error)
}

// SessionAuth returns a Gin middleware that gates admin operations on a valid
// session token. Missing, unknown and expired tokens all get the same 401.
func SessionAuth(v SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(SessionHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		sess, err := v.Validate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Session validation failed"})
			return
		}
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		c.Set(identityKey, sess.Email)
		c.Next()
	}
}

// Identity returns the authenticated admin email, if any.
func Identity(c *gin.Context) (string, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}
