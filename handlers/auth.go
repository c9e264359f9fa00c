package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chinarfoundation/charity-site/internal/config"
	"github.com/chinarfoundation/charity-site/internal/sessions"
	"github.com/chinarfoundation/charity-site/pkg/logger"
	"github.com/chinarfoundation/charity-site/pkg/middleware"
)

// LoginRequest carries the single admin credential pair.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthHandler holds dependencies
type AuthHandler struct {
	cfg         *config.Config
	sessionsSvc *sessions.Service
}

func NewAuthHandler(cfg *config.Config, s *sessions.Service) *AuthHandler {
	return &AuthHandler{cfg: cfg, sessionsSvc: s}
}

// Register mounts login under the secret admin path segment and logout inside
// the authenticated group.
func (h *AuthHandler) Register(r gin.IRouter, admin *gin.RouterGroup) {
	r.POST("/"+h.cfg.Admin.PathSegment+"/login", h.Login)
	admin.POST("/logout", h.Logout)
}

// Login checks the credential pair against the configured identity. The
// password is compared by constant-time digest, never stored in plaintext.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		fail(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	emailOK := req.Email == h.cfg.Admin.Email
	passwordOK := sessions.VerifySecret(req.Password, h.cfg.Admin.PasswordSHA256)
	if !emailOK || !passwordOK {
		fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.sessionsSvc.Issue(c.Request.Context(), req.Email)
	if err != nil {
		logger.Errorf("failed to issue session: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to create session")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Login successful",
		"sessionId": token,
	})
}

// Logout revokes the presented token. Revocation is idempotent, so a stale or
// already-revoked token still logs out cleanly.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetHeader(middleware.SessionHeader)
	if token != "" {
		if err := h.sessionsSvc.Revoke(c.Request.Context(), token); err != nil {
			logger.Warnf("failed to revoke session: %v", err)
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}
