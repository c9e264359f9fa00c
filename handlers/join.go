package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chinarfoundation/charity-site/internal/mailer"
	"github.com/chinarfoundation/charity-site/pkg/logger"
	"github.com/chinarfoundation/charity-site/pkg/metrics"
)

// JoinRequest is the public membership form. Every field is required. Age is
// bound as json.Number because clients send it as either a number or a string.
type JoinRequest struct {
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone"`
	Age     json.Number `json:"age"`
	State   string      `json:"state"`
	Country string      `json:"country"`
	Message string      `json:"message"`
}

func (r JoinRequest) complete() bool {
	for _, f := range []string{r.Name, r.Email, r.Phone, r.Age.String(), r.State, r.Country, r.Message} {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}

// JoinHandler relays membership applications over SMTP. Without configured
// transport credentials the submission is logged and the caller still gets a
// success, so the public form never breaks on a missing mail setup.
type JoinHandler struct {
	mailer *mailer.Mailer
}

func NewJoinHandler(m *mailer.Mailer) *JoinHandler {
	return &JoinHandler{mailer: m}
}

func (h *JoinHandler) Register(r gin.IRouter) {
	r.POST("/join", h.Join)
}

func (h *JoinHandler) Join(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.complete() {
		fail(c, http.StatusBadRequest, "All fields are required. Please fill out the complete form.")
		return
	}

	sub := mailer.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Age:     req.Age.String(),
		State:   req.State,
		Country: req.Country,
		Message: req.Message,
	}

	if !h.mailer.Configured() {
		logger.WithFields(map[string]interface{}{
			"name":    sub.Name,
			"email":   sub.Email,
			"phone":   sub.Phone,
			"country": sub.Country,
		}).Info("join submission received (mail transport not configured)")
		metrics.JoinSubmissions.WithLabelValues("logged").Inc()
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Thank you for joining us! Your application has been received.",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()
	if err := h.mailer.Send(ctx, sub); err != nil {
		logger.Errorf("failed to relay join submission from %s: %v", sub.Email, err)
		metrics.JoinSubmissions.WithLabelValues("failed").Inc()
		errorType := "SEND_FAILED"
		if errors.Is(err, context.DeadlineExceeded) {
			errorType = "ETIMEDOUT"
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "There was an error submitting your application. Please try again later.",
			"errorType": errorType,
		})
		return
	}

	metrics.JoinSubmissions.WithLabelValues("relayed").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for joining us! We will contact you soon.",
	})
}
