package test

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"preinscription-chatbot/internal/conversation"
	pkgLog "preinscription-chatbot/pkg/log"
)

type handler struct {
	l      pkgLog.Logger
	engine *conversation.Engine
}

// HandleTestMessage classifies a message and shows the prompt that would be sent
// @Summary Test message processing
// @Description Classify a message and return the assembled prompt and the fallback answer without calling the model
// @Tags test
// @Accept json
// @Produce json
// @Param request body TestMessageRequest true "Test message"
// @Success 200 {object} TestMessageResponse
// @Router /test/message [post]
func (h *handler) HandleTestMessage(c *gin.Context) {
	ctx := c.Request.Context()

	var req TestMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	prompt, intent := h.engine.Prompt(req.SessionID, req.Text, req.DisplayName)
	rec, _ := h.engine.Store().Peek(req.SessionID)

	h.l.Infof(ctx, "internal.test.HandleTestMessage: text=%q intent=%s", req.Text, intent)

	c.JSON(http.StatusOK, TestMessageResponse{
		Success:  true,
		Intent:   string(intent),
		Text:     req.Text,
		Prompt:   prompt,
		Fallback: conversation.Fallback(intent),
		History:  len(rec.History),
	})
}

// HandleResetSession clears the in-memory context of a session
// @Summary Reset session context
// @Description Clear the conversation context of a session
// @Tags test
// @Accept json
// @Produce json
// @Param request body ResetSessionRequest true "Reset session"
// @Success 200 {object} ResetSessionResponse
// @Router /test/reset [post]
func (h *handler) HandleResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	var req ResetSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	h.engine.Store().Clear(req.SessionID)
	h.l.Infof(ctx, "internal.test.HandleResetSession: cleared session %s", req.SessionID)

	c.JSON(http.StatusOK, ResetSessionResponse{
		Success:   true,
		Message:   fmt.Sprintf("Session cleared: %s", req.SessionID),
		SessionID: req.SessionID,
	})
}

// HandleFallback returns the canned answer of an intent label
// @Summary Show fallback answer
// @Description Return the canned answer used for an intent when the model is unavailable. Unknown labels get the general answer.
// @Tags test
// @Produce json
// @Param intent path string true "Intent label"
// @Success 200 {object} FallbackResponse
// @Router /test/fallback/{intent} [get]
func (h *handler) HandleFallback(c *gin.Context) {
	intent, known := conversation.ParseIntent(c.Param("intent"))
	c.JSON(http.StatusOK, FallbackResponse{
		Intent:   string(intent),
		Known:    known,
		Fallback: conversation.Fallback(intent),
	})
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthCheckResponse{
		Status:   "ok",
		Message:  "Test endpoints are available",
		Sessions: h.engine.Store().Len(),
	})
}
