package test

import (
	"github.com/gin-gonic/gin"

	"preinscription-chatbot/internal/conversation"
	pkgLog "preinscription-chatbot/pkg/log"
)

// Handler is the interface for the diagnostics handler
type Handler interface {
	HandleTestMessage(c *gin.Context)
	HandleResetSession(c *gin.Context)
	HandleFallback(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new diagnostics handler
func New(l pkgLog.Logger, engine *conversation.Engine) Handler {
	return &handler{
		l:      l,
		engine: engine,
	}
}
