package http

import (
	"github.com/gin-gonic/gin"

	"preinscription-chatbot/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every chat route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	rg.POST("/messages", h.SendMessage)

	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.StartSession)
		sessions.GET("", h.ListSessions)
		sessions.GET("/:id/messages", h.History)
		sessions.GET("/:id/summary", h.Summary)
		sessions.PUT("/:id/attributes", h.UpdateAttributes)
		sessions.DELETE("/:id", h.DeleteSession)
	}
}
