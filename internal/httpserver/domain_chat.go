package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "preinscription-chatbot/internal/chat/delivery/http"
	chatUC "preinscription-chatbot/internal/chat/usecase"
)

// setupChatDomain initializes the chat domain and registers its routes.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := chatUC.New(srv.chatRepo, srv.engine, srv.maxMessageLength, srv.l)

	h := chatHTTP.New(srv.l, uc)

	// registers /api/v1/chat/...
	chatHTTP.RegisterRoutes(api.Group("/chat"), h, srv.mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
