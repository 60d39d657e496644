package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"preinscription-chatbot/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.RequestLogger())
	srv.gin.Use(srv.mw.SecurityHeaders())

	ctx := context.Background()
	if model.IsProduction(srv.environment) {
		srv.l.Infof(ctx, "CORS mode: production, origins %v", srv.allowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, origins %v", srv.environment, srv.allowedOrigins)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if err := srv.setupChatDomain(ctx, api); err != nil {
		return err
	}

	if srv.testHandler != nil && !model.IsProduction(srv.environment) {
		t := srv.gin.Group("/test")
		t.POST("/message", srv.testHandler.HandleTestMessage)
		t.POST("/reset", srv.testHandler.HandleResetSession)
		t.GET("/health", srv.testHandler.HandleHealthCheck)
		t.GET("/fallback/:intent", srv.testHandler.HandleFallback)
		srv.l.Infof(ctx, "Test routes registered at /test")
	} else {
		srv.l.Infof(ctx, "Test handler not configured, skipping test routes")
	}

	return nil
}
