package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"preinscription-chatbot/config"
	_ "preinscription-chatbot/docs" // Swagger docs
	chatSqlite "preinscription-chatbot/internal/chat/repository/sqlite"
	"preinscription-chatbot/internal/conversation"
	"preinscription-chatbot/internal/httpserver"
	"preinscription-chatbot/internal/middleware"
	"preinscription-chatbot/internal/test"
	"preinscription-chatbot/pkg/llmprovider"
	"preinscription-chatbot/pkg/log"
	"preinscription-chatbot/pkg/sqlite"
)

// @title       Preinscription Chatbot API
// @description Pre-registration assistant of ICT University: intent detection, conversation context and Gemini answers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Preinscription Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	if err := chatSqlite.Migrate(ctx, db); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		return
	}
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	// 4. LLM providers. Without any the assistant answers with canned replies only.
	var generator conversation.Generator
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Warnf(ctx, "No LLM provider available, serving fallback answers only: %v", err)
	} else {
		manager, mErr := llmprovider.NewManagerFromConfig(providers, &cfg.LLM, logger)
		if mErr != nil {
			logger.Error(ctx, "Failed to initialize LLM manager: ", mErr)
			return
		}
		generator = manager
		for _, p := range providers {
			logger.Infof(ctx, "LLM provider %s (%s) enabled", p.Name(), p.Model())
		}
	}

	// 5. Conversation engine
	store, err := conversation.NewStore(conversation.StoreConfig{
		HistoryLimit: cfg.Conversation.HistoryLimit,
		MaxSessions:  cfg.Conversation.MaxSessions,
	}, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize context store: ", err)
		return
	}
	engine := conversation.NewEngine(store, generator, conversation.EngineConfig{
		PromptHistory:   cfg.Conversation.PromptHistory,
		GenerateTimeout: cfg.Conversation.GenerateTimeout,
	}, logger)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateLimit: middleware.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			Burst:          cfg.RateLimit.Burst,
			MaxClients:     cfg.RateLimit.MaxClients,
		},
		DB:               db,
		Engine:           engine,
		MaxMessageLength: cfg.Conversation.MaxMessageLength,
		TestHandler:      test.New(logger, engine),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
