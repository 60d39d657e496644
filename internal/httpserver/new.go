package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"preinscription-chatbot/internal/chat/repository"
	chatSqlite "preinscription-chatbot/internal/chat/repository/sqlite"
	"preinscription-chatbot/internal/conversation"
	"preinscription-chatbot/internal/middleware"
	"preinscription-chatbot/internal/test"
	"preinscription-chatbot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	port           int
	mode           string
	environment    string
	readTimeout    time.Duration
	writeTimeout   time.Duration
	allowedOrigins []string

	// Middleware
	mw middleware.Middleware

	// Chat domain
	chatRepo         repository.Repository
	engine           *conversation.Engine
	maxMessageLength int

	// Test domain
	testHandler test.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
	RateLimit      middleware.Config

	// Chat domain
	DB               *sql.DB
	Engine           *conversation.Engine
	MaxMessageLength int

	// Test domain, registered outside production only
	TestHandler test.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		readTimeout:      cfg.ReadTimeout,
		writeTimeout:     cfg.WriteTimeout,
		allowedOrigins:   cfg.AllowedOrigins,
		engine:           cfg.Engine,
		maxMessageLength: cfg.MaxMessageLength,
		testHandler:      cfg.TestHandler,
	}

	if err := srv.validate(cfg); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(logger, cfg.RateLimit)
	srv.chatRepo = chatSqlite.New(cfg.DB, logger)

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate(cfg Config) error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if cfg.DB == nil {
		return errors.New("database is required")
	}
	if srv.engine == nil {
		return errors.New("conversation engine is required")
	}
	return nil
}
