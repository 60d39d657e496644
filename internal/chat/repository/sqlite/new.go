package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"preinscription-chatbot/internal/chat/repository"
	pkgLog "preinscription-chatbot/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates a new SQLite-backed Repository for the chat domain.
func New(db *sql.DB, l pkgLog.Logger) repository.Repository {
	if db == nil {
		panic("chat/repository/sqlite: db is required")
	}
	if l == nil {
		l = pkgLog.NewNop()
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chat/repository/sqlite.%s", method)
}

func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
