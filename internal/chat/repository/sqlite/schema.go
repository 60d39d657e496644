package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"preinscription-chatbot/internal/chat/repository"
)

// Timestamps are unix milliseconds so ordering is numeric.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS chat_sessions (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id    TEXT    NOT NULL UNIQUE,
		user_id       TEXT,
		created_at    INTEGER NOT NULL,
		last_activity INTEGER NOT NULL,
		metadata      TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT    NOT NULL REFERENCES chat_sessions(session_id) ON DELETE CASCADE,
		role       TEXT    NOT NULL CHECK (role IN ('user', 'assistant')),
		content    TEXT    NOT NULL,
		timestamp  INTEGER NOT NULL,
		metadata   TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id, timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_sessions_user ON chat_sessions(user_id, last_activity)`,
}

// Migrate creates the chat tables when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToMigrate, err)
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %v", repository.ErrFailedToMigrate, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToMigrate, err)
	}
	return nil
}
