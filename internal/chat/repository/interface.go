package repository

import (
	"context"
	"time"

	"preinscription-chatbot/internal/chat"
)

// Repository is the composed interface for the chat domain data store.
type Repository interface {
	SessionRepository
	MessageRepository

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}

// SessionRepository defines data access methods for chat sessions.
type SessionRepository interface {
	// EnsureSession inserts the session when missing and returns the stored row.
	EnsureSession(ctx context.Context, opt EnsureSessionOptions) (chat.Session, error)
	// GetSession returns a zero Session (ID == 0) when not found.
	GetSession(ctx context.Context, sessionID string) (chat.Session, error)
	// ListSessions returns the sessions of a user, most recently active first.
	ListSessions(ctx context.Context, opt ListSessionsOptions) ([]chat.SessionListItem, error)
	TouchSession(ctx context.Context, sessionID string, at time.Time) error
	// DeleteSession removes the session and, by cascade, its messages.
	DeleteSession(ctx context.Context, sessionID string) error
}

// MessageRepository defines data access methods for chat messages.
type MessageRepository interface {
	CreateMessage(ctx context.Context, opt CreateMessageOptions) (chat.Message, error)
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]chat.Message, error)
	CountMessages(ctx context.Context, sessionID string) (int, error)
}
