package repository

import (
	"time"

	"preinscription-chatbot/internal/conversation"
)

// EnsureSessionOptions holds parameters for creating a session row.
type EnsureSessionOptions struct {
	SessionID string
	UserID    string
	Metadata  map[string]any
}

// ListSessionsOptions holds filter and pagination parameters for listing sessions.
type ListSessionsOptions struct {
	UserID string
	Limit  int // 0 means no limit
	Offset int
}

// CreateMessageOptions holds parameters for inserting a message.
type CreateMessageOptions struct {
	SessionID string
	Role      conversation.Role
	Content   string
	Timestamp time.Time // defaults to now
	Metadata  map[string]any
}

// ListMessagesOptions holds filter and pagination parameters for listing messages.
type ListMessagesOptions struct {
	SessionID string
	Limit     int // 0 means no limit
	Offset    int
}
