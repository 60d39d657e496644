package chat

import (
	"time"

	"preinscription-chatbot/internal/conversation"
)

// --- Domain Models ---

// Session is a stored conversation.
type Session struct {
	ID           int64
	SessionID    string
	UserID       string // empty for anonymous visitors
	CreatedAt    time.Time
	LastActivity time.Time
	Metadata     map[string]any
}

// SessionListItem is a session together with its stored message count.
type SessionListItem struct {
	Session      Session
	MessageCount int
}

// Message is one stored chat message.
type Message struct {
	ID        int64
	SessionID string
	Role      conversation.Role
	Content   string
	Timestamp time.Time
	Metadata  map[string]any
}

// --- UseCase Inputs ---

type StartSessionInput struct {
	UserID string
}

type ListSessionsInput struct {
	UserID string
	Limit  int
	Offset int
}

type SendMessageInput struct {
	SessionID   string // generated when empty
	UserID      string // owner of a session created on demand
	Message     string
	DisplayName string
}

type UpdateAttributesInput struct {
	SessionID  string
	Attributes map[string]any
}

// --- UseCase Outputs ---

type SendMessageOutput struct {
	SessionID string
	Response  string
	Intent    conversation.Intent
	Fallback  bool
	Timestamp time.Time
}

type ListSessionsOutput struct {
	Sessions []SessionListItem
}

type HistoryOutput struct {
	Session  Session
	Messages []Message
}

type SummaryOutput struct {
	SessionID      string
	MessageCount   int // entries held in the in-memory context
	StoredMessages int // messages in the durable log
	LastIntent     conversation.Intent
	Attributes     map[string]any
	CreatedAt      time.Time
	LastActivity   time.Time
}
