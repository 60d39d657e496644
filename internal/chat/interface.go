package chat

import "context"

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// StartSession opens a new conversation and returns its id.
	StartSession(ctx context.Context, input StartSessionInput) (Session, error)

	// SendMessage answers one user message. A reply is produced even when the model
	// or the message log is unavailable.
	SendMessage(ctx context.Context, input SendMessageInput) (SendMessageOutput, error)

	// ListSessions returns the sessions of a user, most recently active first.
	ListSessions(ctx context.Context, input ListSessionsInput) (ListSessionsOutput, error)

	// History returns the stored messages of a session in chronological order.
	History(ctx context.Context, sessionID string) (HistoryOutput, error)

	// DeleteSession removes the stored messages and the in-memory context of a session.
	DeleteSession(ctx context.Context, sessionID string) error

	// Summary describes the current context of a session.
	Summary(ctx context.Context, sessionID string) (SummaryOutput, error)

	// UpdateAttributes merges user attributes into the session context.
	UpdateAttributes(ctx context.Context, input UpdateAttributesInput) (SummaryOutput, error)
}
