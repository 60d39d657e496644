package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyMessage      = errors.New("message is empty")
	ErrMessageTooLong    = errors.New("message is too long")
	ErrInvalidSessionID  = errors.New("invalid session id")
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrSessionNotFound   = errors.New("session not found")
	ErrEmptyAttributes   = errors.New("attributes are empty")
	ErrSessionCreateFail = errors.New("failed to create session")
)
