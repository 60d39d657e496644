package usecase

import (
	"strings"

	"github.com/google/uuid"

	"preinscription-chatbot/internal/chat"
)

func newSessionID() string {
	return uuid.NewString()
}

// normalizeSessionID trims id and rejects ids that cannot be safely stored or logged.
func normalizeSessionID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > maxSessionIDLength || strings.ContainsAny(id, "\r\n\t") {
		return "", chat.ErrInvalidSessionID
	}
	return id, nil
}

// normalizeUserID trims id. Empty ids are allowed and mean an anonymous visitor.
func normalizeUserID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if len(id) > maxSessionIDLength || strings.ContainsAny(id, "\r\n\t") {
		return "", chat.ErrInvalidUserID
	}
	return id, nil
}
