package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"preinscription-chatbot/internal/chat"
	repo "preinscription-chatbot/internal/chat/repository"
	"preinscription-chatbot/internal/conversation"
)

// attributeName is the context attribute holding the visitor's display name.
const attributeName = "name"

// SendMessage validates the message, lets the engine answer it and records both
// sides of the exchange. Failures of the message log are logged and never keep the
// reply from the user.
func (uc *implUseCase) SendMessage(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.SendMessageOutput{}, chat.ErrEmptyMessage
	}
	if utf8.RuneCountInString(message) > uc.maxMessageLength {
		return chat.SendMessageOutput{}, chat.ErrMessageTooLong
	}

	sessionID := uc.newID()
	if strings.TrimSpace(input.SessionID) != "" {
		id, err := normalizeSessionID(input.SessionID)
		if err != nil {
			return chat.SendMessageOutput{}, err
		}
		sessionID = id
	}

	userID, err := normalizeUserID(input.UserID)
	if err != nil {
		return chat.SendMessageOutput{}, err
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName != "" {
		uc.engine.Store().MergeAttributes(sessionID, map[string]any{attributeName: displayName})
	}

	persisted := true
	if _, err := uc.repo.EnsureSession(ctx, repo.EnsureSessionOptions{SessionID: sessionID, UserID: userID}); err != nil {
		uc.l.Errorf(ctx, "uc.SendMessage EnsureSession: %v", err)
		persisted = false
	}

	if persisted {
		uc.logMessage(ctx, repo.CreateMessageOptions{
			SessionID: sessionID,
			Role:      conversation.RoleUser,
			Content:   message,
			Timestamp: uc.now(),
		})
	}

	reply := uc.engine.HandleMessage(ctx, sessionID, message, displayName)
	answeredAt := uc.now()

	if persisted {
		uc.logMessage(ctx, repo.CreateMessageOptions{
			SessionID: sessionID,
			Role:      conversation.RoleAssistant,
			Content:   reply.Text,
			Timestamp: answeredAt,
			Metadata: map[string]any{
				"intent":   string(reply.Intent),
				"fallback": reply.Fallback,
			},
		})
		if err := uc.repo.TouchSession(ctx, sessionID, answeredAt); err != nil {
			uc.l.Errorf(ctx, "uc.SendMessage TouchSession: %v", err)
		}
	}

	return chat.SendMessageOutput{
		SessionID: sessionID,
		Response:  reply.Text,
		Intent:    reply.Intent,
		Fallback:  reply.Fallback,
		Timestamp: answeredAt,
	}, nil
}

func (uc *implUseCase) logMessage(ctx context.Context, opt repo.CreateMessageOptions) {
	if _, err := uc.repo.CreateMessage(ctx, opt); err != nil {
		uc.l.Errorf(ctx, "uc.SendMessage CreateMessage %s: %v", opt.Role, err)
	}
}
