package usecase

import (
	"context"

	"preinscription-chatbot/internal/chat"
	repo "preinscription-chatbot/internal/chat/repository"
)

// StartSession opens a new conversation with a fresh id.
func (uc *implUseCase) StartSession(ctx context.Context, input chat.StartSessionInput) (chat.Session, error) {
	userID, err := normalizeUserID(input.UserID)
	if err != nil {
		return chat.Session{}, err
	}
	sessionID := uc.newID()

	sess, err := uc.repo.EnsureSession(ctx, repo.EnsureSessionOptions{
		SessionID: sessionID,
		UserID:    userID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.StartSession EnsureSession: %v", err)
		return chat.Session{}, chat.ErrSessionCreateFail
	}

	uc.engine.Store().GetOrCreate(sessionID)
	uc.l.Infof(ctx, "uc.StartSession: session %s started", sessionID)
	return sess, nil
}

// ListSessions returns the stored sessions of a user, most recently active first.
func (uc *implUseCase) ListSessions(ctx context.Context, input chat.ListSessionsInput) (chat.ListSessionsOutput, error) {
	userID, err := normalizeUserID(input.UserID)
	if err != nil {
		return chat.ListSessionsOutput{}, err
	}
	if userID == "" {
		return chat.ListSessionsOutput{}, chat.ErrInvalidUserID
	}

	limit, offset := input.Limit, input.Offset
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	items, err := uc.repo.ListSessions(ctx, repo.ListSessionsOptions{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListSessions: %v", err)
		return chat.ListSessionsOutput{}, err
	}

	return chat.ListSessionsOutput{Sessions: items}, nil
}

// History returns the stored messages of a session. Returns ErrSessionNotFound when unknown.
func (uc *implUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return chat.HistoryOutput{}, err
	}

	sess, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.History GetSession: %v", err)
		return chat.HistoryOutput{}, err
	}
	if sess.ID == 0 {
		return chat.HistoryOutput{}, chat.ErrSessionNotFound
	}

	msgs, err := uc.repo.ListMessages(ctx, repo.ListMessagesOptions{SessionID: sessionID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.History ListMessages: %v", err)
		return chat.HistoryOutput{}, err
	}

	return chat.HistoryOutput{Session: sess, Messages: msgs}, nil
}

// DeleteSession drops the in-memory context and the stored rows of a session.
// Returns ErrSessionNotFound when neither exists.
func (uc *implUseCase) DeleteSession(ctx context.Context, sessionID string) error {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return err
	}

	// The in-memory context is only dropped once the stored rows are known to be gone.
	sess, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteSession GetSession: %v", err)
		return err
	}

	store := uc.engine.Store()
	if sess.ID == 0 {
		if _, inMemory := store.Peek(sessionID); !inMemory {
			return chat.ErrSessionNotFound
		}
		store.Clear(sessionID)
		return nil
	}

	if err := uc.repo.DeleteSession(ctx, sessionID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteSession DeleteSession: %v", err)
		return err
	}
	store.Clear(sessionID)

	uc.l.Infof(ctx, "uc.DeleteSession: session %s deleted", sessionID)
	return nil
}
