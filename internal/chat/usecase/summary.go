package usecase

import (
	"context"

	"preinscription-chatbot/internal/chat"
)

// Summary describes the context of a session. Returns ErrSessionNotFound when the
// session is neither in memory nor stored.
func (uc *implUseCase) Summary(ctx context.Context, sessionID string) (chat.SummaryOutput, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return chat.SummaryOutput{}, err
	}
	return uc.summarize(ctx, sessionID)
}

// UpdateAttributes merges attributes into a known session and returns its summary.
func (uc *implUseCase) UpdateAttributes(ctx context.Context, input chat.UpdateAttributesInput) (chat.SummaryOutput, error) {
	sessionID, err := normalizeSessionID(input.SessionID)
	if err != nil {
		return chat.SummaryOutput{}, err
	}
	if len(input.Attributes) == 0 {
		return chat.SummaryOutput{}, chat.ErrEmptyAttributes
	}

	if _, err := uc.summarize(ctx, sessionID); err != nil {
		return chat.SummaryOutput{}, err
	}

	uc.engine.Store().MergeAttributes(sessionID, input.Attributes)
	return uc.summarize(ctx, sessionID)
}

func (uc *implUseCase) summarize(ctx context.Context, sessionID string) (chat.SummaryOutput, error) {
	rec, inMemory := uc.engine.Store().Peek(sessionID)

	sess, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summary GetSession: %v", err)
		return chat.SummaryOutput{}, err
	}
	if sess.ID == 0 && !inMemory {
		return chat.SummaryOutput{}, chat.ErrSessionNotFound
	}

	out := chat.SummaryOutput{
		SessionID:    sessionID,
		CreatedAt:    sess.CreatedAt,
		LastActivity: sess.LastActivity,
	}

	// Built from the snapshot: a second store read could recreate an entry
	// evicted in between.
	if inMemory {
		out.MessageCount = len(rec.History)
		out.LastIntent = rec.LastIntent
		out.Attributes = rec.Attributes
		out.CreatedAt = rec.CreatedAt
	}

	if sess.ID != 0 {
		n, err := uc.repo.CountMessages(ctx, sessionID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Summary CountMessages: %v", err)
			return chat.SummaryOutput{}, err
		}
		out.StoredMessages = n
	}

	return out, nil
}
