package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"preinscription-chatbot/internal/chat"
	repo "preinscription-chatbot/internal/chat/repository"
)

const sessionColumns = `id, session_id, user_id, created_at, last_activity, metadata`

// EnsureSession inserts the session row unless it already exists and returns the stored row.
func (r *implRepository) EnsureSession(ctx context.Context, opt repo.EnsureSessionOptions) (chat.Session, error) {
	const query = `
		INSERT INTO chat_sessions (session_id, user_id, created_at, last_activity, metadata)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO NOTHING`

	meta, err := encodeMetadata(opt.Metadata)
	if err != nil {
		r.l.Errorf(ctx, "%s encode metadata: %v", r.dsn("EnsureSession"), err)
		return chat.Session{}, repo.ErrFailedToInsert
	}

	now := toMillis(time.Now())
	userID := sql.NullString{String: opt.UserID, Valid: opt.UserID != ""}
	if _, err := r.db.ExecContext(ctx, query, opt.SessionID, userID, now, now, meta); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("EnsureSession"), err)
		return chat.Session{}, repo.ErrFailedToInsert
	}

	sess, err := r.GetSession(ctx, opt.SessionID)
	if err != nil {
		return chat.Session{}, err
	}
	if sess.ID == 0 {
		r.l.Errorf(ctx, "%s: session %s missing after insert", r.dsn("EnsureSession"), opt.SessionID)
		return chat.Session{}, repo.ErrFailedToInsert
	}
	return sess, nil
}

// GetSession returns zero-value Session (ID == 0) when not found.
func (r *implRepository) GetSession(ctx context.Context, sessionID string) (chat.Session, error) {
	const query = `SELECT ` + sessionColumns + ` FROM chat_sessions WHERE session_id = ? LIMIT 1`

	var (
		sess         chat.Session
		userID, meta sql.NullString
		created, act int64
	)
	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&sess.ID, &sess.SessionID, &userID, &created, &act, &meta)
	if errors.Is(err, sql.ErrNoRows) {
		return chat.Session{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSession"), err)
		return chat.Session{}, repo.ErrFailedToGet
	}

	sess.UserID = userID.String
	sess.CreatedAt = fromMillis(created)
	sess.LastActivity = fromMillis(act)
	sess.Metadata = decodeMetadata(meta)
	return sess, nil
}

// TouchSession records activity on the session.
func (r *implRepository) TouchSession(ctx context.Context, sessionID string, at time.Time) error {
	const query = `UPDATE chat_sessions SET last_activity = ? WHERE session_id = ?`
	if _, err := r.db.ExecContext(ctx, query, toMillis(at), sessionID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TouchSession"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteSession removes the session row; messages follow through ON DELETE CASCADE.
func (r *implRepository) DeleteSession(ctx context.Context, sessionID string) error {
	const query = `DELETE FROM chat_sessions WHERE session_id = ?`
	if _, err := r.db.ExecContext(ctx, query, sessionID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSession"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ListSessions returns the sessions owned by opt.UserID with their message count,
// most recently active first.
func (r *implRepository) ListSessions(ctx context.Context, opt repo.ListSessionsOptions) ([]chat.SessionListItem, error) {
	query := `
		SELECT cs.id, cs.session_id, cs.user_id, cs.created_at, cs.last_activity, cs.metadata, COUNT(m.id)
		FROM chat_sessions cs
		LEFT JOIN messages m ON m.session_id = cs.session_id
		WHERE cs.user_id = ?
		GROUP BY cs.id
		ORDER BY cs.last_activity DESC, cs.id DESC`
	args := []any{opt.UserID}
	if opt.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, opt.Limit, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSessions"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	items := make([]chat.SessionListItem, 0)
	for rows.Next() {
		var (
			it           chat.SessionListItem
			userID, meta sql.NullString
			created, act int64
		)
		if err := rows.Scan(&it.Session.ID, &it.Session.SessionID, &userID, &created, &act, &meta, &it.MessageCount); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListSessions"), err)
			return nil, repo.ErrFailedToList
		}
		it.Session.UserID = userID.String
		it.Session.CreatedAt = fromMillis(created)
		it.Session.LastActivity = fromMillis(act)
		it.Session.Metadata = decodeMetadata(meta)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListSessions"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}
