package sqlite

import (
	"context"
	"database/sql"
	"time"

	"preinscription-chatbot/internal/chat"
	repo "preinscription-chatbot/internal/chat/repository"
	"preinscription-chatbot/internal/conversation"
)

// CreateMessage inserts a message row and returns the created entity.
func (r *implRepository) CreateMessage(ctx context.Context, opt repo.CreateMessageOptions) (chat.Message, error) {
	const query = `
		INSERT INTO messages (session_id, role, content, timestamp, metadata)
		VALUES (?, ?, ?, ?, ?)`

	ts := opt.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	meta, err := encodeMetadata(opt.Metadata)
	if err != nil {
		r.l.Errorf(ctx, "%s encode metadata: %v", r.dsn("CreateMessage"), err)
		return chat.Message{}, repo.ErrFailedToInsert
	}

	res, err := r.db.ExecContext(ctx, query, opt.SessionID, string(opt.Role), opt.Content, toMillis(ts), meta)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMessage"), err)
		return chat.Message{}, repo.ErrFailedToInsert
	}
	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s last insert id: %v", r.dsn("CreateMessage"), err)
		return chat.Message{}, repo.ErrFailedToInsert
	}

	return chat.Message{
		ID:        id,
		SessionID: opt.SessionID,
		Role:      opt.Role,
		Content:   opt.Content,
		Timestamp: fromMillis(toMillis(ts)),
		Metadata:  opt.Metadata,
	}, nil
}

// ListMessages returns the messages of a session oldest first.
func (r *implRepository) ListMessages(ctx context.Context, opt repo.ListMessagesOptions) ([]chat.Message, error) {
	query := `
		SELECT id, session_id, role, content, timestamp, metadata
		FROM messages
		WHERE session_id = ?
		ORDER BY timestamp ASC, id ASC`
	args := []any{opt.SessionID}
	if opt.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, opt.Limit, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	msgs := make([]chat.Message, 0)
	for rows.Next() {
		var (
			m    chat.Message
			role string
			ts   int64
			meta sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.SessionID, &role, &m.Content, &ts, &meta); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMessages"), err)
			return nil, repo.ErrFailedToList
		}
		m.Role = conversation.Role(role)
		m.Timestamp = fromMillis(ts)
		m.Metadata = decodeMetadata(meta)
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToList
	}
	return msgs, nil
}

// CountMessages returns how many messages are stored for the session.
func (r *implRepository) CountMessages(ctx context.Context, sessionID string) (int, error) {
	const query = `SELECT COUNT(*) FROM messages WHERE session_id = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountMessages"), err)
		return 0, repo.ErrFailedToGet
	}
	return n, nil
}
