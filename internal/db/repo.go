package db

import (
	"context"
	"database/sql"

	"doctorai/pkg"
)

// Repository wraps the chat persistence operations over a single Postgres
// database. The caller owns the sql.DB lifecycle.
type Repository struct {
	DB *sql.DB
}

// NewRepository constructs a Repository from an existing sql.DB.
func NewRepository(db *sql.DB) *Repository { return &Repository{DB: db} }

// Append writes the messages of one turn for a session, creating the
// session row when absent. The whole append is one transaction so a turn
// is never half-written.
func (r *Repository) Append(ctx context.Context, sessionID string, msgs []pkg.StoredMessage) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO chat_sessions (session_id) VALUES ($1)
         ON CONFLICT (session_id) DO NOTHING`, sessionID); err != nil {
		return err
	}
	for _, m := range msgs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO chat_messages (session_id, sender, kind, content)
             VALUES ($1, $2, $3, $4)`,
			sessionID, m.Sender, m.Kind, m.Text); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Read returns the stored messages of a session in insertion order. An
// unknown session yields an empty slice, not an error.
func (r *Repository) Read(ctx context.Context, sessionID string) ([]pkg.StoredMessage, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT sender, kind, content
         FROM chat_messages
         WHERE session_id = $1
         ORDER BY id ASC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := []pkg.StoredMessage{}
	for rows.Next() {
		var m pkg.StoredMessage
		if err := rows.Scan(&m.Sender, &m.Kind, &m.Text); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// ListSessions returns all sessions newest-first.
func (r *Repository) ListSessions(ctx context.Context) ([]pkg.SessionInfo, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT session_id, created_at
         FROM chat_sessions
         ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []pkg.SessionInfo{}
	for rows.Next() {
		var s pkg.SessionInfo
		if err := rows.Scan(&s.SessionID, &s.CreatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
