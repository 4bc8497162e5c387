package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/lib/pq"
)

// Notifier bridges Postgres LISTEN/NOTIFY to the transcript stream. Notify
// fires after a turn is appended; Listen feeds session IDs to SSE clients.
type Notifier struct {
	DB      *sql.DB
	ConnStr string
	Channel string
	Logger  *slog.Logger
}

// NewNotifier constructs a Notifier. connStr must be the same DSN the pool
// was opened with; pq.Listener needs its own connection.
func NewNotifier(db *sql.DB, connStr, channel string, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{DB: db, ConnStr: connStr, Channel: channel, Logger: logger}
}

// Notify publishes a session ID on the channel.
func (n *Notifier) Notify(ctx context.Context, sessionID string) error {
	_, err := n.DB.ExecContext(ctx,
		fmt.Sprintf("NOTIFY %s, %s", pq.QuoteIdentifier(n.Channel), pq.QuoteLiteral(sessionID)))
	return err
}

// Listen yields session IDs as they are published until ctx is cancelled.
// The returned channel is closed on shutdown.
func (n *Notifier) Listen(ctx context.Context) (<-chan string, error) {
	listener := pq.NewListener(n.ConnStr, time.Second, time.Minute, func(_ pq.ListenerEventType, err error) {
		if err != nil {
			n.Logger.Warn("listener event", "error", err)
		}
	})
	if err := listener.Listen(n.Channel); err != nil {
		_ = listener.Close()
		return nil, err
	}

	ch := make(chan string)
	go func() {
		defer func() {
			_ = listener.Close()
			close(ch)
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case note, ok := <-listener.Notify:
				if !ok {
					return
				}
				if note == nil {
					// nil means the connection was re-established.
					continue
				}
				select {
				case ch <- note.Extra:
				case <-ctx.Done():
					return
				}
			case <-time.After(90 * time.Second):
				go func() { _ = listener.Ping() }()
			}
		}
	}()
	return ch, nil
}
