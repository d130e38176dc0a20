package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/ratelimit"
)

// LoadRecord implements ratelimit.Store.
func (s *Store) LoadRecord(ctx context.Context, key string) (ratelimit.Record, bool, error) {
	var (
		count     int
		lastReset int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT count, last_reset FROM rate_limits WHERE key = ?`, key,
	).Scan(&count, &lastReset)
	if errors.Is(err, sql.ErrNoRows) {
		return ratelimit.Record{}, false, nil
	}
	if err != nil {
		return ratelimit.Record{}, false, err
	}
	return ratelimit.Record{Count: count, LastReset: time.UnixMilli(lastReset).UTC()}, true, nil
}

// SaveRecord implements ratelimit.Store.
func (s *Store) SaveRecord(ctx context.Context, key string, rec ratelimit.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO rate_limits (key, count, last_reset) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET count = excluded.count, last_reset = excluded.last_reset
	`, key, rec.Count, rec.LastReset.UnixMilli())
	return err
}

// SaveMessage implements contact.Archive.
func (s *Store) SaveMessage(ctx context.Context, msg contact.Message) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (id, name, email, subject, body, sender, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, msg.ID, msg.Name, msg.Email, msg.Subject, msg.Body, msg.Sender, msg.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("insert message %s: %w", msg.ID, err)
	}
	return nil
}

// Messages returns the newest messages first.
func (s *Store) Messages(ctx context.Context, limit int) ([]contact.Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, subject, body, sender, created_at
		FROM messages
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []contact.Message
	for rows.Next() {
		var (
			m       contact.Message
			created int64
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.Sender, &created); err != nil {
			return nil, err
		}
		m.CreatedAt = time.Unix(created, 0).UTC()
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) DeleteMessage(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete message %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("message %s: %w", id, ErrNotFound)
	}
	return nil
}
