package store

import (
	"context"
	"fmt"
	"time"
)

const day = 24 * time.Hour

// Visit is one tracked page view. The client address is stored hashed only.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type PathStat struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

type DayCount struct {
	Day    time.Time `json:"day"`
	Visits int64     `json:"visits"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64      `json:"total_visitors"`
	UniqueVisitors   int64      `json:"unique_visitors"`
	VisitorsToday    int64      `json:"visitors_today"`
	VisitorsThisWeek int64      `json:"visitors_this_week"`
	TotalMessages    int64      `json:"total_messages"`
	MessagesToday    int64      `json:"messages_today"`
	LimitedSenders   int64      `json:"limited_senders"`
	TopPaths         []PathStat `json:"top_paths"`
	RecentVisitors   []Visit    `json:"recent_visitors"`
}

func (s *Store) RecordVisit(ctx context.Context, v Visit) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, visited_at)
		VALUES (?, ?, ?, ?)
	`, v.HashedIP, v.UserAgent, v.Path, v.Timestamp.Unix())
	if err != nil {
		return fmt.Errorf("insert visit: %w", err)
	}
	return nil
}

// RecentVisits returns the newest visits first.
func (s *Store) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, visited_at
		FROM visitors
		ORDER BY visited_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Visit
	for rows.Next() {
		var (
			v  Visit
			ts int64
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, err
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		out = append(out, v)
	}
	return out, rows.Err()
}

// CleanupVisits deletes visits older than cutoff and returns how many went.
func (s *Store) CleanupVisits(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE visited_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("cleanup visitors: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		s.logger.Info("privacy cleanup", "removed", n, "before", cutoff.Format(time.DateOnly))
	}
	return n, nil
}

// VisitsPerDay counts visits for each of the last days UTC days ending with
// the day of now. Days without visits are reported as zero.
func (s *Store) VisitsPerDay(ctx context.Context, now time.Time, days int) ([]DayCount, error) {
	if days <= 0 {
		return nil, nil
	}
	first := now.UTC().Truncate(day).Add(-time.Duration(days-1) * day)

	rows, err := s.db.QueryContext(ctx, `
		SELECT visited_at / 86400 AS d, COUNT(*)
		FROM visitors
		WHERE visited_at >= ?
		GROUP BY d
	`, first.Unix())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int64]int64)
	for rows.Next() {
		var d, n int64
		if err := rows.Scan(&d, &n); err != nil {
			return nil, err
		}
		counts[d] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]DayCount, days)
	for i := range out {
		t := first.Add(time.Duration(i) * day)
		out[i] = DayCount{Day: t, Visits: counts[t.Unix()/86400]}
	}
	return out, nil
}

// Stats gathers the dashboard numbers as of now. LimitedSenders counts rate
// limit records that are used up within window.
func (s *Store) Stats(ctx context.Context, now time.Time, maxPerWindow int, window time.Duration) (*Stats, error) {
	stats := &Stats{}
	today := now.UTC().Truncate(day).Unix()
	weekAgo := now.Add(-7 * day).Unix()

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{today}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{weekAgo}},
		{&stats.TotalMessages, `SELECT COUNT(*) FROM messages`, nil},
		{&stats.MessagesToday, `SELECT COUNT(*) FROM messages WHERE created_at >= ?`, []any{today}},
		{&stats.LimitedSenders, `SELECT COUNT(*) FROM rate_limits WHERE count >= ? AND last_reset > ?`,
			[]any{maxPerWindow, now.Add(-window).UnixMilli()}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	var err error
	if stats.TopPaths, err = s.topPaths(ctx, 10); err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	stats.RecentVisitors, err = s.RecentVisits(ctx, 50)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	return stats, nil
}

func (s *Store) topPaths(ctx context.Context, limit int) ([]PathStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS n
		FROM visitors
		GROUP BY path
		ORDER BY n DESC, path
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PathStat
	for rows.Next() {
		var p PathStat
		if err := rows.Scan(&p.Path, &p.Visits); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
