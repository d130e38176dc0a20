// Package ratelimit caps how many contact messages one sender can send per
// window.
//
// The state per sender is a single record of {count, lastReset} kept under a
// storage key. A record whose window has elapsed is reset to zero the next
// time it is read.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	DefaultMax    = 5
	DefaultWindow = 24 * time.Hour

	// KeyPrefix is the fixed storage key records live under.
	KeyPrefix = "messageLog"
)

// ErrLimited is returned once a sender has used up the current window.
var ErrLimited = errors.New("ratelimit: message limit reached")

// Record is the persisted counter of one sender.
type Record struct {
	Count     int       `json:"count"`
	LastReset time.Time `json:"lastReset"`
}

// Store persists records by key.
type Store interface {
	LoadRecord(ctx context.Context, key string) (rec Record, ok bool, err error)
	SaveRecord(ctx context.Context, key string, rec Record) error
}

// Key returns the storage key for a sender id.
func Key(id string) string {
	return KeyPrefix + ":" + id
}

type Limiter struct {
	store  Store
	max    int
	window time.Duration
	now    func() time.Time

	mu sync.Mutex
}

type Option func(*Limiter)

// WithLimit sets the sends allowed per window. Non-positive values keep the
// defaults.
func WithLimit(max int, window time.Duration) Option {
	return func(l *Limiter) {
		if max > 0 {
			l.max = max
		}
		if window > 0 {
			l.window = window
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

func New(store Store, opts ...Option) *Limiter {
	l := &Limiter{
		store:  store,
		max:    DefaultMax,
		window: DefaultWindow,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Max returns the number of sends allowed per window.
func (l *Limiter) Max() int { return l.max }

// Remaining returns how many sends key has left in its window.
func (l *Limiter) Remaining(ctx context.Context, key string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, err := l.current(ctx, key)
	if err != nil {
		return 0, err
	}
	return l.remaining(rec), nil
}

// Reservation is a send counted ahead of delivery. Release gives it back.
type Reservation struct {
	key    string
	window time.Time
}

// Reserve counts one send against key before it happens and returns what is
// left. It fails with ErrLimited without counting if the window is used up.
// Concurrent callers never get more than the limit between them.
func (l *Limiter) Reserve(ctx context.Context, key string) (Reservation, int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, err := l.current(ctx, key)
	if err != nil {
		return Reservation{}, 0, err
	}
	if rec.Count >= l.max {
		return Reservation{}, 0, ErrLimited
	}
	rec.Count++
	if err := l.store.SaveRecord(ctx, key, rec); err != nil {
		return Reservation{}, 0, fmt.Errorf("save record %s: %w", key, err)
	}
	return Reservation{key: key, window: rec.LastReset}, l.remaining(rec), nil
}

// Release refunds a reservation whose send did not happen. A reservation from
// a window that has since been reset refunds nothing.
func (l *Limiter) Release(ctx context.Context, r Reservation) error {
	if r.key == "" {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok, err := l.store.LoadRecord(ctx, r.key)
	if err != nil {
		return fmt.Errorf("load record %s: %w", r.key, err)
	}
	// Stores may keep timestamps at millisecond precision.
	if !ok || rec.LastReset.UnixMilli() != r.window.UnixMilli() || rec.Count == 0 {
		return nil
	}
	rec.Count--
	if err := l.store.SaveRecord(ctx, r.key, rec); err != nil {
		return fmt.Errorf("save record %s: %w", r.key, err)
	}
	return nil
}

// current loads the record for key, creating it or restarting an elapsed
// window as needed.
func (l *Limiter) current(ctx context.Context, key string) (Record, error) {
	rec, ok, err := l.store.LoadRecord(ctx, key)
	if err != nil {
		return Record{}, fmt.Errorf("load record %s: %w", key, err)
	}
	now := l.now()
	if ok && now.Sub(rec.LastReset) < l.window {
		return rec, nil
	}
	rec = Record{Count: 0, LastReset: now}
	if err := l.store.SaveRecord(ctx, key, rec); err != nil {
		return Record{}, fmt.Errorf("save record %s: %w", key, err)
	}
	return rec, nil
}

func (l *Limiter) remaining(rec Record) int {
	return max(l.max-rec.Count, 0)
}

// MemoryStore keeps records in a map. It is used when no database is
// configured.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

func (m *MemoryStore) LoadRecord(_ context.Context, key string) (Record, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[key]
	return rec, ok, nil
}

func (m *MemoryStore) SaveRecord(_ context.Context, key string, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = rec
	return nil
}
