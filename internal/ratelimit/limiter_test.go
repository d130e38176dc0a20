package ratelimit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(store Store) (*Limiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	return New(store, WithClock(clock.now)), clock
}

func TestLimiter_FiveSendsPerWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	l, _ := newTestLimiter(NewMemoryStore())
	key := Key("abc")

	n, err := l.Remaining(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, DefaultMax, n)

	for want := DefaultMax - 1; want >= 0; want-- {
		_, n, err := l.Reserve(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}

	_, _, err = l.Reserve(ctx, key)
	assert.ErrorIs(t, err, ErrLimited)
	n, err = l.Remaining(ctx, key)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLimiter_WindowReset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()
	l, clock := newTestLimiter(store)
	key := Key("abc")

	for i := 0; i < DefaultMax; i++ {
		_, _, err := l.Reserve(ctx, key)
		require.NoError(t, err)
	}

	clock.advance(DefaultWindow - time.Minute)
	_, _, err := l.Reserve(ctx, key)
	assert.ErrorIs(t, err, ErrLimited)

	clock.advance(time.Minute)
	n, err := l.Remaining(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, DefaultMax, n)
	rec, ok, _ := store.LoadRecord(ctx, key)
	require.True(t, ok)
	assert.Equal(t, 0, rec.Count)
	assert.Equal(t, clock.t, rec.LastReset)

	_, n, err = l.Reserve(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, DefaultMax-1, n)
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	l, _ := newTestLimiter(NewMemoryStore())
	for i := 0; i < DefaultMax; i++ {
		_, _, err := l.Reserve(ctx, Key("a"))
		require.NoError(t, err)
	}
	_, _, err := l.Reserve(ctx, Key("a"))
	assert.ErrorIs(t, err, ErrLimited)
	_, _, err = l.Reserve(ctx, Key("b"))
	assert.NoError(t, err)
}

func TestLimiter_CustomLimit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clock := &fakeClock{t: time.Unix(0, 0)}
	l := New(NewMemoryStore(), WithLimit(2, time.Hour), WithClock(clock.now))
	assert.Equal(t, 2, l.Max())

	_, _, _ = l.Reserve(ctx, "k")
	_, _, _ = l.Reserve(ctx, "k")
	_, _, err := l.Reserve(ctx, "k")
	assert.ErrorIs(t, err, ErrLimited)
	clock.advance(time.Hour)
	_, _, err = l.Reserve(ctx, "k")
	assert.NoError(t, err)
}

func TestLimiter_ReleaseRefundsSend(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	l, _ := newTestLimiter(NewMemoryStore())
	key := Key("abc")

	res, n, err := l.Reserve(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, DefaultMax-1, n)

	require.NoError(t, l.Release(ctx, res))
	n, err = l.Remaining(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, DefaultMax, n)

	// A second release of the same reservation cannot push the count below zero.
	require.NoError(t, l.Release(ctx, res))
	n, err = l.Remaining(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, DefaultMax, n)

	assert.NoError(t, l.Release(ctx, Reservation{}))
}

func TestLimiter_ReleaseAfterResetIsNoop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	l, clock := newTestLimiter(NewMemoryStore())
	key := Key("abc")

	res, _, err := l.Reserve(ctx, key)
	require.NoError(t, err)
	clock.advance(DefaultWindow)
	_, _, err = l.Reserve(ctx, key)
	require.NoError(t, err)

	require.NoError(t, l.Release(ctx, res))
	n, err := l.Remaining(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, DefaultMax-1, n)
}

func TestLimiter_ConcurrentReserveNeverExceedsLimit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	l, _ := newTestLimiter(NewMemoryStore())
	key := Key("abc")

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted int
	)
	for i := 0; i < 4*DefaultMax; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := l.Reserve(ctx, key); err == nil {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, DefaultMax, granted)
}

type brokenStore struct{}

var errDisk = errors.New("disk on fire")

func (brokenStore) LoadRecord(context.Context, string) (Record, bool, error) {
	return Record{}, false, errDisk
}
func (brokenStore) SaveRecord(context.Context, string, Record) error { return errDisk }

func TestLimiter_StoreErrors(t *testing.T) {
	t.Parallel()
	l, _ := newTestLimiter(brokenStore{})
	_, err := l.Remaining(context.Background(), Key("x"))
	assert.ErrorIs(t, err, errDisk)
	assert.NotErrorIs(t, err, ErrLimited)
}

func TestKey(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "messageLog:deadbeef", Key("deadbeef"))
}
