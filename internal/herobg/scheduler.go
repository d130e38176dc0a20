package herobg

import (
	"sync"
	"time"
)

// FrameHandle identifies one pending frame request. Zero is never issued.
type FrameHandle uint64

// FrameScheduler is the request/cancel pair of a display-refresh source.
// Each request fires at most once.
type FrameScheduler interface {
	RequestFrame(fn func(now time.Time)) FrameHandle
	CancelFrame(h FrameHandle)
}

// TickerScheduler fires each request once after a fixed frame interval.
type TickerScheduler struct {
	interval time.Duration

	mu     sync.Mutex
	next   FrameHandle
	timers map[FrameHandle]*time.Timer
}

var _ FrameScheduler = (*TickerScheduler)(nil)

// NewTickerScheduler paces frames at fps, defaulting to 60.
func NewTickerScheduler(fps int) *TickerScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &TickerScheduler{
		interval: time.Second / time.Duration(fps),
		timers:   make(map[FrameHandle]*time.Timer),
	}
}

func (s *TickerScheduler) RequestFrame(fn func(now time.Time)) FrameHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	h := s.next
	s.timers[h] = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		_, pending := s.timers[h]
		delete(s.timers, h)
		s.mu.Unlock()
		if pending {
			fn(time.Now())
		}
	})
	return h
}

func (s *TickerScheduler) CancelFrame(h FrameHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[h]; ok {
		t.Stop()
		delete(s.timers, h)
	}
}

// Pending returns the number of requests that have neither fired nor been
// cancelled.
func (s *TickerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
