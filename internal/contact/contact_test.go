package contact

import (
	"context"
	"errors"
	"io"
	"net/smtp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/ratelimit"
)

func validMessage() Message {
	return Message{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Project Inquiry",
		Body:    "Hello there.",
	}
}

func TestMessage_Validate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		edit  func(*Message)
		field string
	}{
		{"valid", func(*Message) {}, ""},
		{"missing name", func(m *Message) { m.Name = "" }, "name"},
		{"missing email", func(m *Message) { m.Email = "" }, "email"},
		{"bad email", func(m *Message) { m.Email = "not-an-address" }, "email"},
		{"display name email", func(m *Message) { m.Email = "Ada <ada@example.com>" }, "email"},
		{"missing subject", func(m *Message) { m.Subject = "" }, "subject"},
		{"header injection", func(m *Message) { m.Subject = "hi\r\nBcc: x@example.com" }, "subject"},
		{"missing message", func(m *Message) { m.Body = "" }, "message"},
		{"long message", func(m *Message) { m.Body = strings.Repeat("a", maxBodyLen+1) }, "message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMessage()
			tt.edit(&m)
			err := m.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidMessage)
			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestMessage_Normalize(t *testing.T) {
	t.Parallel()
	m := Message{Name: "  Ada ", Email: " ada@example.com\n", Subject: "\tHi", Body: " body "}
	m.Normalize()
	assert.Equal(t, Message{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Body: "body"}, m)
}

type sentMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func TestSMTPRelay_Send(t *testing.T) {
	t.Parallel()
	cfg := SMTPConfig{Host: "smtp.example.com", Port: "587", User: "site@example.com", Password: "pw", To: "me@example.com"}
	r := NewSMTPRelay(cfg)
	var got sentMail
	r.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		got = sentMail{addr, from, to, string(msg)}
		return nil
	}

	msg := validMessage()
	msg.ID = "id-1"
	require.NoError(t, r.Send(context.Background(), msg))

	assert.Equal(t, "smtp.example.com:587", got.addr)
	assert.Equal(t, "site@example.com", got.from)
	assert.Equal(t, []string{"me@example.com"}, got.to)
	assert.Contains(t, got.msg, "Subject: Portfolio Contact: Project Inquiry\r\n")
	assert.Contains(t, got.msg, "Reply-To: ada@example.com\r\n")
	assert.Contains(t, got.msg, "Name: Ada Lovelace\r\n")
}

func TestSMTPRelay_NotConfigured(t *testing.T) {
	t.Parallel()
	r := NewSMTPRelay(SMTPConfig{Host: "smtp.example.com", Port: "587", To: "me@example.com"})
	r.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("should not send")
		return nil
	}
	assert.ErrorIs(t, r.Send(context.Background(), validMessage()), ErrRelayNotConfigured)
}

type fakeRelay struct {
	err  error
	sent []Message
}

func (f *fakeRelay) Send(_ context.Context, msg Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeArchive struct {
	saved []Message
	err   error
}

func (f *fakeArchive) SaveMessage(_ context.Context, msg Message) error {
	f.saved = append(f.saved, msg)
	return f.err
}

var now = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func newTestService(relay Relay, archive Archive) *Service {
	clock := func() time.Time { return now }
	limiter := ratelimit.New(ratelimit.NewMemoryStore(), ratelimit.WithClock(clock))
	return NewService(relay, limiter,
		WithArchive(archive),
		WithLogger(log.New(io.Discard)),
		WithClock(clock),
	)
}

func TestService_Submit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	relay := &fakeRelay{}
	archive := &fakeArchive{}
	s := newTestService(relay, archive)

	msg, remaining, err := s.Submit(ctx, "sender-a", validMessage())
	require.NoError(t, err)
	assert.Equal(t, 4, remaining)
	_, err = uuid.Parse(msg.ID)
	assert.NoError(t, err)
	assert.Equal(t, now, msg.CreatedAt)
	assert.Equal(t, "sender-a", msg.Sender)
	require.Len(t, relay.sent, 1)
	require.Len(t, archive.saved, 1)
	assert.Equal(t, msg.ID, archive.saved[0].ID)
}

func TestService_RateLimit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	relay := &fakeRelay{}
	s := newTestService(relay, nil)

	for i := 0; i < 5; i++ {
		_, _, err := s.Submit(ctx, "sender-a", validMessage())
		require.NoError(t, err)
	}
	_, _, err := s.Submit(ctx, "sender-a", validMessage())
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Len(t, relay.sent, 5)

	n, err := s.Remaining(ctx, "sender-b")
	require.NoError(t, err)
	assert.Equal(t, s.Limit(), n)
}

func TestService_FailedRelayDoesNotCount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	relay := &fakeRelay{err: ErrRelayNotConfigured}
	archive := &fakeArchive{}
	s := newTestService(relay, archive)

	_, _, err := s.Submit(ctx, "sender-a", validMessage())
	assert.ErrorIs(t, err, ErrRelayNotConfigured)
	assert.Empty(t, archive.saved)

	n, err := s.Remaining(ctx, "sender-a")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestService_InvalidMessageDoesNotCount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	relay := &fakeRelay{}
	s := newTestService(relay, nil)

	m := validMessage()
	m.Email = "nope"
	_, _, err := s.Submit(ctx, "sender-a", m)
	assert.ErrorIs(t, err, ErrInvalidMessage)
	assert.Empty(t, relay.sent)
	n, _ := s.Remaining(ctx, "sender-a")
	assert.Equal(t, 5, n)
}

func TestService_ArchiveFailureIsNotFatal(t *testing.T) {
	t.Parallel()
	s := newTestService(&fakeRelay{}, &fakeArchive{err: errors.New("db locked")})
	_, remaining, err := s.Submit(context.Background(), "sender-a", validMessage())
	require.NoError(t, err)
	assert.Equal(t, 4, remaining)
}

// gatedRelay holds every Send until open is closed.
type gatedRelay struct {
	open    chan struct{}
	entered chan struct{}

	mu   sync.Mutex
	sent []Message
}

func (g *gatedRelay) Send(_ context.Context, msg Message) error {
	g.entered <- struct{}{}
	<-g.open
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sent = append(g.sent, msg)
	return nil
}

func TestService_ConcurrentSubmitsRespectLimit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	relay := &gatedRelay{open: make(chan struct{}), entered: make(chan struct{}, 2)}
	archive := &fakeArchive{}
	clock := func() time.Time { return now }
	limiter := ratelimit.New(ratelimit.NewMemoryStore(), ratelimit.WithLimit(1, time.Hour), ratelimit.WithClock(clock))
	s := NewService(relay, limiter, WithArchive(archive), WithLogger(log.New(io.Discard)), WithClock(clock))

	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, _, err := s.Submit(ctx, "sender-a", validMessage())
			results <- err
		}()
	}

	// One submission holds the only send inside the relay; the other is
	// turned away before it reaches the relay.
	select {
	case <-relay.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("no submission reached the relay")
	}
	select {
	case err := <-results:
		assert.ErrorIs(t, err, ErrRateLimited)
	case <-time.After(2 * time.Second):
		t.Fatal("second submission was not rejected while the first was in flight")
	}

	close(relay.open)
	select {
	case err := <-results:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("in-flight submission did not finish")
	}

	assert.Len(t, relay.sent, 1)
	assert.Len(t, archive.saved, 1)
	assert.Empty(t, relay.entered)
}

func TestService_FailedRelayReleasesReservedSend(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	relay := &fakeRelay{}
	s := newTestService(relay, nil)

	for i := 0; i < 4; i++ {
		_, _, err := s.Submit(ctx, "sender-a", validMessage())
		require.NoError(t, err)
	}
	relay.err = errors.New("smtp down")
	_, _, err := s.Submit(ctx, "sender-a", validMessage())
	require.Error(t, err)

	relay.err = nil
	_, remaining, err := s.Submit(ctx, "sender-a", validMessage())
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
	assert.Len(t, relay.sent, 5)
}
