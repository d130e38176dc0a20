// Package contact validates, relays and archives messages sent through the
// site's contact form.
package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

const (
	maxNameLen    = 200
	maxSubjectLen = 200
	maxBodyLen    = 5000
)

var (
	// ErrInvalidMessage wraps every validation failure.
	ErrInvalidMessage = errors.New("contact: invalid message")

	// ErrRelayNotConfigured is returned by a relay that lacks credentials.
	ErrRelayNotConfigured = errors.New("contact: relay not configured")
)

// Message is one contact form submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"message"`
	Sender    string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// FieldError names the form field that failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidMessage }

// Normalize trims surrounding whitespace from every field.
func (m *Message) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Body = strings.TrimSpace(m.Body)
}

// Validate reports the first field that is missing or malformed.
func (m Message) Validate() error {
	switch {
	case m.Name == "":
		return &FieldError{Field: "name", Reason: "required"}
	case len(m.Name) > maxNameLen:
		return &FieldError{Field: "name", Reason: "too long"}
	case m.Email == "":
		return &FieldError{Field: "email", Reason: "required"}
	case m.Subject == "":
		return &FieldError{Field: "subject", Reason: "required"}
	case len(m.Subject) > maxSubjectLen:
		return &FieldError{Field: "subject", Reason: "too long"}
	case m.Body == "":
		return &FieldError{Field: "message", Reason: "required"}
	case len(m.Body) > maxBodyLen:
		return &FieldError{Field: "message", Reason: "too long"}
	}

	addr, err := mail.ParseAddress(m.Email)
	if err != nil || addr.Address != m.Email {
		return &FieldError{Field: "email", Reason: "not a valid address"}
	}
	if strings.ContainsAny(m.Name, "\r\n") {
		return &FieldError{Field: "name", Reason: "contains line breaks"}
	}
	if strings.ContainsAny(m.Subject, "\r\n") {
		return &FieldError{Field: "subject", Reason: "contains line breaks"}
	}
	return nil
}
