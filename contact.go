package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/i18n"
)

type contactResult struct {
	T             *i18n.Text
	Message       string
	Detail        string
	RemainingText string
	Limited       bool
}

// handleContact answers the HTMX form post with a result fragment. Every
// outcome is a 200 since HTMX only swaps 2xx responses.
func (s *server) handleContact(c *gin.Context) {
	t := i18n.For(s.language(c))
	form := t.Contact.Form

	msg := contact.Message{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Subject: c.PostForm("subject"),
		Body:    c.PostForm("message"),
	}

	_, remaining, err := s.contact.Submit(c.Request.Context(), s.senderID(c), msg)
	switch {
	case err == nil:
		c.HTML(http.StatusOK, "contact-success.html", contactResult{
			T:             t,
			Message:       form.Success,
			RemainingText: form.RemainingMessages(remaining),
			Limited:       remaining == 0,
		})
	case errors.Is(err, contact.ErrInvalidMessage):
		c.HTML(http.StatusOK, "contact-error.html", contactResult{
			T:       t,
			Message: form.Invalid,
			Detail:  err.Error(),
		})
	case errors.Is(err, contact.ErrRateLimited):
		c.HTML(http.StatusOK, "contact-error.html", contactResult{
			T:             t,
			Message:       form.RateLimit,
			Detail:        form.RateLimitExplanation,
			RemainingText: form.RemainingMessages(0),
			Limited:       true,
		})
	default:
		c.HTML(http.StatusOK, "contact-error.html", contactResult{
			T:       t,
			Message: form.Error,
		})
	}
}
