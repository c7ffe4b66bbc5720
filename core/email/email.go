package email

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/toolbox/core/sanitizer"
	"github.com/dmitrymomot/toolbox/core/validator"
)

// EmailSender delivers a single message.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendResult describes a message accepted by a transport.
type SendResult struct {
	MessageID   string    `json:"message_id"`
	To          string    `json:"to"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ResultSender is implemented by transports that report the identifier
// assigned to an accepted message.
type ResultSender interface {
	Send(ctx context.Context, params SendEmailParams) (SendResult, error)
}

// SendEmailParams is a single outgoing message.
type SendEmailParams struct {
	SendTo   string `json:"send_to" sanitize:"email"`
	Subject  string `json:"subject" sanitize:"header"`
	BodyHTML string `json:"body_html"`
	Tag      string `json:"tag,omitempty" sanitize:"header"`
}

// Sanitized returns a copy with the address normalized and line breaks
// removed from header fields.
func (p SendEmailParams) Sanitized() SendEmailParams {
	_ = sanitizer.SanitizeStruct(&p)
	return p
}

// Validate checks that the message can be delivered.
func (p SendEmailParams) Validate() error {
	if err := validator.Apply(
		validator.Required("send_to", p.SendTo),
		validator.ValidEmail("send_to", p.SendTo),
		validator.Required("subject", p.Subject),
		validator.MaxLenString("subject", p.Subject, 998),
		validator.Required("body_html", p.BodyHTML),
		validator.MaxLenString("tag", p.Tag, 100),
	); err != nil {
		return errors.Join(ErrInvalidParams, err)
	}
	return nil
}
