package toolbox

import (
	"log/slog"

	"github.com/dmitrymomot/toolbox/core/email"
	"github.com/dmitrymomot/toolbox/core/storage"
)

type options struct {
	logger *slog.Logger
	sender email.EmailSender
	mirror storage.Mirror
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger shared by every helper.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.logger = log
	}
}

// WithEmailSender bypasses EmailTransport and uses sender directly.
func WithEmailSender(sender email.EmailSender) Option {
	return func(o *options) {
		o.sender = sender
	}
}

// WithMirror bypasses MediaMirror and uses mirror directly.
func WithMirror(mirror storage.Mirror) Option {
	return func(o *options) {
		o.mirror = mirror
	}
}
