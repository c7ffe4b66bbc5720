package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/toolbox/core/logger"
	"github.com/dmitrymomot/toolbox/pkg/async"
)

var (
	_ EmailSender  = (*Mailer)(nil)
	_ ResultSender = (*Mailer)(nil)
)

// Mailer wraps a transport with logging and background delivery.
type Mailer struct {
	sender EmailSender
	logger *slog.Logger
}

// MailerOption configures a Mailer.
type MailerOption func(*Mailer)

// WithMailerLogger sets the logger. Nil is ignored.
func WithMailerLogger(log *slog.Logger) MailerOption {
	return func(m *Mailer) {
		if log != nil {
			m.logger = log
		}
	}
}

// NewMailer wraps sender. It returns ErrNoSender when sender is nil.
func NewMailer(sender EmailSender, opts ...MailerOption) (*Mailer, error) {
	if sender == nil {
		return nil, ErrNoSender
	}
	m := &Mailer{sender: sender, logger: slog.Default()}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Send sanitizes params and delivers them through the wrapped transport.
// Transports that do not implement ResultSender yield a result without a
// message id.
func (m *Mailer) Send(ctx context.Context, params SendEmailParams) (SendResult, error) {
	params = params.Sanitized()
	start := time.Now()

	res, err := m.deliver(ctx, params)
	if err != nil {
		m.logger.ErrorContext(ctx, "email not sent",
			logger.Component("mailer"),
			slog.String("tag", params.Tag),
			logger.Error(err),
		)
		return SendResult{}, err
	}

	m.logger.InfoContext(ctx, "email sent",
		logger.Component("mailer"),
		slog.String("tag", params.Tag),
		slog.String("message_id", res.MessageID),
		logger.Elapsed(start),
	)
	return res, nil
}

func (m *Mailer) deliver(ctx context.Context, params SendEmailParams) (SendResult, error) {
	if rs, ok := m.sender.(ResultSender); ok {
		return rs.Send(ctx, params)
	}
	if err := m.sender.SendEmail(ctx, params); err != nil {
		return SendResult{}, err
	}
	return SendResult{To: params.SendTo, SubmittedAt: time.Now()}, nil
}

// SendEmail is Send without the result.
func (m *Mailer) SendEmail(ctx context.Context, params SendEmailParams) error {
	_, err := m.Send(ctx, params)
	return err
}

// SendAsync delivers params in the background.
func (m *Mailer) SendAsync(ctx context.Context, params SendEmailParams) *async.Future[SendResult] {
	return async.Async(ctx, params, m.Send)
}
