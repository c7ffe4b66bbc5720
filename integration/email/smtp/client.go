package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/toolbox/core/email"
	"github.com/dmitrymomot/toolbox/core/validator"
)

var (
	_ email.EmailSender  = (*Client)(nil)
	_ email.ResultSender = (*Client)(nil)
)

// Client sends mail over SMTP in starttls, tls or plain mode.
// Each message opens its own connection, so Client is safe for concurrent use.
type Client struct {
	config Config
	auth   smtp.Auth
	now    func() time.Time
}

// New validates cfg and returns an SMTP sender.
func New(cfg Config) (*Client, error) {
	if err := validator.ValidateStruct(&cfg); err != nil {
		return nil, errors.Join(email.ErrInvalidConfig, err)
	}
	if (cfg.Username == "") != (cfg.Password == "") {
		return nil, fmt.Errorf("%w: username and password must be set together", email.ErrInvalidConfig)
	}

	c := &Client{config: cfg, now: time.Now}
	if cfg.Username != "" {
		c.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return c, nil
}

// MustNewClient is like New but panics on invalid config.
func MustNewClient(cfg Config) *Client {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail delivers params. The context bounds dialing and, through the
// connection deadline, the whole SMTP transaction.
func (c *Client) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	_, err := c.Send(ctx, params)
	return err
}

// Send is SendEmail reporting the Message-ID header written to the message.
func (c *Client) Send(ctx context.Context, params email.SendEmailParams) (email.SendResult, error) {
	if err := ctx.Err(); err != nil {
		return email.SendResult{}, errors.Join(email.ErrFailedToSendEmail, err)
	}
	params = params.Sanitized()
	if err := params.Validate(); err != nil {
		return email.SendResult{}, err
	}

	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	conn, err := c.dial(ctx)
	if err != nil {
		return email.SendResult{}, errors.Join(email.ErrFailedToSendEmail, err)
	}
	defer func() { _ = conn.Close() }()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, c.config.Host)
	if err != nil {
		return email.SendResult{}, errors.Join(email.ErrFailedToSendEmail, fmt.Errorf("smtp handshake: %w", err))
	}
	defer func() { _ = client.Close() }()

	if c.config.TLSMode == "starttls" {
		if err := client.StartTLS(&tls.Config{ServerName: c.config.Host}); err != nil {
			return email.SendResult{}, errors.Join(email.ErrFailedToSendEmail, fmt.Errorf("starttls: %w", err))
		}
	}

	msg, messageID, submittedAt := c.buildMessage(params)
	if err := c.transact(client, params.SendTo, msg); err != nil {
		return email.SendResult{}, errors.Join(email.ErrFailedToSendEmail, err)
	}
	return email.SendResult{MessageID: messageID, To: params.SendTo, SubmittedAt: submittedAt}, nil
}

func (c *Client) dial(ctx context.Context) (net.Conn, error) {
	addr := net.JoinHostPort(c.config.Host, strconv.Itoa(c.config.Port))
	if c.config.TLSMode == "tls" {
		d := &tls.Dialer{Config: &tls.Config{ServerName: c.config.Host}}
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, fmt.Errorf("tls dial %s: %w", addr, err)
		}
		return conn, nil
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return conn, nil
}

func (c *Client) transact(client *smtp.Client, to string, message []byte) error {
	if c.auth != nil {
		if err := client.Auth(c.auth); err != nil {
			return fmt.Errorf("authentication failed: %w", err)
		}
	}
	if err := client.Mail(c.config.SenderEmail); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(message); err != nil {
		_ = w.Close()
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close data: %w", err)
	}

	// Some servers drop the connection right after DATA; the message is accepted.
	_ = client.Quit()
	return nil
}

// buildMessage renders headers in a fixed order followed by the HTML body.
// It also returns the generated Message-ID and the Date it stamped.
func (c *Client) buildMessage(params email.SendEmailParams) ([]byte, string, time.Time) {
	now := c.now()
	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), c.config.Host)
	headers := [][2]string{
		{"From", c.config.SenderEmail},
		{"To", params.SendTo},
		{"Reply-To", c.config.SupportEmail},
		{"Subject", mime.QEncoding.Encode("utf-8", params.Subject)},
		{"Date", now.Format(time.RFC1123Z)},
		{"Message-ID", messageID},
		{"MIME-Version", "1.0"},
		{"Content-Type", `text/html; charset="UTF-8"`},
	}
	if params.Tag != "" {
		headers = append(headers, [2]string{"X-Tag", params.Tag})
	}

	var b strings.Builder
	for _, h := range headers {
		b.WriteString(h[0])
		b.WriteString(": ")
		b.WriteString(h[1])
		b.WriteString("\r\n")
	}
	b.WriteString("\r\n")
	b.WriteString(params.BodyHTML)
	return []byte(b.String()), messageID, now
}
