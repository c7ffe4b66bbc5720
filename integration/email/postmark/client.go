package postmark

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mrz1836/postmark"

	"github.com/dmitrymomot/toolbox/core/email"
	"github.com/dmitrymomot/toolbox/core/validator"
)

var (
	_ email.EmailSender  = (*Client)(nil)
	_ email.ResultSender = (*Client)(nil)
)

// Client sends transactional mail through the Postmark API.
type Client struct {
	client *postmark.Client
	config Config
}

// Option adjusts the underlying Postmark client.
type Option func(*postmark.Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *postmark.Client) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// WithBaseURL points the client at another API root, such as a test server.
func WithBaseURL(url string) Option {
	return func(c *postmark.Client) {
		if url != "" {
			c.BaseURL = url
		}
	}
}

// New validates cfg and returns a Postmark sender.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := validator.ValidateStruct(&cfg); err != nil {
		return nil, errors.Join(email.ErrInvalidConfig, err)
	}

	pc := postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	for _, opt := range opts {
		opt(pc)
	}
	return &Client{client: pc, config: cfg}, nil
}

// MustNewClient is like New but panics on invalid config.
func MustNewClient(cfg Config, opts ...Option) *Client {
	client, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail delivers params with open tracking and HTML link tracking.
// Replies go to the support address.
func (c *Client) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	_, err := c.Send(ctx, params)
	return err
}

// Send is SendEmail reporting the Postmark message id.
func (c *Client) Send(ctx context.Context, params email.SendEmailParams) (email.SendResult, error) {
	if err := params.Validate(); err != nil {
		return email.SendResult{}, err
	}

	resp, err := c.client.SendEmail(ctx, postmark.Email{
		From:       c.config.SenderEmail,
		ReplyTo:    c.config.SupportEmail,
		To:         params.SendTo,
		Subject:    params.Subject,
		Tag:        params.Tag,
		HTMLBody:   params.BodyHTML,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return email.SendResult{}, errors.Join(email.ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return email.SendResult{}, errors.Join(email.ErrFailedToSendEmail,
			fmt.Errorf("postmark error %d: %s", resp.ErrorCode, resp.Message))
	}
	return email.SendResult{MessageID: resp.MessageID, To: resp.To, SubmittedAt: resp.SubmittedAt}, nil
}
