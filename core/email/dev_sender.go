package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrymomot/toolbox/pkg/slug"
)

// DevSender writes messages to disk instead of delivering them.
// Each message produces an .html body and a .json metadata file.
type DevSender struct {
	dir string
	now func() time.Time
}

// NewDevSender returns a sender that writes into dir, creating it on first use.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type emailMetadata struct {
	Timestamp string `json:"timestamp"`
	SendTo    string `json:"send_to"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
}

// SendEmail writes params as <timestamp>_<tag or subject>.{html,json}.
func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	_, err := d.Send(ctx, params)
	return err
}

// Send is SendEmail reporting the shared base name of the written files as
// the message id.
func (d *DevSender) Send(ctx context.Context, params SendEmailParams) (SendResult, error) {
	if err := params.Validate(); err != nil {
		return SendResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return SendResult{}, err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return SendResult{}, fmt.Errorf("%w: create directory: %w", ErrFailedToSendEmail, err)
	}

	now := d.now()
	identifier := params.Tag
	if identifier == "" {
		identifier = params.Subject
	}
	base := now.Format("2006_01_02_150405") + "_" + devFileName(identifier)

	htmlPath := filepath.Join(d.dir, base+".html")
	if err := os.WriteFile(htmlPath, []byte(params.BodyHTML), 0o644); err != nil {
		return SendResult{}, fmt.Errorf("%w: write html: %w", ErrFailedToSendEmail, err)
	}

	data, err := json.MarshalIndent(emailMetadata{
		Timestamp: now.Format(time.RFC3339),
		SendTo:    params.SendTo,
		Subject:   params.Subject,
		Tag:       params.Tag,
	}, "", "  ")
	if err != nil {
		return SendResult{}, fmt.Errorf("%w: marshal metadata: %w", ErrFailedToSendEmail, err)
	}

	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), data, 0o644); err != nil {
		return SendResult{}, fmt.Errorf("%w: write metadata: %w", ErrFailedToSendEmail, err)
	}
	return SendResult{MessageID: base, To: params.SendTo, SubmittedAt: now}, nil
}

func devFileName(s string) string {
	name := slug.Make(s, slug.Separator("_"), slug.MaxLength(100))
	if name == "" {
		return "email"
	}
	return name
}
