package templates

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/a-h/templ"
)

var (
	ErrNilComponent   = errors.New("templ component is nil")
	ErrFailedToRender = errors.New("failed to render email template")
)

// Render writes c into a string.
func Render(ctx context.Context, c templ.Component) (string, error) {
	if c == nil {
		return "", ErrNilComponent
	}

	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToRender, err)
	}
	return buf.String(), nil
}
