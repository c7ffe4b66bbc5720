package templates_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toolbox/core/email/templates"
)

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("renders component", func(t *testing.T) {
		t.Parallel()

		c := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<h1>Hello, "+templ.EscapeString("<Ada>")+"</h1>")
			return err
		})

		html, err := templates.Render(context.Background(), c)
		require.NoError(t, err)
		assert.Equal(t, "<h1>Hello, &lt;Ada&gt;</h1>", html)
	})

	t.Run("nil component", func(t *testing.T) {
		t.Parallel()

		_, err := templates.Render(context.Background(), nil)
		assert.ErrorIs(t, err, templates.ErrNilComponent)
	})

	t.Run("render failure", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		c := templ.ComponentFunc(func(context.Context, io.Writer) error { return boom })

		_, err := templates.Render(context.Background(), c)
		assert.ErrorIs(t, err, templates.ErrFailedToRender)
		assert.ErrorIs(t, err, boom)
	})
}
