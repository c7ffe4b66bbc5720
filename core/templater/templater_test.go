package templater_test

import (
	"context"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toolbox/core/templater"
)

func writeTemplate(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("substitutes and escapes data", func(t *testing.T) {
		t.Parallel()

		path := writeTemplate(t, t.TempDir(), "hello.html", `<p>Hello, {{.Name}}!</p>`)

		out, err := templater.New().Render(context.Background(), path, map[string]string{"Name": "<Ada>"})
		require.NoError(t, err)
		assert.Equal(t, "<p>Hello, &lt;Ada&gt;!</p>", out)
	})

	t.Run("base dir and funcs", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeTemplate(t, dir, "shout.html", `{{upper .}}`)

		tpl := templater.New(
			templater.WithBaseDir(dir),
			templater.WithFuncs(template.FuncMap{"upper": strings.ToUpper}),
		)
		out, err := tpl.Render(context.Background(), "shout.html", "quiet")
		require.NoError(t, err)
		assert.Equal(t, "QUIET", out)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := templater.New().Render(context.Background(), filepath.Join(t.TempDir(), "none.html"), nil)
		assert.ErrorIs(t, err, templater.ErrTemplateNotFound)
	})

	t.Run("unreadable path", func(t *testing.T) {
		t.Parallel()

		_, err := templater.New().Render(context.Background(), t.TempDir(), nil)
		assert.ErrorIs(t, err, templater.ErrFailedToRead)
	})

	t.Run("parse error", func(t *testing.T) {
		t.Parallel()

		path := writeTemplate(t, t.TempDir(), "bad.html", `{{.Name`)
		_, err := templater.New().Render(context.Background(), path, nil)
		assert.ErrorIs(t, err, templater.ErrFailedToParse)
	})

	t.Run("execute error", func(t *testing.T) {
		t.Parallel()

		path := writeTemplate(t, t.TempDir(), "exec.html", `{{.Missing.Field}}`)
		_, err := templater.New().Render(context.Background(), path, struct{ Name string }{})
		assert.ErrorIs(t, err, templater.ErrFailedToExecute)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := templater.New().Render(ctx, "whatever.html", nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRender_Cache(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTemplate(t, dir, "v.html", `v1`)
	ctx := context.Background()

	cached := templater.New(templater.WithCache(true))
	plain := templater.New()

	out, err := cached.Render(ctx, path, nil)
	require.NoError(t, err)
	assert.Equal(t, "v1", out)

	writeTemplate(t, dir, "v.html", `v2`)

	out, err = cached.Render(ctx, path, nil)
	require.NoError(t, err)
	assert.Equal(t, "v1", out)

	out, err = plain.Render(ctx, path, nil)
	require.NoError(t, err)
	assert.Equal(t, "v2", out)

	cached.Reset()
	out, err = cached.Render(ctx, path, nil)
	require.NoError(t, err)
	assert.Equal(t, "v2", out)
}

func TestRenderAsync(t *testing.T) {
	t.Parallel()

	path := writeTemplate(t, t.TempDir(), "a.html", `{{.}}`)
	tpl := templater.New()

	out, err := tpl.RenderAsync(context.Background(), templater.RenderRequest{Path: path, Data: "async"}).Await()
	require.NoError(t, err)
	assert.Equal(t, "async", out)

	_, err = tpl.RenderAsync(context.Background(), templater.RenderRequest{Path: path + ".missing"}).Await()
	assert.ErrorIs(t, err, templater.ErrTemplateNotFound)
}

func TestRender_CacheEviction(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeTemplate(t, dir, "a.html", `a1`)
	b := writeTemplate(t, dir, "b.html", `b1`)
	ctx := context.Background()

	tpl := templater.New(templater.WithCacheSize(1))

	_, err := tpl.Render(ctx, a, nil)
	require.NoError(t, err)
	writeTemplate(t, dir, "a.html", `a2`)

	// Loading b evicts a, so the edit becomes visible.
	_, err = tpl.Render(ctx, b, nil)
	require.NoError(t, err)

	out, err := tpl.Render(ctx, a, nil)
	require.NoError(t, err)
	assert.Equal(t, "a2", out)
}
