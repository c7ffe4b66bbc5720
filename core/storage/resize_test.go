package storage_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toolbox/core/storage"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestResizeImage(t *testing.T) {
	t.Parallel()

	mirror := newFakeMirror()
	m := newMedia(t, storage.WithMirror(mirror))
	ctx := context.Background()

	src, err := m.StoreImage(ctx, bytes.NewReader(pngBytes(t, 200, 100)), "banner.png", "hero",
		storage.WithTimestamp(false))
	require.NoError(t, err)

	dst, err := m.ResizeImage(ctx, src, 50, "Small")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(m.ImagesDir(), "hero", "banner-small.png"), dst)

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Width)
	assert.Equal(t, 25, cfg.Height)

	_, ok := mirror.get("images/hero/banner-small.png")
	assert.True(t, ok)
}

func TestResizeImage_Errors(t *testing.T) {
	t.Parallel()

	m := newMedia(t)
	ctx := context.Background()

	notImage, err := m.StoreImage(ctx, strings.NewReader("plain text"), "fake.png", "", storage.WithTimestamp(false))
	require.NoError(t, err)

	_, err = m.ResizeImage(ctx, notImage, 10, "thumb")
	assert.ErrorIs(t, err, storage.ErrInvalidImage)

	_, err = m.ResizeImage(ctx, notImage, 0, "thumb")
	assert.ErrorIs(t, err, storage.ErrInvalidImage)

	_, err = m.ResizeImage(ctx, notImage, 10, "!!!")
	assert.ErrorIs(t, err, storage.ErrInvalidPath)

	outside := filepath.Join(t.TempDir(), "x.png")
	require.NoError(t, os.WriteFile(outside, pngBytes(t, 4, 4), 0o644))
	_, err = m.ResizeImage(ctx, outside, 2, "thumb")
	assert.ErrorIs(t, err, storage.ErrInvalidPath)
}
