package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	mirrorPrefixImages = "images"
	mirrorPrefixFiles  = "files"
)

// Mirror receives copies of stored files. Keys are slash separated and start
// with "images/" or "files/" followed by the path relative to that root.
type Mirror interface {
	Put(ctx context.Context, key string, r io.Reader) error
	Delete(ctx context.Context, key string) error
}

// MirrorKey returns the mirror key for path, or false when path is outside
// both roots.
func (m *Media) MirrorKey(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	if key, ok := keyUnder(m.imagesDir, mirrorPrefixImages, abs); ok {
		return key, true
	}
	return keyUnder(m.filesDir, mirrorPrefixFiles, abs)
}

func keyUnder(root, prefix, path string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", false
	}
	return prefix + "/" + filepath.ToSlash(rel), true
}

func (m *Media) mirrorPut(ctx context.Context, root, prefix, path string) error {
	if m.mirror == nil {
		return nil
	}

	key, ok := keyUnder(root, prefix, path)
	if !ok {
		return fmt.Errorf("%w: %s is outside %s", ErrMirrorFailed, path, root)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMirrorFailed, err)
	}
	defer func() { _ = f.Close() }()

	if err := m.mirror.Put(ctx, key, f); err != nil {
		return fmt.Errorf("%w: %w", ErrMirrorFailed, err)
	}
	return nil
}

func (m *Media) mirrorDelete(ctx context.Context, path string) error {
	if m.mirror == nil {
		return nil
	}

	key, ok := m.MirrorKey(path)
	if !ok {
		return nil
	}

	if err := m.mirror.Delete(ctx, key); err != nil && !errors.Is(err, ErrFileNotFound) {
		return fmt.Errorf("%w: %w", ErrMirrorFailed, err)
	}
	return nil
}
