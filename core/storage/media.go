package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrymomot/toolbox/core/logger"
	"github.com/dmitrymomot/toolbox/core/validator"
)

// Media stores images and files under two fixed roots.
// It is safe for concurrent use.
type Media struct {
	imagesDir  string
	filesDir   string
	dirPerm    os.FileMode
	filePerm   os.FileMode
	bufferSize int
	logger     *slog.Logger
	now        func() time.Time
	mirror     Mirror
}

// New validates cfg, resolves both roots to absolute paths and returns a Media.
// The roots are not created until something is stored.
func New(cfg Config, opts ...Option) (*Media, error) {
	if err := validator.ValidateStruct(&cfg); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	imagesDir, err := filepath.Abs(cfg.ImagesDir)
	if err != nil {
		return nil, fmt.Errorf("%w: images dir: %w", ErrInvalidConfig, err)
	}
	filesDir, err := filepath.Abs(cfg.FilesDir)
	if err != nil {
		return nil, fmt.Errorf("%w: files dir: %w", ErrInvalidConfig, err)
	}

	m := &Media{
		imagesDir:  imagesDir,
		filesDir:   filesDir,
		dirPerm:    cfg.DirPerm,
		filePerm:   cfg.FilePerm,
		bufferSize: DefaultBufferSize,
		logger:     slog.Default(),
		now:        time.Now,
	}
	if m.dirPerm == 0 {
		m.dirPerm = DefaultDirPerm
	}
	if m.filePerm == 0 {
		m.filePerm = DefaultFilePerm
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// ImagesDir returns the absolute image root.
func (m *Media) ImagesDir() string { return m.imagesDir }

// FilesDir returns the absolute file root.
func (m *Media) FilesDir() string { return m.filesDir }

// StoreImage streams r into the image root and returns the stored path.
func (m *Media) StoreImage(ctx context.Context, r io.Reader, fileName, subPath string, opts ...StoreOption) (string, error) {
	return m.store(ctx, m.imagesDir, mirrorPrefixImages, r, fileName, subPath, opts)
}

// StoreFile streams r into the file root and returns the stored path.
func (m *Media) StoreFile(ctx context.Context, r io.Reader, fileName, subPath string, opts ...StoreOption) (string, error) {
	return m.store(ctx, m.filesDir, mirrorPrefixFiles, r, fileName, subPath, opts)
}

func (m *Media) store(ctx context.Context, root, prefix string, r io.Reader, fileName, subPath string, opts []StoreOption) (string, error) {
	if r == nil {
		return "", fmt.Errorf("%w: nil reader", ErrStreamFailed)
	}

	dst, err := ComposePath(root, subPath, fileName, buildStoreOptions(opts), m.now())
	if err != nil {
		return "", err
	}

	if err := EnsureDir(filepath.Dir(dst), m.dirPerm); err != nil {
		return "", err
	}

	start := time.Now()
	n, err := m.persist(ctx, r, dst)
	if err != nil {
		return "", err
	}

	m.logger.DebugContext(ctx, "file stored",
		logger.Component("storage"),
		logger.FilePath(dst),
		logger.Size(n),
		logger.Elapsed(start),
	)

	if err := m.mirrorPut(ctx, root, prefix, dst); err != nil {
		return dst, err
	}
	return dst, nil
}

// Remove deletes the file at path. A missing file is not an error.
// When a mirror is configured and path lies under one of the roots, the
// mirrored copy is deleted as well.
func (m *Media) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFailedToRemoveFile, err)
	}

	return m.mirrorDelete(ctx, path)
}
