package storage

import (
	"context"
	"io"
	"log/slog"

	"github.com/dmitrymomot/toolbox/pkg/async"
)

// StoreRequest describes one store operation.
type StoreRequest struct {
	Reader   io.Reader
	FileName string
	SubPath  string
	Options  []StoreOption
}

// ArchiveRequest describes one archive operation.
type ArchiveRequest struct {
	Name    string
	SubPath string
	Members []string
	Logger  *slog.Logger
}

// StoreImageAsync runs StoreImage in the background.
func (m *Media) StoreImageAsync(ctx context.Context, req StoreRequest) *async.Future[string] {
	return async.Async(ctx, req, func(ctx context.Context, r StoreRequest) (string, error) {
		return m.StoreImage(ctx, r.Reader, r.FileName, r.SubPath, r.Options...)
	})
}

// StoreFileAsync runs StoreFile in the background.
func (m *Media) StoreFileAsync(ctx context.Context, req StoreRequest) *async.Future[string] {
	return async.Async(ctx, req, func(ctx context.Context, r StoreRequest) (string, error) {
		return m.StoreFile(ctx, r.Reader, r.FileName, r.SubPath, r.Options...)
	})
}

// RemoveAsync runs Remove in the background.
func (m *Media) RemoveAsync(ctx context.Context, path string) *async.ExecFuture {
	return async.Exec(ctx, path, m.Remove)
}

// CreateArchiveAsync runs CreateArchive in the background.
func (m *Media) CreateArchiveAsync(ctx context.Context, req ArchiveRequest) *async.Future[string] {
	return async.Async(ctx, req, func(ctx context.Context, r ArchiveRequest) (string, error) {
		return m.CreateArchive(ctx, r.Name, r.SubPath, r.Members, r.Logger)
	})
}
