package storage

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/flate"

	"github.com/dmitrymomot/toolbox/core/logger"
	"github.com/dmitrymomot/toolbox/core/validator"
)

// countingWriter counts bytes accepted by the destination.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// CreateArchive writes a zip archive named archiveName under
// FilesDir/subPath containing one deflated entry per member, named by the
// member's base name, and returns the archive's absolute path.
//
// Members are added in order. Members sharing a base name produce duplicate
// entries; extractors usually keep the last one. Any unreadable member or
// destination write failure aborts the archive; the partial file is left for
// the caller. On success the compressed size is logged to log, or to the
// Media logger when log is nil.
func (m *Media) CreateArchive(ctx context.Context, archiveName, subPath string, members []string, log *slog.Logger) (string, error) {
	if log == nil {
		log = m.logger
	}

	if err := validator.Apply(validator.ValidFileName("archive_name", archiveName)); err != nil {
		return "", errors.Join(ErrInvalidPath, err)
	}

	dir, err := resolveDir(m.filesDir, subPath)
	if err != nil {
		return "", err
	}
	zipPath := filepath.Join(dir, archiveName)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := EnsureDir(dir, m.dirPerm); err != nil {
		return "", err
	}

	out, err := os.OpenFile(zipPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, m.filePerm)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToCreateFile, err)
	}

	start := time.Now()
	written, err := m.writeArchive(out, members)
	if err != nil {
		_ = out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToWriteFile, err)
	}

	log.InfoContext(ctx, "archive written",
		logger.Component("storage"),
		slog.String("archive", archiveName),
		logger.Event("archive_written"),
		logger.FilePath(zipPath),
		logger.Size(written),
		logger.Count("members", len(members)),
		logger.Elapsed(start),
	)

	if err := m.mirrorPut(ctx, m.filesDir, mirrorPrefixFiles, zipPath); err != nil {
		return zipPath, err
	}
	return zipPath, nil
}

// writeArchive streams every member into a zip written to out and returns
// the number of compressed bytes written, trailer included.
func (m *Media) writeArchive(out io.Writer, members []string) (int64, error) {
	cw := &countingWriter{w: out}
	zw := zip.NewWriter(cw)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.BestCompression)
	})

	buf := make([]byte, m.bufferSize)
	for _, member := range members {
		if err := addMember(zw, member, buf); err != nil {
			return cw.n, err
		}
	}

	// Close flushes the central directory.
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("%w: %w", ErrFailedToWriteFile, err)
	}
	return cw.n, nil
}

func addMember(zw *zip.Writer, member string, buf []byte) error {
	f, err := os.Open(member)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArchiveMember, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArchiveMember, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrArchiveMember, member)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArchiveMember, err)
	}
	header.Name = filepath.Base(member)
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToWriteFile, err)
	}

	if _, err := copyChunked(w, f, buf); err != nil {
		if errors.Is(err, ErrStreamFailed) {
			return fmt.Errorf("%w: %s: %w", ErrArchiveMember, member, err)
		}
		return err
	}
	return nil
}
