package storage

import (
	"context"
	"fmt"
	"io"
	"os"
)

// trackingReader remembers the first read error so copy failures can be
// attributed to the source or the destination.
type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF && t.err == nil {
		t.err = err
	}
	return n, err
}

// copyChunked copies src to dst through buf only. Wrapping dst hides
// ReaderFrom so the buffer size bounds memory use.
func copyChunked(dst io.Writer, src io.Reader, buf []byte) (int64, error) {
	tr := &trackingReader{r: src}
	n, err := io.CopyBuffer(struct{ io.Writer }{dst}, tr, buf)
	if err == nil {
		return n, nil
	}
	if tr.err != nil {
		return n, fmt.Errorf("%w: %w", ErrStreamFailed, tr.err)
	}
	return n, fmt.Errorf("%w: %w", ErrFailedToWriteFile, err)
}

// persist writes src to a new file at dst, whose directory must exist.
// The file is closed explicitly on every path; success is reported only
// after Close has flushed it.
func (m *Media) persist(ctx context.Context, src io.Reader, dst string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, m.filePerm)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFailedToCreateFile, err)
	}

	n, err := copyChunked(f, src, make([]byte, m.bufferSize))
	if err != nil {
		_ = f.Close()
		return n, err
	}

	if err := f.Close(); err != nil {
		return n, fmt.Errorf("%w: %w", ErrFailedToWriteFile, err)
	}
	return n, nil
}
