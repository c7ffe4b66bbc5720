package storage

import (
	"log/slog"
	"strings"
	"time"
)

// Option configures a Media.
type Option func(*Media)

// WithLogger sets the logger used for operational messages and as the
// default archive logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Media) {
		if log != nil {
			m.logger = log
		}
	}
}

// WithClock replaces time.Now for timestamp prefixes.
func WithClock(now func() time.Time) Option {
	return func(m *Media) {
		if now != nil {
			m.now = now
		}
	}
}

// WithMirror copies stored files to a remote backend.
func WithMirror(mirror Mirror) Option {
	return func(m *Media) {
		m.mirror = mirror
	}
}

// WithBufferSize sets the copy chunk size. Non-positive values are ignored.
func WithBufferSize(n int) Option {
	return func(m *Media) {
		if n > 0 {
			m.bufferSize = n
		}
	}
}

// StoreOptions controls how a stored file is named.
type StoreOptions struct {
	// AddTimestamp prefixes the name with the current unix time in milliseconds.
	AddTimestamp bool
	// Ext is used, without its leading dot, when the declared name has no extension.
	Ext string
}

// StoreOption adjusts StoreOptions.
type StoreOption func(*StoreOptions)

// DefaultStoreOptions returns options with the timestamp prefix enabled.
func DefaultStoreOptions() StoreOptions {
	return StoreOptions{AddTimestamp: true}
}

// WithTimestamp toggles the timestamp prefix.
func WithTimestamp(enabled bool) StoreOption {
	return func(o *StoreOptions) {
		o.AddTimestamp = enabled
	}
}

// WithExtension sets the fallback extension, with or without a leading dot.
func WithExtension(ext string) StoreOption {
	return func(o *StoreOptions) {
		o.Ext = strings.TrimPrefix(ext, ".")
	}
}

func buildStoreOptions(opts []StoreOption) StoreOptions {
	o := DefaultStoreOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
