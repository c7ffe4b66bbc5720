package templater

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/toolbox/core/cache"
)

// DefaultCacheSize bounds the number of parsed templates kept by WithCache.
const DefaultCacheSize = 128

// Templater renders html/template files from disk. Safe for concurrent use.
type Templater struct {
	baseDir   string
	funcs     template.FuncMap
	cacheSize int
	parsed    *cache.LRUCache[string, *template.Template]
}

// Option configures a Templater.
type Option func(*Templater)

// WithCache keeps up to DefaultCacheSize parsed templates in memory. Edits
// on disk are not picked up until the entry is evicted or Reset is called.
func WithCache(enabled bool) Option {
	return func(t *Templater) {
		t.cacheSize = 0
		if enabled {
			t.cacheSize = DefaultCacheSize
		}
	}
}

// WithCacheSize enables the cache with room for n templates.
func WithCacheSize(n int) Option {
	return func(t *Templater) {
		t.cacheSize = max(n, 0)
	}
}

// WithFuncs makes fns available to every template.
func WithFuncs(fns template.FuncMap) Option {
	return func(t *Templater) {
		for name, fn := range fns {
			t.funcs[name] = fn
		}
	}
}

// WithBaseDir resolves relative template paths against dir.
func WithBaseDir(dir string) Option {
	return func(t *Templater) {
		t.baseDir = dir
	}
}

// New returns a Templater.
func New(opts ...Option) *Templater {
	t := &Templater{funcs: template.FuncMap{}}
	for _, opt := range opts {
		opt(t)
	}
	if t.cacheSize > 0 {
		t.parsed = cache.NewLRUCache[string, *template.Template](t.cacheSize)
	}
	return t
}

// Render reads the template at path, executes it with data and returns the
// output. Nothing is returned on a failed execution.
func (t *Templater) Render(ctx context.Context, path string, data any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpl, err := t.load(t.resolve(path))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrFailedToExecute, path, err)
	}
	return buf.String(), nil
}

// Reset drops every cached template.
func (t *Templater) Reset() {
	if t.parsed != nil {
		t.parsed.Clear()
	}
}

func (t *Templater) resolve(path string) string {
	if t.baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(t.baseDir, path)
}

func (t *Templater) load(path string) (*template.Template, error) {
	if t.parsed != nil {
		if tmpl, ok := t.parsed.Get(path); ok {
			return tmpl, nil
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrFailedToRead, path, err)
	}

	tmpl, err := template.New(filepath.Base(path)).Funcs(t.funcs).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFailedToParse, path, err)
	}

	if t.parsed != nil {
		t.parsed.Put(path, tmpl)
	}
	return tmpl, nil
}
