package storage

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/blake2b"

	"github.com/dmitrymomot/toolbox/pkg/slug"
)

// fallbackStem prefixes names derived from stems in scripts the slug
// cannot romanise.
const fallbackStem = "file"

// ComposePath derives the destination of a stored file. It performs no I/O.
//
// The stem of fileName is slugified, prefixed with now in unix milliseconds
// when opts.AddTimestamp is set, and joined with the original extension or,
// if there is none, with opts.Ext. A name with neither yields an
// extensionless path.
//
// A stem made of letters the slug cannot romanise (CJK, Arabic, ...) becomes
// "file-<hash>", with the hash taken from the stem so distinct names stay
// distinct. A stem with no letters or digits at all contributes nothing; the
// result must then still carry a timestamp, or ErrInvalidPath is returned.
func ComposePath(root, subPath, fileName string, opts StoreOptions, now time.Time) (string, error) {
	dir, err := resolveDir(root, subPath)
	if err != nil {
		return "", err
	}

	stem, ext := splitExt(fileName)
	name := stemSlug(stem)
	if opts.AddTimestamp {
		ts := strconv.FormatInt(now.UnixMilli(), 10)
		if name == "" {
			name = ts
		} else {
			name = ts + "-" + name
		}
	}
	if name == "" {
		return "", fmt.Errorf("%w: %q has no usable name", ErrInvalidPath, fileName)
	}

	if ext == "" && opts.Ext != "" {
		ext = "." + strings.TrimPrefix(opts.Ext, ".")
	}

	return filepath.Join(dir, name+ext), nil
}

func stemSlug(stem string) string {
	if s := slug.Make(stem); s != "" {
		return s
	}
	if !strings.ContainsFunc(stem, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }) {
		return ""
	}
	sum := blake2b.Sum256([]byte(stem))
	return fallbackStem + "-" + hex.EncodeToString(sum[:4])
}

// resolveDir joins subPath onto root and rejects results outside root.
func resolveDir(root, subPath string) (string, error) {
	dir := filepath.Join(root, subPath)
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %q escapes the storage root", ErrInvalidPath, subPath)
	}
	return dir, nil
}

// splitExt splits name at the last dot of its final element. A leading dot
// does not start an extension, so ".env" has none while "photo." has ".".
func splitExt(name string) (stem, ext string) {
	base := name
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		base = name[i+1:]
	}
	if strings.Trim(base, ".") == "" {
		return name, ""
	}

	dot := strings.LastIndexByte(base, '.')
	if dot <= 0 {
		return name, ""
	}
	ext = base[dot:]
	return name[:len(name)-len(ext)], ext
}
