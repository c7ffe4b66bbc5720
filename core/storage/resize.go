package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"

	"github.com/dmitrymomot/toolbox/core/logger"
	"github.com/dmitrymomot/toolbox/pkg/slug"
)

// ResizeImage writes a copy of the stored image at srcPath scaled to width
// pixels, keeping the aspect ratio, and returns its path. The copy sits next
// to the source as <stem>-<variant><ext>, so srcPath must lie under the
// image root and carry an extension imaging can encode (jpg, png, gif, tif, bmp).
func (m *Media) ResizeImage(ctx context.Context, srcPath string, width int, variant string) (string, error) {
	if width < 1 {
		return "", fmt.Errorf("%w: width must be positive", ErrInvalidImage)
	}
	variant = slug.Make(variant)
	if variant == "" {
		return "", fmt.Errorf("%w: empty variant name", ErrInvalidPath)
	}

	src, err := filepath.Abs(srcPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}
	if _, ok := keyUnder(m.imagesDir, mirrorPrefixImages, src); !ok {
		return "", fmt.Errorf("%w: %s is outside the image root", ErrInvalidPath, srcPath)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	start := time.Now()
	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	stem, ext := splitExt(filepath.Base(src))
	dst := filepath.Join(filepath.Dir(src), stem+"-"+variant+ext)

	if err := imaging.Save(imaging.Resize(img, width, 0, imaging.Lanczos), dst); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToWriteFile, err)
	}

	m.logger.DebugContext(ctx, "image resized",
		logger.Component("storage"),
		logger.FilePath(dst),
		logger.Elapsed(start),
	)

	if err := m.mirrorPut(ctx, m.imagesDir, mirrorPrefixImages, dst); err != nil {
		return dst, err
	}
	return dst, nil
}
