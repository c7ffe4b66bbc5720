package storage

import "os"

const (
	DefaultDirPerm    os.FileMode = 0o755
	DefaultFilePerm   os.FileMode = 0o644
	DefaultBufferSize             = 32 * 1024
)

// Config holds the root directories. Relative roots are resolved against the
// working directory when the Media is created.
type Config struct {
	ImagesDir string `env:"MEDIA_IMAGES_DIR,required" validate:"required"`
	FilesDir  string `env:"MEDIA_FILES_DIR,required" validate:"required"`

	// Zero values fall back to DefaultDirPerm and DefaultFilePerm.
	DirPerm  os.FileMode
	FilePerm os.FileMode
}
