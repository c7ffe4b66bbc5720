package storage

import "errors"

var (
	ErrInvalidConfig      = errors.New("storage: invalid configuration")
	ErrInvalidPath        = errors.New("storage: invalid path")
	ErrFailedToCreateDir  = errors.New("storage: failed to create directory")
	ErrFailedToCreateFile = errors.New("storage: failed to create file")
	ErrFailedToWriteFile  = errors.New("storage: failed to write file")
	ErrStreamFailed       = errors.New("storage: source stream failed")
	ErrFailedToRemoveFile = errors.New("storage: failed to remove file")
	ErrArchiveMember      = errors.New("storage: archive member unreadable")
	ErrMirrorFailed       = errors.New("storage: mirror operation failed")
	ErrInvalidImage       = errors.New("storage: invalid image")
)

// Remote backend errors, returned by Mirror implementations.
var (
	ErrFileNotFound       = errors.New("storage: file not found")
	ErrBucketNotFound     = errors.New("storage: bucket not found")
	ErrAccessDenied       = errors.New("storage: access denied")
	ErrOperationTimeout   = errors.New("storage: operation timed out")
	ErrOperationCanceled  = errors.New("storage: operation canceled")
	ErrRequestTimeout     = errors.New("storage: request timeout")
	ErrServiceUnavailable = errors.New("storage: service unavailable")
	ErrInvalidObjectState = errors.New("storage: invalid object state")
)
