package hasher

import "errors"

var (
	ErrInvalidSeedSize      = errors.New("hasher: seed size must be at least 1")
	ErrUnsupportedAlgorithm = errors.New("hasher: unsupported algorithm")
	ErrFailedToGenerateSeed = errors.New("hasher: failed to generate seed")
	ErrFailedToHashPassword = errors.New("hasher: failed to hash password")
)
