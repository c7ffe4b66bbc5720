package config

import "errors"

var (
	ErrNilTarget     = errors.New("config: target must be a non-nil pointer")
	ErrFailedToParse = errors.New("config: failed to parse environment")
)
