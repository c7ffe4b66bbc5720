package templater

import "errors"

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrFailedToRead     = errors.New("failed to read template")
	ErrFailedToParse    = errors.New("failed to parse template")
	ErrFailedToExecute  = errors.New("failed to execute template")
)
