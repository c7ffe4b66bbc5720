package toolbox

import "errors"

var (
	ErrInvalidConfig   = errors.New("invalid toolbox configuration")
	ErrEmailTransport  = errors.New("failed to configure email transport")
	ErrMirrorTransport = errors.New("failed to configure media mirror")
)
