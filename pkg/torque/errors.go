package torque

import "errors"

// Error kinds surfaced by the library. Callers match them with errors.Is;
// wrapped errors carry the context of the failing operation.
var (
	ErrInvalidArgument   = errors.New("torque: invalid argument")
	ErrShapeMismatch     = errors.New("torque: shape mismatch")
	ErrUnsupportedFormat = errors.New("torque: unsupported format")
	ErrInvalidData       = errors.New("torque: invalid data")
	ErrIO                = errors.New("torque: io failure")
	ErrDisposed          = errors.New("torque: image disposed")
)
