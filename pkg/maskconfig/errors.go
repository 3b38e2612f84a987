package maskconfig

import "errors"

var (
	// ErrUnknownMask is returned when a set has no mask with the requested
	// name.
	ErrUnknownMask = errors.New("maskconfig: unknown mask")
	// ErrInvalidDocument wraps parse and schema validation failures.
	ErrInvalidDocument = errors.New("maskconfig: invalid document")
	// ErrDuplicateMask is returned when two documents declare the same mask
	// name.
	ErrDuplicateMask = errors.New("maskconfig: duplicate mask")
)
