package mask

import (
	"errors"
	"fmt"
)

// ErrMalformedPattern matches every error returned by Compile.
var ErrMalformedPattern = errors.New("mask: malformed pattern")

// MalformedPatternError describes why a pattern or notation set could not be
// compiled. Offset is the rune offset in Format, or -1 when the problem lies
// in the notations.
type MalformedPatternError struct {
	Format string
	Offset int
	Reason string
}

func (e *MalformedPatternError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("mask: malformed pattern %q: %s", e.Format, e.Reason)
	}
	return fmt.Sprintf("mask: malformed pattern %q at %d: %s", e.Format, e.Offset, e.Reason)
}

// Is reports whether target is ErrMalformedPattern.
func (e *MalformedPatternError) Is(target error) bool {
	return target == ErrMalformedPattern
}

func malformed(format string, offset int, reason string, args ...any) error {
	return &MalformedPatternError{
		Format: format,
		Offset: offset,
		Reason: fmt.Sprintf(reason, args...),
	}
}
