package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrIncomplete is returned when the answer leaves mandatory slots empty.
	ErrIncomplete = errors.New("prompt: incomplete value")
	// ErrNoSelector is returned by New without a selector.
	ErrNoSelector = errors.New("prompt: selector is required")
)
