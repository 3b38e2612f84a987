package field

import "github.com/goliatone/go-inputmask/pkg/mask"

// Change describes one edit the way platform text watchers report it: Text is
// the full text after the edit, Before runes starting at Start were replaced
// by Count new runes.
type Change struct {
	Text   string
	Start  int
	Before int
	Count  int
}

// IsDeletion reports whether the edit only removed runes.
func (c Change) IsDeletion() bool {
	return c.Before > 0 && c.Count == 0
}

// Caret returns the caret position after the edit.
func (c Change) Caret() int {
	if c.IsDeletion() {
		return c.Start
	}
	return c.Start + c.Count
}

// Gravity returns the caret gravity of the edit.
func (c Change) Gravity() mask.Gravity {
	if c.IsDeletion() {
		return mask.Backward
	}
	return mask.Forward
}
