// Package inputmask formats free-form text against input masks such as
// "+7 ([000]) [000]-[00]-[00]".
//
// The root package re-exports the types most callers need and offers a few
// one-call helpers. The building blocks live under pkg/: mask compiles and
// applies patterns, selector picks among several masks, phone and number
// specialise selectors, field drives a text field and maskconfig loads named
// masks from files.
package inputmask

import (
	"io/fs"

	"github.com/goliatone/go-inputmask/pkg/field"
	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/maskconfig"
	"github.com/goliatone/go-inputmask/pkg/selector"
)

// Mask aliases mask.Mask.
type Mask = mask.Mask

// Notation aliases mask.Notation for custom slot symbols.
type Notation = mask.Notation

// CaretString aliases mask.CaretString.
type CaretString = mask.CaretString

// Result aliases mask.Result.
type Result = mask.Result

// Selector aliases selector.Selector.
type Selector = selector.Selector

// Compile parses format into a Mask.
func Compile(format string, notations ...Notation) (*Mask, error) {
	return mask.Compile(format, notations...)
}

// Format applies format to text with the caret at the end, the way a field
// formats pasted or prefilled text.
func Format(format, text string, notations ...Notation) (Result, error) {
	m, err := mask.Compile(format, notations...)
	if err != nil {
		return Result{}, err
	}
	return m.Apply(CaretString{
		Text:         text,
		Caret:        len([]rune(text)),
		Gravity:      mask.Forward,
		Autocomplete: true,
	}), nil
}

// NewField builds a field controller around sel.
func NewField(sel Selector, opts ...field.Option) (*field.Field, error) {
	return field.New(sel, opts...)
}

// DefaultMasks loads the bundled named masks (dates, phones, cards and so
// on).
func DefaultMasks(opts ...maskconfig.Option) (*maskconfig.Set, error) {
	return maskconfig.Default(opts...)
}

// MasksFS exposes the bundled mask documents so they can be served or copied
// as a starting point.
//
// Typical mount:
//
//	mux.Handle("/masks/",
//	  http.StripPrefix("/masks/",
//	    http.FileServerFS(inputmask.MasksFS()),
//	  ),
//	)
func MasksFS() fs.FS {
	return maskconfig.EmbeddedFS()
}
