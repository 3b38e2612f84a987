package mask

import (
	"strings"
	"unicode"
)

// Kind distinguishes mask elements.
type Kind uint8

const (
	// KindLiteral is rendered verbatim and never consumes input.
	KindLiteral Kind = iota
	// KindFixed is rendered verbatim and copied into the extracted value.
	KindFixed
	// KindSlot is filled from input.
	KindSlot
)

// Element is one position of a compiled mask.
type Element struct {
	Kind Kind
	// Char holds the literal rune, or the source symbol of a slot.
	Char     rune
	Class    Class
	Optional bool
	// Suffix marks elements declared after the `#` marker.
	Suffix bool
	// Characters lists the runes accepted by a ClassCustom slot.
	Characters string

	group int
}

// Accepts reports whether r may fill the element. Literals accept nothing.
func (e Element) Accepts(r rune) bool {
	if e.Kind != KindSlot {
		return false
	}
	switch e.Class {
	case ClassDigit:
		return unicode.IsDigit(r)
	case ClassLetter:
		return unicode.IsLetter(r)
	case ClassAlphaNumeric:
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	case ClassCustom:
		return strings.ContainsRune(e.Characters, r)
	default:
		return false
	}
}

// Mandatory reports whether the element must be produced for a mask to be
// complete.
func (e Element) Mandatory() bool {
	switch e.Kind {
	case KindFixed:
		return true
	case KindSlot:
		return !e.Optional
	default:
		return false
	}
}

func (e Element) glyph() rune {
	if e.Kind != KindSlot {
		return e.Char
	}
	switch e.Class {
	case ClassDigit:
		return '0'
	case ClassLetter:
		return 'a'
	case ClassAlphaNumeric:
		return '-'
	default:
		return e.Char
	}
}
