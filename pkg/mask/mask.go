package mask

import (
	"strings"
)

// Mask is a compiled pattern. It is immutable once built.
type Mask struct {
	format    string
	notations []Notation
	elements  []Element

	// tailStart indexes the run of suffix literals closing the mask, or
	// len(elements) when the mask has none.
	tailStart int
	tail      []rune
	slots     int
}

func newMask(format string, notations []Notation, elements []Element) *Mask {
	m := &Mask{
		format:    format,
		notations: append([]Notation(nil), notations...),
		elements:  elements,
		tailStart: len(elements),
	}
	for i := len(elements) - 1; i >= 0; i-- {
		if !elements[i].Suffix || elements[i].Kind != KindLiteral {
			break
		}
		m.tailStart = i
	}
	for _, el := range elements[m.tailStart:] {
		m.tail = append(m.tail, el.Char)
	}
	for _, el := range elements {
		if el.Kind == KindSlot {
			m.slots++
		}
	}
	return m
}

// Format returns the pattern the mask was compiled from.
func (m *Mask) Format() string { return m.format }

// Notations returns a copy of the custom notations the mask was compiled with.
func (m *Mask) Notations() []Notation {
	return append([]Notation(nil), m.notations...)
}

// Elements returns a copy of the compiled elements.
func (m *Mask) Elements() []Element {
	return append([]Element(nil), m.elements...)
}

// Slots returns the number of slot elements, mandatory and optional.
func (m *Mask) Slots() int { return m.slots }

// String renders the normalised pattern. Masks compiled from equivalent
// patterns render identically.
func (m *Mask) String() string {
	var b strings.Builder
	open := rune(0)
	group := -1
	suffix := false

	closeGroup := func() {
		switch open {
		case '[':
			b.WriteByte(']')
		case '{':
			b.WriteByte('}')
		}
		open = 0
	}

	for _, el := range m.elements {
		if el.Suffix && !suffix {
			closeGroup()
			b.WriteByte('#')
			suffix = true
		}
		switch el.Kind {
		case KindSlot:
			if open != '[' || group != el.group {
				closeGroup()
				b.WriteByte('[')
				open = '['
				group = el.group
			}
			b.WriteRune(el.Char)
		case KindFixed:
			if open != '{' || group != el.group {
				closeGroup()
				b.WriteByte('{')
				open = '{'
				group = el.group
			}
			writeLiteral(&b, el.Char)
		default:
			closeGroup()
			writeLiteral(&b, el.Char)
		}
	}
	closeGroup()
	return b.String()
}

func writeLiteral(b *strings.Builder, r rune) {
	if strings.ContainsRune(reservedSymbols, r) {
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}

// QuoteLiteral escapes s so that it compiles to literal elements only.
func QuoteLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		writeLiteral(&b, r)
	}
	return b.String()
}

// Placeholder renders the whole mask with a glyph for every slot: `0` for
// digits, `a` for letters, `-` for alphanumerics and the notation symbol for
// custom slots.
func (m *Mask) Placeholder() string {
	return placeholder(m.elements)
}

func placeholder(elements []Element) string {
	var b strings.Builder
	for _, el := range elements {
		b.WriteRune(el.glyph())
	}
	return b.String()
}

// AcceptableTextLength counts literals and mandatory slots: the shortest
// formatted text of a complete value.
func (m *Mask) AcceptableTextLength() int {
	return m.count(func(el Element) bool { return el.Kind != KindSlot || !el.Optional })
}

// TotalTextLength counts every element: the longest formatted text.
func (m *Mask) TotalTextLength() int {
	return len(m.elements)
}

// AcceptableValueLength counts fixed literals and mandatory slots.
func (m *Mask) AcceptableValueLength() int {
	return m.count(Element.Mandatory)
}

// TotalValueLength counts fixed literals and all slots.
func (m *Mask) TotalValueLength() int {
	return m.count(func(el Element) bool { return el.Kind != KindLiteral })
}

func (m *Mask) count(pred func(Element) bool) int {
	n := 0
	for _, el := range m.elements {
		if pred(el) {
			n++
		}
	}
	return n
}

func (m *Mask) completeFrom(idx int) bool {
	for _, el := range m.elements[idx:] {
		if el.Mandatory() {
			return false
		}
	}
	return true
}
