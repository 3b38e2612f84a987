package mask

// Gravity tells the engine which way the caret moved during an edit.
type Gravity uint8

const (
	// Forward follows insertions and programmatic updates.
	Forward Gravity = iota
	// Backward follows deletions.
	Backward
)

func (g Gravity) String() string {
	if g == Backward {
		return "backward"
	}
	return "forward"
}

// CaretString is display text with a caret. Caret is a rune offset.
type CaretString struct {
	Text    string
	Caret   int
	Gravity Gravity
	// Autocomplete appends the literals that follow the caret once the input
	// runs out. It applies to Forward edits only.
	Autocomplete bool
	// Autoskip trims literals left dangling at the end of the text after a
	// Backward edit, so the caret lands before them.
	Autoskip bool
}

// Result is the outcome of applying a mask to a CaretString.
type Result struct {
	Formatted CaretString
	// Value holds the runes accepted into slots and fixed literals, in mask
	// order.
	Value string
	// Affinity counts runes consumed in place, minus runes the mask dropped
	// or inserted.
	Affinity int
	// Complete is true when no mandatory element is left to fill.
	Complete bool
	// TailPlaceholder renders the part of the mask the text has not reached.
	TailPlaceholder string
}

// Apply formats in against the mask. It never fails: runes that fit no
// element are dropped and literals are inserted where the text lacks them.
func (m *Mask) Apply(in CaretString) Result {
	text := m.trimTail([]rune(in.Text))
	origCaret := clampInt(in.Caret, 0, len(text))
	walkEnd := m.tailStart

	var (
		out      = make([]rune, 0, len(m.elements))
		value    = make([]rune, 0, m.slots)
		caret    = origCaret
		affinity int
		idx      int
		pos      int

		// produced is the element index following the last rune written to
		// out; valueEnd the one following the last slot or fixed literal.
		produced int
		valueEnd int
		// literalRun counts free literals at the end of out.
		literalRun int
	)

	emit := func(el Element, r rune) {
		out = append(out, r)
		idx++
		produced = idx
		if el.Kind == KindLiteral {
			literalRun++
			return
		}
		value = append(value, r)
		literalRun = 0
		valueEnd = idx
	}

	for pos < len(text) {
		r := text[pos]
		if idx >= walkEnd {
			if pos < origCaret {
				caret--
			}
			pos++
			affinity--
			continue
		}

		el := m.elements[idx]
		switch el.Kind {
		case KindLiteral, KindFixed:
			emit(el, el.Char)
			if r == el.Char {
				pos++
				affinity++
				continue
			}
			if pos <= origCaret {
				caret++
			}
			affinity--

		case KindSlot:
			if el.Accepts(r) {
				emit(el, r)
				pos++
				affinity++
				continue
			}
			affinity--
			if el.Optional {
				idx++
				continue
			}
			if pos < origCaret {
				caret--
			}
			pos++
		}
	}

	if in.Gravity == Forward && in.Autocomplete && len(text) <= origCaret {
		for idx < walkEnd && m.elements[idx].Kind != KindSlot {
			emit(m.elements[idx], m.elements[idx].Char)
			caret++
		}
	}

	if in.Gravity == Backward && in.Autoskip && literalRun > 0 && caret >= len(out) {
		out = out[:len(out)-literalRun]
		produced = valueEnd
	}

	caret = clampInt(caret, 0, len(out))
	if len(out) > 0 {
		out = append(out, m.tail...)
	}

	return Result{
		Formatted: CaretString{
			Text:         string(out),
			Caret:        caret,
			Gravity:      in.Gravity,
			Autocomplete: in.Autocomplete,
			Autoskip:     in.Autoskip,
		},
		Value:           string(value),
		Affinity:        affinity,
		Complete:        m.completeFrom(produced),
		TailPlaceholder: placeholder(m.elements[produced:walkEnd]),
	}
}

// trimTail drops a copy of the suffix tail the mask appended on a previous
// pass, so the tail is never read back as input.
func (m *Mask) trimTail(text []rune) []rune {
	n := len(m.tail)
	if n == 0 || len(text) < n {
		return text
	}
	if string(text[len(text)-n:]) != string(m.tail) {
		return text
	}
	return text[:len(text)-n]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
