package mask

import (
	"sort"
	"strings"
	"unicode"
)

// Notation declares a custom slot symbol. Inside a slot group the symbol
// accepts any rune listed in Characters. Notations override built-in symbols
// with the same rune.
type Notation struct {
	Symbol     rune
	Characters string
	Optional   bool
}

// Class identifies the runes a slot accepts.
type Class uint8

const (
	ClassDigit Class = iota + 1
	ClassLetter
	ClassAlphaNumeric
	ClassCustom
)

func (c Class) String() string {
	switch c {
	case ClassDigit:
		return "digit"
	case ClassLetter:
		return "letter"
	case ClassAlphaNumeric:
		return "alphanumeric"
	case ClassCustom:
		return "custom"
	default:
		return "unknown"
	}
}

type builtin struct {
	class    Class
	optional bool
}

var builtins = map[rune]builtin{
	'0': {class: ClassDigit},
	'9': {class: ClassDigit, optional: true},
	'A': {class: ClassLetter},
	'a': {class: ClassLetter, optional: true},
	'_': {class: ClassAlphaNumeric},
	'-': {class: ClassAlphaNumeric, optional: true},
}

const reservedSymbols = "[]{}\\#"

func notationTable(format string, notations []Notation) (map[rune]Notation, error) {
	if len(notations) == 0 {
		return nil, nil
	}
	table := make(map[rune]Notation, len(notations))
	for _, n := range notations {
		if n.Symbol == 0 || unicode.IsSpace(n.Symbol) {
			return nil, malformed(format, -1, "notation symbol must be a visible rune")
		}
		if strings.ContainsRune(reservedSymbols, n.Symbol) {
			return nil, malformed(format, -1, "notation symbol %q is reserved", n.Symbol)
		}
		if n.Characters == "" {
			return nil, malformed(format, -1, "notation %q accepts no characters", n.Symbol)
		}
		if _, exists := table[n.Symbol]; exists {
			return nil, malformed(format, -1, "notation %q declared twice", n.Symbol)
		}
		table[n.Symbol] = n
	}
	return table, nil
}

// notationKey renders notations in a stable order for cache lookups.
func notationKey(notations []Notation) string {
	if len(notations) == 0 {
		return ""
	}
	sorted := append([]Notation(nil), notations...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Symbol < sorted[j].Symbol })

	var b strings.Builder
	for _, n := range sorted {
		b.WriteRune(n.Symbol)
		b.WriteByte(':')
		b.WriteString(n.Characters)
		if n.Optional {
			b.WriteString(":?")
		}
		b.WriteByte(0)
	}
	return b.String()
}
