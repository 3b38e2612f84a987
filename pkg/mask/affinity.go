package mask

import (
	"fmt"
	"math"
	"strings"
)

// AffinityStrategy scores how well a text fits a mask. Higher scores win.
type AffinityStrategy uint8

const (
	// WholeString scores the Result.Affinity of applying the mask to the
	// whole text.
	WholeString AffinityStrategy = iota
	// Prefix scores the length of the common prefix shared by the text and
	// its formatted form. It suits alternatives that only append a suffix to
	// the primary format.
	Prefix
	// Capacity prefers the mask whose length is closest to the text without
	// being shorter than it.
	Capacity
)

func (s AffinityStrategy) String() string {
	switch s {
	case Prefix:
		return "prefix"
	case Capacity:
		return "capacity"
	default:
		return "whole_string"
	}
}

// ParseAffinityStrategy parses the names produced by String. Dashes and case
// are ignored and an empty name selects WholeString.
func ParseAffinityStrategy(raw string) (AffinityStrategy, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.ReplaceAll(name, "-", "_")
	switch name {
	case "", "whole_string", "wholestring":
		return WholeString, nil
	case "prefix":
		return Prefix, nil
	case "capacity":
		return Capacity, nil
	default:
		return WholeString, fmt.Errorf("mask: unknown affinity strategy %q", raw)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s AffinityStrategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *AffinityStrategy) UnmarshalText(text []byte) error {
	parsed, err := ParseAffinityStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Score rates m against in.
func (s AffinityStrategy) Score(m *Mask, in CaretString) int {
	switch s {
	case Prefix:
		res := m.Apply(in)
		return commonPrefix([]rune(res.Formatted.Text), []rune(in.Text))
	case Capacity:
		length := len([]rune(in.Text))
		if length > m.TotalTextLength() {
			return math.MinInt
		}
		return length - m.TotalTextLength()
	default:
		return m.Apply(in).Affinity
	}
}

func commonPrefix(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
