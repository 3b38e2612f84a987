package mask

import (
	"sort"
)

type scanState uint8

const (
	scanTop scanState = iota
	scanSlots
	scanFixed
)

// Compile parses format into an immutable Mask. Every error it returns is a
// *MalformedPatternError.
func Compile(format string, notations ...Notation) (*Mask, error) {
	table, err := notationTable(format, notations)
	if err != nil {
		return nil, err
	}

	c := &compiler{format: format, notations: table}
	elements, err := c.run()
	if err != nil {
		return nil, err
	}

	return newMask(format, notations, elements), nil
}

// MustCompile is like Compile but panics on error. It is meant for patterns
// known at build time.
func MustCompile(format string, notations ...Notation) *Mask {
	m, err := Compile(format, notations...)
	if err != nil {
		panic(err)
	}
	return m
}

// IsValid reports whether format compiles with the given notations.
func IsValid(format string, notations ...Notation) bool {
	_, err := Compile(format, notations...)
	return err == nil
}

type compiler struct {
	format    string
	notations map[rune]Notation

	elements   []Element
	group      []Element
	groupStart int
	groups     int
	suffix     bool
}

func (c *compiler) run() ([]Element, error) {
	runes := []rune(c.format)
	state := scanTop

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\\' {
			if i+1 >= len(runes) {
				return nil, malformed(c.format, i, "dangling escape")
			}
			if state == scanSlots {
				return nil, malformed(c.format, i, "escape inside slot group")
			}
			i++
			c.literal(runes[i], state == scanFixed)
			continue
		}

		switch state {
		case scanTop:
			switch r {
			case '[':
				state = scanSlots
				c.groupStart = i
				c.group = c.group[:0]
			case '{':
				state = scanFixed
				c.groupStart = i
				c.groups++
			case ']', '}':
				return nil, malformed(c.format, i, "unbalanced %q", r)
			case '#':
				if c.suffix {
					return nil, malformed(c.format, i, "repeated suffix marker")
				}
				c.suffix = true
			default:
				c.literal(r, false)
			}

		case scanSlots:
			switch r {
			case ']':
				if err := c.closeGroup(); err != nil {
					return nil, err
				}
				state = scanTop
			case '[', '{', '}':
				return nil, malformed(c.format, i, "unexpected %q inside slot group", r)
			default:
				el, ok := c.slot(r)
				if !ok {
					return nil, malformed(c.format, i, "unknown slot symbol %q", r)
				}
				c.group = append(c.group, el)
			}

		case scanFixed:
			switch r {
			case '}':
				if c.groupStart == i-1 {
					return nil, malformed(c.format, c.groupStart, "empty fixed group")
				}
				state = scanTop
			case '[', '{', ']':
				return nil, malformed(c.format, i, "unexpected %q inside fixed group", r)
			default:
				c.literal(r, true)
			}
		}
	}

	switch state {
	case scanSlots:
		return nil, malformed(c.format, c.groupStart, "unclosed %q", '[')
	case scanFixed:
		return nil, malformed(c.format, c.groupStart, "unclosed %q", '{')
	}

	return c.elements, nil
}

func (c *compiler) literal(r rune, fixed bool) {
	el := Element{Kind: KindLiteral, Char: r, Suffix: c.suffix}
	if fixed {
		el.Kind = KindFixed
		el.group = c.groups
	}
	c.elements = append(c.elements, el)
}

func (c *compiler) slot(r rune) (Element, bool) {
	if n, ok := c.notations[r]; ok {
		return Element{
			Kind:       KindSlot,
			Char:       r,
			Class:      ClassCustom,
			Optional:   n.Optional,
			Characters: n.Characters,
			Suffix:     c.suffix,
		}, true
	}
	if b, ok := builtins[r]; ok {
		return Element{
			Kind:     KindSlot,
			Char:     r,
			Class:    b.class,
			Optional: b.optional,
			Suffix:   c.suffix,
		}, true
	}
	return Element{}, false
}

// closeGroup validates the pending slot group and moves mandatory slots ahead
// of optional ones, so `[0909]` behaves as `[0099]`.
func (c *compiler) closeGroup() error {
	if len(c.group) == 0 {
		return malformed(c.format, c.groupStart, "empty slot group")
	}

	var class Class
	for _, el := range c.group {
		if el.Class == ClassCustom {
			continue
		}
		if class != 0 && class != el.Class {
			return malformed(c.format, c.groupStart, "slot group mixes %s and %s symbols", class, el.Class)
		}
		class = el.Class
	}

	sort.SliceStable(c.group, func(i, j int) bool {
		return !c.group[i].Optional && c.group[j].Optional
	})

	c.groups++
	for _, el := range c.group {
		el.group = c.groups
		c.elements = append(c.elements, el)
	}
	c.group = c.group[:0]
	return nil
}
