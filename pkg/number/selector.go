package number

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/goliatone/go-inputmask/pkg/mask"
)

// nonZero fills the leading digit of a non-zero integer part.
var nonZero = mask.Notation{Symbol: '1', Characters: "123456789"}

// Selector builds a number mask for each edit. It is a selector.Selector and
// a selector.ValueMapper.
type Selector struct {
	tag         language.Tag
	unit        currency.Unit
	hasUnit     bool
	maxInteger  int
	maxFraction int
	cache       *mask.Cache

	printer *message.Printer
	symbol  string
	decimal string
	group   string

	primary *mask.Mask
	current *mask.Mask
}

// NewSelector builds a Selector for the configured locale and currency.
func NewSelector(opts ...Option) (*Selector, error) {
	s := &Selector{
		tag:         language.English,
		maxInteger:  DefaultMaxIntegerDigits,
		maxFraction: -1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.cache == nil {
		s.cache = mask.NewCache()
	}

	s.printer = message.NewPrinter(s.tag)
	s.decimal = separatorOf(s.printer.Sprintf("%.1f", 1.5))
	s.group = separatorOf(s.printer.Sprintf("%d", 1234567))
	if s.decimal == "" {
		s.decimal = "."
	}

	if s.hasUnit {
		s.symbol = s.printer.Sprint(currency.Symbol(s.unit))
		scale, _ := currency.Standard.Rounding(s.unit)
		if s.maxFraction < 0 || scale < s.maxFraction {
			s.maxFraction = scale
		}
	}

	primary, err := s.compile(parts{integer: "0"})
	if err != nil {
		return nil, fmt.Errorf("number: %w", err)
	}
	s.primary = primary
	return s, nil
}

// Locale returns the locale the selector formats for.
func (s *Selector) Locale() language.Tag { return s.tag }

// DecimalSeparator returns the locale decimal separator.
func (s *Selector) DecimalSeparator() string { return s.decimal }

// Symbol returns the currency symbol, or "" without a currency.
func (s *Selector) Symbol() string { return s.symbol }

// Primary returns the mask of an empty number.
func (s *Selector) Primary() *mask.Mask { return s.primary }

// Current returns the mask built by the last Select.
func (s *Selector) Current() *mask.Mask { return s.current }

// Select builds the mask for the number in in.
func (s *Selector) Select(in mask.CaretString) *mask.Mask {
	m, err := s.compile(s.parse(in.Text))
	if err != nil {
		// generated formats quote every literal
		m = s.primary
	}
	s.current = m
	return m
}

// Apply selects a mask, applies in to it and normalises the value.
func (s *Selector) Apply(in mask.CaretString) mask.Result {
	res := s.Select(in).Apply(in)
	res.Value = s.MapValue(res.Value)
	return res
}

// MapValue replaces the locale decimal separator with `.`.
func (s *Selector) MapValue(value string) string {
	if s.decimal == "." {
		return value
	}
	return strings.Replace(value, s.decimal, ".", 1)
}

type parts struct {
	integer    string
	fraction   string
	hasDecimal bool
}

// parse reduces text to its integer and fraction digits. The currency symbol
// and group separators are ignored; the first decimal separator (the locale
// one, or `.` where `.` does not group) splits the parts and later ones are
// dropped.
func (s *Selector) parse(text string) parts {
	if s.symbol != "" {
		text = strings.Replace(text, s.symbol, "", 1)
	}

	var (
		p       parts
		integer strings.Builder
		frac    strings.Builder
	)
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			if p.hasDecimal {
				frac.WriteRune(r)
			} else {
				integer.WriteRune(r)
			}
		case s.isDecimal(r):
			if s.maxFraction != 0 {
				p.hasDecimal = true
			}
		}
	}

	p.integer = strings.TrimLeft(integer.String(), "0")
	if len(p.integer) > s.maxInteger {
		p.integer = p.integer[:s.maxInteger]
	}
	if p.integer == "" {
		p.integer = "0"
	}

	p.fraction = frac.String()
	if s.maxFraction >= 0 && len(p.fraction) > s.maxFraction {
		p.fraction = p.fraction[:s.maxFraction]
	}
	return p
}

func (s *Selector) isDecimal(r rune) bool {
	if string(r) == s.decimal {
		return true
	}
	return r == '.' && s.group != "."
}

func (s *Selector) compile(p parts) (*mask.Mask, error) {
	n, err := strconv.ParseInt(p.integer, 10, 64)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	// x/text/currency formats amounts symbol first for every locale.
	if s.symbol != "" {
		b.WriteString(mask.QuoteLiteral(s.symbol))
		if r := lastRune(s.symbol); unicode.IsLetter(r) {
			b.WriteByte(' ')
		}
	}

	first := n != 0
	for _, r := range s.printer.Sprintf("%d", n) {
		switch {
		case unicode.IsDigit(r) && first:
			b.WriteString("[1]")
			first = false
		case unicode.IsDigit(r):
			b.WriteString("[0]")
		default:
			b.WriteString(mask.QuoteLiteral(string(r)))
		}
	}

	if p.hasDecimal {
		b.WriteString("{" + mask.QuoteLiteral(s.decimal) + "}")
		b.WriteString(strings.Repeat("[0]", len(p.fraction)))
	}

	return s.cache.Get(b.String(), nonZero)
}

// separatorOf returns the first run of non-digit runes in formatted.
func separatorOf(formatted string) string {
	var b strings.Builder
	for _, r := range formatted {
		if unicode.IsDigit(r) {
			if b.Len() > 0 {
				break
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func lastRune(s string) rune {
	rs := []rune(s)
	if len(rs) == 0 {
		return 0
	}
	return rs[len(rs)-1]
}
