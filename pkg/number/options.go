package number

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/goliatone/go-inputmask/pkg/mask"
)

const (
	// DefaultMaxIntegerDigits bounds the integer part so it fits an int64.
	DefaultMaxIntegerDigits = 15
	maxIntegerDigitsLimit   = 18
)

// Option configures a Selector.
type Option func(*Selector)

// WithLocale sets the locale used for grouping and the decimal separator.
// English is the default.
func WithLocale(tag language.Tag) Option {
	return func(s *Selector) {
		s.tag = tag
	}
}

// WithCurrency prefixes the text with the currency symbol of unit and caps
// the fraction at the currency's standard scale.
func WithCurrency(unit currency.Unit) Option {
	return func(s *Selector) {
		s.unit = unit
		s.hasUnit = true
	}
}

// WithMaxFractionDigits caps the number of fraction digits. Zero disables the
// decimal separator; a negative value removes the cap.
func WithMaxFractionDigits(n int) Option {
	return func(s *Selector) {
		s.maxFraction = n
	}
}

// WithMaxIntegerDigits caps the number of integer digits. Values outside
// 1..18 are clamped.
func WithMaxIntegerDigits(n int) Option {
	return func(s *Selector) {
		s.maxInteger = clampDigits(n)
	}
}

// WithCache shares a compile cache between selectors.
func WithCache(cache *mask.Cache) Option {
	return func(s *Selector) {
		if cache != nil {
			s.cache = cache
		}
	}
}

func clampDigits(n int) int {
	if n < 1 {
		return 1
	}
	if n > maxIntegerDigitsLimit {
		return maxIntegerDigitsLimit
	}
	return n
}
