package phone

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/selector"
)

// FallbackFormat formats numbers whose country is not yet known.
const FallbackFormat = "+[000] [000] [000] [00] [00]"

// Selector picks a phone mask from the calling code typed so far. It is a
// selector.Selector.
type Selector struct {
	countries      Countries
	enabled        []string
	disabled       []string
	strategy       mask.AffinityStrategy
	notations      []mask.Notation
	fallbackFormat string
	cache          *mask.Cache

	fallback   *mask.Mask
	polys      map[string]*selector.Poly
	country    *Country
	candidates Countries
}

// Option configures a Selector.
type Option func(*Selector)

// WithCountries replaces the bundled table.
func WithCountries(countries Countries) Option {
	return func(s *Selector) {
		if countries != nil {
			s.countries = countries.clone()
		}
	}
}

// WithEnabled restricts the table to the named countries.
func WithEnabled(ids ...string) Option {
	return func(s *Selector) {
		s.enabled = append(s.enabled, ids...)
	}
}

// WithDisabled removes the named countries from the table.
func WithDisabled(ids ...string) Option {
	return func(s *Selector) {
		s.disabled = append(s.disabled, ids...)
	}
}

// WithAffinityStrategy sets how a country's primary and affine formats are
// ranked. Prefix is the default.
func WithAffinityStrategy(strategy mask.AffinityStrategy) Option {
	return func(s *Selector) {
		s.strategy = strategy
	}
}

// WithNotations makes custom notations available to the country formats.
func WithNotations(notations ...mask.Notation) Option {
	return func(s *Selector) {
		s.notations = append(s.notations, notations...)
	}
}

// WithFallbackFormat replaces FallbackFormat.
func WithFallbackFormat(format string) Option {
	return func(s *Selector) {
		if strings.TrimSpace(format) != "" {
			s.fallbackFormat = format
		}
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

// NewSelector builds a Selector. Every format of the filtered table is
// compiled up front, so malformed formats surface here.
func NewSelector(opts ...Option) (*Selector, error) {
	s := &Selector{
		strategy:       mask.Prefix,
		fallbackFormat: FallbackFormat,
		polys:          make(map[string]*selector.Poly),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.cache == nil {
		s.cache = mask.NewCache()
	}
	if s.countries == nil {
		countries, err := DefaultCountries()
		if err != nil {
			return nil, err
		}
		s.countries = countries
	}

	filtered, err := s.countries.Filter(s.enabled, s.disabled)
	if err != nil {
		return nil, err
	}
	s.countries = filtered

	s.fallback, err = s.cache.Get(s.fallbackFormat, s.notations...)
	if err != nil {
		return nil, fmt.Errorf("phone: fallback format: %w", err)
	}
	for _, c := range s.countries {
		if _, err := s.poly(c); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Primary returns the fallback mask.
func (s *Selector) Primary() *mask.Mask { return s.fallback }

// Table returns the filtered country table.
func (s *Selector) Table() Countries { return s.countries.clone() }

// Country returns the country resolved by the last Select.
func (s *Selector) Country() (Country, bool) {
	if s.country == nil {
		return Country{}, false
	}
	return *s.country, true
}

// Countries returns the candidates computed by the last Select.
func (s *Selector) Countries() Countries { return s.candidates.clone() }

// Select narrows the candidate countries for in and returns the mask to use.
func (s *Selector) Select(in mask.CaretString) *mask.Mask {
	s.candidates = s.countries.Candidates(in.Text)
	s.country = resolve(s.candidates, digitsOf(in.Text))
	if s.country == nil {
		return s.fallback
	}

	poly, err := s.poly(*s.country)
	if err != nil {
		// formats were compiled in NewSelector
		return s.fallback
	}
	return poly.Select(in)
}

// Apply selects a mask and applies in to it.
func (s *Selector) Apply(in mask.CaretString) mask.Result {
	return s.Select(in).Apply(in)
}

// resolve returns the first candidate once every candidate shares one calling
// code and the digits already contain it.
func resolve(candidates Countries, digits string) *Country {
	if len(candidates) == 0 {
		return nil
	}
	code := candidates[0].CallingCode
	if !strings.HasPrefix(digits, code) {
		return nil
	}
	for _, c := range candidates[1:] {
		if c.CallingCode != code {
			return nil
		}
	}
	country := candidates[0]
	return &country
}

func (s *Selector) poly(c Country) (*selector.Poly, error) {
	if p, ok := s.polys[c.ISO]; ok {
		return p, nil
	}

	primary, err := s.cache.Get(c.PrimaryFormat, s.notations...)
	if err != nil {
		return nil, fmt.Errorf("phone: country %s: %w", c.ISO, err)
	}
	affine := make([]*mask.Mask, 0, len(c.AffineFormats))
	for _, format := range c.AffineFormats {
		m, err := s.cache.Get(format, s.notations...)
		if err != nil {
			return nil, fmt.Errorf("phone: country %s: %w", c.ISO, err)
		}
		affine = append(affine, m)
	}

	p := selector.NewPoly(primary, affine, s.strategy)
	s.polys[c.ISO] = p
	return p, nil
}
