package phone

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/countries.yaml
var dataFS embed.FS

const defaultTablePath = "data/countries.yaml"

var (
	defaultOnce      sync.Once
	defaultCountries Countries
	defaultErr       error
)

// Country is one row of the calling-code table.
type Country struct {
	Name          string   `yaml:"name" json:"name"`
	ISO           string   `yaml:"iso" json:"iso"`
	Emoji         string   `yaml:"emoji,omitempty" json:"emoji,omitempty"`
	CallingCode   string   `yaml:"code" json:"code"`
	PrimaryFormat string   `yaml:"format" json:"format"`
	AffineFormats []string `yaml:"affine,omitempty" json:"affine,omitempty"`
}

// Matches reports whether id names the country by name, ISO code or emoji.
// The comparison ignores case and surrounding space.
func (c Country) Matches(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	return strings.EqualFold(id, c.Name) ||
		strings.EqualFold(id, c.ISO) ||
		id == c.Emoji
}

// Countries is an ordered, read-only country table.
type Countries []Country

// DefaultCountries returns a copy of the bundled table.
func DefaultCountries() (Countries, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultTablePath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		countries, err := LoadCountries(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultCountries = countries
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultCountries.clone(), nil
}

// LoadCountries decodes a YAML country list. Calling codes are reduced to
// their digits and missing emoji are derived from the ISO code.
func LoadCountries(r io.Reader) (Countries, error) {
	if r == nil {
		return nil, fmt.Errorf("phone: missing reader")
	}

	var rows Countries
	if err := yaml.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("phone: decode countries: %w", err)
	}

	seen := make(map[string]struct{}, len(rows))
	for i := range rows {
		row := &rows[i]
		row.Name = strings.TrimSpace(row.Name)
		row.ISO = strings.ToUpper(strings.TrimSpace(row.ISO))
		row.CallingCode = digitsOf(row.CallingCode)

		if row.Name == "" || len(row.ISO) != 2 {
			return nil, fmt.Errorf("phone: row %d needs a name and a two-letter ISO code", i)
		}
		if row.CallingCode == "" {
			return nil, fmt.Errorf("phone: country %s has no calling code", row.ISO)
		}
		if strings.TrimSpace(row.PrimaryFormat) == "" {
			return nil, fmt.Errorf("phone: country %s has no format", row.ISO)
		}
		if _, dup := seen[row.ISO]; dup {
			return nil, fmt.Errorf("phone: duplicate country %s", row.ISO)
		}
		seen[row.ISO] = struct{}{}

		if row.Emoji == "" {
			row.Emoji = Flag(row.ISO)
		}
	}
	return rows, nil
}

// Flag renders the regional-indicator emoji of a two-letter ISO code.
func Flag(iso string) string {
	iso = strings.ToUpper(strings.TrimSpace(iso))
	if len(iso) != 2 {
		return ""
	}
	var b strings.Builder
	for _, r := range iso {
		if r < 'A' || r > 'Z' {
			return ""
		}
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}

// Candidates returns the countries whose calling code agrees with the digits
// of text: either the code starts the digits or the digits start the code.
// Adding digits to text never adds candidates.
func (cs Countries) Candidates(text string) Countries {
	digits := digitsOf(text)
	out := make(Countries, 0, len(cs))
	for _, c := range cs {
		if strings.HasPrefix(digits, c.CallingCode) || strings.HasPrefix(c.CallingCode, digits) {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the first country matched by id.
func (cs Countries) Find(id string) (Country, error) {
	for _, c := range cs {
		if c.Matches(id) {
			return c, nil
		}
	}
	return Country{}, fmt.Errorf("%w: %q", ErrUnknownCountry, id)
}

// Filter keeps the countries named in enabled (all when enabled is empty) and
// drops those named in disabled. Unknown ids are reported as
// ErrUnknownCountry.
func (cs Countries) Filter(enabled, disabled []string) (Countries, error) {
	for _, id := range append(append([]string{}, enabled...), disabled...) {
		if _, err := cs.Find(id); err != nil {
			return nil, err
		}
	}

	out := make(Countries, 0, len(cs))
	for _, c := range cs {
		if len(enabled) > 0 && !matchesAny(c, enabled) {
			continue
		}
		if matchesAny(c, disabled) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (cs Countries) clone() Countries {
	out := make(Countries, len(cs))
	for i, c := range cs {
		c.AffineFormats = append([]string(nil), c.AffineFormats...)
		out[i] = c
	}
	return out
}

func matchesAny(c Country, ids []string) bool {
	for _, id := range ids {
		if c.Matches(id) {
			return true
		}
	}
	return false
}

func digitsOf(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
