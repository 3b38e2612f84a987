package selector

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-inputmask/pkg/mask"
)

const (
	// DefaultPlusFormat is used when no key matches and the text starts
	// with a plus sign.
	DefaultPlusFormat = "+[000000000000000]"
	// DefaultDigitsFormat is used when no key matches otherwise.
	DefaultDigitsFormat = "[000000000000000]"
)

var (
	defaultPlusMask   = mask.MustCompile(DefaultPlusFormat)
	defaultDigitsMask = mask.MustCompile(DefaultDigitsFormat)
)

// Keyed resolves a mask from the leading digits of the text. Longer keys win:
// with keys "7" and "375", the text "+375 29" resolves to "375".
type Keyed struct {
	masks    map[string]*mask.Mask
	longest  int
	fallback *mask.Mask

	key     string
	current *mask.Mask
}

// KeyedOption configures a Keyed selector.
type KeyedOption func(*Keyed)

// WithDefault replaces the built-in fallback masks.
func WithDefault(m *mask.Mask) KeyedOption {
	return func(k *Keyed) {
		if m != nil {
			k.fallback = m
		}
	}
}

// NewKeyed builds a Keyed selector. Keys must be non-empty digit strings.
func NewKeyed(masks map[string]*mask.Mask, opts ...KeyedOption) (*Keyed, error) {
	k := &Keyed{masks: make(map[string]*mask.Mask, len(masks))}
	for key, m := range masks {
		key = strings.TrimSpace(key)
		if key == "" || strings.IndexFunc(key, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
			return nil, fmt.Errorf("selector: key %q is not a digit string", key)
		}
		if m == nil {
			return nil, fmt.Errorf("selector: key %q has no mask", key)
		}
		if _, exists := k.masks[key]; exists {
			return nil, fmt.Errorf("selector: duplicate key %q", key)
		}
		k.masks[key] = m
		if len(key) > k.longest {
			k.longest = len(key)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt(k)
		}
	}
	return k, nil
}

// Primary returns the fallback mask used for texts with a plus sign, or the
// custom default.
func (k *Keyed) Primary() *mask.Mask {
	if k.fallback != nil {
		return k.fallback
	}
	return defaultPlusMask
}

// Key returns the key resolved by the last Select, empty when the fallback
// was used.
func (k *Keyed) Key() string { return k.key }

// Current returns the mask chosen by the last Select.
func (k *Keyed) Current() *mask.Mask { return k.current }

// Select resolves the mask for in and records it.
func (k *Keyed) Select(in mask.CaretString) *mask.Mask {
	k.key, k.current = k.Resolve(in.Text)
	return k.current
}

// Apply selects a mask and applies in to it.
func (k *Keyed) Apply(in mask.CaretString) mask.Result {
	return k.Select(in).Apply(in)
}

// Resolve returns the longest key that prefixes the digits of text, and its
// mask. Without a match it returns an empty key and the fallback mask.
func (k *Keyed) Resolve(text string) (string, *mask.Mask) {
	digits := leadingDigits(text, k.longest)
	for n := len(digits); n > 0; n-- {
		if m, ok := k.masks[digits[:n]]; ok {
			return digits[:n], m
		}
	}

	if k.fallback != nil {
		return "", k.fallback
	}
	if strings.HasPrefix(strings.TrimSpace(text), "+") {
		return "", defaultPlusMask
	}
	return "", defaultDigitsMask
}

// leadingDigits collects up to limit ASCII digits of text, skipping any
// other rune.
func leadingDigits(text string, limit int) string {
	var b strings.Builder
	for _, r := range text {
		if b.Len() >= limit {
			break
		}
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
