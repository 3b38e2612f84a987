package maskconfig

import (
	"fmt"

	"github.com/goliatone/go-inputmask/pkg/mask"
)

// Kind names the selector a Definition builds.
type Kind string

const (
	KindSingle Kind = "single"
	KindPoly   Kind = "poly"
	KindKeyed  Kind = "keyed"
)

// NotationConfig is the declarative form of mask.Notation.
type NotationConfig struct {
	Symbol     string `json:"symbol"`
	Characters string `json:"characters"`
	Optional   bool   `json:"optional,omitempty"`
}

// Notation converts the config into a mask.Notation.
func (n NotationConfig) Notation() (mask.Notation, error) {
	runes := []rune(n.Symbol)
	if len(runes) != 1 {
		return mask.Notation{}, fmt.Errorf("maskconfig: notation symbol %q must be a single character", n.Symbol)
	}
	return mask.Notation{Symbol: runes[0], Characters: n.Characters, Optional: n.Optional}, nil
}

// Definition is one named mask.
type Definition struct {
	Name        string                `json:"name"`
	Source      string                `json:"source,omitempty"`
	Format      string                `json:"format,omitempty"`
	Affine      []string              `json:"affine,omitempty"`
	Affinity    mask.AffinityStrategy `json:"affinity"`
	Keys        map[string]string     `json:"keys,omitempty"`
	Default     string                `json:"default,omitempty"`
	Hint        string                `json:"hint,omitempty"`
	RightToLeft bool                  `json:"rtl,omitempty"`
	Notations   []NotationConfig      `json:"notations,omitempty"`
}

// Kind reports which selector the definition builds.
func (d Definition) Kind() Kind {
	switch {
	case len(d.Keys) > 0:
		return KindKeyed
	case len(d.Affine) > 0:
		return KindPoly
	default:
		return KindSingle
	}
}

// Formats lists every format of the definition: the primary, the affine
// alternatives, then keyed formats in key order.
func (d Definition) Formats() []string {
	var out []string
	if d.Format != "" {
		out = append(out, d.Format)
	}
	out = append(out, d.Affine...)
	for _, key := range sortedKeys(d.Keys) {
		out = append(out, d.Keys[key])
	}
	if d.Default != "" {
		out = append(out, d.Default)
	}
	return out
}

// MaskNotations converts the definition's notations.
func (d Definition) MaskNotations() ([]mask.Notation, error) {
	out := make([]mask.Notation, 0, len(d.Notations))
	for _, n := range d.Notations {
		converted, err := n.Notation()
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

func (d Definition) clone() Definition {
	out := d
	out.Affine = append([]string(nil), d.Affine...)
	out.Notations = append([]NotationConfig(nil), d.Notations...)
	if len(d.Keys) > 0 {
		out.Keys = make(map[string]string, len(d.Keys))
		for k, v := range d.Keys {
			out.Keys[k] = v
		}
	}
	return out
}

// mergeNotations returns the document notations overridden by the mask's own
// notations with the same symbol.
func mergeNotations(document, local []NotationConfig) []NotationConfig {
	if len(document) == 0 {
		return append([]NotationConfig(nil), local...)
	}
	out := make([]NotationConfig, 0, len(document)+len(local))
	overridden := make(map[string]struct{}, len(local))
	for _, n := range local {
		overridden[n.Symbol] = struct{}{}
	}
	for _, n := range document {
		if _, ok := overridden[n.Symbol]; !ok {
			out = append(out, n)
		}
	}
	return append(out, local...)
}
