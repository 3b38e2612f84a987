package selector

import "github.com/goliatone/go-inputmask/pkg/mask"

// Selector picks the mask for the text of an edit.
type Selector interface {
	// Select returns the mask in should be applied to.
	Select(in mask.CaretString) *mask.Mask
	// Primary returns the mask used for placeholders and length queries
	// before any text exists.
	Primary() *mask.Mask
}

// ValueMapper is implemented by selectors that rewrite the extracted value
// of their masks, for instance to normalise a locale decimal separator.
type ValueMapper interface {
	MapValue(value string) string
}

// Apply selects a mask for in and applies the edit to it.
func Apply(s Selector, in mask.CaretString) (*mask.Mask, mask.Result) {
	m := s.Select(in)
	res := m.Apply(in)
	if vm, ok := s.(ValueMapper); ok {
		res.Value = vm.MapValue(res.Value)
	}
	return m, res
}

// Single is a Selector with one mask.
type Single struct {
	m *mask.Mask
}

// NewSingle wraps m.
func NewSingle(m *mask.Mask) *Single {
	return &Single{m: m}
}

func (s *Single) Select(mask.CaretString) *mask.Mask { return s.m }

func (s *Single) Primary() *mask.Mask { return s.m }
