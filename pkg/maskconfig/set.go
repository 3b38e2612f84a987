package maskconfig

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/selector"
)

// Set stores mask definitions by name and builds selectors from them.
type Set struct {
	mu    sync.RWMutex
	masks map[string]Definition
	cache *mask.Cache
}

// NewSet creates an empty set. Selectors built from the set share cache; a
// nil cache gets a private one.
func NewSet(cache *mask.Cache) *Set {
	if cache == nil {
		cache = mask.NewCache()
	}
	return &Set{
		masks: make(map[string]Definition),
		cache: cache,
	}
}

// Register adds def under def.Name. Every format is compiled first.
func (s *Set) Register(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("maskconfig: mask name is required")
	}
	if err := check(def); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, exists := s.masks[def.Name]; exists {
		return fmt.Errorf("%w: %q (%s and %s)", ErrDuplicateMask, def.Name, existing.Source, def.Source)
	}
	s.masks[def.Name] = def.clone()
	return nil
}

// MustRegister panics on registration failure.
func (s *Set) MustRegister(def Definition) {
	if err := s.Register(def); err != nil {
		panic(err)
	}
}

// Get returns the definition registered under name.
func (s *Set) Get(name string) (Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	def, ok := s.masks[name]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownMask, name)
	}
	return def.clone(), nil
}

// List returns the sorted mask names.
func (s *Set) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.masks))
	for name := range s.masks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns every definition sorted by name.
func (s *Set) Definitions() []Definition {
	names := s.List()
	out := make([]Definition, 0, len(names))
	for _, name := range names {
		if def, err := s.Get(name); err == nil {
			out = append(out, def)
		}
	}
	return out
}

// Has reports whether name is registered.
func (s *Set) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.masks[name]
	return ok
}

// Len returns the number of definitions.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.masks)
}

// Selector builds a fresh selector for the named mask. Selectors carry the
// state of one field and must not be shared between fields.
func (s *Set) Selector(name string) (selector.Selector, error) {
	def, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	return s.build(def)
}

func (s *Set) build(def Definition) (selector.Selector, error) {
	notations, err := def.MaskNotations()
	if err != nil {
		return nil, err
	}
	get := func(format string) (*mask.Mask, error) {
		if def.RightToLeft {
			format = mask.ReverseFormat(format)
		}
		m, err := s.cache.Get(format, notations...)
		if err != nil {
			return nil, fmt.Errorf("maskconfig: mask %q: %w", def.Name, err)
		}
		return m, nil
	}

	switch def.Kind() {
	case KindKeyed:
		masks := make(map[string]*mask.Mask, len(def.Keys))
		for key, format := range def.Keys {
			m, err := get(format)
			if err != nil {
				return nil, err
			}
			masks[key] = m
		}
		var opts []selector.KeyedOption
		if def.Default != "" {
			m, err := get(def.Default)
			if err != nil {
				return nil, err
			}
			opts = append(opts, selector.WithDefault(m))
		}
		keyed, err := selector.NewKeyed(masks, opts...)
		if err != nil {
			return nil, fmt.Errorf("maskconfig: mask %q: %w", def.Name, err)
		}
		return keyed, nil

	case KindPoly:
		primary, err := get(def.Format)
		if err != nil {
			return nil, err
		}
		affine := make([]*mask.Mask, 0, len(def.Affine))
		for _, format := range def.Affine {
			m, err := get(format)
			if err != nil {
				return nil, err
			}
			affine = append(affine, m)
		}
		return selector.NewPoly(primary, affine, def.Affinity), nil

	default:
		m, err := get(def.Format)
		if err != nil {
			return nil, err
		}
		return selector.NewSingle(m), nil
	}
}
