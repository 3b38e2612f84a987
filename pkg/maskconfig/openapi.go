package maskconfig

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPI extensions read by FromOpenAPI.
const (
	ExtensionFormat   = "x-inputmask"
	ExtensionAffine   = "x-inputmask-affine"
	ExtensionAffinity = "x-inputmask-affinity"
	ExtensionRTL      = "x-inputmask-rtl"
)

// FromOpenAPI collects mask definitions from the component schemas of an
// OpenAPI 3 document. Every property carrying ExtensionFormat becomes a mask
// named "<Schema>.<property>" (nested objects add further segments); the
// property description becomes the hint.
func FromOpenAPI(ctx context.Context, data []byte, opts ...Option) (*Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("maskconfig: openapi document is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("maskconfig: load openapi document: %w", err)
	}

	o := newOptions(opts)
	set := NewSet(o.cache)
	w := &openapiWalker{set: set, seen: make(map[*openapi3.Schema]bool)}

	if doc.Components != nil {
		names := make([]string, 0, len(doc.Components.Schemas))
		for name := range doc.Components.Schemas {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			ref := doc.Components.Schemas[name]
			if ref == nil || ref.Value == nil {
				continue
			}
			if err := w.walk(name, ref.Value); err != nil {
				return nil, err
			}
		}
	}

	if err := w.walkRequestBodies(doc.Paths); err != nil {
		return nil, err
	}
	o.logger.Debug("maskconfig: loaded openapi masks", "masks", set.Len())
	return set, nil
}

type openapiWalker struct {
	set  *Set
	seen map[*openapi3.Schema]bool
}

// walkRequestBodies covers inline JSON request bodies, named after their
// operation id. Referenced schemas are already covered by the components.
func (w *openapiWalker) walkRequestBodies(paths *openapi3.Paths) error {
	if paths == nil {
		return nil
	}

	var ops []*openapi3.Operation
	for _, item := range paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op != nil && op.OperationID != "" {
				ops = append(ops, op)
			}
		}
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].OperationID < ops[j].OperationID })

	for _, op := range ops {
		if op.RequestBody == nil || op.RequestBody.Value == nil {
			continue
		}
		media := op.RequestBody.Value.Content.Get("application/json")
		if media == nil || media.Schema == nil || media.Schema.Ref != "" || media.Schema.Value == nil {
			continue
		}
		if err := w.walk(op.OperationID, media.Schema.Value); err != nil {
			return err
		}
	}
	return nil
}

func (w *openapiWalker) walk(path string, schema *openapi3.Schema) error {
	if w.seen[schema] {
		return nil
	}
	w.seen[schema] = true
	defer delete(w.seen, schema)

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		prop := ref.Value
		propPath := path + "." + name

		def, ok, err := definitionFromExtensions(propPath, prop)
		if err != nil {
			return err
		}
		if ok {
			if err := w.set.Register(def); err != nil {
				return err
			}
		}
		if err := w.walk(propPath, prop); err != nil {
			return err
		}
	}
	return nil
}

func definitionFromExtensions(name string, schema *openapi3.Schema) (Definition, bool, error) {
	rawFormat, ok := schema.Extensions[ExtensionFormat]
	if !ok {
		return Definition{}, false, nil
	}

	format, ok := rawFormat.(string)
	if !ok || strings.TrimSpace(format) == "" {
		return Definition{}, false, fmt.Errorf("%w: %s: %s must be a non-empty string", ErrInvalidDocument, name, ExtensionFormat)
	}
	file := maskFile{Format: format, Hint: schema.Description}

	if raw, ok := schema.Extensions[ExtensionAffine]; ok {
		items, ok := raw.([]any)
		if !ok {
			return Definition{}, false, fmt.Errorf("%w: %s: %s must be a list", ErrInvalidDocument, name, ExtensionAffine)
		}
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return Definition{}, false, fmt.Errorf("%w: %s: %s must list strings", ErrInvalidDocument, name, ExtensionAffine)
			}
			file.Affine = append(file.Affine, s)
		}
	}
	if raw, ok := schema.Extensions[ExtensionAffinity]; ok {
		s, _ := raw.(string)
		file.Affinity = s
	}
	if raw, ok := schema.Extensions[ExtensionRTL]; ok {
		b, _ := raw.(bool)
		file.RTL = b
	}

	def, err := normaliseMask(name, "openapi", file, nil)
	if err != nil {
		return Definition{}, false, err
	}
	return def, true, nil
}
