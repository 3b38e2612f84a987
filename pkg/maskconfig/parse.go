package maskconfig

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-inputmask/pkg/mask"
)

type documentFile struct {
	Notations []NotationConfig    `json:"notations"`
	Masks     map[string]maskFile `json:"masks"`
}

type maskFile struct {
	Format    string            `json:"format"`
	Affine    []string          `json:"affine"`
	Affinity  string            `json:"affinity"`
	Keys      map[string]string `json:"keys"`
	Default   string            `json:"default"`
	Hint      string            `json:"hint"`
	RTL       bool              `json:"rtl"`
	Notations []NotationConfig  `json:"notations"`
}

// Parse decodes one mask set document. The syntax follows the extension of
// source (.json, .yaml, .yml or .toml); other names are tried as JSON, then
// YAML, then TOML. Definitions are returned sorted by name.
func Parse(data []byte, source string) ([]Definition, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidDocument, source)
	}

	raw, err := decode(data, source)
	if err != nil {
		return nil, err
	}
	instance, err := jsonCompatible(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, source, err)
	}
	if err := validate(instance, source); err != nil {
		return nil, err
	}

	// The validated tree is re-encoded so every syntax shares one decoder.
	normalised, err := json.Marshal(instance)
	if err != nil {
		return nil, fmt.Errorf("maskconfig: encode %s: %w", source, err)
	}
	var doc documentFile
	if err := json.Unmarshal(normalised, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, source, err)
	}

	names := make([]string, 0, len(doc.Masks))
	for name := range doc.Masks {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]Definition, 0, len(names))
	for _, name := range names {
		def, err := normaliseMask(name, source, doc.Masks[name], doc.Notations)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func decode(data []byte, source string) (any, error) {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".json":
		return decodeJSON(data, source)
	case ".yaml", ".yml":
		return decodeYAML(data, source)
	case ".toml":
		return decodeTOML(data, source)
	}

	if v, err := decodeJSON(data, source); err == nil {
		return v, nil
	}
	if v, err := decodeYAML(data, source); err == nil {
		return v, nil
	}
	if v, err := decodeTOML(data, source); err == nil {
		return v, nil
	}
	return nil, fmt.Errorf("%w: parse %s: invalid JSON, YAML or TOML", ErrInvalidDocument, source)
}

func decodeJSON(data []byte, source string) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidDocument, source, err)
	}
	return v, nil
}

func decodeYAML(data []byte, source string) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidDocument, source, err)
	}
	return v, nil
}

func decodeTOML(data []byte, source string) (any, error) {
	var v map[string]any
	if _, err := toml.Decode(string(data), &v); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidDocument, source, err)
	}
	return v, nil
}

// jsonCompatible rewrites decoder output into the shapes encoding/json
// produces: string-keyed maps, []any and float64 numbers.
func jsonCompatible(v any) (any, error) {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			converted, err := jsonCompatible(item)
			if err != nil {
				return nil, err
			}
			out[k] = converted
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			converted, err := jsonCompatible(item)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(k)] = converted
		}
		return out, nil
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			converted, err := jsonCompatible(item)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	case []map[string]any:
		out := make([]any, len(x))
		for i, item := range x {
			converted, err := jsonCompatible(item)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case float64, string, bool, nil:
		return x, nil
	default:
		return nil, fmt.Errorf("unsupported value %T", v)
	}
}

func normaliseMask(name, source string, raw maskFile, notations []NotationConfig) (Definition, error) {
	affinity, err := mask.ParseAffinityStrategy(raw.Affinity)
	if err != nil {
		return Definition{}, fmt.Errorf("%w: %s: mask %q: %v", ErrInvalidDocument, source, name, err)
	}

	def := Definition{
		Name:        name,
		Source:      source,
		Format:      raw.Format,
		Affine:      append([]string(nil), raw.Affine...),
		Affinity:    affinity,
		Default:     raw.Default,
		Hint:        sanitizeHint(raw.Hint),
		RightToLeft: raw.RTL,
		Notations:   mergeNotations(notations, raw.Notations),
	}
	if len(raw.Keys) > 0 {
		def.Keys = make(map[string]string, len(raw.Keys))
		for k, v := range raw.Keys {
			def.Keys[k] = v
		}
	}

	if err := check(def); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// check compiles every format of def so broken patterns fail at load time.
func check(def Definition) error {
	notations, err := def.MaskNotations()
	if err != nil {
		return fmt.Errorf("%w: %s: mask %q: %v", ErrInvalidDocument, def.Source, def.Name, err)
	}
	for _, format := range def.Formats() {
		if _, err := mask.Compile(format, notations...); err != nil {
			return fmt.Errorf("maskconfig: %s: mask %q: %w", def.Source, def.Name, err)
		}
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
