package maskconfig

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://github.com/goliatone/go-inputmask/maskset.schema.json"

//go:embed schema/maskset.schema.json
var schemaFS embed.FS

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// SchemaJSON returns the JSON Schema mask set documents are validated
// against.
func SchemaJSON() []byte {
	data, err := schemaFS.ReadFile("schema/maskset.schema.json")
	if err != nil {
		panic(err)
	}
	return data
}

func documentSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(SchemaJSON())); err != nil {
			schemaErr = fmt.Errorf("maskconfig: add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("maskconfig: compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// validate checks a JSON-compatible document against the mask set schema.
func validate(instance any, source string) error {
	schema, err := documentSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDocument, source, err)
	}
	return nil
}
