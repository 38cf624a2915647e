package validator

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// ErrSchemaMismatch is returned when a document parses but does not have the
// expected shape.
var ErrSchemaMismatch = errors.New("document does not match schema")

// Schemas for completion provider output
var (
	AnomalyListSchema = mustLoadSchema("schemas/anomalies.json")
	AttritionSchema   = mustLoadSchema("schemas/attrition.json")
)

// LoadSchema compiles an embedded JSON schema
func LoadSchema(name string) (*gojsonschema.Schema, error) {
	data, err := schemaFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", name, err)
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to load schema %s: %w", name, err)
	}
	return schema, nil
}

func mustLoadSchema(name string) *gojsonschema.Schema {
	schema, err := LoadSchema(name)
	if err != nil {
		panic(err)
	}
	return schema
}

// ValidateJSON validates a JSON document against schema. Text that is not JSON
// at all is reported as a plain error; well-formed JSON of the wrong shape
// wraps ErrSchemaMismatch.
func ValidateJSON(doc string, schema *gojsonschema.Schema) error {
	result, err := schema.Validate(gojsonschema.NewStringLoader(doc))
	if err != nil {
		return fmt.Errorf("failed to validate: %w", err)
	}

	if !result.Valid() {
		var descs []string
		for _, desc := range result.Errors() {
			descs = append(descs, desc.String())
		}
		return fmt.Errorf("%w: %s", ErrSchemaMismatch, strings.Join(descs, "; "))
	}

	return nil
}
