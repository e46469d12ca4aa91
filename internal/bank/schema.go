package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema is the JSON Schema every topic file must satisfy before
// it is decoded. Structural checks that a schema cannot express (duplicate
// IDs, answer index in range) live in validateCatalog.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"topic": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":     map[string]any{"type": "string", "minLength": 1},
					"prompt": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"minItems": OptionCount,
						"maxItems": OptionCount,
						"items":    map[string]any{"type": "string", "minLength": 1},
					},
					"answer":      map[string]any{"type": "integer", "minimum": 0, "maximum": OptionCount - 1},
					"reference":   map[string]any{"type": "string"},
					"explanation": map[string]any{"type": "string"},
				},
				"required":             []any{"id", "prompt", "options", "answer"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"topic", "questions"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateAgainstSchema checks raw catalog JSON against catalogSchema.
func validateAgainstSchema(raw []byte) error {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-catalog.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	if compileErr != nil {
		return fmt.Errorf("compile catalog schema: %w", compileErr)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
