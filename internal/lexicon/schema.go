package lexicon

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://genero-rules.json"

var stringList = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

var genderEnum = map[string]any{
	"type": "string",
	"enum": []any{"masculino", "femenino"},
}

// rulesSchema describes File.
var rulesSchema = map[string]any{
	"type":     "object",
	"required": []any{"version", "masculine", "feminine", "rules"},
	"properties": map[string]any{
		"version":   map[string]any{"type": "string", "minLength": 2},
		"masculine": stringList,
		"feminine":  stringList,
		"compounds": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"first", "second", "gender"},
				"properties": map[string]any{
					"first":  map[string]any{"type": "string", "minLength": 1},
					"second": map[string]any{"type": "string", "minLength": 1},
					"gender": genderEnum,
				},
				"additionalProperties": false,
			},
		},
		"rules": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"name", "gender", "suffixes"},
				"properties": map[string]any{
					"name":       map[string]any{"type": "string"},
					"gender":     genderEnum,
					"suffixes":   map[string]any{"type": "array", "minItems": 1, "items": map[string]any{"type": "string", "minLength": 1}},
					"exceptions": stringList,
					"guarded":    stringList,
					"trusted":    stringList,
				},
				"additionalProperties": false,
			},
		},
	},
	"additionalProperties": false,
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler wants a decoded JSON value, not Go maps with typed slices.
	defBytes, err := json.Marshal(rulesSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// validateDocument checks raw against the rules schema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile rules schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
