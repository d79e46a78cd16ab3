package schedule

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Wire-level JSON Schemas for the two payload element shapes. Each
// element is validated against its schema before decoding; semantic
// normalization (id coercion, name trimming, palette fallback) stays in
// the parse functions.

var entrySchema = mustCompileSchema("schedule_entry", map[string]any{
	"type":     "object",
	"required": []string{"name", "days", "hour"},
	"properties": map[string]any{
		"id":      map[string]any{"type": []string{"string", "integer"}},
		"name":    map[string]any{"type": "string", "minLength": 1},
		"teacher": map[string]any{"type": "string"},
		"room":    map[string]any{"type": "string"},
		"days": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":    "integer",
				"minimum": DayMin,
				"maximum": DayMax,
			},
		},
		"hour": map[string]any{
			"type":    "integer",
			"minimum": HourMin,
			"maximum": HourMax,
		},
		"color": map[string]any{"type": "string"},
	},
})

var operationSchema = mustCompileSchema("schedule_operation", map[string]any{
	"type":     "object",
	"required": []string{"action", "day", "hour"},
	"properties": map[string]any{
		"action": map[string]any{
			"enum": []string{"add", "update", "remove"},
		},
		"day": map[string]any{
			"type":    "integer",
			"minimum": DayMin,
			"maximum": DayMax,
		},
		"hour": map[string]any{
			"type":    "integer",
			"minimum": HourMin,
			"maximum": HourMax,
		},
		"name":    map[string]any{"type": "string"},
		"teacher": map[string]any{"type": "string"},
		"room":    map[string]any{"type": "string"},
	},
})

// mustCompileSchema compiles a fixed schema definition at init. The
// compiler expects parsed JSON values, so the Go literal is round-tripped
// through json first.
func mustCompileSchema(name string, def map[string]any) *jsonschema.Schema {
	defBytes, err := json.Marshal(def)
	if err != nil {
		panic(fmt.Sprintf("marshal %s schema: %v", name, err))
	}
	var parsed any
	if err := json.Unmarshal(defBytes, &parsed); err != nil {
		panic(fmt.Sprintf("parse %s schema: %v", name, err))
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, parsed); err != nil {
		panic(fmt.Sprintf("add %s schema resource: %v", name, err))
	}
	compiled, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("compile %s schema: %v", name, err))
	}
	return compiled
}

// validElement reports whether raw parses as JSON and satisfies the
// compiled schema.
func validElement(s *jsonschema.Schema, raw json.RawMessage) bool {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return false
	}
	return s.Validate(parsed) == nil
}
