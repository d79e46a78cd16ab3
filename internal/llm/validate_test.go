package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "schedule-entry",
		Description: "A single timetable entry",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{"type": "string"},
				"hour": map[string]any{"type": "integer", "minimum": 8, "maximum": 16},
				"day":  map[string]any{"type": "integer", "enum": []any{1, 2, 3, 4, 5}},
			},
			"required": []any{"name", "hour"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"name":"Databases","hour":10,"day":2}`)
	err := validateResponse(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"name":"Ethics","hour":9}`)
	err := validateResponse(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"name":"Databases"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"name":"Databases","hour":"ten"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_OutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"name":"Databases","hour":22}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for out-of-range hour")
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"name":"Databases","hour":10,"day":6}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	err := validateResponse(nil, raw)
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}
