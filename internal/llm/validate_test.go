package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-question",
		Description: "A single test question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question":   map[string]any{"type": "string"},
				"position":   map[string]any{"type": "integer", "minimum": 0},
				"difficulty": map[string]any{"type": "string", "enum": []any{"EASY", "MEDIUM", "HARD"}},
			},
			"required": []any{"question", "position"},
		},
	}
}

func TestValidate_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"question":"What is a closure?","position":0,"difficulty":"EASY"}`)
	err := Validate(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"question":"What is a goroutine?","position":3}`)
	err := Validate(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"question":"What is a slice?"}`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"question":"What is a map?","position":"ten"}`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"question":"What is a channel?","position":9,"difficulty":"EXTREME"}`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidate_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	err := Validate(nil, raw)
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidate_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-nested-plan",
		Description: "Nested test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"study_plan": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"immediate": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					},
					"required": []any{"immediate"},
				},
				"priorities": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"study_plan", "priorities"},
		},
	}

	valid := json.RawMessage(`{"study_plan":{"immediate":["review closures"]},"priorities":[1,2,3]}`)
	if err := Validate(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"study_plan":{"immediate":["review closures"]},"priorities":["high","low"]}`)
	if err := Validate(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}

func TestValidate_TopLevelArray(t *testing.T) {
	schema := &Schema{
		Name: "test-batch",
		Definition: map[string]any{
			"type":     "array",
			"minItems": 2,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"question"},
			},
		},
	}

	if err := Validate(schema, json.RawMessage(`[{"question":"a"},{"question":"b"}]`)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if err := Validate(schema, json.RawMessage(`[{"question":"a"}]`)); err == nil {
		t.Fatal("expected error for too few items")
	}
}
