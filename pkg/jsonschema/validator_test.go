package jsonschema

import (
	"testing"
)

const userSchema = `{
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func TestValidate_Valid(t *testing.T) {
	valid, err := Validate(`{"name":"alice","age":30}`, userSchema)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !valid {
		t.Error("Expected document to be valid")
	}
}

func TestValidate_Invalid(t *testing.T) {
	valid, err := Validate(`{"age":-1}`, userSchema)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if valid {
		t.Error("Expected document to be invalid")
	}
}

func TestValidate_BadJSON(t *testing.T) {
	if _, err := Validate(`not json`, userSchema); err == nil {
		t.Error("Expected error for unparseable JSON, got nil")
	}
}

func TestValidate_BadSchema(t *testing.T) {
	if _, err := Validate(`{}`, `{"type": 42}`); err == nil {
		t.Error("Expected error for broken schema, got nil")
	}
}

func TestValidateWithErrors(t *testing.T) {
	valid, errs := ValidateWithErrors(`{"age":"old"}`, userSchema)
	if valid {
		t.Fatal("Expected document to be invalid")
	}
	if len(errs) == 0 {
		t.Fatal("Expected validation errors, got none")
	}
	if errs.Error() == "" {
		t.Error("Expected a non-empty error message")
	}
}

func TestValidationErrors_Empty(t *testing.T) {
	var errs ValidationErrors
	if errs.Error() != "" {
		t.Errorf("Expected empty message, got %q", errs.Error())
	}
}
