package jsonpath

import (
	"testing"
)

const testJSON = `{
	"name": "ultralite",
	"count": 3,
	"tags": ["tiny", "portable"],
	"owner": {"email": "dev@example.com"},
	"items": [{"id": 1}, {"id": 2}],
	"missing": null
}`

func TestExtract(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"$.name", "ultralite"},
		{"$.count", "3"},
		{"$.tags[0]", "tiny"},
		{"$.owner.email", "dev@example.com"},
		{"$.items[1].id", "2"},
		{"$['name']", "ultralite"},
		{`$["owner"].email`, "dev@example.com"},
		{"$.missing", "null"},
	}

	for _, tc := range cases {
		got, err := Extract(testJSON, tc.path)
		if err != nil {
			t.Errorf("Extract(%s): unexpected error: %v", tc.path, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Extract(%s) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestExtract_PathNotFound(t *testing.T) {
	if _, err := Extract(testJSON, "$.nope"); err == nil {
		t.Error("Expected error for unknown path, got nil")
	}
}

func TestExtract_EmptyInputs(t *testing.T) {
	if _, err := Extract("", "$.a"); err == nil {
		t.Error("Expected error for empty JSON, got nil")
	}
	if _, err := Extract(testJSON, ""); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}

func TestExtractMultiple(t *testing.T) {
	results, err := ExtractMultiple(testJSON, map[string]string{
		"name":  "$.name",
		"email": "$.owner.email",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if results["name"] != "ultralite" {
		t.Errorf("Expected name=ultralite, got %s", results["name"])
	}
	if results["email"] != "dev@example.com" {
		t.Errorf("Expected email=dev@example.com, got %s", results["email"])
	}
}

func TestExtractMultiple_PartialFailure(t *testing.T) {
	results, err := ExtractMultiple(testJSON, map[string]string{
		"name": "$.name",
		"bad":  "$.does.not.exist",
	})
	if err == nil {
		t.Fatal("Expected error for failed extraction, got nil")
	}

	// Successful extractions are still returned.
	if results["name"] != "ultralite" {
		t.Errorf("Expected name=ultralite despite partial failure, got %s", results["name"])
	}
}
