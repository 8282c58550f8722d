package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Error writing profile: %v", err)
	}
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `
headers:
  User-Agent: ultralite
  X-Env: staging
timeout: 10s
params:
  version: "2"
`)

	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("Error loading profile: %v", err)
	}

	if profile.Headers["User-Agent"] != "ultralite" {
		t.Errorf("Expected User-Agent header, got %v", profile.Headers)
	}
	if profile.Timeout != "10s" {
		t.Errorf("Expected timeout 10s, got %s", profile.Timeout)
	}
	if profile.Params["version"] != "2" {
		t.Errorf("Expected version param, got %v", profile.Params)
	}
}

func TestLoadProfile_MissingFile(t *testing.T) {
	if _, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestLoadProfile_BadYAML(t *testing.T) {
	path := writeProfile(t, "headers: [not a map")
	if _, err := LoadProfile(path); err == nil {
		t.Error("Expected error for malformed YAML, got nil")
	}
}

func TestValidateProfile(t *testing.T) {
	profile := &Profile{
		Headers: map[string]string{"X-Ok": "1"},
		Timeout: "5s",
	}
	if errs := ValidateProfile(profile); len(errs) != 0 {
		t.Errorf("Expected no validation errors, got %v", errs)
	}
}

func TestValidateProfile_BadTimeout(t *testing.T) {
	profile := &Profile{Timeout: "eleven"}

	errs := ValidateProfile(profile)
	if len(errs) != 1 {
		t.Fatalf("Expected 1 validation error, got %d", len(errs))
	}
	if errs[0].Path != "timeout" {
		t.Errorf("Expected timeout error, got %s", errs[0].Path)
	}
}

func TestValidateProfile_EmptyHeaderName(t *testing.T) {
	profile := &Profile{Headers: map[string]string{"": "x"}}

	if errs := ValidateProfile(profile); len(errs) == 0 {
		t.Error("Expected validation error for empty header name")
	}
}
