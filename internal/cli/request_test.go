package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParsePairs(t *testing.T) {
	headers := parsePairs([]string{
		"Content-Type: application/json",
		"X-Token:abc",
		"malformed",
	}, ":")

	if headers["Content-Type"] != "application/json" {
		t.Errorf("Expected Content-Type, got %v", headers)
	}
	if headers["X-Token"] != "abc" {
		t.Errorf("Expected X-Token, got %v", headers)
	}
	if len(headers) != 2 {
		t.Errorf("Expected malformed entry to be skipped, got %v", headers)
	}

	params := parsePairs([]string{"a=1", "b=x y"}, "=")
	if params["a"] != "1" || params["b"] != "x y" {
		t.Errorf("Expected parsed params, got %v", params)
	}
}

func TestGetCommand_Execute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Test") != "1" {
			t.Errorf("Expected X-Test header, got %q", r.Header.Get("X-Test"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"token":"xyz"}`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetArgs([]string{
		"get", server.URL,
		"--no-color",
		"-H", "X-Test: 1",
		"--extract", "$.token",
	})

	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("Error executing command: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "RESPONSE: 200 OK") {
		t.Errorf("Expected response line, got %q", out)
	}
	if !strings.Contains(out, "xyz") {
		t.Errorf("Expected extracted value, got %q", out)
	}
}

func TestGetCommand_FailFlag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	// Reset the extract flag left over from earlier executions.
	RootCmd.SetArgs([]string{"get", server.URL, "--no-color", "--fail", "--extract", ""})

	if err := RootCmd.Execute(); err == nil {
		t.Error("Expected error for non-2XX status with --fail, got nil")
	}
}
