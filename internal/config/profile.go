// Package config loads YAML profiles for the CLI: default headers, query
// parameters and timeout applied to every request. The library itself keeps
// no persisted state; profiles are a command-line convenience only.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile holds the defaults a CLI invocation starts from.
type Profile struct {
	// Headers are default headers added to every request. Flags win on
	// collision.
	Headers map[string]string `yaml:"headers,omitempty"`

	// Timeout is a Go duration string, e.g. "10s". Empty keeps the client
	// default.
	Timeout string `yaml:"timeout,omitempty"`

	// Params are default query parameters added to every request.
	Params map[string]string `yaml:"params,omitempty"`
}

// LoadProfile reads and parses a YAML profile from path.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}

	return &profile, nil
}
