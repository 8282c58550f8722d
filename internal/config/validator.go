package config

import (
	"fmt"
	"time"
)

// ValidationError represents a profile validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidateProfile validates the profile
func ValidateProfile(profile *Profile) []ValidationError {
	var errors []ValidationError

	if profile.Timeout != "" {
		if _, err := time.ParseDuration(profile.Timeout); err != nil {
			errors = append(errors, ValidationError{
				Path:    "timeout",
				Message: fmt.Sprintf("invalid duration %q", profile.Timeout),
			})
		}
	}

	for name := range profile.Headers {
		if name == "" {
			errors = append(errors, ValidationError{
				Path:    "headers",
				Message: "header name must not be empty",
			})
		}
	}

	for name := range profile.Params {
		if name == "" {
			errors = append(errors, ValidationError{
				Path:    "params",
				Message: "param name must not be empty",
			})
		}
	}

	return errors
}
