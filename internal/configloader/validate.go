package configloader

import (
	"fmt"
	"strings"

	"github.com/aeolusmd/mdfixup/pkg/config"
	"github.com/aeolusmd/mdfixup/pkg/engine"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.skip[0]").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error, if known.
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a configuration against reg for unknown rule
// identifiers and out-of-range scalars. An unknown rules.skip/include
// entry is fatal, not a warning.
func Validate(cfg *config.Config, reg *engine.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Width != nil && *cfg.Width < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "width",
			Value:   *cfg.Width,
			Message: "width must be >= 0 (0 disables wrapping)",
		})
	}
	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	validateTokens(reg, "rules.skip", cfg.Rules.Skip, result)
	validateTokens(reg, "rules.include", cfg.Rules.Include, result)

	return result
}

func validateTokens(reg *engine.Registry, field string, tokens []string, result *ValidationResult) {
	for i, tok := range tokens {
		if tok == "all" {
			continue
		}
		if field == "rules.skip" && (strings.EqualFold(tok, "em-dash") || strings.EqualFold(tok, "guillemet")) {
			continue
		}
		if _, ok := reg.Resolve(tok); !ok {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Value:   tok,
				Message: fmt.Sprintf("unknown rule or group %q", tok),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, reg *engine.Registry, filePath string) *ValidationResult {
	result := Validate(cfg, reg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	return result
}
