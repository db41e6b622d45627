package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks the semantic constraints of a configuration.
func Validate(cfg *Config) ValidationErrors {
	var errs ValidationErrors

	if cfg.OutputDir != "" && strings.TrimSpace(cfg.OutputDir) == "" {
		errs = append(errs, ValidationError{
			Field:   "outputDir",
			Message: "must not be empty or whitespace only",
		})
	}

	for i, band := range cfg.Reports.ScaleBands {
		if band < 0 || math.IsNaN(band) || math.IsInf(band, 0) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("reports.scaleBands[%d]", i),
				Message: "must be a finite scale denominator of 0 or more",
			})
		}
	}
	if !sort.Float64sAreSorted(cfg.Reports.ScaleBands) {
		errs = append(errs, ValidationError{
			Field:   "reports.scaleBands",
			Message: "must be in ascending order",
		})
	}

	return errs
}

// ValidateFile validates a configuration file at the given path. Unknown keys
// are rejected, then the decoded values are checked with Validate.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return ValidationErrors{{Field: "file", Message: err.Error()}}
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return errs
	}
	return nil
}
