package snapshot

import (
	"fmt"
	"strings"
)

// FieldError is one problem found in a snapshot document.
type FieldError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors is every problem found in a snapshot document.
type FieldErrors []FieldError

// Error implements the error interface.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("snapshot validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks that the document identifies its project and map, that
// every entry is named, and that captured read errors use a known code.
func Validate(doc *Document) FieldErrors {
	var errs FieldErrors

	if strings.TrimSpace(doc.Project.Name) == "" && strings.TrimSpace(doc.Project.Path) == "" {
		errs = append(errs, FieldError{
			Field:   "project",
			Message: "name or path is required",
		})
	}
	if strings.TrimSpace(doc.Map.Name) == "" {
		errs = append(errs, FieldError{
			Field:   "map.name",
			Message: "is required",
		})
	}

	errs = validateEntries(errs, "layers", doc.Layers, true)
	errs = validateEntries(errs, "tables", doc.Tables, false)
	return errs
}

func validateEntries(errs FieldErrors, path string, entries []Entry, nested bool) FieldErrors {
	for i, e := range entries {
		field := fmt.Sprintf("%s[%d]", path, i)

		if strings.TrimSpace(e.Name) == "" {
			errs = append(errs, FieldError{Field: field + ".name", Message: "is required"})
		}
		if e.ReadError != nil {
			switch e.ReadError.Code {
			case CodePermission, CodeError:
			default:
				errs = append(errs, FieldError{
					Field:   field + ".readError.code",
					Message: fmt.Sprintf("must be %q or %q, got %q", CodePermission, CodeError, e.ReadError.Code),
				})
			}
		}
		if len(e.Layers) > 0 {
			if !nested {
				errs = append(errs, FieldError{Field: field + ".layers", Message: "tables cannot contain layers"})
				continue
			}
			errs = validateEntries(errs, field+".layers", e.Layers, true)
		}
	}
	return errs
}
