package output

import "strings"

// Format specifies how inspect results are printed.
type Format string

const (
	// FormatTable prints a styled table of primary layer rows.
	FormatTable Format = "table"

	// FormatJSON prints the full extraction result as JSON.
	FormatJSON Format = "json"

	// FormatYAML prints the full extraction result as YAML.
	FormatYAML Format = "yaml"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// ParseFormat parses a format name. The second result is false for unknown names.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, true
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// ValidFormats returns the accepted format names.
func ValidFormats() []string {
	return []string{"table", "json", "yaml"}
}
