package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these instead of inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: map names, layer names, file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "written" report status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings such as node extraction failures.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (map names, layer names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (scope prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Report status constants.
const (
	StatusWritten = "written"
	StatusEmpty   = "empty"
	StatusFailed  = "failed"
)

// StatusStyle returns the style for a report status. Unknown statuses are unstyled.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusWritten:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusEmpty:
		return lipgloss.NewStyle().Faint(true)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minReportColumnWidth keeps status words aligned across report lines.
const minReportColumnWidth = 40

// FormatReportLine renders a report file name with a right-aligned status.
//
// Format: f:<file>  <status>
func FormatReportLine(file, status string) string {
	padding := minReportColumnWidth - len(file)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("f:")
	styledFile := StyleNoun.Render(file)
	styledStatus := StatusStyle(status).Render(status)

	return prefix + styledFile + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatFailureCount renders the node failure summary line.
func FormatFailureCount(n int) string {
	noun := "nodes"
	if n == 1 {
		noun = "node"
	}
	return lipgloss.NewStyle().Foreground(ColorYellow).
		Render(fmt.Sprintf("%d %s could not be extracted (see Extract Error rows)", n, noun))
}

// Styles groups the styles used by the diff renderer.
type Styles struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Dim     lipgloss.Style
}

// GetStyles returns the default colored styles.
func GetStyles() *Styles {
	return &Styles{
		Success: lipgloss.NewStyle().Foreground(ColorGreen),
		Warning: lipgloss.NewStyle().Foreground(ColorYellow),
		Error:   lipgloss.NewStyle().Foreground(ColorBoldRed),
		Dim:     StyleDim,
	}
}

// NoColorStyles returns styles that render plain text.
func NoColorStyles() *Styles {
	return &Styles{
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Dim:     lipgloss.NewStyle(),
	}
}
