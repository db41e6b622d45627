package extract

import (
	"strconv"
	"strings"
)

// NoScale is rendered for a zero scale, which means the range is unbounded.
const NoScale = "<None>"

// FormatScale renders a map scale for a report cell.
func FormatScale(scale float64) string {
	if scale == 0 {
		return NoScale
	}
	return strconv.FormatFloat(scale, 'f', -1, 64)
}

// FormatBool renders a boolean report cell.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// formatNumber renders a non-scale numeric cell such as a refresh rate.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var textReplacer = strings.NewReplacer(
	`"`, `'`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// normalizeText replaces characters that would break a delimited line:
// double quotes become single quotes and line breaks become spaces.
func normalizeText(s string) string {
	return textReplacer.Replace(s)
}

// quoted normalizes s and wraps it in double quotes so embedded delimiters
// survive. Empty text stays empty.
func quoted(s string) string {
	if s == "" {
		return ""
	}
	return `"` + normalizeText(s) + `"`
}
