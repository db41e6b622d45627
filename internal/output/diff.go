package output

import (
	"strconv"
	"strings"
)

// ModifiedLayer is a layer present in both snapshots whose records differ.
type ModifiedLayer struct {
	Key  string
	Diff string
}

// RenderLayerDiff renders added, removed and modified layers as text.
func RenderLayerDiff(added, removed []string, modified []ModifiedLayer, styles *Styles) string {
	if len(added) == 0 && len(removed) == 0 && len(modified) == 0 {
		return "No changes detected."
	}

	var sb strings.Builder

	writeSection := func(title, marker string, keys []string, style func(...string) string) {
		if len(keys) == 0 {
			return
		}
		sb.WriteString(style(title))
		sb.WriteString("\n")
		for _, k := range keys {
			sb.WriteString("  " + marker + " ")
			sb.WriteString(style(k))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	writeSection("Added:", "+", added, styles.Success.Render)
	writeSection("Removed:", "-", removed, styles.Error.Render)

	if len(modified) > 0 {
		sb.WriteString(styles.Warning.Render("Modified:"))
		sb.WriteString("\n")
		for _, m := range modified {
			sb.WriteString("  ~ ")
			sb.WriteString(styles.Warning.Render(m.Key))
			sb.WriteString("\n")
			sb.WriteString(IndentDiff(m.Diff, "    "))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("Summary: ")
	sb.WriteString(diffSummary(len(added), len(removed), len(modified)))
	sb.WriteString("\n")

	return sb.String()
}

// IndentDiff indents every non-empty line of diff.
func IndentDiff(diff, indent string) string {
	if diff == "" {
		return ""
	}

	var sb strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		if line != "" {
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func diffSummary(added, removed, modified int) string {
	parts := make([]string, 0, 3)
	if added > 0 {
		parts = append(parts, strconv.Itoa(added)+" added")
	}
	if removed > 0 {
		parts = append(parts, strconv.Itoa(removed)+" removed")
	}
	if modified > 0 {
		parts = append(parts, strconv.Itoa(modified)+" modified")
	}
	if len(parts) == 0 {
		return "No changes"
	}
	return strings.Join(parts, ", ")
}
