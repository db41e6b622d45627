// Package cmdutil provides shared command utilities for the extract, inspect
// and diff commands. It centralizes flag groups, pipeline orchestration and
// run summary output.
package cmdutil

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unprops/cli/internal/output"
)

// ReportFlags holds flags common to commands that write reports
// (extract layers, scales, all).
type ReportFlags struct {
	ScaleBands []float64
}

// AddTo registers the report flags on the given cobra command.
func (f *ReportFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().Float64SliceVar(&f.ScaleBands, "scale-bands", nil,
		"Scales tested by the LayerScales report (default: from config)")
}

// FormatFlags holds the output format flag of read-only commands (inspect).
type FormatFlags struct {
	Output string
}

// AddTo registers the format flag on the given cobra command.
func (f *FormatFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Output, "output", "o", "table",
		"Output format: table, json, yaml")
}

// Format parses the flag value.
func (f *FormatFlags) Format() (output.Format, error) {
	format, ok := output.ParseFormat(f.Output)
	if !ok {
		return "", fmt.Errorf("invalid output format %q (valid: %v)", f.Output, output.ValidFormats())
	}
	return format, nil
}
