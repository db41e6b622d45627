package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/unprops/cli/internal/extract"
)

// Pipeline runs extractions. Only one run executes at a time.
type Pipeline interface {
	// Run loads a snapshot, extracts the requested reports and writes them.
	//
	// Node faults never fail a run; they are counted in the result.
	// Run-level faults return a *PhaseError. The context is only checked
	// before work starts: a started run completes.
	Run(ctx context.Context, opts Options) (*Result, error)

	// Inspect loads a snapshot and extracts its records without writing files.
	Inspect(ctx context.Context, snapshotPath string) (*extract.Result, error)
}

// ReportSet selects which reports a run produces.
type ReportSet string

const (
	// ReportsLayers is the LayerInfo, LabelInfo, PopupInfo and DefQueryInfo reports.
	ReportsLayers ReportSet = "layers"

	// ReportsScales is the LayerScales report.
	ReportsScales ReportSet = "scales"
)

// Options configures a run.
type Options struct {
	// SnapshotPath is the map snapshot to read. Required.
	SnapshotPath string

	// OutputDir receives the report files. Required. Created if missing.
	OutputDir string

	// Reports selects the report sets. Defaults to ReportsLayers.
	Reports []ReportSet

	// ScaleBands are the scales tested by the LayerScales report.
	// Defaults to extract.DefaultScaleBands.
	ScaleBands []float64

	// Now returns the run's timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Validate checks required options.
func (o Options) Validate() error {
	if o.SnapshotPath == "" {
		return errors.New("SnapshotPath is required")
	}
	if o.OutputDir == "" {
		return errors.New("OutputDir is required")
	}
	for _, r := range o.Reports {
		if r != ReportsLayers && r != ReportsScales {
			return fmt.Errorf("unknown report set %q", r)
		}
	}
	return nil
}

func (o Options) wants(set ReportSet) bool {
	if len(o.Reports) == 0 {
		return set == ReportsLayers
	}
	for _, r := range o.Reports {
		if r == set {
			return true
		}
	}
	return false
}

// Result is the outcome of a run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// Extraction is nil unless ReportsLayers was requested.
	Extraction *extract.Result

	// Scales is nil unless ReportsScales was requested.
	Scales *extract.ScaleMatrix

	// OutputDir is the directory the files were written to.
	OutputDir string

	// Files are the written report paths, in write order.
	Files []string

	// Generated is the run's timestamp.
	Generated time.Time
}

// Failures returns the number of nodes recorded as error rows.
func (r *Result) Failures() int {
	n := 0
	if r.Extraction != nil {
		n = r.Extraction.Failures
	} else if r.Scales != nil {
		n = r.Scales.Failures
	}
	return n
}
