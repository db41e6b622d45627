package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/unprops/cli/internal/config"
	oerrors "github.com/unprops/cli/internal/errors"
	"github.com/unprops/cli/internal/extract"
	"github.com/unprops/cli/internal/output"
	"github.com/unprops/cli/internal/pipeline"
)

// RunReportsOpts holds the inputs for RunReports.
type RunReportsOpts struct {
	// SnapshotPath is the map snapshot to extract.
	SnapshotPath string
	// Reports selects the report sets.
	Reports []pipeline.ReportSet
	// ScaleBands overrides the configured bands when non-empty.
	ScaleBands []float64
	// Config is the fully loaded global configuration.
	Config *config.GlobalConfig
	// Pipeline runs the extraction. Defaults to pipeline.New().
	Pipeline pipeline.Pipeline
}

// RunReports executes an extraction shared by the extract commands, showing a
// spinner on a TTY.
//
// On failure it returns an *ExitError with the appropriate exit code and the
// Printed flag set.
func RunReports(ctx context.Context, opts RunReportsOpts) (*pipeline.Result, error) {
	if opts.Config == nil {
		return nil, &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: errors.New("configuration not loaded")}
	}

	p := opts.Pipeline
	if p == nil {
		p = pipeline.New()
	}
	bands := opts.ScaleBands
	if len(bands) == 0 && opts.Config.Config != nil {
		bands = opts.Config.Config.Reports.ScaleBands
	}

	runOpts := pipeline.Options{
		SnapshotPath: opts.SnapshotPath,
		OutputDir:    opts.Config.OutputDir.Value,
		Reports:      opts.Reports,
		ScaleBands:   bands,
	}
	if err := runOpts.Validate(); err != nil {
		return nil, &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	output.Debug("extracting",
		"snapshot", opts.SnapshotPath,
		"out-dir", runOpts.OutputDir,
		"reports", fmt.Sprint(opts.Reports),
	)

	var res *pipeline.Result
	err := output.RunWithSpinner(ctx, func() error {
		var runErr error
		res, runErr = p.Run(ctx, runOpts)
		return runErr
	}, output.WithTitle("Extracting "+filepath.Base(opts.SnapshotPath)))
	if err != nil {
		PrintRunError("extraction failed", err)
		return nil, &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
	}

	return res, nil
}

// InspectSnapshot loads and walks a snapshot without writing reports.
func InspectSnapshot(ctx context.Context, p pipeline.Pipeline, path string) (*extract.Result, error) {
	if p == nil {
		p = pipeline.New()
	}
	res, err := p.Inspect(ctx, path)
	if err != nil {
		PrintRunError("reading snapshot failed", err)
		return nil, &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
	}
	return res, nil
}
