package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/unprops/cli/internal/extract"
	"github.com/unprops/cli/internal/output"
	"github.com/unprops/cli/internal/report"
	"github.com/unprops/cli/internal/snapshot"
)

// pipeline implements the Pipeline interface.
// The layer tree behind a snapshot is read by one worker at a time, so the
// semaphore admits a single run and rejects the rest.
type pipeline struct {
	sem *semaphore.Weighted
}

// New creates a new Pipeline.
func New() Pipeline {
	return &pipeline{sem: semaphore.NewWeighted(1)}
}

// Run executes the pipeline and returns results.
//
// Phase sequence:
//  1. LOAD:  snapshot.Load() → layer.Source
//  2. WALK:  extract.Walk() and/or extract.Scales() → record lists
//  3. WRITE: report.Writer → files in OutputDir
func (p *pipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if !p.sem.TryAcquire(1) {
		return nil, ErrRunInProgress
	}
	defer p.sem.Release(1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	res := &Result{
		RunID:     uuid.NewString(),
		OutputDir: opts.OutputDir,
		Generated: now(),
	}
	output.Debug("starting run", "run", res.RunID, "snapshot", opts.SnapshotPath)

	// Phase 1: LOAD
	snap, err := snapshot.Load(opts.SnapshotPath)
	if err != nil {
		return nil, &PhaseError{Phase: PhaseLoad, Err: err}
	}

	// Phase 2: WALK
	if opts.wants(ReportsLayers) {
		res.Extraction, err = extract.Walk(snap)
		if err != nil {
			return nil, &PhaseError{Phase: PhaseWalk, Err: err}
		}
	}
	if opts.wants(ReportsScales) {
		res.Scales, err = extract.Scales(snap, opts.ScaleBands)
		if err != nil {
			return nil, &PhaseError{Phase: PhaseWalk, Err: err}
		}
	}

	// Phase 3: WRITE
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, &PhaseError{Phase: PhaseWrite, Err: fmt.Errorf("creating output directory: %w", err)}
	}
	w := report.NewWriter(opts.OutputDir, res.Generated)
	if res.Extraction != nil {
		files, err := w.WriteAll(res.Extraction)
		res.Files = append(res.Files, files...)
		if err != nil {
			return nil, &PhaseError{Phase: PhaseWrite, Err: err}
		}
	}
	if res.Scales != nil {
		path, err := w.WriteScales(res.Scales)
		if err != nil {
			return nil, &PhaseError{Phase: PhaseWrite, Err: err}
		}
		if path != "" {
			res.Files = append(res.Files, path)
		}
	}

	output.Debug("run complete",
		"run", res.RunID,
		"files", len(res.Files),
		"failures", res.Failures(),
	)
	return res, nil
}

// Inspect runs LOAD and WALK only.
func (p *pipeline) Inspect(ctx context.Context, snapshotPath string) (*extract.Result, error) {
	if snapshotPath == "" {
		return nil, errors.New("snapshot path is required")
	}
	if !p.sem.TryAcquire(1) {
		return nil, ErrRunInProgress
	}
	defer p.sem.Release(1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap, err := snapshot.Load(snapshotPath)
	if err != nil {
		return nil, &PhaseError{Phase: PhaseLoad, Err: err}
	}
	res, err := extract.Walk(snap)
	if err != nil {
		return nil, &PhaseError{Phase: PhaseWalk, Err: err}
	}
	return res, nil
}
