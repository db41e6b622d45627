package pipeline

import (
	"errors"
	"fmt"
)

// ErrRunInProgress is returned when Run is called while another run holds the pipeline.
var ErrRunInProgress = errors.New("an extraction is already running")

// Phase names a stage of a run.
type Phase string

const (
	PhaseLoad  Phase = "load"
	PhaseWalk  Phase = "walk"
	PhaseWrite Phase = "write"
)

// PhaseError is a run-level fault. The whole run is aborted.
type PhaseError struct {
	Phase Phase
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s phase: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}
