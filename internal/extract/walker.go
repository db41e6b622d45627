// Package extract turns a map layer tree into the rows of the LayerInfo,
// LabelInfo, PopupInfo and DefQueryInfo reports.
package extract

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"

	oerrors "github.com/unprops/cli/internal/errors"
	"github.com/unprops/cli/internal/layer"
	"github.com/unprops/cli/internal/output"
)

// Result holds the record lists of one extraction run.
type Result struct {
	Identity layer.Identity `json:"identity"`

	Layers            []LayerInfoRecord       `json:"layers"`
	Labels            []LabelInfoRecord       `json:"labels,omitempty"`
	Popups            []PopupInfoRecord       `json:"popups,omitempty"`
	DefinitionQueries []DefinitionQueryRecord `json:"definitionQueries,omitempty"`

	// LayerCount and TableCount are the sizes of the flattened tree and
	// the standalone table list, including nodes that contributed nothing.
	LayerCount int `json:"layerCount"`
	TableCount int `json:"tableCount"`

	// Failures counts nodes recorded as error rows.
	Failures int `json:"failures"`

	// Suppressed counts nodes skipped for lack of permission.
	Suppressed int `json:"suppressed"`
}

// Empty reports whether the run produced no records at all.
func (r *Result) Empty() bool {
	return len(r.Layers) == 0 && len(r.Labels) == 0 &&
		len(r.Popups) == 0 && len(r.DefinitionQueries) == 0
}

// PrimaryLayers returns the primary LayerInfo rows, without display filter
// and trace configuration sub-rows.
func (r *Result) PrimaryLayers() []LayerInfoRecord {
	out := make([]LayerInfoRecord, 0, len(r.Layers))
	for _, rec := range r.Layers {
		if rec.Primary {
			out = append(out, rec)
		}
	}
	return out
}

// Digest returns a hash of every record in order. Two runs over the same
// tree have the same digest.
func (r *Result) Digest() uint64 {
	h := xxhash.New()
	for _, rec := range r.Layers {
		fmt.Fprintf(h, "L%+v\n", rec)
	}
	for _, rec := range r.Labels {
		fmt.Fprintf(h, "B%+v\n", rec)
	}
	for _, rec := range r.Popups {
		fmt.Fprintf(h, "P%+v\n", rec)
	}
	for _, rec := range r.DefinitionQueries {
		fmt.Fprintf(h, "D%+v\n", rec)
	}
	return h.Sum64()
}

// add appends a node's records and advances the counters.
func (r *Result) add(nr NodeResult) {
	switch nr.Outcome {
	case OutcomeSuppressed:
		r.Suppressed++
		return
	case OutcomeFailed:
		r.Failures++
	}
	r.Layers = append(r.Layers, nr.Layers...)
	r.Labels = append(r.Labels, nr.Labels...)
	r.Popups = append(r.Popups, nr.Popups...)
	r.DefinitionQueries = append(r.DefinitionQueries, nr.DefinitionQueries...)
}

// Walk classifies every layer of src in order, then every standalone table,
// numbering primary rows from 1. A node that cannot be read never stops the
// walk. Walk only fails when the layer or table list itself is unavailable.
func Walk(src layer.Source) (*Result, error) {
	id := src.Identity()

	layers, err := src.Layers()
	if err != nil {
		return nil, sourceError(fmt.Sprintf("reading layers of map %q", id.MapName), err)
	}
	tables, err := src.Tables()
	if err != nil {
		return nil, sourceError(fmt.Sprintf("reading standalone tables of map %q", id.MapName), err)
	}

	logger := output.MapLogger(id.MapName)
	res := &Result{
		Identity:   id,
		LayerCount: len(layers),
		TableCount: len(tables),
	}

	pos := 1
	visit := func(ref layer.NodeRef, group string) {
		nr := Classify(ref, group, pos)
		switch nr.Outcome {
		case OutcomeSuppressed:
			logger.Debug("skipping node without read permission", "node", ref.Name(), "pos", pos)
		case OutcomeFailed:
			logger.Warn("node could not be read", "node", ref.Name(), "pos", pos, "err", nr.Err)
		}
		res.add(nr)
		if nr.Outcome != OutcomeSuppressed {
			pos++
		}
	}

	for _, ref := range layers {
		visit(ref, ref.Parent())
	}
	for _, ref := range tables {
		visit(ref, "")
	}

	logger.Debug("walk complete",
		"layers", res.LayerCount,
		"tables", res.TableCount,
		"rows", len(res.Layers),
		"failures", res.Failures,
		"suppressed", res.Suppressed,
	)
	return res, nil
}

// sourceError wraps a failure to list the nodes of a map. Failures without a
// known cause mean the map could not be reached.
func sourceError(msg string, err error) error {
	if errors.Is(err, oerrors.ErrPermission) || errors.Is(err, oerrors.ErrNotFound) ||
		errors.Is(err, oerrors.ErrValidation) || errors.Is(err, oerrors.ErrConnectivity) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return fmt.Errorf("%s: %w: %w", msg, oerrors.ErrConnectivity, err)
}
