// Package diff compares the extraction results of two map snapshots layer by layer.
package diff

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"sigs.k8s.io/yaml"

	"github.com/unprops/cli/internal/extract"
	"github.com/unprops/cli/internal/output"
)

// Result is the difference between two extraction results.
type Result struct {
	// Added layers exist only in the new result.
	Added []string

	// Removed layers exist only in the old result.
	Removed []string

	// Modified layers exist in both with different records.
	Modified []output.ModifiedLayer
}

// IsEmpty returns true if there are no changes.
func (r *Result) IsEmpty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Modified) == 0
}

// Summary returns a summary string of changes.
func (r *Result) Summary() string {
	if r.IsEmpty() {
		return "No changes"
	}

	parts := make([]string, 0, 3)
	if len(r.Added) > 0 {
		parts = append(parts, fmt.Sprintf("%d added", len(r.Added)))
	}
	if len(r.Removed) > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", len(r.Removed)))
	}
	if len(r.Modified) > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", len(r.Modified)))
	}
	return strings.Join(parts, ", ")
}

// layerRecords is everything one node contributed, without positions:
// inserting a layer shifts every later position, which is not a change to
// those layers.
type layerRecords struct {
	Layers            []extract.LayerInfoRecord       `json:"layers"`
	Labels            []extract.LabelInfoRecord       `json:"labels,omitempty"`
	Popups            []extract.PopupInfoRecord       `json:"popups,omitempty"`
	DefinitionQueries []extract.DefinitionQueryRecord `json:"definitionQueries,omitempty"`
}

// indexed holds the per-layer records of a result in traversal order.
type indexed struct {
	keys    []string
	records map[string]*layerRecords
}

// Key identifies a primary row across snapshots: layer type, group and name,
// with a counter appended for repeated names.
func Key(rec extract.LayerInfoRecord) string {
	name := unquote(rec.LayerName)
	if group := unquote(rec.GroupLayerName); group != "" && group != name {
		return rec.LayerType + "/" + group + "/" + name
	}
	return rec.LayerType + "/" + name
}

func unquote(s string) string {
	return strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`)
}

func index(res *extract.Result) *indexed {
	idx := &indexed{records: make(map[string]*layerRecords)}
	byPos := make(map[int]*layerRecords)
	seen := make(map[string]int)

	for _, rec := range res.Layers {
		if rec.Primary {
			key := Key(rec)
			seen[key]++
			if n := seen[key]; n > 1 {
				key += "#" + strconv.Itoa(n)
			}
			lr := &layerRecords{}
			idx.keys = append(idx.keys, key)
			idx.records[key] = lr
			byPos[rec.Pos] = lr
		}
		if lr := byPos[rec.Pos]; lr != nil {
			rec.Pos = 0
			lr.Layers = append(lr.Layers, rec)
		}
	}
	for _, rec := range res.Labels {
		if lr := byPos[rec.Pos]; lr != nil {
			rec.Pos = 0
			lr.Labels = append(lr.Labels, rec)
		}
	}
	for _, rec := range res.Popups {
		if lr := byPos[rec.Pos]; lr != nil {
			rec.Pos = 0
			lr.Popups = append(lr.Popups, rec)
		}
	}
	for _, rec := range res.DefinitionQueries {
		if lr := byPos[rec.Pos]; lr != nil {
			rec.Pos = 0
			lr.DefinitionQueries = append(lr.DefinitionQueries, rec)
		}
	}
	return idx
}

// Compare computes the per-layer difference from old to new.
func Compare(oldRes, newRes *extract.Result, useColor bool) (*Result, error) {
	before := index(oldRes)
	after := index(newRes)
	res := &Result{
		Added:    make([]string, 0),
		Removed:  make([]string, 0),
		Modified: make([]output.ModifiedLayer, 0),
	}

	for _, key := range before.keys {
		if _, ok := after.records[key]; !ok {
			res.Removed = append(res.Removed, key)
		}
	}
	for _, key := range after.keys {
		oldRecs, ok := before.records[key]
		if !ok {
			res.Added = append(res.Added, key)
			continue
		}

		d, err := compareRecords(oldRecs, after.records[key], useColor)
		if err != nil {
			return nil, fmt.Errorf("comparing %s: %w", key, err)
		}
		if d != "" {
			res.Modified = append(res.Modified, output.ModifiedLayer{Key: key, Diff: d})
		}
	}

	output.Debug("compared snapshots",
		"added", len(res.Added),
		"removed", len(res.Removed),
		"modified", len(res.Modified),
	)
	return res, nil
}

// compareRecords returns a diff string, or "" if the records are equal.
func compareRecords(oldRecs, newRecs *layerRecords, useColor bool) (string, error) {
	oldYAML, err := yaml.Marshal(oldRecs)
	if err != nil {
		return "", fmt.Errorf("serializing old records: %w", err)
	}
	newYAML, err := yaml.Marshal(newRecs)
	if err != nil {
		return "", fmt.Errorf("serializing new records: %w", err)
	}
	if bytes.Equal(oldYAML, newYAML) {
		return "", nil
	}
	return diffYAML(oldYAML, newYAML, useColor)
}

// diffYAML computes a YAML diff using dyff.
func diffYAML(oldData, newData []byte, useColor bool) (string, error) {
	if len(oldData) == 0 && len(newData) == 0 {
		return "", nil
	}

	oldInput, err := parseYAMLInput("old", oldData)
	if err != nil {
		return "", fmt.Errorf("parsing old YAML: %w", err)
	}
	newInput, err := parseYAMLInput("new", newData)
	if err != nil {
		return "", fmt.Errorf("parsing new YAML: %w", err)
	}

	report, err := dyff.CompareInputFiles(oldInput, newInput)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderReport(report, useColor)
}

// parseYAMLInput parses YAML bytes into a dyff input file.
func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

// renderReport renders a dyff report to a string.
func renderReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
