// Package report writes extraction results as delimited report files.
package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/unprops/cli/internal/extract"
	"github.com/unprops/cli/internal/layer"
	"github.com/unprops/cli/internal/output"
)

// Kind names a report file.
type Kind string

const (
	KindLayerInfo    Kind = "LayerInfo"
	KindLabelInfo    Kind = "LabelInfo"
	KindPopupInfo    Kind = "PopupInfo"
	KindDefQueryInfo Kind = "DefQueryInfo"
	KindLayerScales  Kind = "LayerScales"
)

// Title returns the title written on the first line of a report.
func (k Kind) Title() string {
	if k == KindLayerScales {
		return "Layer Scales"
	}
	return "Layer Info"
}

const (
	// HeaderTimeFormat is the layout of the generation timestamp in the header block.
	HeaderTimeFormat = "1/2/2006 3:04:05 PM"

	// FileTimeFormat is the layout of the timestamp prefix of file names.
	FileTimeFormat = "20060102_150405"

	delimiter = ","
	extension = ".csv"
)

// Header is the block written above the column header of every report.
type Header struct {
	Generated  time.Time
	Title      string
	Identity   layer.Identity
	LayerCount int
	TableCount int
}

// Lines returns the header block, ending with the blank separator line.
func (h Header) Lines() []string {
	return []string{
		h.Generated.Format(HeaderTimeFormat) + delimiter + h.Title,
		"",
		"Project" + delimiter + h.Identity.ProjectPath,
		"Map" + delimiter + h.Identity.MapName,
		"Layer Count" + delimiter + strconv.Itoa(h.LayerCount),
		"Table Count" + delimiter + strconv.Itoa(h.TableCount),
		"",
	}
}

// FileName returns the report file name for a run started at ts. The
// project name is sanitized so the file stays inside the output directory.
func FileName(ts time.Time, projectName string, kind Kind) string {
	return ts.Format(FileTimeFormat) + "_" + sanitizeName(projectName) + "_" + string(kind) + extension
}

// sanitizeName makes a name safe for use in filenames.
func sanitizeName(name string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"\"", "",
		"<", "",
		">", "",
		"|", "-",
	)
	return replacer.Replace(name)
}

// Writer writes the reports of one run into a directory. Every file of a
// run shares the writer's timestamp.
type Writer struct {
	dir string
	now time.Time
}

// NewWriter returns a writer for dir. The directory must exist.
func NewWriter(dir string, now time.Time) *Writer {
	return &Writer{dir: dir, now: now}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// WriteAll writes the LayerInfo, LabelInfo, PopupInfo and DefQueryInfo
// reports of res and returns the paths written. Empty record lists produce
// no file.
func (w *Writer) WriteAll(res *extract.Result) ([]string, error) {
	header := Header{
		Generated:  w.now,
		Title:      KindLayerInfo.Title(),
		Identity:   res.Identity,
		LayerCount: res.LayerCount,
		TableCount: res.TableCount,
	}

	tables := []struct {
		kind    Kind
		columns []string
		rows    [][]string
	}{
		{KindLayerInfo, Columns(extract.LayerInfoRecord{}), rows(res.Layers)},
		{KindLabelInfo, Columns(extract.LabelInfoRecord{}), rows(res.Labels)},
		{KindPopupInfo, Columns(extract.PopupInfoRecord{}), rows(res.Popups)},
		{KindDefQueryInfo, Columns(extract.DefinitionQueryRecord{}), rows(res.DefinitionQueries)},
	}

	var written []string
	for _, tbl := range tables {
		if len(tbl.rows) == 0 {
			output.Debug("skipping empty report", "report", string(tbl.kind))
			continue
		}
		path, err := w.write(tbl.kind, res.Identity.ProjectName, header, tbl.columns, tbl.rows)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// WriteScales writes the LayerScales report of m and returns its path, or ""
// when the matrix has no rows.
func (w *Writer) WriteScales(m *extract.ScaleMatrix) (string, error) {
	if len(m.Rows) == 0 {
		output.Debug("skipping empty report", "report", string(KindLayerScales))
		return "", nil
	}

	header := Header{
		Generated:  w.now,
		Title:      KindLayerScales.Title(),
		Identity:   m.Identity,
		LayerCount: m.LayerCount,
		TableCount: m.TableCount,
	}
	columns := append(Columns(extract.LayerScaleRecord{}), m.BandHeaders()...)

	cells := make([][]string, len(m.Rows))
	for i, rec := range m.Rows {
		row := Values(rec)
		draws := rec.Draws
		if len(draws) != len(m.Bands) {
			// Error rows have no draw cells.
			draws = make([]string, len(m.Bands))
		}
		cells[i] = append(row, draws...)
	}

	return w.write(KindLayerScales, m.Identity.ProjectName, header, columns, cells)
}

// write stores one report under its final name. The content goes to a
// temporary sibling first, so a failed write leaves no partial report.
func (w *Writer) write(kind Kind, project string, header Header, columns []string, cells [][]string) (string, error) {
	path := filepath.Join(w.dir, FileName(w.now, project, kind))

	f, err := os.CreateTemp(w.dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("creating %s report: %w", kind, err)
	}
	tmp := f.Name()
	committed := false
	defer func() {
		if !committed {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	for _, line := range header.Lines() {
		if err := writeLine(bw, line); err != nil {
			return "", fmt.Errorf("writing %s report: %w", kind, err)
		}
	}
	if err := writeLine(bw, strings.Join(columns, delimiter)); err != nil {
		return "", fmt.Errorf("writing %s report: %w", kind, err)
	}
	for _, row := range cells {
		if err := writeLine(bw, strings.Join(row, delimiter)); err != nil {
			return "", fmt.Errorf("writing %s report: %w", kind, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return "", fmt.Errorf("flushing %s report: %w", kind, err)
	}
	if err := f.Chmod(0o644); err != nil {
		return "", fmt.Errorf("setting permissions on %s report: %w", kind, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s report: %w", kind, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("saving %s report: %w", kind, err)
	}
	committed = true

	output.Debug("wrote report", "report", string(kind), "rows", len(cells), "path", path)
	return path, nil
}

func writeLine(bw *bufio.Writer, line string) error {
	if _, err := bw.WriteString(line); err != nil {
		return err
	}
	return bw.WriteByte('\n')
}
