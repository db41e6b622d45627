package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	oerrors "github.com/unprops/cli/internal/errors"
	"github.com/unprops/cli/internal/output"
	"github.com/unprops/cli/internal/pipeline"
	"github.com/unprops/cli/internal/report"
)

// PrintRunError prints a run failure in a user-friendly format. Detail
// errors are printed as their multi-line block after a summary line.
func PrintRunError(msg string, err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Error(fmt.Sprintf("%s: %s", msg, detail.Message))
		output.Details(detail.Error())
		return
	}
	output.Error(msg, "error", err)
}

// reportKinds lists the kinds a run may write, in write order.
func reportKinds(res *pipeline.Result) []report.Kind {
	var kinds []report.Kind
	if res.Extraction != nil {
		kinds = append(kinds, report.KindLayerInfo, report.KindLabelInfo, report.KindPopupInfo, report.KindDefQueryInfo)
	}
	if res.Scales != nil {
		kinds = append(kinds, report.KindLayerScales)
	}
	return kinds
}

// WriteRunSummary writes one line per report with its status, then the
// completion line and the node failure count when non-zero.
func WriteRunSummary(w io.Writer, res *pipeline.Result) {
	for _, kind := range reportKinds(res) {
		suffix := "_" + string(kind) + ".csv"
		line := output.FormatReportLine(string(kind), output.StatusEmpty)
		for _, f := range res.Files {
			if strings.HasSuffix(f, suffix) {
				line = output.FormatReportLine(filepath.Base(f), output.StatusWritten)
				break
			}
		}
		fmt.Fprintln(w, line)
	}

	noun := "reports"
	if len(res.Files) == 1 {
		noun = "report"
	}
	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("%d %s written to %s", len(res.Files), noun, res.OutputDir)))
	if res.Extraction != nil {
		fmt.Fprintln(w, output.StyleDim.Render(fmt.Sprintf("digest %016x", res.Extraction.Digest())))
	}

	if n := res.Failures(); n > 0 {
		output.Warn(output.FormatFailureCount(n))
	}
}
