// Package inspect provides the read-only `unprops inspect` and `unprops diff`
// commands.
package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/unprops/cli/internal/cmdtypes"
	"github.com/unprops/cli/internal/cmdutil"
	"github.com/unprops/cli/internal/config"
	"github.com/unprops/cli/internal/extract"
	"github.com/unprops/cli/internal/output"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd(_ *config.GlobalConfig) *cobra.Command {
	var ff cmdutil.FormatFlags

	c := &cobra.Command{
		Use:   "inspect <snapshot>",
		Short: "Show the extracted layer properties without writing reports",
		Long: `Show the properties extracted from a map snapshot.

The table format lists one row per layer and standalone table. The json and
yaml formats print every record list together with the layer and table counts.

Examples:
  # Show a layer table
  unprops inspect ./Electric.yaml

  # Dump all records as JSON
  unprops inspect ./Electric.yaml -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			format, err := ff.Format()
			if err != nil {
				return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: err}
			}

			res, err := cmdutil.InspectSnapshot(c.Context(), nil, args[0])
			if err != nil {
				return err
			}
			return writeResult(c.OutOrStdout(), res, format)
		},
	}

	ff.AddTo(c)

	return c
}

func writeResult(w io.Writer, res *extract.Result, format output.Format) error {
	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case output.FormatYAML:
		data, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		if _, err := fmt.Fprintln(w, layerTable(res).String()); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "%s: %d layers, %d tables, %d failed, %d skipped (digest %016x)\n",
			res.Identity.MapName, res.LayerCount, res.TableCount, res.Failures, res.Suppressed, res.Digest())
		return err
	}
}

// layerTable renders the primary LayerInfo rows. Error rows use the failed style.
func layerTable(res *extract.Result) *output.Table {
	tbl := output.NewTable("Pos", "Type", "Group", "Name", "Visible", "Symbology", "Definition Query")
	for _, rec := range res.PrimaryLayers() {
		cells := []string{
			strconv.Itoa(rec.Pos),
			rec.LayerType,
			unquote(rec.GroupLayerName),
			unquote(rec.LayerName),
			rec.IsVisible,
			rec.PrimarySymbology,
			unquote(rec.DefinitionQuery),
		}
		if rec.LayerType == extract.ExtractErrorType {
			// The error message is in the source column.
			cells[len(cells)-1] = unquote(rec.LayerSource)
			tbl.FailedRow(cells...)
			continue
		}
		tbl.Row(cells...)
	}
	return tbl
}

func unquote(s string) string {
	return strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`)
}
