package inspect

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unprops/cli/internal/cmdtypes"
	"github.com/unprops/cli/internal/cmdutil"
	"github.com/unprops/cli/internal/config"
	"github.com/unprops/cli/internal/diff"
	"github.com/unprops/cli/internal/output"
	"github.com/unprops/cli/internal/pipeline"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd(_ *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "diff <old-snapshot> <new-snapshot>",
		Short: "Compare the extracted properties of two snapshots",
		Long: `Compare the records extracted from two map snapshots layer by layer.

Layers are matched by type, group and name, so reordering layers is not
reported as a change. The command exits 0 whether or not changes are found.

Examples:
  # Compare last week's snapshot with today's
  unprops diff ./Electric-old.yaml ./Electric.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			p := pipeline.New()
			oldRes, err := cmdutil.InspectSnapshot(c.Context(), p, args[0])
			if err != nil {
				return err
			}
			newRes, err := cmdutil.InspectSnapshot(c.Context(), p, args[1])
			if err != nil {
				return err
			}

			useColor := output.IsTTY()
			result, err := diff.Compare(oldRes, newRes, useColor)
			if err != nil {
				return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: fmt.Errorf("comparing snapshots: %w", err)}
			}

			styles := output.NoColorStyles()
			if useColor {
				styles = output.GetStyles()
			}
			rendered := output.RenderLayerDiff(result.Added, result.Removed, result.Modified, styles)
			fmt.Fprintln(c.OutOrStdout(), strings.TrimRight(rendered, "\n"))
			output.Debug("diff complete", "summary", result.Summary())
			return nil
		},
	}

	return c
}
