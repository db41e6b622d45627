// Package extract provides the `unprops extract` command group.
package extract

import (
	"github.com/spf13/cobra"

	"github.com/unprops/cli/internal/cmdutil"
	"github.com/unprops/cli/internal/config"
	"github.com/unprops/cli/internal/pipeline"
)

// NewExtractCmd creates the extract command group.
func NewExtractCmd(cfg *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "extract",
		Short: "Write property reports for a map snapshot",
		Long: `Commands for extracting the properties of a map snapshot into CSV reports.

Reports are written to the directory given by --out-dir, UNPROPS_OUTPUT_DIR
or outputDir in the config file, in that order. Reports without rows are
not written.`,
	}

	c.AddCommand(
		newReportCmd(cfg, reportCmdDef{
			use:   "layers <snapshot>",
			short: "Write the LayerInfo, LabelInfo, PopupInfo and DefQueryInfo reports",
			long: `Write the layer property reports for a map snapshot.

Each layer and standalone table contributes one LayerInfo row plus sub-rows
for display filters and trace configurations. Layers whose properties could
not be read appear as "Extract Error" rows; layers the user is not
authorized to read are skipped.

Examples:
  # Write reports next to the snapshot
  unprops extract layers ./Electric.yaml --out-dir .

  # Write reports from a JSON snapshot with verbose logging
  unprops extract layers ./Electric.json -v`,
			reports: []pipeline.ReportSet{pipeline.ReportsLayers},
		}),
		newReportCmd(cfg, reportCmdDef{
			use:   "scales <snapshot>",
			short: "Write the LayerScales report",
			long: `Write the LayerScales report for a map snapshot.

Each layer gets one row stating its visible scale range and, for every scale
band, whether the layer draws at that scale.

Examples:
  # Use the configured scale bands
  unprops extract scales ./Electric.yaml

  # Test specific scales
  unprops extract scales ./Electric.yaml --scale-bands 0,1200,24000`,
			reports:   []pipeline.ReportSet{pipeline.ReportsScales},
			withBands: true,
		}),
		newReportCmd(cfg, reportCmdDef{
			use:       "all <snapshot>",
			short:     "Write every report",
			long:      `Write the layer property reports and the LayerScales report for a map snapshot.`,
			reports:   []pipeline.ReportSet{pipeline.ReportsLayers, pipeline.ReportsScales},
			withBands: true,
		}),
	)

	return c
}

// reportCmdDef describes one extract sub-command.
type reportCmdDef struct {
	use       string
	short     string
	long      string
	reports   []pipeline.ReportSet
	withBands bool
}

func newReportCmd(cfg *config.GlobalConfig, def reportCmdDef) *cobra.Command {
	var rf cmdutil.ReportFlags

	c := &cobra.Command{
		Use:   def.use,
		Short: def.short,
		Long:  def.long,
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			res, err := cmdutil.RunReports(c.Context(), cmdutil.RunReportsOpts{
				SnapshotPath: args[0],
				Reports:      def.reports,
				ScaleBands:   rf.ScaleBands,
				Config:       cfg,
			})
			if err != nil {
				return err
			}
			cmdutil.WriteRunSummary(c.OutOrStdout(), res)
			return nil
		},
	}

	if def.withBands {
		rf.AddTo(c)
	}

	return c
}
