// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	configcmd "github.com/unprops/cli/internal/cmd/config"
	"github.com/unprops/cli/internal/cmd/extract"
	"github.com/unprops/cli/internal/cmd/inspect"
	"github.com/unprops/cli/internal/cmdtypes"
	"github.com/unprops/cli/internal/config"
	"github.com/unprops/cli/internal/output"
	"github.com/unprops/cli/internal/version"
)

// rootFlags holds the global flags.
type rootFlags struct {
	config     string
	outDir     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the unprops CLI.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cfg := &config.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "unprops",
		Short: "Map layer property extractor",
		Long: `unprops reads a snapshot of a map's layer tree and writes its layer,
label, pop-up and definition query properties as CSV reports.

It provides commands to:
  - Extract the LayerInfo, LabelInfo, PopupInfo and DefQueryInfo reports
  - Extract the LayerScales visibility matrix
  - Inspect a snapshot without writing files
  - Compare the extracted properties of two snapshots`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: UNPROPS_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flags.outDir, "out-dir", "", "Directory reports are written to (env: UNPROPS_OUTPUT_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(extract.NewExtractCmd(cfg))
	rootCmd.AddCommand(inspect.NewInspectCmd(cfg))
	rootCmd.AddCommand(inspect.NewDiffCmd(cfg))
	rootCmd.AddCommand(configcmd.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals loads configuration into cfg and sets up logging.
func initializeGlobals(c *cobra.Command, flags *rootFlags, cfg *config.GlobalConfig) error {
	loaded, err := config.LoadGlobalConfig(config.LoaderOptions{
		ConfigFlag:    flags.config,
		OutputDirFlag: flags.outDir,
		Verbose:       flags.verbose,
	})
	if err != nil {
		if !cmdtypes.ConfigOptional(c) {
			output.SetupLogging(output.LogConfig{Verbose: flags.verbose})
			output.Error("loading configuration", "error", err)
			return &cmdtypes.ExitError{Code: cmdtypes.ExitValidationError, Err: err, Printed: true}
		}
		// config init and config vet must work on a broken config file.
		output.Debug("config load error", "error", err)
		loaded = &config.GlobalConfig{
			Config: config.DefaultConfig(),
			OutputDir: config.ResolveOutputDir(config.ResolveOutputDirOptions{
				FlagValue: flags.outDir,
			}),
			Verbose: flags.verbose,
		}
		loaded.ConfigPath, _ = config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: flags.config})
	}
	*cfg = *loaded

	// Resolve timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if cfg.Config != nil && cfg.Config.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Config.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	info := version.Get()
	output.Debug("unprops started",
		"version", info.Version,
		"config", cfg.ConfigPath.Value,
		"out-dir", cfg.OutputDir.Value,
	)

	return nil
}
