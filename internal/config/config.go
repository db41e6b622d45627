// Package config provides configuration loading and management.
package config

import (
	"github.com/unprops/cli/internal/extract"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	// Env: UNPROPS_LOG_TIMESTAMPS
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// ReportsConfig contains report generation settings.
type ReportsConfig struct {
	// ScaleBands are the map scales tested by the LayerScales report.
	// Env: UNPROPS_REPORTS_SCALE_BANDS (comma separated)
	ScaleBands []float64 `json:"scaleBands,omitempty" yaml:"scaleBands,omitempty" mapstructure:"scaleBands"`
}

// Config represents the unprops configuration file.
// Loaded from ~/.unprops/config.yaml.
type Config struct {
	// OutputDir is the directory reports are written to.
	// Env: UNPROPS_OUTPUT_DIR, Default: current directory
	OutputDir string `json:"outputDir,omitempty" yaml:"outputDir,omitempty" mapstructure:"outputDir"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty" mapstructure:"log"`

	// Reports contains report generation settings.
	Reports ReportsConfig `json:"reports,omitempty" yaml:"reports,omitempty" mapstructure:"reports"`
}

// DefaultOutputDir is used when no output directory is configured.
const DefaultOutputDir = "."

// DefaultConfig returns a Config with all default values populated.
// Used by `unprops config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		OutputDir: DefaultOutputDir,
		Log:       LogConfig{Timestamps: &timestamps},
		Reports: ReportsConfig{
			ScaleBands: append([]float64(nil), extract.DefaultScaleBands...),
		},
	}
}

// WithDefaults returns a copy of c with unset fields filled from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()
	if out.OutputDir == "" {
		out.OutputDir = def.OutputDir
	}
	if out.Log.Timestamps == nil {
		out.Log.Timestamps = def.Log.Timestamps
	}
	if len(out.Reports.ScaleBands) == 0 {
		out.Reports.ScaleBands = def.Reports.ScaleBands
	}
	return &out
}

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every command
// constructor.
type GlobalConfig struct {
	// Config is the loaded configuration with defaults applied.
	Config *Config

	// ConfigPath is the resolved config file path.
	ConfigPath ResolvedValue

	// OutputDir is the resolved report output directory.
	OutputDir ResolvedValue

	// Verbose enables debug logging.
	Verbose bool
}
