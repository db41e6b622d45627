package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/unprops/cli/internal/output"
)

// Environment variable prefix for unprops configuration.
const envPrefix = "UNPROPS"

// Environment variables read by the CLI.
const (
	EnvConfig     = "UNPROPS_CONFIG"
	EnvOutputDir  = "UNPROPS_OUTPUT_DIR"
	EnvTimestamps = "UNPROPS_LOG_TIMESTAMPS"
	EnvScaleBands = "UNPROPS_REPORTS_SCALE_BANDS"
)

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
//
// UNPROPS_OUTPUT_DIR is not bound here; ResolveOutputDir applies it so the
// value keeps its source.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("log.timestamps", EnvTimestamps)
	_ = v.BindEnv("reports.scaleBands", EnvScaleBands)

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	// A missing config file is not an error; defaults and env vars apply.
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and applies defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}

	return cfg.WithDefaults(), nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// LoaderOptions are the flag values that take part in config resolution.
type LoaderOptions struct {
	// ConfigFlag is the --config flag value (empty if not set).
	ConfigFlag string

	// OutputDirFlag is the --out-dir flag value (empty if not set).
	OutputDirFlag string

	// Verbose is the --verbose flag value.
	Verbose bool
}

// LoadGlobalConfig resolves the config path, loads and validates the file,
// and resolves the output directory.
func LoadGlobalConfig(opts LoaderOptions) (*GlobalConfig, error) {
	configPath, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: opts.ConfigFlag})
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	raw, err := NewLoader().Load(configPath.Value)
	if err != nil {
		return nil, err
	}
	cfg := raw.WithDefaults()
	if errs := Validate(cfg); len(errs) > 0 {
		return nil, errs
	}

	outputDir := ResolveOutputDir(ResolveOutputDirOptions{
		FlagValue:   opts.OutputDirFlag,
		ConfigValue: raw.OutputDir,
	})

	output.Debug("loaded config", "path", configPath.Value)
	LogResolvedValues([]ResolvedValue{configPath, outputDir})

	return &GlobalConfig{
		Config:     cfg,
		ConfigPath: configPath,
		OutputDir:  outputDir,
		Verbose:    opts.Verbose,
	}, nil
}
