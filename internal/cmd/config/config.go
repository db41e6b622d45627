// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/unprops/cli/internal/cmdtypes"
	"github.com/unprops/cli/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:         "config",
		Short:       "Configuration management",
		Long:        `Configuration management for the unprops CLI.`,
		Annotations: cmdtypes.ConfigOptionalAnnotation(),
	}

	c.AddCommand(NewConfigInitCmd(cfg))
	c.AddCommand(NewConfigVetCmd(cfg))

	return c
}

// configPath returns the resolved config file path with ~ expanded.
func configPath(cfg *config.GlobalConfig) (string, error) {
	path := cfg.ConfigPath.Value
	if path == "" {
		resolved, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{})
		if err != nil {
			return "", err
		}
		path = resolved.Value
	}
	return config.ExpandPath(path)
}
