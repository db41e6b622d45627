// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unprops/cli/internal/cmdtypes"
	"github.com/unprops/cli/internal/config"
	"github.com/unprops/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show unprops version information.

Displays:
  - unprops version, commit, and build date
  - Go version and platform of the binary`,
		Annotations: cmdtypes.ConfigOptionalAnnotation(),
		RunE:        runVersion,
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
	return nil
}
