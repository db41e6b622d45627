// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/extract, internal/cmd/inspect,
// internal/cmd/config).
package cmdtypes

import (
	"github.com/spf13/cobra"

	oerrors "github.com/unprops/cli/internal/errors"
)

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess           = oerrors.ExitSuccess
	ExitGeneralError      = oerrors.ExitGeneralError
	ExitValidationError   = oerrors.ExitValidationError
	ExitConnectivityError = oerrors.ExitConnectivityError
	ExitPermissionDenied  = oerrors.ExitPermissionDenied
	ExitNotFound          = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError

// AnnotationConfigOptional marks a command that runs even when the config
// file cannot be loaded. Inherited by sub-commands.
const AnnotationConfigOptional = "unprops/config-optional"

// ConfigOptional reports whether c or one of its parents is marked with
// AnnotationConfigOptional.
func ConfigOptional(c *cobra.Command) bool {
	for ; c != nil; c = c.Parent() {
		if c.Annotations[AnnotationConfigOptional] == "true" {
			return true
		}
	}
	return false
}

// ConfigOptionalAnnotation returns the annotation map for config-optional commands.
func ConfigOptionalAnnotation() map[string]string {
	return map[string]string{AnnotationConfigOptional: "true"}
}
