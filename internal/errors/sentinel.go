package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a snapshot or config file failed validation.
	ErrValidation = errors.New("validation error")

	// ErrConnectivity indicates the map source could not be reached.
	ErrConnectivity = errors.New("connectivity error")

	// ErrPermission indicates the caller may not read a layer or schema property.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a snapshot, config file or directory was not found.
	ErrNotFound = errors.New("not found")
)
