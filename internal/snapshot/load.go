package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"

	oerrors "github.com/unprops/cli/internal/errors"
)

// Format is the encoding of a snapshot file.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatFor picks the format from a file extension. Anything but .json is YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads, validates and flattens the snapshot at path.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			return nil, oerrors.NewNotFoundError(
				"snapshot file does not exist",
				path,
				"Check the path, or capture a snapshot of the map first.",
			)
		case errors.Is(err, os.ErrPermission):
			return nil, oerrors.NewPermissionError(
				"snapshot file is not readable",
				map[string]string{"Path": path},
				"",
			)
		default:
			return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
		}
	}

	return Parse(data, FormatFor(path), path)
}

// Parse decodes and validates snapshot data. location names the source in
// error messages.
func Parse(data []byte, format Format, location string) (*Snapshot, error) {
	doc, err := Decode(data, format)
	if err != nil {
		return nil, oerrors.NewValidationError(err.Error(), location, "", "The snapshot must be valid YAML or JSON and use only known fields.")
	}

	if errs := Validate(doc); len(errs) > 0 {
		return nil, &oerrors.DetailError{
			Type:     "invalid snapshot",
			Message:  errs.Error(),
			Location: location,
			Cause:    oerrors.ErrValidation,
		}
	}

	return newSnapshot(doc), nil
}

// Decode decodes snapshot data strictly: unknown fields are errors.
func Decode(data []byte, format Format) (*Document, error) {
	if format == FormatJSON {
		converted, err := sigsyaml.JSONToYAML(data)
		if err != nil {
			return nil, fmt.Errorf("converting JSON snapshot: %w", err)
		}
		data = converted
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("snapshot is empty")
		}
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &doc, nil
}
