// Package snapshot reads map snapshot files: a captured project, map and
// layer tree that the extractor walks in place of a live map.
package snapshot

import "github.com/unprops/cli/internal/layer"

// Read error codes accepted in a snapshot entry.
const (
	CodePermission = "permission"
	CodeError      = "error"
)

// Document is the decoded form of a snapshot file.
type Document struct {
	Project Project `yaml:"project"`
	Map     Map     `yaml:"map"`
	Layers  []Entry `yaml:"layers,omitempty"`
	Tables  []Entry `yaml:"tables,omitempty"`
}

// Project identifies the project the map was captured from.
type Project struct {
	// Name defaults to the base name of Path without its extension.
	Name string `yaml:"name,omitempty"`
	Path string `yaml:"path,omitempty"`
}

// Map names the captured map.
type Map struct {
	Name string `yaml:"name"`
}

// Entry is one node of the nested layer tree. Group-like entries nest
// their children under layers.
type Entry struct {
	layer.Node `yaml:",inline"`

	// ReadError records that reading the node's definition failed when the
	// snapshot was captured.
	ReadError *ReadError `yaml:"readError,omitempty"`

	Layers []Entry `yaml:"layers,omitempty"`
}

// ReadError is a captured read failure.
type ReadError struct {
	Code    string `yaml:"code"`
	Message string `yaml:"message,omitempty"`
}
