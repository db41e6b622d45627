package snapshot

import (
	"errors"
	"path/filepath"
	"strings"

	oerrors "github.com/unprops/cli/internal/errors"
	"github.com/unprops/cli/internal/layer"
)

// Snapshot is a loaded snapshot. It implements layer.Source.
type Snapshot struct {
	doc    *Document
	id     layer.Identity
	layers []layer.NodeRef
	tables []layer.NodeRef
}

var _ layer.Source = (*Snapshot)(nil)

func newSnapshot(doc *Document) *Snapshot {
	s := &Snapshot{
		doc: doc,
		id: layer.Identity{
			ProjectName: projectName(doc.Project),
			ProjectPath: doc.Project.Path,
			MapName:     doc.Map.Name,
		},
	}
	s.layers = flatten(nil, doc.Layers, "")
	for i := range doc.Tables {
		t := doc.Tables[i]
		t.Kind = layer.KindTable
		s.tables = append(s.tables, newRef(t, ""))
	}
	return s
}

// projectName returns the configured name, or the path's base name without
// its extension.
func projectName(p Project) string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	base := filepath.Base(strings.ReplaceAll(p.Path, `\`, "/"))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// flatten appends entries depth-first in authoring order. Each child records
// its container's name as parent.
func flatten(out []layer.NodeRef, entries []Entry, parent string) []layer.NodeRef {
	for _, e := range entries {
		out = append(out, newRef(e, parent))
		if len(e.Layers) > 0 {
			out = flatten(out, e.Layers, e.Name)
		}
	}
	return out
}

func newRef(e Entry, parent string) *layer.Ref {
	node := e.Node
	node.Kind = layer.ParseKind(string(node.Kind))
	return &layer.Ref{
		Node:       &node,
		ParentName: parent,
		Err:        readError(e),
	}
}

func readError(e Entry) error {
	if e.ReadError == nil {
		return nil
	}
	msg := e.ReadError.Message
	if e.ReadError.Code == CodePermission {
		if msg == "" {
			msg = "read access denied"
		}
		return oerrors.NewPermissionError(msg, map[string]string{"Node": e.Name}, "")
	}
	if msg == "" {
		msg = "reading node definition failed"
	}
	return errors.New(msg)
}

// Document returns the decoded document.
func (s *Snapshot) Document() *Document {
	return s.doc
}

// Identity implements layer.Source.
func (s *Snapshot) Identity() layer.Identity {
	return s.id
}

// Layers implements layer.Source.
func (s *Snapshot) Layers() ([]layer.NodeRef, error) {
	return s.layers, nil
}

// Tables implements layer.Source.
func (s *Snapshot) Tables() ([]layer.NodeRef, error) {
	return s.tables, nil
}
