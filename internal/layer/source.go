package layer

// Identity describes the project and map a layer tree belongs to.
type Identity struct {
	// ProjectName is the project file name without extension.
	ProjectName string `json:"projectName" yaml:"projectName"`
	ProjectPath string `json:"projectPath" yaml:"projectPath"`
	MapName     string `json:"mapName" yaml:"mapName"`
}

// NodeRef is a handle to one node of the flattened tree.
//
// Name, Visible and Parent are header properties that are always readable.
// Resolve reads the full definition and may fail, for example when the
// caller is not authorized to read the node's schema.
type NodeRef interface {
	Name() string
	Visible() bool

	// Parent returns the name of the enclosing container, or "" when the
	// node sits directly under the map.
	Parent() string

	Resolve() (*Node, error)
}

// Source supplies a map's flattened layer tree and standalone tables.
// Errors from Layers or Tables mean the tree itself is unavailable.
type Source interface {
	Identity() Identity

	// Layers returns the tree flattened depth-first in authoring order.
	Layers() ([]NodeRef, error)

	// Tables returns the standalone tables in authoring order.
	Tables() ([]NodeRef, error)
}

// Ref is a NodeRef over an in-memory node. A non-nil Err makes Resolve fail.
type Ref struct {
	Node       *Node
	ParentName string
	Err        error
}

var _ NodeRef = (*Ref)(nil)

// Name implements NodeRef.
func (r *Ref) Name() string {
	if r.Node == nil {
		return ""
	}
	return r.Node.Name
}

// Visible implements NodeRef.
func (r *Ref) Visible() bool {
	return r.Node != nil && r.Node.Visible
}

// Parent implements NodeRef.
func (r *Ref) Parent() string {
	return r.ParentName
}

// Resolve implements NodeRef.
func (r *Ref) Resolve() (*Node, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Node, nil
}

// StaticSource is a Source over fixed slices.
type StaticSource struct {
	ID        Identity
	LayerRefs []NodeRef
	TableRefs []NodeRef
	LayersErr error
	TablesErr error
}

var _ Source = (*StaticSource)(nil)

// Identity implements Source.
func (s *StaticSource) Identity() Identity {
	return s.ID
}

// Layers implements Source.
func (s *StaticSource) Layers() ([]NodeRef, error) {
	if s.LayersErr != nil {
		return nil, s.LayersErr
	}
	return s.LayerRefs, nil
}

// Tables implements Source.
func (s *StaticSource) Tables() ([]NodeRef, error) {
	if s.TablesErr != nil {
		return nil, s.TablesErr
	}
	return s.TableRefs, nil
}
