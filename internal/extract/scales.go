package extract

import (
	"errors"
	"fmt"

	oerrors "github.com/unprops/cli/internal/errors"
	"github.com/unprops/cli/internal/layer"
	"github.com/unprops/cli/internal/output"
)

// DefaultScaleBands are the map scales tested by the LayerScales report.
var DefaultScaleBands = []float64{0, 500, 1200, 2500, 5000, 10000, 50000, 100000, 200000, 1000000, 10000000}

// LayerScaleRecord is one row of the LayerScales report. Draws holds one
// True/False cell per scale band of the matrix it belongs to.
type LayerScaleRecord struct {
	Pos            int      `csv:"Pos" json:"pos"`
	LayerType      string   `csv:"LayerType" json:"layerType"`
	GroupLayerName string   `csv:"GroupLayerName" json:"groupLayerName,omitempty"`
	LayerName      string   `csv:"LayerName" json:"layerName"`
	ScaleRange     string   `csv:"ScaleRange" json:"scaleRange,omitempty"`
	Draws          []string `csv:"-" json:"draws,omitempty"`
}

// ScaleMatrix is the result of a LayerScales run.
type ScaleMatrix struct {
	Identity   layer.Identity     `json:"identity"`
	Bands      []float64          `json:"bands"`
	Rows       []LayerScaleRecord `json:"rows"`
	LayerCount int                `json:"layerCount"`
	TableCount int                `json:"tableCount"`
	Failures   int                `json:"failures"`
	Suppressed int                `json:"suppressed"`
}

// BandHeaders returns the column header of each scale band.
func (m *ScaleMatrix) BandHeaders() []string {
	out := make([]string, len(m.Bands))
	for i, b := range m.Bands {
		out[i] = formatNumber(b)
	}
	return out
}

// DrawsAt reports whether a layer with the given scale range draws at scale.
// A zero bound is unbounded on that side. MinScale is the smallest scale
// denominator at which the layer draws when zoomed out, MaxScale the limit
// when zoomed in, so the layer draws at scale when MaxScale <= scale <= MinScale.
func DrawsAt(minScale, maxScale, scale float64) bool {
	if minScale != 0 && scale > minScale {
		return false
	}
	if maxScale != 0 && scale < maxScale {
		return false
	}
	return true
}

// scaleGroupName returns the group column of the scales report. Only kinds
// that hold data are reported under their container; every other kind is
// reported under its own name.
func scaleGroupName(node *layer.Node, parent string) string {
	switch node.Kind {
	case layer.KindFeature, layer.KindAnnotation, layer.KindAnnotationSubLayer, layer.KindDimension:
		return parent
	default:
		return node.Name
	}
}

// Scales evaluates every layer of src against bands. Standalone tables are
// counted for the header but have no scale range. Nodes are isolated the same
// way Walk isolates them.
func Scales(src layer.Source, bands []float64) (*ScaleMatrix, error) {
	if len(bands) == 0 {
		bands = DefaultScaleBands
	}
	id := src.Identity()

	layers, err := src.Layers()
	if err != nil {
		return nil, sourceError(fmt.Sprintf("reading layers of map %q", id.MapName), err)
	}
	tables, err := src.Tables()
	if err != nil {
		return nil, sourceError(fmt.Sprintf("reading standalone tables of map %q", id.MapName), err)
	}

	logger := output.MapLogger(id.MapName)
	m := &ScaleMatrix{
		Identity:   id,
		Bands:      append([]float64(nil), bands...),
		Rows:       make([]LayerScaleRecord, 0, len(layers)),
		LayerCount: len(layers),
		TableCount: len(tables),
	}

	pos := 1
	for _, ref := range layers {
		node, err := ref.Resolve()
		if err == nil && node == nil {
			err = errNoDefinition
		}
		if err != nil {
			if errors.Is(err, oerrors.ErrPermission) {
				logger.Debug("skipping node without read permission", "node", ref.Name(), "pos", pos)
				m.Suppressed++
				continue
			}
			logger.Warn("node could not be read", "node", ref.Name(), "pos", pos, "err", err)
			m.Rows = append(m.Rows, LayerScaleRecord{
				Pos:            pos,
				LayerType:      ExtractErrorType,
				GroupLayerName: quoted(ref.Parent()),
				LayerName:      quoted(ref.Name()),
			})
			m.Failures++
			pos++
			continue
		}

		draws := make([]string, len(m.Bands))
		for i, band := range m.Bands {
			draws[i] = FormatBool(DrawsAt(node.MinScale, node.MaxScale, band))
		}
		m.Rows = append(m.Rows, LayerScaleRecord{
			Pos:            pos,
			LayerType:      node.Kind.Label(),
			GroupLayerName: quoted(scaleGroupName(node, ref.Parent())),
			LayerName:      quoted(node.Name),
			ScaleRange:     quoted(FormatScale(node.MaxScale) + " -- " + FormatScale(node.MinScale)),
			Draws:          draws,
		})
		pos++
	}
	return m, nil
}
