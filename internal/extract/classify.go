package extract

import (
	"errors"
	"strconv"

	oerrors "github.com/unprops/cli/internal/errors"
	"github.com/unprops/cli/internal/layer"
)

// ExtractErrorType is the LayerType of the row recorded for a node whose
// definition could not be read.
const ExtractErrorType = "Extract Error"

// errNoDefinition is returned for a node that resolved to nothing.
var errNoDefinition = errors.New("node has no readable definition")

// Outcome is the result category of classifying one node.
type Outcome int

const (
	// OutcomeRecorded means the node produced a primary record and possibly sub-records.
	OutcomeRecorded Outcome = iota

	// OutcomeSuppressed means the node could not be read for lack of
	// permission. It contributes nothing and consumes no position.
	OutcomeSuppressed

	// OutcomeFailed means the node could not be read. It contributes a
	// single error row and consumes a position.
	OutcomeFailed
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomeRecorded:
		return "recorded"
	case OutcomeSuppressed:
		return "suppressed"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// NodeResult holds everything one node contributes to the reports.
// Layers[0] is the primary row when Outcome is not OutcomeSuppressed.
type NodeResult struct {
	Outcome           Outcome
	Layers            []LayerInfoRecord
	Labels            []LabelInfoRecord
	Popups            []PopupInfoRecord
	DefinitionQueries []DefinitionQueryRecord

	// Err is the read failure for suppressed and failed nodes.
	Err error
}

// Primary returns the node's primary LayerInfo row.
func (r NodeResult) Primary() (LayerInfoRecord, bool) {
	if len(r.Layers) == 0 {
		return LayerInfoRecord{}, false
	}
	return r.Layers[0], true
}

// Classify reads the node behind ref and classifies it. group is the name of
// the enclosing container, "" at the map root.
func Classify(ref layer.NodeRef, group string, pos int) NodeResult {
	node, err := ref.Resolve()
	if err == nil && node == nil {
		err = errNoDefinition
	}
	if err != nil {
		if errors.Is(err, oerrors.ErrPermission) {
			return NodeResult{Outcome: OutcomeSuppressed, Err: err}
		}
		return failedResult(ref, group, pos, err)
	}
	return ClassifyNode(node, group, pos)
}

func failedResult(ref layer.NodeRef, group string, pos int, err error) NodeResult {
	msg := err.Error()
	if msg == "" {
		msg = "unknown error"
	}
	return NodeResult{
		Outcome: OutcomeFailed,
		Err:     err,
		Layers: []LayerInfoRecord{{
			Pos:            pos,
			LayerType:      ExtractErrorType,
			GroupLayerName: quoted(group),
			LayerName:      quoted(ref.Name()),
			IsVisible:      FormatBool(ref.Visible()),
			LayerSource:    quoted(msg),
			Primary:        true,
		}},
	}
}

// ClassifyNode builds the records of a resolved node. It never fails: fields
// that do not apply to the node's kind stay empty.
func ClassifyNode(node *layer.Node, group string, pos int) NodeResult {
	if node.Kind.IsContainer() {
		group = node.Name
	}
	if node.Kind == layer.KindTable {
		group = ""
	}

	primary := LayerInfoRecord{
		Pos:            pos,
		LayerType:      node.Kind.Label(),
		GroupLayerName: quoted(group),
		LayerName:      quoted(node.Name),
		Primary:        true,
	}
	if node.Kind != layer.KindTable {
		primary.IsVisible = FormatBool(node.Visible)
	}

	res := NodeResult{Outcome: OutcomeRecorded}
	var subRows []LayerInfoRecord

	switch node.Kind {
	case layer.KindFeature:
		fillFeature(&primary, node)
		owner := OwnerOf(primary)
		res.Labels = LabelRows(owner, node.LabelClasses)
		res.Popups = PopupRows(owner, node.Popup)
		res.DefinitionQueries = definitionQueryRows(owner, node.DefinitionFilters)
		subRows = displayFilters(owner, node)

	case layer.KindSubtypeGroup:
		fillDefinitionFilter(&primary, node)
		fillScales(&primary, node)
		owner := OwnerOf(primary)
		res.DefinitionQueries = definitionQueryRows(owner, node.DefinitionFilters)
		subRows = displayFilters(owner, node)

	case layer.KindAnnotation, layer.KindDimension:
		fillTableBacked(&primary, node)
		primary.IsSubtypeLayer = FormatBool(false)
		primary.GeometryType = node.GeometryType
		primary.IsSelectable = FormatBool(node.Selectable)
		primary.IsEditable = FormatBool(node.Editable)
		primary.RefreshRate = formatNumber(node.RefreshRate)
		fillDefinitionFilter(&primary, node)
		fillScales(&primary, node)
		owner := OwnerOf(primary)
		res.DefinitionQueries = definitionQueryRows(owner, node.DefinitionFilters)
		subRows = displayFilters(owner, node)

	case layer.KindGroup, layer.KindAnnotationSubLayer:
		fillScales(&primary, node)

	case layer.KindUtilityNetwork:
		subRows = TraceConfigurationRows(OwnerOf(primary), node.TraceConfigurations)

	case layer.KindTiledService, layer.KindVectorTile:
		primary.LayerSource = quoted(node.Source)

	case layer.KindGraphics:
		primary.IsSelectable = FormatBool(node.Selectable)
		primary.RefreshRate = formatNumber(node.RefreshRate)
		fillScales(&primary, node)

	case layer.KindTable:
		fillTableBacked(&primary, node)
		fillDefinitionFilter(&primary, node)
		primary.DisplayField = displayField(node)
		owner := OwnerOf(primary)
		res.Popups = PopupRows(owner, node.Popup)
		res.DefinitionQueries = definitionQueryRows(owner, node.DefinitionFilters)

	case layer.KindBasemap:
		// Name and visibility only.

	default:
		primary.LayerType = layer.KindUnrecognized.Label()
	}

	res.Layers = make([]LayerInfoRecord, 0, 1+len(subRows))
	res.Layers = append(res.Layers, primary)
	res.Layers = append(res.Layers, subRows...)
	return res
}

func fillFeature(rec *LayerInfoRecord, node *layer.Node) {
	fillTableBacked(rec, node)
	rec.IsSubtypeLayer = FormatBool(node.IsSubtypeLayer)
	if node.IsSubtypeLayer && node.SubtypeValue != nil {
		rec.SubtypeValue = strconv.Itoa(*node.SubtypeValue)
	}
	rec.GeometryType = node.GeometryType
	rec.IsSelectable = FormatBool(node.Selectable)
	rec.IsSnappable = FormatBool(node.Snappable)
	rec.IsEditable = FormatBool(node.Editable)
	rec.RefreshRate = formatNumber(node.RefreshRate)
	fillDefinitionFilter(rec, node)
	fillScales(rec, node)
	rec.ShowMapTips = FormatBool(node.ShowMapTips)

	sym := ResolveSymbology(node.Renderer)
	rec.PrimarySymbology = sym.Label
	rec.SymbologyField1 = sym.Field1
	rec.SymbologyField2 = sym.Field2
	rec.SymbologyField3 = sym.Field3

	if node.FeatureTemplateCount != nil {
		rec.EditTemplateCount = strconv.Itoa(*node.FeatureTemplateCount)
	}
	rec.DisplayField = displayField(node)

	// The primary row shows the first label class only; LabelInfo has them all.
	rec.IsLabelVisible = FormatBool(node.LabelVisible)
	if len(node.LabelClasses) > 0 {
		first := node.LabelClasses[0]
		rec.LabelExpression = quoted(first.Expression)
		rec.LabelMinScale = FormatScale(first.MinScale)
		rec.LabelMaxScale = FormatScale(first.MaxScale)
	}
}

func fillTableBacked(rec *LayerInfoRecord, node *layer.Node) {
	rec.LayerSource = quoted(node.Source)
	rec.ClassName = node.ClassName
}

func fillDefinitionFilter(rec *LayerInfoRecord, node *layer.Node) {
	rec.DefinitionQueryName = quoted(node.DefinitionFilter.Name)
	rec.DefinitionQuery = quoted(node.DefinitionFilter.Expression)
}

func fillScales(rec *LayerInfoRecord, node *layer.Node) {
	rec.MinScale = FormatScale(node.MinScale)
	rec.MaxScale = FormatScale(node.MaxScale)
}

// displayField returns the display expression when one is configured, else
// the display field name.
func displayField(node *layer.Node) string {
	if node.DisplayExpression != "" {
		return quoted(node.DisplayExpression)
	}
	return quoted(node.DisplayField)
}

func displayFilters(owner Owner, node *layer.Node) []LayerInfoRecord {
	if !node.EnableDisplayFilters {
		return nil
	}
	return DisplayFilterRows(owner, node.DisplayFilterChoices, node.DisplayFilters)
}
