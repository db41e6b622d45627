package extract

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/unprops/cli/internal/errors"
	"github.com/unprops/cli/internal/layer"
)

func intPtr(v int) *int { return &v }

// featureNode returns a fully configured feature layer.
func featureNode() *layer.Node {
	return &layer.Node{
		Kind:           layer.KindFeature,
		Name:           "Water Mains",
		Visible:        true,
		MinScale:       50000,
		Source:         `C:\data\water.gdb\WaterMain`,
		ClassName:      "WaterMain",
		GeometryType:   "esriGeometryPolyline",
		Selectable:     true,
		Snappable:      true,
		Editable:       false,
		IsSubtypeLayer: true,
		SubtypeValue:   intPtr(3),
		RefreshRate:    -1,
		ShowMapTips:    true,
		DisplayField:   "ASSETID",
		DefinitionFilter: layer.DefinitionFilter{
			Name:       "Active",
			Expression: "LIFECYCLESTATUS = 2",
		},
		DefinitionFilters: []layer.DefinitionFilter{
			{Name: "Active", Expression: "LIFECYCLESTATUS = 2"},
		},
		Renderer: &layer.Renderer{
			Type:   layer.RendererUniqueValue,
			Fields: []string{"ASSETGROUP", "ASSETTYPE"},
		},
		LabelVisible: true,
		LabelClasses: []layer.LabelClass{
			{Name: "Default", Visible: true, Expression: "$feature.DIAMETER", MinScale: 2500},
		},
		Popup: &layer.Popup{
			Expressions: []layer.PopupExpression{{Name: "Age", Title: "Age", Expression: "return 1;"}},
			Media:       []layer.MediaInfo{{Type: layer.MediaTable, Fields: []string{"expression/Age"}}},
		},
		FeatureTemplateCount: intPtr(5),
	}
}

func TestClassifyNodeFeature(t *testing.T) {
	res := ClassifyNode(featureNode(), "Water", 3)
	require.Equal(t, OutcomeRecorded, res.Outcome)
	require.Len(t, res.Layers, 1)

	rec := res.Layers[0]
	assert.True(t, rec.Primary)
	assert.Equal(t, 3, rec.Pos)
	assert.Equal(t, "Feature Layer", rec.LayerType)
	assert.Equal(t, `"Water"`, rec.GroupLayerName)
	assert.Equal(t, `"Water Mains"`, rec.LayerName)
	assert.Equal(t, "True", rec.IsVisible)
	assert.Equal(t, `"C:\data\water.gdb\WaterMain"`, rec.LayerSource)
	assert.Equal(t, "WaterMain", rec.ClassName)
	assert.Equal(t, "True", rec.IsSubtypeLayer)
	assert.Equal(t, "3", rec.SubtypeValue)
	assert.Equal(t, "True", rec.IsSnappable)
	assert.Equal(t, "True", rec.IsSelectable)
	assert.Equal(t, "False", rec.IsEditable)
	assert.Equal(t, "-1", rec.RefreshRate)
	assert.Equal(t, `"Active"`, rec.DefinitionQueryName)
	assert.Equal(t, `"LIFECYCLESTATUS = 2"`, rec.DefinitionQuery)
	assert.Equal(t, "50000", rec.MinScale)
	assert.Equal(t, "<None>", rec.MaxScale)
	assert.Equal(t, "True", rec.ShowMapTips)
	assert.Equal(t, "Unique Values", rec.PrimarySymbology)
	assert.Equal(t, "ASSETGROUP", rec.SymbologyField1)
	assert.Equal(t, "ASSETTYPE", rec.SymbologyField2)
	assert.Empty(t, rec.SymbologyField3)
	assert.Equal(t, "5", rec.EditTemplateCount)
	assert.Equal(t, `"ASSETID"`, rec.DisplayField)
	assert.Equal(t, "True", rec.IsLabelVisible)
	assert.Equal(t, `"$feature.DIAMETER"`, rec.LabelExpression)
	assert.Equal(t, "2500", rec.LabelMinScale)
	assert.Equal(t, "<None>", rec.LabelMaxScale)

	require.Len(t, res.Labels, 1)
	require.Len(t, res.Popups, 1)
	require.Len(t, res.DefinitionQueries, 1)
	assert.Equal(t, "True", res.Popups[0].PopupExpressionVisible)
	assert.Equal(t, 3, res.DefinitionQueries[0].Pos)
	assert.Equal(t, `"Water Mains"`, res.DefinitionQueries[0].LayerName)
}

func TestClassifyNodeDisplayExpressionOverridesField(t *testing.T) {
	node := featureNode()
	node.DisplayExpression = `$feature.NAME + " (" + $feature.ID + ")"`

	rec := ClassifyNode(node, "", 1).Layers[0]
	assert.Equal(t, `"$feature.NAME + ' (' + $feature.ID + ')'"`, rec.DisplayField)
}

func TestClassifyNodeDisplayFiltersOnlyWhenEnabled(t *testing.T) {
	node := featureNode()
	node.DisplayFilterChoices = []layer.DisplayFilter{{Name: "All", WhereClause: "1=1"}}
	node.DisplayFilters = []layer.DisplayFilter{{Name: "Zoomed", MaxScale: 1200}}

	res := ClassifyNode(node, "", 1)
	assert.Len(t, res.Layers, 1, "disabled display filters add no rows")

	node.EnableDisplayFilters = true
	res = ClassifyNode(node, "Water", 1)
	require.Len(t, res.Layers, 3)
	for _, sub := range res.Layers[1:] {
		assert.False(t, sub.Primary)
		assert.Equal(t, 1, sub.Pos)
		assert.Equal(t, `"Water"`, sub.GroupLayerName)
		assert.Equal(t, `"Water Mains"`, sub.LayerName)
	}
}

func TestClassifyNodeContainerUsesOwnName(t *testing.T) {
	for _, kind := range []layer.Kind{layer.KindGroup, layer.KindSubtypeGroup, layer.KindUtilityNetwork, layer.KindGraphics} {
		t.Run(string(kind), func(t *testing.T) {
			rec := ClassifyNode(&layer.Node{Kind: kind, Name: "Container"}, "Outer", 1).Layers[0]
			assert.Equal(t, `"Container"`, rec.GroupLayerName)
			assert.Equal(t, `"Container"`, rec.LayerName)
		})
	}
}

func TestClassifyNodeMinimalKinds(t *testing.T) {
	tests := []struct {
		name       string
		node       *layer.Node
		wantType   string
		wantSource string
	}{
		{
			name:       "tiled service",
			node:       &layer.Node{Kind: layer.KindTiledService, Name: "Imagery", Source: "https://tiles.example.com/MapServer"},
			wantType:   "Tiled Service Layer",
			wantSource: `"https://tiles.example.com/MapServer"`,
		},
		{
			name:       "vector tile",
			node:       &layer.Node{Kind: layer.KindVectorTile, Name: "Streets", Source: "https://vt.example.com/VectorTileServer"},
			wantType:   "Vector Tile Layer",
			wantSource: `"https://vt.example.com/VectorTileServer"`,
		},
		{
			name:     "basemap",
			node:     &layer.Node{Kind: layer.KindBasemap, Name: "World Topo", Visible: true},
			wantType: "Basemap",
		},
		{
			name:     "unrecognized",
			node:     &layer.Node{Kind: layer.ParseKind("raster"), Name: "DEM", Visible: true},
			wantType: "Not Defined in this tool",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ClassifyNode(tt.node, "", 9)
			require.Equal(t, OutcomeRecorded, res.Outcome)
			require.Len(t, res.Layers, 1)
			rec := res.Layers[0]
			assert.Equal(t, tt.wantType, rec.LayerType)
			assert.Equal(t, tt.wantSource, rec.LayerSource)
			assert.Equal(t, 9, rec.Pos)
			assert.Empty(t, rec.PrimarySymbology)
			assert.Empty(t, res.Labels)
			assert.Empty(t, res.Popups)
		})
	}
}

func TestClassifyNodeAnnotationHasNoLabelsOrPopups(t *testing.T) {
	node := featureNode()
	node.Kind = layer.KindAnnotation

	res := ClassifyNode(node, "", 1)
	rec := res.Layers[0]
	assert.Equal(t, "Annotation", rec.LayerType)
	assert.Equal(t, "False", rec.IsSubtypeLayer)
	assert.Empty(t, rec.PrimarySymbology)
	assert.Empty(t, rec.LabelExpression)
	assert.Empty(t, res.Labels)
	assert.Empty(t, res.Popups)
	assert.Len(t, res.DefinitionQueries, 1)
}

func TestClassifyNodeUtilityNetworkTraceRows(t *testing.T) {
	node := &layer.Node{
		Kind:                layer.KindUtilityNetwork,
		Name:                "Electric Network",
		Visible:             true,
		TraceConfigurations: []string{"Downstream", "Subnetwork"},
	}

	res := ClassifyNode(node, "", 5)
	require.Len(t, res.Layers, 3)
	assert.True(t, res.Layers[0].Primary)
	for _, sub := range res.Layers[1:] {
		assert.Equal(t, 5, sub.Pos)
		assert.Equal(t, `"Electric Network"`, sub.LayerName)
		assert.NotEmpty(t, sub.ActiveTraceConfiguration)
	}
}

func TestClassifyNodeTable(t *testing.T) {
	node := &layer.Node{
		Kind:              layer.KindTable,
		Name:              "Inspections",
		Visible:           true,
		MinScale:          1000,
		Source:            `C:\data\water.gdb\Inspections`,
		ClassName:         "Inspections",
		DisplayField:      "INSPECTOR",
		DefinitionFilters: []layer.DefinitionFilter{{Name: "Recent", Expression: "YEAR > 2020"}},
	}

	res := ClassifyNode(node, "ignored", 2)
	rec := res.Layers[0]
	assert.Equal(t, "Table", rec.LayerType)
	assert.Empty(t, rec.GroupLayerName)
	assert.Empty(t, rec.MinScale)
	assert.Empty(t, rec.MaxScale)
	assert.Empty(t, rec.IsVisible)
	assert.Equal(t, `"INSPECTOR"`, rec.DisplayField)
	require.Len(t, res.DefinitionQueries, 1)
	assert.Empty(t, res.DefinitionQueries[0].GroupLayerName)
}

func TestClassify(t *testing.T) {
	t.Run("resolved node", func(t *testing.T) {
		res := Classify(&layer.Ref{Node: featureNode()}, "", 1)
		assert.Equal(t, OutcomeRecorded, res.Outcome)
		assert.NoError(t, res.Err)
	})

	t.Run("permission fault is suppressed", func(t *testing.T) {
		ref := &layer.Ref{
			Node: &layer.Node{Name: "Secret", Visible: true},
			Err:  oerrors.NewPermissionError("schema is not readable", nil, ""),
		}
		res := Classify(ref, "", 1)
		assert.Equal(t, OutcomeSuppressed, res.Outcome)
		assert.Empty(t, res.Layers)
		assert.Empty(t, res.Labels)
		assert.Empty(t, res.Popups)
		assert.Empty(t, res.DefinitionQueries)
		assert.ErrorIs(t, res.Err, oerrors.ErrPermission)
	})

	t.Run("wrapped permission fault is suppressed", func(t *testing.T) {
		ref := &layer.Ref{
			Node: &layer.Node{Name: "Secret"},
			Err:  fmt.Errorf("reading renderer: %w", oerrors.ErrPermission),
		}
		assert.Equal(t, OutcomeSuppressed, Classify(ref, "", 1).Outcome)
	})

	t.Run("other fault yields one error row", func(t *testing.T) {
		ref := &layer.Ref{
			Node:       &layer.Node{Name: "Broken", Visible: true},
			ParentName: "Water",
			Err:        errors.New(`table "Main" is missing`),
		}
		res := Classify(ref, "Water", 4)
		assert.Equal(t, OutcomeFailed, res.Outcome)
		require.Len(t, res.Layers, 1)

		rec := res.Layers[0]
		assert.True(t, rec.Primary)
		assert.Equal(t, 4, rec.Pos)
		assert.Equal(t, "Extract Error", rec.LayerType)
		assert.Equal(t, `"Broken"`, rec.LayerName)
		assert.Equal(t, `"Water"`, rec.GroupLayerName)
		assert.Equal(t, "True", rec.IsVisible)
		assert.Equal(t, `"table 'Main' is missing"`, rec.LayerSource)
	})

	t.Run("nil definition is a fault", func(t *testing.T) {
		res := Classify(&layer.Ref{}, "", 1)
		assert.Equal(t, OutcomeFailed, res.Outcome)
		require.Len(t, res.Layers, 1)
		assert.NotEmpty(t, res.Layers[0].LayerSource)
	})
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "recorded", OutcomeRecorded.String())
	assert.Equal(t, "suppressed", OutcomeSuppressed.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
