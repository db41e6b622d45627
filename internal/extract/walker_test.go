package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/unprops/cli/internal/errors"
	"github.com/unprops/cli/internal/layer"
)

var testIdentity = layer.Identity{
	ProjectName: "Network",
	ProjectPath: `C:\projects\Network.aprx`,
	MapName:     "Electric",
}

func ref(node *layer.Node, parent string) layer.NodeRef {
	return &layer.Ref{Node: node, ParentName: parent}
}

func failingRef(name, parent string, err error) layer.NodeRef {
	return &layer.Ref{Node: &layer.Node{Name: name, Visible: true}, ParentName: parent, Err: err}
}

// mixedSource is a tree with containers, sub-rows and both kinds of faults.
func mixedSource() *layer.StaticSource {
	un := &layer.Node{Kind: layer.KindUtilityNetwork, Name: "Electric UN", Visible: true,
		TraceConfigurations: []string{"Downstream"}}
	group := &layer.Node{Kind: layer.KindGroup, Name: "Distribution", Visible: true}
	devices := featureNode()
	devices.Name = "Devices"
	devices.EnableDisplayFilters = true
	devices.DisplayFilters = []layer.DisplayFilter{{Name: "Overview", MinScale: 10000}}
	lines := &layer.Node{Kind: layer.KindFeature, Name: "Lines", Visible: false}

	return &layer.StaticSource{
		ID: testIdentity,
		LayerRefs: []layer.NodeRef{
			ref(un, ""),
			ref(group, ""),
			ref(devices, "Distribution"),
			failingRef("Restricted", "Distribution", oerrors.NewPermissionError("no access", nil, "")),
			failingRef("Corrupt", "Distribution", errors.New("renderer definition is corrupt")),
			ref(lines, "Distribution"),
			ref(&layer.Node{Kind: layer.KindBasemap, Name: "Topographic", Visible: true}, ""),
		},
		TableRefs: []layer.NodeRef{
			ref(&layer.Node{Kind: layer.KindTable, Name: "Inspections"}, ""),
		},
	}
}

func TestWalkPositionsAreContiguous(t *testing.T) {
	res, err := Walk(mixedSource())
	require.NoError(t, err)

	primary := res.PrimaryLayers()
	require.Len(t, primary, 7, "7 of 8 nodes produce a primary row")
	for i, rec := range primary {
		assert.Equal(t, i+1, rec.Pos)
	}
	assert.Equal(t, 7, res.LayerCount)
	assert.Equal(t, 1, res.TableCount)
	assert.Equal(t, 1, res.Failures)
	assert.Equal(t, 1, res.Suppressed)
	assert.Equal(t, "Table", primary[6].LayerType)
}

func TestWalkSubRowsCorrelateWithPrimaryRows(t *testing.T) {
	res, err := Walk(mixedSource())
	require.NoError(t, err)

	names := map[int]string{}
	for _, rec := range res.PrimaryLayers() {
		names[rec.Pos] = rec.LayerName
	}

	check := func(pos int, name string) {
		t.Helper()
		want, ok := names[pos]
		if assert.True(t, ok, "position %d has no primary row", pos) {
			assert.Equal(t, want, name)
		}
	}
	for _, rec := range res.Layers {
		check(rec.Pos, rec.LayerName)
	}
	for _, rec := range res.Labels {
		check(rec.Pos, rec.LayerName)
	}
	for _, rec := range res.Popups {
		check(rec.Pos, rec.LayerName)
	}
	for _, rec := range res.DefinitionQueries {
		check(rec.Pos, rec.LayerName)
	}

	assert.Len(t, res.Layers, 9, "one trace row and one display filter row")
}

func TestWalkGroupNames(t *testing.T) {
	res, err := Walk(mixedSource())
	require.NoError(t, err)

	byName := map[string]LayerInfoRecord{}
	for _, rec := range res.PrimaryLayers() {
		byName[rec.LayerName] = rec
	}

	assert.Equal(t, `"Electric UN"`, byName[`"Electric UN"`].GroupLayerName)
	assert.Equal(t, `"Distribution"`, byName[`"Distribution"`].GroupLayerName)
	assert.Equal(t, `"Distribution"`, byName[`"Devices"`].GroupLayerName)
	assert.Equal(t, `"Distribution"`, byName[`"Corrupt"`].GroupLayerName)
	assert.Empty(t, byName[`"Topographic"`].GroupLayerName)
	assert.Empty(t, byName[`"Inspections"`].GroupLayerName)
}

func TestWalkFaults(t *testing.T) {
	t.Run("permission fault contributes nothing", func(t *testing.T) {
		src := &layer.StaticSource{
			ID: testIdentity,
			LayerRefs: []layer.NodeRef{
				failingRef("Hidden", "", oerrors.ErrPermission),
				ref(&layer.Node{Kind: layer.KindGroup, Name: "After"}, ""),
			},
		}
		res, err := Walk(src)
		require.NoError(t, err)
		require.Len(t, res.Layers, 1)
		assert.Equal(t, 1, res.Layers[0].Pos)
		assert.Equal(t, `"After"`, res.Layers[0].LayerName)
		assert.Zero(t, res.Failures)
	})

	t.Run("other fault yields a sentinel row and advances", func(t *testing.T) {
		src := &layer.StaticSource{
			ID: testIdentity,
			LayerRefs: []layer.NodeRef{
				failingRef("Broken", "", errors.New("boom")),
				ref(&layer.Node{Kind: layer.KindGroup, Name: "After"}, ""),
			},
		}
		res, err := Walk(src)
		require.NoError(t, err)
		require.Len(t, res.Layers, 2)
		assert.Equal(t, ExtractErrorType, res.Layers[0].LayerType)
		assert.Equal(t, `"boom"`, res.Layers[0].LayerSource)
		assert.Equal(t, 1, res.Layers[0].Pos)
		assert.Equal(t, 2, res.Layers[1].Pos)
		assert.Equal(t, 1, res.Failures)
	})

	t.Run("failing table is isolated", func(t *testing.T) {
		src := &layer.StaticSource{
			ID: testIdentity,
			TableRefs: []layer.NodeRef{
				failingRef("BadTable", "", errors.New("table missing")),
				ref(&layer.Node{Kind: layer.KindTable, Name: "GoodTable"}, ""),
			},
		}
		res, err := Walk(src)
		require.NoError(t, err)
		require.Len(t, res.Layers, 2)
		assert.Equal(t, `"GoodTable"`, res.Layers[1].LayerName)
	})

	t.Run("unavailable layer list fails the run", func(t *testing.T) {
		src := &layer.StaticSource{ID: testIdentity, LayersErr: oerrors.ErrConnectivity}
		res, err := Walk(src)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, oerrors.ErrConnectivity)
	})

	t.Run("unavailable table list fails the run", func(t *testing.T) {
		src := &layer.StaticSource{ID: testIdentity, TablesErr: errors.New("closed")}
		_, err := Walk(src)
		assert.ErrorContains(t, err, "standalone tables")
		assert.ErrorIs(t, err, oerrors.ErrConnectivity)
		assert.Equal(t, oerrors.ExitConnectivityError, oerrors.ExitCodeFromError(err))
	})

	t.Run("known cause is kept", func(t *testing.T) {
		src := &layer.StaticSource{ID: testIdentity, LayersErr: oerrors.ErrPermission}
		_, err := Walk(src)
		assert.ErrorIs(t, err, oerrors.ErrPermission)
		assert.NotErrorIs(t, err, oerrors.ErrConnectivity)
	})
}

func TestWalkEndToEnd(t *testing.T) {
	feature := &layer.Node{
		Kind:     layer.KindFeature,
		Name:     "Hydrants",
		Visible:  true,
		Renderer: &layer.Renderer{Type: layer.RendererUniqueValue, Fields: []string{"ASSETGROUP", "ASSETTYPE"}},
		LabelClasses: []layer.LabelClass{
			{Name: "Default", Visible: true, Expression: "$feature.FACILITYID"},
		},
		DefinitionFilters: []layer.DefinitionFilter{{Name: "Active", Expression: "STATUS = 1"}},
		Popup: &layer.Popup{
			Expressions: []layer.PopupExpression{{Name: "Age", Title: "Age", Expression: "return 10;"}},
			Media:       []layer.MediaInfo{{Type: layer.MediaTable, Fields: []string{"expression/Age"}}},
		},
	}
	src := &layer.StaticSource{
		ID:        testIdentity,
		LayerRefs: []layer.NodeRef{ref(feature, "")},
		TableRefs: []layer.NodeRef{ref(&layer.Node{Kind: layer.KindTable, Name: "Flushing"}, "")},
	}

	res, err := Walk(src)
	require.NoError(t, err)

	require.Len(t, res.Layers, 2)
	assert.Equal(t, 1, res.Layers[0].Pos)
	assert.Equal(t, 2, res.Layers[1].Pos)
	assert.Equal(t, "ASSETGROUP", res.Layers[0].SymbologyField1)
	assert.Equal(t, "ASSETTYPE", res.Layers[0].SymbologyField2)

	require.Len(t, res.Labels, 1)
	assert.Equal(t, 1, res.Labels[0].Pos)

	require.Len(t, res.Popups, 1)
	assert.Equal(t, 1, res.Popups[0].Pos)
	assert.Equal(t, "True", res.Popups[0].PopupExpressionVisible)

	require.Len(t, res.DefinitionQueries, 1)
	assert.Equal(t, 1, res.DefinitionQueries[0].Pos)
}

func TestWalkEmptyTree(t *testing.T) {
	res, err := Walk(&layer.StaticSource{ID: testIdentity})
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Zero(t, res.LayerCount)
}

func TestWalkIsIdempotent(t *testing.T) {
	src := mixedSource()

	first, err := Walk(src)
	require.NoError(t, err)
	second, err := Walk(src)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Digest(), second.Digest())

	other, err := Walk(&layer.StaticSource{ID: testIdentity})
	require.NoError(t, err)
	assert.NotEqual(t, first.Digest(), other.Digest())
}
