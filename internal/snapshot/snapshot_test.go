package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/unprops/cli/internal/errors"
	"github.com/unprops/cli/internal/layer"
	"github.com/unprops/cli/internal/testutil"
)

func TestLoadYAML(t *testing.T) {
	snap, err := Load(filepath.Join("testdata", "network.yaml"))
	require.NoError(t, err)

	assert.Equal(t, layer.Identity{
		ProjectName: "Network",
		ProjectPath: `C:\projects\Network.aprx`,
		MapName:     "Electric",
	}, snap.Identity())

	layers, err := snap.Layers()
	require.NoError(t, err)

	var names, parents []string
	for _, r := range layers {
		names = append(names, r.Name())
		parents = append(parents, r.Parent())
	}
	assert.Equal(t, []string{
		"Electric Utility Network",
		"Electric Device",
		"Transformer",
		"Switch",
		"Device Annotation",
		"Hillshade",
		"Light Gray Canvas",
	}, names, "flattened depth-first in authoring order")
	assert.Equal(t, []string{
		"",
		"Electric Utility Network",
		"Electric Device",
		"Electric Device",
		"",
		"",
		"",
	}, parents)

	transformer, err := layers[2].Resolve()
	require.NoError(t, err)
	assert.Equal(t, layer.KindFeature, transformer.Kind)
	require.NotNil(t, transformer.SubtypeValue)
	assert.Equal(t, 3, *transformer.SubtypeValue)
	assert.Equal(t, []string{"ASSETGROUP", "ASSETTYPE"}, transformer.Renderer.Fields)
	assert.Equal(t, `Rated "kVA"`, transformer.Popup.Expressions[0].Title)

	hillshade, err := layers[5].Resolve()
	require.NoError(t, err)
	assert.Equal(t, layer.KindUnrecognized, hillshade.Kind)

	tables, err := snap.Tables()
	require.NoError(t, err)
	require.Len(t, tables, 1)
	table, err := tables[0].Resolve()
	require.NoError(t, err)
	assert.Equal(t, layer.KindTable, table.Kind)
}

func TestLoadReadErrors(t *testing.T) {
	snap, err := Load(filepath.Join("testdata", "network.yaml"))
	require.NoError(t, err)
	layers, err := snap.Layers()
	require.NoError(t, err)

	sw := layers[3]
	assert.False(t, sw.Visible())
	_, err = sw.Resolve()
	assert.ErrorIs(t, err, oerrors.ErrPermission)

	anno := layers[4]
	assert.True(t, anno.Visible())
	_, err = anno.Resolve()
	require.Error(t, err)
	assert.NotErrorIs(t, err, oerrors.ErrPermission)
	assert.EqualError(t, err, "Annotation class is missing")
}

func TestLoadJSON(t *testing.T) {
	snap, err := Load(filepath.Join("testdata", "simple.json"))
	require.NoError(t, err)

	id := snap.Identity()
	assert.Equal(t, "Water", id.ProjectName)
	assert.Equal(t, "Distribution", id.MapName)

	layers, err := snap.Layers()
	require.NoError(t, err)
	require.Len(t, layers, 2)
	assert.Equal(t, "Water", layers[1].Parent())

	mains, err := layers[1].Resolve()
	require.NoError(t, err)
	assert.Equal(t, layer.RendererSimple, mains.Renderer.Type)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	data := []byte("project: {name: P}\nmap: {name: M}\nlayers:\n  - name: A\n    colour: red\n")
	_, err := Parse(data, FormatYAML, "inline")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.Contains(t, err.Error(), "colour")
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(nil, FormatYAML, "inline")
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}

func TestValidate(t *testing.T) {
	doc := &Document{
		Layers: []Entry{
			{Node: layer.Node{Name: "ok"}},
			{Layers: []Entry{{Node: layer.Node{Name: "child"}, ReadError: &ReadError{Code: "timeout"}}}},
		},
		Tables: []Entry{
			{Node: layer.Node{Name: "t"}, Layers: []Entry{{Node: layer.Node{Name: "x"}}}},
		},
	}

	errs := Validate(doc)
	var fields []string
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{
		"project",
		"map.name",
		"layers[1].name",
		"layers[1].layers[0].readError.code",
		"tables[0].layers",
	}, fields)
	assert.Contains(t, errs.Error(), "snapshot validation failed")
}

func TestParseInvalidDocument(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "bad.yaml", "project: {path: /x/P.aprx}\nlayers:\n  - kind: group\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.Contains(t, err.Error(), "map.name")
	assert.Contains(t, err.Error(), "layers[0].name")
}

func TestProjectName(t *testing.T) {
	assert.Equal(t, "Named", projectName(Project{Name: "Named", Path: "/x/Other.aprx"}))
	assert.Equal(t, "Network", projectName(Project{Path: `C:\projects\Network.aprx`}))
	assert.Equal(t, "Water", projectName(Project{Path: "/srv/Water.aprx"}))
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFor("map.JSON"))
	assert.Equal(t, FormatYAML, FormatFor("map.yaml"))
	assert.Equal(t, FormatYAML, FormatFor("map"))
}
