package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unprops/cli/internal/layer"
)

func TestDisplayFilterRows(t *testing.T) {
	parent := Owner{Pos: 2, LayerType: "Feature Layer", GroupLayerName: `"Electric"`, LayerName: `"Devices"`}

	t.Run("no filters", func(t *testing.T) {
		assert.Nil(t, DisplayFilterRows(parent, nil, nil))
	})

	t.Run("choices then scale bands", func(t *testing.T) {
		choices := []layer.DisplayFilter{
			{Name: "Open", WhereClause: `STATUS = "open"`},
		}
		bands := []layer.DisplayFilter{
			{Name: "Overview", MinScale: 0, MaxScale: 24000},
			{Name: "Detail", MinScale: 24000, MaxScale: 0},
		}

		rows := DisplayFilterRows(parent, choices, bands)
		require.Len(t, rows, 3)

		for _, r := range rows {
			assert.Equal(t, 2, r.Pos)
			assert.Equal(t, `"Electric"`, r.GroupLayerName)
			assert.Equal(t, `"Devices"`, r.LayerName)
			assert.False(t, r.Primary)
		}

		assert.Equal(t, `"Open"`, rows[0].DisplayFilterName)
		assert.Equal(t, `"STATUS = 'open'"`, rows[0].DisplayFilterExpression)
		assert.Empty(t, rows[0].MinScale)

		assert.Equal(t, `"Overview"`, rows[1].DisplayFilterName)
		assert.Equal(t, "<None>", rows[1].MinScale)
		assert.Equal(t, "24000", rows[1].MaxScale)
		assert.Empty(t, rows[1].DisplayFilterExpression)

		assert.Equal(t, "24000", rows[2].MinScale)
		assert.Equal(t, "<None>", rows[2].MaxScale)
	})
}

func TestTraceConfigurationRows(t *testing.T) {
	parent := Owner{Pos: 7, LayerType: "Utility Network Layer", GroupLayerName: `"UN"`, LayerName: `"UN"`}

	rows := TraceConfigurationRows(parent, []string{"Upstream", "Isolation"})
	require.Len(t, rows, 2)
	assert.Equal(t, `"Upstream"`, rows[0].ActiveTraceConfiguration)
	assert.Equal(t, `"Isolation"`, rows[1].ActiveTraceConfiguration)
	assert.Equal(t, 7, rows[1].Pos)
	assert.Equal(t, `"UN"`, rows[1].LayerName)

	assert.Nil(t, TraceConfigurationRows(parent, nil))
}

func TestLabelRows(t *testing.T) {
	owner := Owner{Pos: 1, LayerType: "Feature Layer", LayerName: `"Poles"`}
	classes := []layer.LabelClass{
		{Name: "Class 1", Visible: true, Expression: `$feature.NAME + "x"`, MinScale: 5000},
		{Name: "Class 2", Visible: false, Expression: "$feature.ID", MaxScale: 100},
	}

	rows := LabelRows(owner, classes)
	require.Len(t, rows, 2)

	// Each record carries its own class's values.
	assert.Equal(t, `"Class 1"`, rows[0].LabelClassName)
	assert.Equal(t, "True", rows[0].IsLabelVisible)
	assert.Equal(t, `"$feature.NAME + 'x'"`, rows[0].LabelExpression)
	assert.Equal(t, "5000", rows[0].LabelMinScale)
	assert.Equal(t, "<None>", rows[0].LabelMaxScale)

	assert.Equal(t, `"Class 2"`, rows[1].LabelClassName)
	assert.Equal(t, "False", rows[1].IsLabelVisible)
	assert.Equal(t, `"$feature.ID"`, rows[1].LabelExpression)
	assert.Equal(t, "<None>", rows[1].LabelMinScale)
	assert.Equal(t, "100", rows[1].LabelMaxScale)
}
