package extract

import "github.com/unprops/cli/internal/layer"

// LabelRows returns one LabelInfo record per label class. Each record carries
// its own class's visibility, expression and scale range.
func LabelRows(owner Owner, classes []layer.LabelClass) []LabelInfoRecord {
	if len(classes) == 0 {
		return nil
	}

	rows := make([]LabelInfoRecord, 0, len(classes))
	for _, lc := range classes {
		rows = append(rows, LabelInfoRecord{
			Pos:             owner.Pos,
			LayerType:       owner.LayerType,
			GroupLayerName:  owner.GroupLayerName,
			LayerName:       owner.LayerName,
			LabelClassName:  quoted(lc.Name),
			IsLabelVisible:  FormatBool(lc.Visible),
			LabelExpression: quoted(lc.Expression),
			LabelMinScale:   FormatScale(lc.MinScale),
			LabelMaxScale:   FormatScale(lc.MaxScale),
		})
	}
	return rows
}

// definitionQueryRows returns one DefQueryInfo record per named definition filter.
func definitionQueryRows(owner Owner, filters []layer.DefinitionFilter) []DefinitionQueryRecord {
	if len(filters) == 0 {
		return nil
	}

	rows := make([]DefinitionQueryRecord, 0, len(filters))
	for _, f := range filters {
		rows = append(rows, DefinitionQueryRecord{
			Pos:                 owner.Pos,
			LayerType:           owner.LayerType,
			GroupLayerName:      owner.GroupLayerName,
			LayerName:           owner.LayerName,
			DefinitionQueryName: quoted(f.Name),
			DefinitionQuery:     quoted(f.Expression),
		})
	}
	return rows
}
