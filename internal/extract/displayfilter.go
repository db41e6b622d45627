package extract

import "github.com/unprops/cli/internal/layer"

// Owner identifies the primary row that sub-records are correlated with.
// Values are already rendered for the report.
type Owner struct {
	Pos            int
	LayerType      string
	GroupLayerName string
	LayerName      string
}

// OwnerOf returns the correlation key of a primary LayerInfo row.
func OwnerOf(rec LayerInfoRecord) Owner {
	return Owner{
		Pos:            rec.Pos,
		LayerType:      rec.LayerType,
		GroupLayerName: rec.GroupLayerName,
		LayerName:      rec.LayerName,
	}
}

// subRow starts a LayerInfo sub-row sharing the owner's position and names.
func (o Owner) subRow() LayerInfoRecord {
	return LayerInfoRecord{
		Pos:            o.Pos,
		GroupLayerName: o.GroupLayerName,
		LayerName:      o.LayerName,
	}
}

// DisplayFilterRows returns one LayerInfo sub-row per display filter.
// Manual choices come first and carry their where clause; scale filters
// follow and carry their scale range. Either list may be empty.
func DisplayFilterRows(parent Owner, choices, scaleFilters []layer.DisplayFilter) []LayerInfoRecord {
	if len(choices) == 0 && len(scaleFilters) == 0 {
		return nil
	}

	rows := make([]LayerInfoRecord, 0, len(choices)+len(scaleFilters))
	for _, f := range choices {
		rec := parent.subRow()
		rec.DisplayFilterName = quoted(f.Name)
		rec.DisplayFilterExpression = quoted(f.WhereClause)
		rows = append(rows, rec)
	}
	for _, f := range scaleFilters {
		rec := parent.subRow()
		rec.DisplayFilterName = quoted(f.Name)
		rec.MinScale = FormatScale(f.MinScale)
		rec.MaxScale = FormatScale(f.MaxScale)
		rows = append(rows, rec)
	}
	return rows
}

// TraceConfigurationRows returns one LayerInfo sub-row per active trace
// configuration of a utility network layer.
func TraceConfigurationRows(parent Owner, names []string) []LayerInfoRecord {
	if len(names) == 0 {
		return nil
	}

	rows := make([]LayerInfoRecord, 0, len(names))
	for _, name := range names {
		rec := parent.subRow()
		rec.ActiveTraceConfiguration = quoted(name)
		rows = append(rows, rec)
	}
	return rows
}
