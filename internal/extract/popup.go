package extract

import "github.com/unprops/cli/internal/layer"

// expressionTokenPrefix prefixes expression references in media field lists.
const expressionTokenPrefix = "expression/"

// ExpressionVisible reports whether the named expression is shown in the
// pop-up, that is whether any table media binding lists "expression/<name>".
func ExpressionVisible(name string, media []layer.MediaInfo) bool {
	token := expressionTokenPrefix + name
	for _, m := range media {
		if m.Type != layer.MediaTable {
			continue
		}
		for _, field := range m.Fields {
			if field == token {
				return true
			}
		}
	}
	return false
}

// PopupRows returns one PopupInfo record per custom pop-up expression.
func PopupRows(owner Owner, popup *layer.Popup) []PopupInfoRecord {
	if popup == nil || len(popup.Expressions) == 0 {
		return nil
	}

	rows := make([]PopupInfoRecord, 0, len(popup.Expressions))
	for _, expr := range popup.Expressions {
		rows = append(rows, PopupInfoRecord{
			Pos:                    owner.Pos,
			LayerType:              owner.LayerType,
			GroupLayerName:         owner.GroupLayerName,
			LayerName:              owner.LayerName,
			PopupExpressionName:    normalizeText(expr.Name),
			PopupExpressionTitle:   quoted(expr.Title),
			PopupExpressionVisible: FormatBool(ExpressionVisible(expr.Name, popup.Media)),
			PopupExpressionArcade:  quoted(expr.Expression),
		})
	}
	return rows
}
