package extract

// The record types below are wide, fixed schemas: every row of a report has
// the same columns regardless of node kind. Column names and order come from
// the csv tags. Text values are stored already escaped for the report.

// LayerInfoRecord is one row of the LayerInfo report.
type LayerInfoRecord struct {
	Pos                      int    `csv:"LayerPos" json:"pos"`
	LayerType                string `csv:"LayerType" json:"layerType,omitempty"`
	GroupLayerName           string `csv:"GroupLayerName" json:"groupLayerName,omitempty"`
	LayerName                string `csv:"LayerName" json:"layerName,omitempty"`
	IsVisible                string `csv:"IsVisible" json:"isVisible,omitempty"`
	LayerSource              string `csv:"LayerSource" json:"layerSource,omitempty"`
	ClassName                string `csv:"ClassName" json:"className,omitempty"`
	IsSubtypeLayer           string `csv:"IsSubtypeLayer" json:"isSubtypeLayer,omitempty"`
	SubtypeValue             string `csv:"SubtypeValue" json:"subtypeValue,omitempty"`
	GeometryType             string `csv:"GeometryType" json:"geometryType,omitempty"`
	IsSnappable              string `csv:"IsSnappable" json:"isSnappable,omitempty"`
	IsSelectable             string `csv:"IsSelectable" json:"isSelectable,omitempty"`
	IsEditable               string `csv:"IsEditable" json:"isEditable,omitempty"`
	RefreshRate              string `csv:"RefreshRate" json:"refreshRate,omitempty"`
	ActiveTraceConfiguration string `csv:"ActiveTraceConfiguration" json:"activeTraceConfiguration,omitempty"`
	DefinitionQueryName      string `csv:"DefinitionQueryName" json:"definitionQueryName,omitempty"`
	DefinitionQuery          string `csv:"DefinitionQuery" json:"definitionQuery,omitempty"`
	DisplayFilterName        string `csv:"DisplayFilterName" json:"displayFilterName,omitempty"`
	DisplayFilterExpression  string `csv:"DisplayFilterExpression" json:"displayFilterExpression,omitempty"`
	MinScale                 string `csv:"MinScale" json:"minScale,omitempty"`
	MaxScale                 string `csv:"MaxScale" json:"maxScale,omitempty"`
	ShowMapTips              string `csv:"ShowMapTips" json:"showMapTips,omitempty"`
	PrimarySymbology         string `csv:"PrimarySymbology" json:"primarySymbology,omitempty"`
	SymbologyField1          string `csv:"SymbologyField1" json:"symbologyField1,omitempty"`
	SymbologyField2          string `csv:"SymbologyField2" json:"symbologyField2,omitempty"`
	SymbologyField3          string `csv:"SymbologyField3" json:"symbologyField3,omitempty"`
	EditTemplateCount        string `csv:"EditTemplateCount" json:"editTemplateCount,omitempty"`
	DisplayField             string `csv:"DisplayField" json:"displayField,omitempty"`
	IsLabelVisible           string `csv:"IsLabelVisible" json:"isLabelVisible,omitempty"`
	LabelExpression          string `csv:"LabelExpression" json:"labelExpression,omitempty"`
	LabelMinScale            string `csv:"LabelMinScale" json:"labelMinScale,omitempty"`
	LabelMaxScale            string `csv:"LabelMaxScale" json:"labelMaxScale,omitempty"`
	PopupExpressionName      string `csv:"PopupExpressionName" json:"popupExpressionName,omitempty"`
	PopupExpressionTitle     string `csv:"PopupExpressionTitle" json:"popupExpressionTitle,omitempty"`
	PopupExpressionVisible   string `csv:"PopupExpressionVisible" json:"popupExpressionVisible,omitempty"`
	PopupExpressionArcade    string `csv:"PopupExpressionArcade" json:"popupExpressionArcade,omitempty"`

	// Primary is false for display filter and trace configuration sub-rows.
	Primary bool `csv:"-" json:"primary"`
}

// DefinitionQueryRecord is one row of the DefQueryInfo report.
type DefinitionQueryRecord struct {
	Pos                 int    `csv:"LayerPos" json:"pos"`
	LayerType           string `csv:"LayerType" json:"layerType"`
	GroupLayerName      string `csv:"GroupLayerName" json:"groupLayerName,omitempty"`
	LayerName           string `csv:"LayerName" json:"layerName"`
	DefinitionQueryName string `csv:"DefinitionQueryName" json:"definitionQueryName,omitempty"`
	DefinitionQuery     string `csv:"DefinitionQuery" json:"definitionQuery,omitempty"`
}

// LabelInfoRecord is one row of the LabelInfo report.
type LabelInfoRecord struct {
	Pos             int    `csv:"LayerPos" json:"pos"`
	LayerType       string `csv:"LayerType" json:"layerType"`
	GroupLayerName  string `csv:"GroupLayerName" json:"groupLayerName,omitempty"`
	LayerName       string `csv:"LayerName" json:"layerName"`
	LabelClassName  string `csv:"LabelClassName" json:"labelClassName,omitempty"`
	IsLabelVisible  string `csv:"IsLabelVisible" json:"isLabelVisible"`
	LabelExpression string `csv:"LabelExpression" json:"labelExpression,omitempty"`
	LabelMinScale   string `csv:"LabelMinScale" json:"labelMinScale"`
	LabelMaxScale   string `csv:"LabelMaxScale" json:"labelMaxScale"`
}

// PopupInfoRecord is one row of the PopupInfo report.
type PopupInfoRecord struct {
	Pos                    int    `csv:"LayerPos" json:"pos"`
	LayerType              string `csv:"LayerType" json:"layerType"`
	GroupLayerName         string `csv:"GroupLayerName" json:"groupLayerName,omitempty"`
	LayerName              string `csv:"LayerName" json:"layerName"`
	PopupExpressionName    string `csv:"PopupExpressionName" json:"popupExpressionName"`
	PopupExpressionTitle   string `csv:"PopupExpressionTitle" json:"popupExpressionTitle,omitempty"`
	PopupExpressionVisible string `csv:"PopupExpressionVisible" json:"popupExpressionVisible"`
	PopupExpressionArcade  string `csv:"PopupExpressionArcade" json:"popupExpressionArcade,omitempty"`
}
