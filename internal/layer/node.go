package layer

// Node is the fully read definition of one layer tree entry.
// Attributes that do not apply to a kind are left at their zero value.
type Node struct {
	Kind    Kind   `json:"kind" yaml:"kind"`
	Name    string `json:"name" yaml:"name"`
	Visible bool   `json:"visible" yaml:"visible"`

	// MinScale and MaxScale bound the visible range. Zero means unbounded.
	MinScale float64 `json:"minScale,omitempty" yaml:"minScale,omitempty"`
	MaxScale float64 `json:"maxScale,omitempty" yaml:"maxScale,omitempty"`

	// Source is the data source path for table-backed kinds, or the service
	// URL for tiled and vector tile layers.
	Source       string `json:"source,omitempty" yaml:"source,omitempty"`
	ClassName    string `json:"className,omitempty" yaml:"className,omitempty"`
	GeometryType string `json:"geometryType,omitempty" yaml:"geometryType,omitempty"`

	Selectable bool `json:"selectable,omitempty" yaml:"selectable,omitempty"`
	Snappable  bool `json:"snappable,omitempty" yaml:"snappable,omitempty"`
	Editable   bool `json:"editable,omitempty" yaml:"editable,omitempty"`

	IsSubtypeLayer bool `json:"isSubtypeLayer,omitempty" yaml:"isSubtypeLayer,omitempty"`
	SubtypeValue   *int `json:"subtypeValue,omitempty" yaml:"subtypeValue,omitempty"`

	RefreshRate float64 `json:"refreshRate,omitempty" yaml:"refreshRate,omitempty"`
	ShowMapTips bool    `json:"showMapTips,omitempty" yaml:"showMapTips,omitempty"`

	// DisplayField is the primary display field. DisplayExpression, when set,
	// overrides it.
	DisplayField      string `json:"displayField,omitempty" yaml:"displayField,omitempty"`
	DisplayExpression string `json:"displayExpression,omitempty" yaml:"displayExpression,omitempty"`

	// DefinitionFilter is the active definition filter; DefinitionFilters
	// lists every named filter stored on the node.
	DefinitionFilter  DefinitionFilter   `json:"definitionFilter,omitempty" yaml:"definitionFilter,omitempty"`
	DefinitionFilters []DefinitionFilter `json:"definitionFilters,omitempty" yaml:"definitionFilters,omitempty"`

	EnableDisplayFilters bool            `json:"enableDisplayFilters,omitempty" yaml:"enableDisplayFilters,omitempty"`
	DisplayFilterChoices []DisplayFilter `json:"displayFilterChoices,omitempty" yaml:"displayFilterChoices,omitempty"`
	DisplayFilters       []DisplayFilter `json:"displayFilters,omitempty" yaml:"displayFilters,omitempty"`

	Renderer     *Renderer    `json:"renderer,omitempty" yaml:"renderer,omitempty"`
	LabelVisible bool         `json:"labelVisible,omitempty" yaml:"labelVisible,omitempty"`
	LabelClasses []LabelClass `json:"labelClasses,omitempty" yaml:"labelClasses,omitempty"`
	Popup        *Popup       `json:"popup,omitempty" yaml:"popup,omitempty"`

	// FeatureTemplateCount is nil when the node exposes no edit templates.
	FeatureTemplateCount *int `json:"featureTemplateCount,omitempty" yaml:"featureTemplateCount,omitempty"`

	// TraceConfigurations names the active trace configurations of a
	// utility network layer.
	TraceConfigurations []string `json:"traceConfigurations,omitempty" yaml:"traceConfigurations,omitempty"`
}

// DefinitionFilter is a named query restricting which records a node displays.
type DefinitionFilter struct {
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Expression string `json:"expression,omitempty" yaml:"expression,omitempty"`
}

// DisplayFilter selects the active sub-symbology, either by where clause
// (manual choice) or by scale range.
type DisplayFilter struct {
	Name        string  `json:"name" yaml:"name"`
	WhereClause string  `json:"whereClause,omitempty" yaml:"whereClause,omitempty"`
	MinScale    float64 `json:"minScale,omitempty" yaml:"minScale,omitempty"`
	MaxScale    float64 `json:"maxScale,omitempty" yaml:"maxScale,omitempty"`
}

// RendererType is the symbology renderer variant of a feature layer.
type RendererType string

const (
	RendererSimple         RendererType = "simple"
	RendererUniqueValue    RendererType = "unique-value"
	RendererClassBreaks    RendererType = "class-breaks"
	RendererChart          RendererType = "chart"
	RendererDictionary     RendererType = "dictionary"
	RendererDotDensity     RendererType = "dot-density"
	RendererHeatMap        RendererType = "heat-map"
	RendererProportional   RendererType = "proportional"
	RendererRepresentation RendererType = "representation"
)

// Renderer describes how a feature layer maps attribute values to symbols.
type Renderer struct {
	Type   RendererType `json:"type" yaml:"type"`
	Fields []string     `json:"fields,omitempty" yaml:"fields,omitempty"`

	// ClassBreakType names the break method of a class-breaks renderer,
	// e.g. GraduatedColor or GraduatedSymbol.
	ClassBreakType string `json:"classBreakType,omitempty" yaml:"classBreakType,omitempty"`
}

// LabelClass is one labeling rule of a feature layer.
type LabelClass struct {
	Name       string  `json:"name" yaml:"name"`
	Visible    bool    `json:"visible" yaml:"visible"`
	Expression string  `json:"expression,omitempty" yaml:"expression,omitempty"`
	MinScale   float64 `json:"minScale,omitempty" yaml:"minScale,omitempty"`
	MaxScale   float64 `json:"maxScale,omitempty" yaml:"maxScale,omitempty"`
}

// Popup is the pop-up definition of a node.
type Popup struct {
	Expressions []PopupExpression `json:"expressions,omitempty" yaml:"expressions,omitempty"`
	Media       []MediaInfo       `json:"media,omitempty" yaml:"media,omitempty"`
}

// PopupExpression is a computed value surfaced in the pop-up.
type PopupExpression struct {
	Name       string `json:"name" yaml:"name"`
	Title      string `json:"title,omitempty" yaml:"title,omitempty"`
	Expression string `json:"expression,omitempty" yaml:"expression,omitempty"`
}

// MediaType is the kind of a pop-up media binding.
type MediaType string

const (
	MediaTable MediaType = "table"
	MediaChart MediaType = "chart"
	MediaImage MediaType = "image"
	MediaText  MediaType = "text"
)

// MediaInfo binds fields or expressions into a pop-up element.
type MediaInfo struct {
	Type   MediaType `json:"type" yaml:"type"`
	Fields []string  `json:"fields,omitempty" yaml:"fields,omitempty"`
}
