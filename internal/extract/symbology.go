package extract

import "github.com/unprops/cli/internal/layer"

// maxSymbologyFields is the number of renderer field slots in the LayerInfo report.
// Unique value renderers with more fields are truncated.
const maxSymbologyFields = 3

// defaultClassBreakType is reported for class-breaks renderers that do not
// name their break method.
const defaultClassBreakType = "GraduatedColor"

// Symbology is the coarse symbology category of a feature layer and up to
// three renderer field bindings.
type Symbology struct {
	Label  string
	Field1 string
	Field2 string
	Field3 string
}

// ResolveSymbology maps a renderer to its report label and field bindings.
// A nil or unknown renderer yields an empty Symbology.
func ResolveSymbology(r *layer.Renderer) Symbology {
	if r == nil {
		return Symbology{}
	}

	switch r.Type {
	case layer.RendererSimple:
		return Symbology{Label: "Single Symbol"}
	case layer.RendererUniqueValue:
		s := Symbology{Label: "Unique Values"}
		slots := []*string{&s.Field1, &s.Field2, &s.Field3}
		for i, field := range r.Fields {
			if i == maxSymbologyFields {
				break
			}
			*slots[i] = field
		}
		return s
	case layer.RendererClassBreaks:
		if r.ClassBreakType == "" {
			return Symbology{Label: defaultClassBreakType}
		}
		return Symbology{Label: r.ClassBreakType}
	case layer.RendererChart:
		return Symbology{Label: "Charts"}
	case layer.RendererDictionary:
		return Symbology{Label: "Dictionary"}
	case layer.RendererDotDensity:
		return Symbology{Label: "Dot Density"}
	case layer.RendererHeatMap:
		return Symbology{Label: "Heat Map"}
	case layer.RendererProportional:
		return Symbology{Label: "Proportional Symbols"}
	case layer.RendererRepresentation:
		return Symbology{Label: "Representation"}
	default:
		return Symbology{}
	}
}
