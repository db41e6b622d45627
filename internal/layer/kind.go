// Package layer models the read-only map layer tree consumed by the extractor.
package layer

import "strings"

// Kind identifies the variant of a layer tree node.
type Kind string

const (
	KindFeature            Kind = "feature"
	KindSubtypeGroup       Kind = "subtype-group"
	KindGroup              Kind = "group"
	KindAnnotation         Kind = "annotation"
	KindAnnotationSubLayer Kind = "annotation-sublayer"
	KindDimension          Kind = "dimension"
	KindUtilityNetwork     Kind = "utility-network"
	KindTiledService       Kind = "tiled-service"
	KindVectorTile         Kind = "vector-tile"
	KindGraphics           Kind = "graphics"
	KindBasemap            Kind = "basemap"
	KindTable              Kind = "table"

	// KindUnrecognized is any node kind the extractor has no rules for.
	KindUnrecognized Kind = "unrecognized"
)

// knownKinds lists every kind with extraction rules, in declaration order.
var knownKinds = []Kind{
	KindFeature,
	KindSubtypeGroup,
	KindGroup,
	KindAnnotation,
	KindAnnotationSubLayer,
	KindDimension,
	KindUtilityNetwork,
	KindTiledService,
	KindVectorTile,
	KindGraphics,
	KindBasemap,
	KindTable,
}

// ParseKind maps a kind name to a Kind. Unknown names yield KindUnrecognized.
func ParseKind(s string) Kind {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range knownKinds {
		if k == known {
			return k
		}
	}
	return KindUnrecognized
}

// KnownKinds returns the kinds that have extraction rules.
func KnownKinds() []Kind {
	out := make([]Kind, len(knownKinds))
	copy(out, knownKinds)
	return out
}

// Label returns the display label used in the LayerType report column.
func (k Kind) Label() string {
	switch k {
	case KindFeature:
		return "Feature Layer"
	case KindSubtypeGroup:
		return "Subtype Group Layer"
	case KindGroup:
		return "Group Layer"
	case KindAnnotation:
		return "Annotation"
	case KindAnnotationSubLayer:
		return "Annotation Sub Layer"
	case KindDimension:
		return "Dimension"
	case KindUtilityNetwork:
		return "Utility Network Layer"
	case KindTiledService:
		return "Tiled Service Layer"
	case KindVectorTile:
		return "Vector Tile Layer"
	case KindGraphics:
		return "Graphics Layer"
	case KindBasemap:
		return "Basemap"
	case KindTable:
		return "Table"
	default:
		return "Not Defined in this tool"
	}
}

// IsContainer reports whether the kind groups other nodes for reporting
// purposes. Containers use their own name as the group name.
func (k Kind) IsContainer() bool {
	switch k {
	case KindGroup, KindSubtypeGroup, KindUtilityNetwork, KindGraphics:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}
