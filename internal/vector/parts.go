package vector

import (
	"github.com/twpayne/go-geom"

	"github.com/geosafe/impact-cli/internal/layer"
)

// SameKindParts flattens a geometry into its atomic parts and keeps only
// those matching kind. Degenerate artifacts of a different kind (line or
// point slivers from a polygon intersection, say) are dropped.
func SameKindParts(g geom.T, kind layer.Kind) []geom.T {
	var out []geom.T
	for _, part := range atomicParts(g) {
		if layer.KindOf(part) == kind {
			out = append(out, part)
		}
	}
	return out
}

func atomicParts(g geom.T) []geom.T {
	switch t := g.(type) {
	case *geom.GeometryCollection:
		var out []geom.T
		for _, sub := range t.Geoms() {
			out = append(out, atomicParts(sub)...)
		}
		return out
	case *geom.MultiPoint:
		out := make([]geom.T, 0, t.NumPoints())
		for i := 0; i < t.NumPoints(); i++ {
			out = append(out, t.Point(i))
		}
		return out
	case *geom.MultiLineString:
		out := make([]geom.T, 0, t.NumLineStrings())
		for i := 0; i < t.NumLineStrings(); i++ {
			out = append(out, t.LineString(i))
		}
		return out
	case *geom.MultiPolygon:
		out := make([]geom.T, 0, t.NumPolygons())
		for i := 0; i < t.NumPolygons(); i++ {
			out = append(out, t.Polygon(i))
		}
		return out
	case nil:
		return nil
	default:
		if len(g.FlatCoords()) == 0 {
			return nil
		}
		return []geom.T{g}
	}
}
