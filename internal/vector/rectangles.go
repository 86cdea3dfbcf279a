package vector

import (
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/geosafe/impact-cli/internal/layer"
)

// PointsToRectangles builds a polygon layer with one dx-by-dy rectangle per
// point feature. The point sits at the upper-left corner and the rectangle
// extends right and down. Attributes are copied unchanged; the output layer
// shares the input's CRS and schema.
func PointsToRectangles(points *layer.Layer, dx, dy float64) (*layer.Layer, error) {
	out := layer.NewMemory("rectangles", layer.KindPolygon, points.CRS())
	if err := out.StartEditing(); err != nil {
		return nil, err
	}
	for _, f := range points.Fields() {
		if err := out.AddField(f); err != nil {
			out.RollBack()
			return nil, err
		}
	}

	for _, feat := range points.Features(nil) {
		pt, ok := feat.Geom.(*geom.Point)
		if !ok {
			zap.L().Debug("vector: skipping non-point feature in rectangle expansion",
				zap.String("layer", points.Name()))
			continue
		}
		x, y := pt.X(), pt.Y()
		ring := geom.NewLinearRingFlat(geom.XY, []float64{
			x, y,
			x + dx, y,
			x + dx, y - dy,
			x, y - dy,
			x, y,
		})
		poly := geom.NewPolygon(geom.XY)
		if err := poly.Push(ring); err != nil {
			out.RollBack()
			return nil, err
		}
		if err := out.AddFeatures(layer.Feature{Geom: poly, Attrs: feat.Attrs}); err != nil {
			out.RollBack()
			return nil, err
		}
	}

	if err := out.CommitChanges(); err != nil {
		return nil, err
	}
	return out, nil
}
