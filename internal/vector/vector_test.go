package vector

import (
	"github.com/twpayne/go-geom"

	"github.com/geosafe/impact-cli/internal/layer"
)

// fakeOps is a configurable engine stub so the operations can be exercised
// without GEOS. Unset behaviors fall back to permissive defaults.
type fakeOps struct {
	intersects   func(a, b geom.T) (bool, error)
	intersection func(a, b geom.T) (geom.T, error)
	union        func(a, b geom.T) (geom.T, error)
	symDiff      func(a, b geom.T) (geom.T, error)
	isValid      func(g geom.T) (bool, error)
}

func (f *fakeOps) Intersects(a, b geom.T) (bool, error) {
	if f.intersects == nil {
		return true, nil
	}
	return f.intersects(a, b)
}

func (f *fakeOps) Intersection(a, b geom.T) (geom.T, error) {
	if f.intersection == nil {
		return a, nil
	}
	return f.intersection(a, b)
}

func (f *fakeOps) Union(a, b geom.T) (geom.T, error) {
	if f.union == nil {
		return a, nil
	}
	return f.union(a, b)
}

func (f *fakeOps) SymDifference(a, b geom.T) (geom.T, error) {
	if f.symDiff == nil {
		return emptyPolygon(), nil
	}
	return f.symDiff(a, b)
}

func (f *fakeOps) IsValid(g geom.T) (bool, error) {
	if f.isValid == nil {
		return true, nil
	}
	return f.isValid(g)
}

func emptyPolygon() *geom.Polygon { return geom.NewPolygon(geom.XY) }

// square builds a closed axis-aligned square polygon with lower-left corner
// (x, y).
func square(x, y, size float64) *geom.Polygon {
	ring := geom.NewLinearRingFlat(geom.XY, []float64{
		x, y,
		x + size, y,
		x + size, y + size,
		x, y + size,
		x, y,
	})
	poly := geom.NewPolygon(geom.XY)
	if err := poly.Push(ring); err != nil {
		panic(err)
	}
	return poly
}

// pointLayer builds a committed point layer with a name and population
// column.
func pointLayer(coords [][2]float64) *layer.Layer {
	l := layer.NewMemory("settlements", layer.KindPoint, "EPSG:4326")
	mustEdit(l)
	mustAddField(l, layer.Field{Name: "name", Type: layer.FieldString})
	mustAddField(l, layer.Field{Name: "population", Type: layer.FieldInt})
	for i, c := range coords {
		f := layer.Feature{
			Geom:  geom.NewPointFlat(geom.XY, []float64{c[0], c[1]}),
			Attrs: []any{"site", int64(100 * (i + 1))},
		}
		if err := l.AddFeatures(f); err != nil {
			panic(err)
		}
	}
	mustCommit(l)
	return l
}

// polygonLayer builds a committed polygon layer from geometries with a
// single id column.
func polygonLayer(geoms ...geom.T) *layer.Layer {
	l := layer.NewMemory("zones", layer.KindPolygon, "EPSG:4326")
	mustEdit(l)
	mustAddField(l, layer.Field{Name: "id", Type: layer.FieldInt})
	for i, g := range geoms {
		if err := l.AddFeatures(layer.Feature{Geom: g, Attrs: []any{int64(i)}}); err != nil {
			panic(err)
		}
	}
	mustCommit(l)
	return l
}

func mustEdit(l *layer.Layer) {
	if err := l.StartEditing(); err != nil {
		panic(err)
	}
}

func mustAddField(l *layer.Layer, f layer.Field) {
	if err := l.AddField(f); err != nil {
		panic(err)
	}
}

func mustCommit(l *layer.Layer) {
	if err := l.CommitChanges(); err != nil {
		panic(err)
	}
}
