package vector

import (
	"github.com/twpayne/go-geom"

	"github.com/geosafe/impact-cli/internal/engine"
	"github.com/geosafe/impact-cli/internal/layer"
)

// Mark is the directive tagging split output: the named integer field is set
// to Value on parts inside the splitting polygon and to 0 on parts outside.
type Mark struct {
	Field string
	Value int
}

// SplitByPolygon splits the features of a line or polygon layer by a
// splitting polygon. Intersecting features are decomposed into the
// intersection parts (marked with the inside value) and the symmetric
// difference parts (marked 0); non-intersecting features pass through marked
// 0. Point layers cannot be split and raise a DataTypeError. When the mark
// field is absent from the schema it is appended once with integer type.
func SplitByPolygon(ops engine.Ops, source *layer.Layer, polygon geom.T, req *layer.Request, mark *Mark) (*layer.Layer, error) {
	switch source.Kind() {
	case layer.KindPoint:
		return nil, dataTypeErrorf("points can't be split")
	case layer.KindLine, layer.KindPolygon:
	default:
		return nil, dataTypeErrorf("received unexpected kind of layer geometry: %s", source.Kind())
	}

	result := layer.NewMemory("intersected", source.Kind(), source.CRS())
	if err := result.StartEditing(); err != nil {
		return nil, err
	}
	for _, f := range source.Fields() {
		if err := result.AddField(f); err != nil {
			result.RollBack()
			return nil, err
		}
	}
	fieldAdded := false
	if mark != nil && source.FieldIndex(mark.Field) == -1 {
		if err := result.AddField(layer.Field{Name: mark.Field, Type: layer.FieldInt}); err != nil {
			result.RollBack()
			return nil, err
		}
		fieldAdded = true
	}
	if err := result.CommitChanges(); err != nil {
		return nil, err
	}

	markIndex := -1
	if mark != nil {
		markIndex = result.FieldIndex(mark.Field)
		if markIndex == -1 {
			return nil, dataTypeErrorf("field not found for %s", mark.Field)
		}
	}

	// Inside parts carry mark.Value, outside parts and untouched features 0.
	inside := func(attrs []any) []any { return markAttrs(attrs, markIndex, mark, fieldAdded) }
	outside := func(attrs []any) []any {
		if mark == nil {
			return markAttrs(attrs, markIndex, nil, fieldAdded)
		}
		return markAttrs(attrs, markIndex, &Mark{Field: mark.Field, Value: 0}, fieldAdded)
	}

	if err := result.StartEditing(); err != nil {
		return nil, err
	}
	for _, feat := range source.Features(req) {
		intersects, err := ops.Intersects(polygon, feat.Geom)
		if err != nil {
			result.RollBack()
			return nil, err
		}
		if !intersects {
			if err := result.AddFeatures(layer.Feature{Geom: feat.Geom, Attrs: outside(feat.Attrs)}); err != nil {
				result.RollBack()
				return nil, err
			}
			continue
		}

		intersection, err := ops.Intersection(feat.Geom, polygon)
		if err != nil {
			result.RollBack()
			return nil, err
		}
		for _, g := range SameKindParts(intersection, source.Kind()) {
			if err := result.AddFeatures(layer.Feature{Geom: g, Attrs: inside(feat.Attrs)}); err != nil {
				result.RollBack()
				return nil, err
			}
		}

		difference, err := ops.SymDifference(feat.Geom, polygon)
		if err != nil {
			result.RollBack()
			return nil, err
		}
		for _, g := range SameKindParts(difference, source.Kind()) {
			if err := result.AddFeatures(layer.Feature{Geom: g, Attrs: outside(feat.Attrs)}); err != nil {
				result.RollBack()
				return nil, err
			}
		}
	}
	if err := result.CommitChanges(); err != nil {
		return nil, err
	}
	result.UpdateExtents()

	return result, nil
}

// markAttrs copies attrs, applying the mark directive. When the mark field
// was appended to the schema the value goes in the new trailing column,
// otherwise it overwrites the existing column in place. A nil mark copies
// attrs unchanged, padded when the schema grew.
func markAttrs(attrs []any, index int, mark *Mark, fieldAdded bool) []any {
	out := make([]any, len(attrs), len(attrs)+1)
	copy(out, attrs)
	if mark == nil {
		if fieldAdded {
			out = append(out, nil)
		}
		return out
	}
	if fieldAdded {
		return append(out, mark.Value)
	}
	out[index] = mark.Value
	return out
}
