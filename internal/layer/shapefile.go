package layer

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
)

// OpenShapefile reads a shapefile into a memory layer. The DBF schema maps to
// layer fields: numeric columns without decimals become FieldInt, numeric
// columns with decimals FieldReal, everything else FieldString. Records whose
// shape cannot be converted are skipped.
func OpenShapefile(path, crs string) (*Layer, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "layer: open shapefile %s", path)
	}
	defer func() { _ = reader.Close() }()

	kind, err := kindOfShapeType(reader.GeometryType)
	if err != nil {
		return nil, err
	}

	dbfFields := reader.Fields()
	fields := make([]Field, 0, len(dbfFields))
	for _, f := range dbfFields {
		name := strings.TrimRight(f.String(), "\x00")
		fields = append(fields, Field{Name: name, Type: fieldTypeOfDBF(f)})
	}

	name := strings.TrimSuffix(filepath.Base(path), ".shp")
	l := NewMemory(name, kind, crs)
	if err := l.StartEditing(); err != nil {
		return nil, err
	}
	for _, f := range fields {
		if err := l.AddField(f); err != nil {
			l.RollBack()
			return nil, err
		}
	}

	var skipped int
	for reader.Next() {
		_, shape := reader.Shape()
		g := shapeToGeom(shape)
		if g == nil {
			skipped++
			continue
		}
		attrs := make([]any, len(fields))
		for i, f := range fields {
			attrs[i] = parseAttribute(strings.TrimSpace(strings.TrimRight(reader.Attribute(i), "\x00")), f.Type)
		}
		if err := l.AddFeatures(Feature{Geom: g, Attrs: attrs}); err != nil {
			l.RollBack()
			return nil, err
		}
	}
	if err := l.CommitChanges(); err != nil {
		return nil, err
	}
	l.UpdateExtents()

	if skipped > 0 {
		zap.L().Debug("layer: skipped shapefile records",
			zap.String("path", path),
			zap.Int("skipped", skipped),
		)
	}
	return l, nil
}

// WriteShapefile writes a layer out as a shapefile. Attribute values are
// stored through the DBF column types derived from the layer schema.
func WriteShapefile(l *Layer, path string) error {
	var shapeType shp.ShapeType
	switch l.Kind() {
	case KindPoint:
		shapeType = shp.POINT
	case KindLine:
		shapeType = shp.POLYLINE
	case KindPolygon:
		shapeType = shp.POLYGON
	default:
		return eris.Errorf("layer: cannot write %s layer as shapefile", l.Kind())
	}

	writer, err := shp.Create(path, shapeType)
	if err != nil {
		return eris.Wrapf(err, "layer: create shapefile %s", path)
	}
	defer writer.Close()

	fields := l.Fields()
	dbfFields := make([]shp.Field, len(fields))
	for i, f := range fields {
		switch f.Type {
		case FieldInt:
			dbfFields[i] = shp.NumberField(f.Name, 18)
		case FieldReal:
			dbfFields[i] = shp.FloatField(f.Name, 24, 8)
		default:
			dbfFields[i] = shp.StringField(f.Name, 120)
		}
	}
	writer.SetFields(dbfFields)

	for _, feat := range l.Features(nil) {
		shape := geomToShape(feat.Geom)
		if shape == nil {
			zap.L().Debug("layer: skipping feature with unconvertible geometry",
				zap.String("layer", l.Name()))
			continue
		}
		row := writer.Write(shape)
		for i := range fields {
			val := dbfValue(feat.Attrs[i], fields[i].Type)
			if val == nil {
				continue
			}
			if err := writer.WriteAttribute(int(row), i, val); err != nil {
				return eris.Wrapf(err, "layer: write attribute %s", fields[i].Name)
			}
		}
	}
	return nil
}

func kindOfShapeType(t shp.ShapeType) (Kind, error) {
	switch t {
	case shp.POINT, shp.POINTZ, shp.POINTM, shp.MULTIPOINT:
		return KindPoint, nil
	case shp.POLYLINE, shp.POLYLINEZ, shp.POLYLINEM:
		return KindLine, nil
	case shp.POLYGON, shp.POLYGONZ, shp.POLYGONM:
		return KindPolygon, nil
	default:
		return KindUnknown, eris.Errorf("layer: unsupported shapefile type %d", t)
	}
}

func fieldTypeOfDBF(f shp.Field) FieldType {
	switch f.Fieldtype {
	case 'N':
		if f.Precision > 0 {
			return FieldReal
		}
		return FieldInt
	case 'F':
		return FieldReal
	default:
		return FieldString
	}
}

// dbfValue normalizes an attribute to the types the DBF writer accepts.
func dbfValue(v any, t FieldType) any {
	if v == nil {
		return nil
	}
	switch t {
	case FieldInt:
		switch n := v.(type) {
		case int64:
			return int(n)
		case int:
			return n
		case float64:
			return int(n)
		default:
			return nil
		}
	case FieldReal:
		switch n := v.(type) {
		case float64:
			return n
		case int64:
			return float64(n)
		case int:
			return float64(n)
		default:
			return nil
		}
	default:
		if s, ok := v.(string); ok {
			return s
		}
		return nil
	}
}

func parseAttribute(raw string, t FieldType) any {
	if raw == "" {
		return nil
	}
	switch t {
	case FieldInt:
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return v
		}
		return nil
	case FieldReal:
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
		return nil
	default:
		return raw
	}
}

// shapeToGeom converts a go-shp shape into a geometry value. Returns nil for
// unsupported or empty shapes.
func shapeToGeom(shape shp.Shape) geom.T {
	switch s := shape.(type) {
	case *shp.Point:
		return geom.NewPointFlat(geom.XY, []float64{s.X, s.Y})

	case *shp.PolyLine:
		mls := geom.NewMultiLineString(geom.XY)
		for _, part := range polyParts(s.NumParts, s.Parts, s.Points) {
			ls := geom.NewLineStringFlat(geom.XY, part)
			if err := mls.Push(ls); err != nil {
				continue
			}
		}
		if mls.NumLineStrings() == 0 {
			return nil
		}
		if mls.NumLineStrings() == 1 {
			return mls.LineString(0)
		}
		return mls

	case *shp.Polygon:
		mp := geom.NewMultiPolygon(geom.XY)
		for _, part := range polyParts(s.NumParts, s.Parts, s.Points) {
			ring := geom.NewLinearRingFlat(geom.XY, part)
			poly := geom.NewPolygon(geom.XY)
			if err := poly.Push(ring); err != nil {
				continue
			}
			if err := mp.Push(poly); err != nil {
				continue
			}
		}
		if mp.NumPolygons() == 0 {
			return nil
		}
		if mp.NumPolygons() == 1 {
			return mp.Polygon(0)
		}
		return mp

	default:
		return nil
	}
}

// polyParts slices a shapefile part-indexed point list into flat coordinate
// runs, one per part.
func polyParts(numParts int32, parts []int32, points []shp.Point) [][]float64 {
	out := make([][]float64, 0, numParts)
	for i := int32(0); i < numParts; i++ {
		start := parts[i]
		end := int32(len(points))
		if i+1 < numParts {
			end = parts[i+1]
		}
		flat := make([]float64, 0, (end-start)*2)
		for j := start; j < end; j++ {
			flat = append(flat, points[j].X, points[j].Y)
		}
		out = append(out, flat)
	}
	return out
}

// geomToShape converts a geometry value back into a go-shp shape.
func geomToShape(g geom.T) shp.Shape {
	switch t := g.(type) {
	case *geom.Point:
		return &shp.Point{X: t.X(), Y: t.Y()}

	case *geom.LineString:
		return shp.NewPolyLine([][]shp.Point{coordsToPoints(t.Coords())})

	case *geom.MultiLineString:
		parts := make([][]shp.Point, 0, t.NumLineStrings())
		for i := 0; i < t.NumLineStrings(); i++ {
			parts = append(parts, coordsToPoints(t.LineString(i).Coords()))
		}
		return shp.NewPolyLine(parts)

	case *geom.Polygon:
		parts := make([][]shp.Point, 0, t.NumLinearRings())
		for i := 0; i < t.NumLinearRings(); i++ {
			parts = append(parts, coordsToPoints(t.LinearRing(i).Coords()))
		}
		pl := shp.NewPolyLine(parts)
		poly := shp.Polygon(*pl)
		return &poly

	case *geom.MultiPolygon:
		var parts [][]shp.Point
		for i := 0; i < t.NumPolygons(); i++ {
			p := t.Polygon(i)
			for j := 0; j < p.NumLinearRings(); j++ {
				parts = append(parts, coordsToPoints(p.LinearRing(j).Coords()))
			}
		}
		pl := shp.NewPolyLine(parts)
		poly := shp.Polygon(*pl)
		return &poly

	default:
		return nil
	}
}

func coordsToPoints(coords []geom.Coord) []shp.Point {
	pts := make([]shp.Point, len(coords))
	for i, c := range coords {
		pts[i] = shp.Point{X: c.X(), Y: c.Y()}
	}
	return pts
}
