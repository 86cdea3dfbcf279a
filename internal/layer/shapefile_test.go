package layer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestShapefileRoundTripPoints(t *testing.T) {
	l := NewMemory("sites", KindPoint, "EPSG:4326")
	require.NoError(t, l.StartEditing())
	require.NoError(t, l.AddField(Field{Name: "name", Type: FieldString}))
	require.NoError(t, l.AddField(Field{Name: "population", Type: FieldInt}))
	require.NoError(t, l.AddFeatures(
		Feature{Geom: point(106.8, -6.2), Attrs: []any{"jakarta", int64(10500000)}},
		Feature{Geom: point(110.4, -7.8), Attrs: []any{"yogyakarta", int64(420000)}},
	))
	require.NoError(t, l.CommitChanges())

	path := filepath.Join(t.TempDir(), "sites.shp")
	require.NoError(t, WriteShapefile(l, path))

	got, err := OpenShapefile(path, "EPSG:4326")
	require.NoError(t, err)

	assert.Equal(t, KindPoint, got.Kind())
	assert.Equal(t, "sites", got.Name())
	assert.Equal(t, l.Fields(), got.Fields())

	feats := got.Features(nil)
	require.Len(t, feats, 2)
	pt, ok := feats[0].Geom.(*geom.Point)
	require.True(t, ok)
	assert.InDelta(t, 106.8, pt.X(), 1e-9)
	assert.InDelta(t, -6.2, pt.Y(), 1e-9)
	assert.Equal(t, []any{"jakarta", int64(10500000)}, feats[0].Attrs)
}

func TestShapefileRoundTripPolygons(t *testing.T) {
	ring := geom.NewLinearRingFlat(geom.XY, []float64{
		0, 0,
		4, 0,
		4, 4,
		0, 4,
		0, 0,
	})
	poly := geom.NewPolygon(geom.XY)
	require.NoError(t, poly.Push(ring))

	l := NewMemory("zones", KindPolygon, "EPSG:4326")
	require.NoError(t, l.StartEditing())
	require.NoError(t, l.AddField(Field{Name: "hazard", Type: FieldReal}))
	require.NoError(t, l.AddFeatures(Feature{Geom: poly, Attrs: []any{0.75}}))
	require.NoError(t, l.CommitChanges())

	path := filepath.Join(t.TempDir(), "zones.shp")
	require.NoError(t, WriteShapefile(l, path))

	got, err := OpenShapefile(path, "EPSG:4326")
	require.NoError(t, err)
	assert.Equal(t, KindPolygon, got.Kind())

	feats := got.Features(nil)
	require.Len(t, feats, 1)
	outPoly, ok := feats[0].Geom.(*geom.Polygon)
	require.True(t, ok)
	assert.Len(t, outPoly.FlatCoords(), len(ring.FlatCoords()))
	assert.InDelta(t, 0.75, feats[0].Attrs[0].(float64), 1e-6)
}

func TestWriteShapefileRejectsUnknownKind(t *testing.T) {
	l := NewMemory("odd", KindUnknown, "EPSG:4326")
	err := WriteShapefile(l, filepath.Join(t.TempDir(), "odd.shp"))
	assert.Error(t, err)
}

func TestMarshalGeoJSON(t *testing.T) {
	l := NewMemory("sites", KindPoint, "EPSG:4326")
	require.NoError(t, l.StartEditing())
	require.NoError(t, l.AddField(Field{Name: "name", Type: FieldString}))
	require.NoError(t, l.AddFeatures(Feature{Geom: point(1, 2), Attrs: []any{"a"}}))
	require.NoError(t, l.CommitChanges())

	data, err := MarshalGeoJSON(l)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"FeatureCollection"`)
	assert.Contains(t, string(data), `"name":"a"`)
	assert.Contains(t, string(data), `[1,2]`)
}
