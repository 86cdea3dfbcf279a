package layer

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// MarshalGeoJSON encodes the committed features of a layer as a GeoJSON
// FeatureCollection. Attribute values become feature properties keyed by
// field name.
func MarshalGeoJSON(l *Layer) ([]byte, error) {
	fields := l.Fields()
	fc := geojson.FeatureCollection{}
	for _, feat := range l.Features(nil) {
		props := make(map[string]any, len(fields))
		for i, f := range fields {
			props[f.Name] = feat.Attrs[i]
		}
		fc.Features = append(fc.Features, &geojson.Feature{
			Geometry:   feat.Geom,
			Properties: props,
		})
	}
	data, err := json.Marshal(&fc)
	if err != nil {
		return nil, eris.Wrapf(err, "layer: marshal %s as GeoJSON", l.Name())
	}
	return data, nil
}

// WriteGeoJSON writes a layer to path as a GeoJSON FeatureCollection.
func WriteGeoJSON(l *Layer, path string) error {
	data, err := MarshalGeoJSON(l)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "layer: write %s", path)
	}
	return nil
}
