package engine

import (
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
	"github.com/twpayne/go-geos"
)

// GEOS implements Ops on top of the GEOS library. Geometry values cross the
// boundary as WKB in both directions.
type GEOS struct{}

// NewGEOS returns a GEOS-backed engine.
func NewGEOS() *GEOS { return &GEOS{} }

var _ Ops = (*GEOS)(nil)

func toGEOS(g geom.T) (*geos.Geom, error) {
	data, err := wkb.Marshal(g, wkb.NDR)
	if err != nil {
		return nil, eris.Wrap(err, "engine: encode WKB")
	}
	gg, err := geos.NewGeomFromWKB(data)
	if err != nil {
		return nil, eris.Wrap(err, "engine: decode WKB into GEOS")
	}
	return gg, nil
}

func fromGEOS(g *geos.Geom) (geom.T, error) {
	out, err := wkb.Unmarshal(g.ToWKB())
	if err != nil {
		return nil, eris.Wrap(err, "engine: decode GEOS WKB")
	}
	return out, nil
}

// Intersects reports whether the two geometries share any point.
func (e *GEOS) Intersects(a, b geom.T) (bool, error) {
	ga, err := toGEOS(a)
	if err != nil {
		return false, err
	}
	defer ga.Destroy()
	gb, err := toGEOS(b)
	if err != nil {
		return false, err
	}
	defer gb.Destroy()
	return ga.Intersects(gb), nil
}

// Intersection returns the shared region of the two geometries.
func (e *GEOS) Intersection(a, b geom.T) (geom.T, error) {
	return e.binary(a, b, func(ga, gb *geos.Geom) *geos.Geom { return ga.Intersection(gb) })
}

// Union returns the combined outline of the two geometries.
func (e *GEOS) Union(a, b geom.T) (geom.T, error) {
	return e.binary(a, b, func(ga, gb *geos.Geom) *geos.Geom { return ga.Union(gb) })
}

// SymDifference returns the region present in exactly one of the two
// geometries.
func (e *GEOS) SymDifference(a, b geom.T) (geom.T, error) {
	return e.binary(a, b, func(ga, gb *geos.Geom) *geos.Geom { return ga.SymDifference(gb) })
}

// IsValid reports topological validity of the geometry.
func (e *GEOS) IsValid(g geom.T) (bool, error) {
	gg, err := toGEOS(g)
	if err != nil {
		return false, err
	}
	defer gg.Destroy()
	return gg.IsValid(), nil
}

func (e *GEOS) binary(a, b geom.T, op func(ga, gb *geos.Geom) *geos.Geom) (geom.T, error) {
	ga, err := toGEOS(a)
	if err != nil {
		return nil, err
	}
	defer ga.Destroy()
	gb, err := toGEOS(b)
	if err != nil {
		return nil, err
	}
	defer gb.Destroy()
	out := op(ga, gb)
	defer out.Destroy()
	return fromGEOS(out)
}
