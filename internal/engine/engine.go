// Package engine defines the geometry-operation port consumed by the vector
// utilities, plus its GEOS-backed implementation. Core code depends on the
// Ops interface only, so it can be exercised with fakes.
package engine

import "github.com/twpayne/go-geom"

// Ops is the set of geometry primitives the vector operations delegate to.
// Validity is reported as a boolean, not an error: an invalid geometry is a
// policy decision for the caller, not a failure of the engine.
type Ops interface {
	Intersects(a, b geom.T) (bool, error)
	Intersection(a, b geom.T) (geom.T, error)
	Union(a, b geom.T) (geom.T, error)
	SymDifference(a, b geom.T) (geom.T, error)
	IsValid(g geom.T) (bool, error)
}
