// Package layer provides an in-memory vector feature collection with an
// ordered attribute schema and an edit/commit session around mutations.
package layer

import (
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
)

// FieldType tags the value type of an attribute column.
type FieldType int

const (
	FieldInt FieldType = iota
	FieldReal
	FieldString
)

// Field is one named column of a layer's attribute schema.
type Field struct {
	Name string
	Type FieldType
}

// Kind is the geometry kind shared by all features of a layer.
type Kind int

const (
	KindUnknown Kind = iota
	KindPoint
	KindLine
	KindPolygon
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// KindOf maps a geometry value to its layer kind. Multi-part geometries
// report the kind of their parts.
func KindOf(g geom.T) Kind {
	switch g.(type) {
	case *geom.Point, *geom.MultiPoint:
		return KindPoint
	case *geom.LineString, *geom.MultiLineString:
		return KindLine
	case *geom.Polygon, *geom.MultiPolygon:
		return KindPolygon
	default:
		return KindUnknown
	}
}

// Feature is one geometry plus its positionally ordered attribute values.
// The name-to-index mapping for attributes is owned by the enclosing layer.
type Feature struct {
	Geom  geom.T
	Attrs []any
}

// Request filters feature iteration. A nil *Request or nil Filter matches
// every feature.
type Request struct {
	Filter func(Feature) bool
}

func (r *Request) matches(f Feature) bool {
	if r == nil || r.Filter == nil {
		return true
	}
	return r.Filter(f)
}

// Layer is an ordered, mutable collection of features sharing one geometry
// kind and one coordinate reference system. Schema and feature mutations go
// through an edit session: staged changes are invisible to readers until
// CommitChanges.
type Layer struct {
	name     string
	kind     Kind
	crs      string
	fields   []Field
	features []Feature
	extents  *geom.Bounds

	editing         bool
	pendingFields   []Field
	pendingFeatures []Feature
}

// NewMemory creates an empty in-memory layer.
func NewMemory(name string, kind Kind, crs string) *Layer {
	return &Layer{name: name, kind: kind, crs: crs}
}

// Name returns the layer name.
func (l *Layer) Name() string { return l.name }

// Kind returns the geometry kind of the layer.
func (l *Layer) Kind() Kind { return l.kind }

// CRS returns the opaque coordinate reference system identifier.
func (l *Layer) CRS() string { return l.crs }

// Fields returns a copy of the committed attribute schema.
func (l *Layer) Fields() []Field {
	out := make([]Field, len(l.fields))
	copy(out, l.fields)
	return out
}

// FieldIndex resolves a field name to its column index, or -1 when absent.
// Staged fields are not visible until committed.
func (l *Layer) FieldIndex(name string) int {
	for i, f := range l.fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Count returns the number of committed features.
func (l *Layer) Count() int { return len(l.features) }

// Extents returns the bounds computed by the last UpdateExtents call, or nil.
func (l *Layer) Extents() *geom.Bounds { return l.extents }

// StartEditing opens an edit session.
func (l *Layer) StartEditing() error {
	if l.editing {
		return eris.Errorf("layer %s: edit session already open", l.name)
	}
	l.editing = true
	return nil
}

// AddField stages an attribute column append. Duplicate names are rejected.
func (l *Layer) AddField(f Field) error {
	if !l.editing {
		return eris.Errorf("layer %s: add field outside edit session", l.name)
	}
	if l.FieldIndex(f.Name) != -1 {
		return eris.Errorf("layer %s: field %q already exists", l.name, f.Name)
	}
	for _, p := range l.pendingFields {
		if p.Name == f.Name {
			return eris.Errorf("layer %s: field %q already staged", l.name, f.Name)
		}
	}
	l.pendingFields = append(l.pendingFields, f)
	return nil
}

// AddFeatures stages features for append. Each feature must carry exactly one
// attribute per schema column, counting staged columns.
func (l *Layer) AddFeatures(feats ...Feature) error {
	if !l.editing {
		return eris.Errorf("layer %s: add features outside edit session", l.name)
	}
	arity := len(l.fields) + len(l.pendingFields)
	for _, f := range feats {
		if len(f.Attrs) != arity {
			return eris.Errorf("layer %s: feature has %d attributes, schema has %d columns",
				l.name, len(f.Attrs), arity)
		}
	}
	l.pendingFeatures = append(l.pendingFeatures, feats...)
	return nil
}

// CommitChanges applies staged schema and feature changes atomically and
// closes the edit session. Committed features added before a staged column
// are padded with nil in the new column.
func (l *Layer) CommitChanges() error {
	if !l.editing {
		return eris.Errorf("layer %s: commit outside edit session", l.name)
	}
	if n := len(l.pendingFields); n > 0 {
		for i := range l.features {
			for j := 0; j < n; j++ {
				l.features[i].Attrs = append(l.features[i].Attrs, nil)
			}
		}
		l.fields = append(l.fields, l.pendingFields...)
	}
	l.features = append(l.features, l.pendingFeatures...)
	l.pendingFields = nil
	l.pendingFeatures = nil
	l.editing = false
	return nil
}

// RollBack discards staged changes and closes the edit session.
func (l *Layer) RollBack() {
	l.pendingFields = nil
	l.pendingFeatures = nil
	l.editing = false
}

// Features returns the committed features matching the request, in insertion
// order. The returned slice is shared; callers must not mutate it.
func (l *Layer) Features(req *Request) []Feature {
	if req == nil || req.Filter == nil {
		return l.features
	}
	var out []Feature
	for _, f := range l.features {
		if req.matches(f) {
			out = append(out, f)
		}
	}
	return out
}

// UpdateExtents recomputes the layer bounds from committed feature
// geometries. A layer with no geometries gets nil extents.
func (l *Layer) UpdateExtents() {
	var b *geom.Bounds
	for _, f := range l.features {
		if f.Geom == nil {
			continue
		}
		if b == nil {
			b = geom.NewBounds(f.Geom.Layout())
		}
		b = b.Extend(f.Geom)
	}
	l.extents = b
}
