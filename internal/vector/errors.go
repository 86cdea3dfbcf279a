// Package vector implements the disaster-assessment vector utilities:
// expanding points to rectangles, dissolving feature geometries, and
// splitting a layer's features by a polygon with inside/outside marking.
package vector

import "fmt"

// DataTypeError reports a layer whose geometry kind or schema cannot support
// the requested operation. It is raised immediately and never retried.
type DataTypeError struct {
	Reason string
}

func (e *DataTypeError) Error() string { return "vector: " + e.Reason }

func dataTypeErrorf(format string, args ...any) error {
	return &DataTypeError{Reason: fmt.Sprintf(format, args...)}
}
