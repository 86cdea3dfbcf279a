package vector

import (
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/geosafe/impact-cli/internal/engine"
	"github.com/geosafe/impact-cli/internal/layer"
)

// UnionGeometry dissolves the geometries of the features matching req into
// one combined geometry, ignoring attributes. A combination that produces an
// invalid geometry is discarded and the accumulator kept unchanged, so one
// malformed feature cannot poison the whole union. Returns (nil, nil) when
// no feature matches.
func UnionGeometry(ops engine.Ops, l *layer.Layer, req *layer.Request) (geom.T, error) {
	var result geom.T
	for _, feat := range l.Features(req) {
		if result == nil {
			result = feat.Geom
			continue
		}
		combined, err := ops.Union(result, feat.Geom)
		if err != nil {
			zap.L().Debug("vector: union failed, skipping geometry",
				zap.String("layer", l.Name()), zap.Error(err))
			continue
		}
		valid, err := ops.IsValid(combined)
		if err != nil || !valid {
			zap.L().Debug("vector: combined geometry invalid, skipping",
				zap.String("layer", l.Name()), zap.Error(err))
			continue
		}
		result = combined
	}
	return result, nil
}
