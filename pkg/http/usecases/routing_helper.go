package usecases

import (
	"github.com/lintang-b-s/citynav/pkg/datastructure"
	"github.com/lintang-b-s/citynav/pkg/util"
	"go.uber.org/zap"
)

// snapToCity. nearest city within snapRadius of (x, y)
func (rs *RoutingService) snapToCity(x, y float64) (datastructure.Index, error) {
	candidates := rs.spatialIndex.SearchWithinRadius(x, y, rs.snapRadius)
	if len(candidates) == 0 {
		return datastructure.INVALID_VERTEX_ID, util.WrapErrorf(nil, util.ErrNotFound,
			"no city within %.1f of (%.2f, %.2f)", rs.snapRadius, x, y)
	}

	// candidates are sorted by distance
	rs.log.Debug("snapped point to city", zap.Float64("x", x), zap.Float64("y", y),
		zap.String("city", rs.engine.GetGraph().GetCityName(candidates[0])))
	return candidates[0], nil
}
