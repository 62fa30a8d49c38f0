package routing

import (
	da "github.com/lintang-b-s/citynav/pkg/datastructure"
	met "github.com/lintang-b-s/citynav/pkg/metrics"
	"go.uber.org/zap"
)

// RoutingEngine. route query facade over a read-only graph, safe for concurrent queries.
type RoutingEngine struct {
	graph        *da.Graph
	metrics      *met.Metric
	spatialIndex SpatialIndex
	costFunction CostFunction
	logger       *zap.Logger
}

func NewRoutingEngine(graph *da.Graph, metrics *met.Metric, spatialIndex SpatialIndex,
	costFunction CostFunction, logger *zap.Logger) *RoutingEngine {
	return &RoutingEngine{
		graph:        graph,
		metrics:      metrics,
		spatialIndex: spatialIndex,
		costFunction: costFunction,
		logger:       logger,
	}
}

func (re *RoutingEngine) GetGraph() *da.Graph {
	return re.graph
}

func (re *RoutingEngine) GetMetrics() *met.Metric {
	return re.metrics
}

// ShortestPath. one search with fresh state, see Dijkstra.ShortestPath
func (re *RoutingEngine) ShortestPath(s, t da.Index) ([]da.Index, float64) {
	dijkstra := NewDijkstra(re.graph, re.costFunction)
	return dijkstra.ShortestPath(s, t)
}

/*
FindRoute. shortest route between two cities by name.

  - unknown start or end name: INVALID_CITY, the unknown names are listed in the result
  - no directed path: NO_ROUTE with an empty path
  - otherwise ROUTE_FOUND with the path and its metrics. start == end is a one city route with zero distance & time.
*/
func (re *RoutingEngine) FindRoute(startName, endName string) *RouteResult {
	invalidCities := make([]string, 0, 2)
	s, okStart := re.graph.GetCityByName(startName)
	if !okStart {
		invalidCities = append(invalidCities, startName)
	}
	t, okEnd := re.graph.GetCityByName(endName)
	if !okEnd {
		invalidCities = append(invalidCities, endName)
	}
	if !okStart || !okEnd {
		re.logger.Debug("route query with unknown city", zap.String("start", startName), zap.String("end", endName),
			zap.Strings("invalid_cities", invalidCities))
		return newInvalidCityResult(startName, endName, invalidCities)
	}

	return re.findRoute(s, t)
}

// FindRouteFromPoints. snaps both planar points to their nearest city and routes between them.
func (re *RoutingEngine) FindRouteFromPoints(x1, y1, x2, y2 float64) *RouteResult {
	if re.spatialIndex == nil {
		return newInvalidCityResult("", "", []string{})
	}
	s, okStart := re.spatialIndex.Nearest(x1, y1)
	t, okEnd := re.spatialIndex.Nearest(x2, y2)
	if !okStart || !okEnd {
		return newInvalidCityResult("", "", []string{})
	}
	return re.findRoute(s, t)
}

func (re *RoutingEngine) findRoute(s, t da.Index) *RouteResult {
	startName, endName := re.graph.GetCityName(s), re.graph.GetCityName(t)

	path, cost := re.ShortestPath(s, t)
	if len(path) < 2 && s != t {
		re.logger.Debug("no route found", zap.String("start", startName), zap.String("end", endName))
		return newNoRouteResult(startName, endName)
	}

	pathMetrics := re.metrics.Compute(path)
	// parallel roads: the search picked the cheapest one, Compute looks at the first one
	pathMetrics.RoadDistance = cost

	routeCities := make([]RouteCity, 0, len(path))
	for _, v := range path {
		routeCities = append(routeCities, NewRouteCity(re.graph.GetCity(v)))
	}

	re.logger.Debug("route found", zap.String("start", startName), zap.String("end", endName),
		zap.Int("cities", len(path)), zap.Float64("road_distance", cost),
		zap.Float64("distance", pathMetrics.Distance))

	return newRouteFoundResult(startName, endName, routeCities, pathMetrics)
}
