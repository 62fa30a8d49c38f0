package usecases

import (
	"strings"

	"github.com/lintang-b-s/citynav/pkg"
	"github.com/lintang-b-s/citynav/pkg/datastructure"
	"github.com/lintang-b-s/citynav/pkg/engine/routing"
	"github.com/lintang-b-s/citynav/pkg/util"
	"go.uber.org/zap"
)

type RoutingService struct {
	log          *zap.Logger
	engine       RoutingEngine
	spatialIndex SpatialIndex
	snapRadius   float64
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, spatialIndex SpatialIndex,
	snapRadius float64) *RoutingService {
	return &RoutingService{
		log:          log,
		engine:       engine,
		spatialIndex: spatialIndex,
		snapRadius:   snapRadius,
	}
}

func (rs *RoutingService) ListCities() []routing.RouteCity {
	graph := rs.engine.GetGraph()
	cities := make([]routing.RouteCity, 0, graph.NumberOfCities())
	graph.ForCities(func(c *datastructure.City) {
		cities = append(cities, routing.NewRouteCity(c))
	})
	return cities
}

// ListRoads. every directed road by city names, grouped by origin in city order
func (rs *RoutingService) ListRoads() []datastructure.RoadSpec {
	graph := rs.engine.GetGraph()
	roads := make([]datastructure.RoadSpec, 0, graph.NumberOfRoads())
	graph.ForCities(func(c *datastructure.City) {
		graph.ForOutRoadsOf(c.GetID(), func(r *datastructure.Road) {
			roads = append(roads, datastructure.RoadSpec{
				Origin:      c.GetName(),
				Destination: graph.GetCityName(r.GetHead()),
				Distance:    r.GetDistance(),
				MaxSpeed:    r.GetMaxSpeed(),
			})
		})
	})
	return roads
}

// FindRoute. route between two cities by name. unknown cities are an ErrNotFound error,
// a missing route is not an error and comes back with status NO_ROUTE.
func (rs *RoutingService) FindRoute(startName, endName string) (*routing.RouteResult, error) {
	res := rs.engine.FindRoute(startName, endName)
	if res.GetStatus() == pkg.INVALID_CITY {
		return res, util.WrapErrorf(nil, util.ErrNotFound, "unknown city: %s",
			strings.Join(res.GetInvalidCities(), ", "))
	}
	return res, nil
}

// FindRouteFromPoints. route between the cities nearest to two canvas points
func (rs *RoutingService) FindRouteFromPoints(x1, y1, x2, y2 float64) (*routing.RouteResult, error) {
	s, err := rs.snapToCity(x1, y1)
	if err != nil {
		return nil, err
	}
	t, err := rs.snapToCity(x2, y2)
	if err != nil {
		return nil, err
	}

	graph := rs.engine.GetGraph()
	return rs.FindRoute(graph.GetCityName(s), graph.GetCityName(t))
}
