package engine

import (
	"github.com/lintang-b-s/citynav/pkg/costfunction"
	"github.com/lintang-b-s/citynav/pkg/dataset"
	"github.com/lintang-b-s/citynav/pkg/datastructure"
	"github.com/lintang-b-s/citynav/pkg/engine/routing"
	"github.com/lintang-b-s/citynav/pkg/geo"
	"github.com/lintang-b-s/citynav/pkg/metrics"
	"github.com/lintang-b-s/citynav/pkg/spatialindex"
	"go.uber.org/zap"
)

type Engine struct {
	routingEngine *routing.RoutingEngine
	spatialIndex  *spatialindex.Rtree
}

func (e *Engine) GetRoutingEngine() *routing.RoutingEngine {
	return e.routingEngine
}

func (e *Engine) GetSpatialIndex() *spatialindex.Rtree {
	return e.spatialIndex
}

type Config struct {
	NetworkFilePath    string // empty = embedded network
	CanvasHeight       float64
	EstimateTravelTime bool
}

// NewEngine. loads the network, builds the graph and the routing engine
func NewEngine(config Config, logger *zap.Logger) (*Engine, error) {
	projection := dataset.NewProjection(config.CanvasHeight)

	var (
		network *dataset.Network
		err     error
	)
	if config.NetworkFilePath == "" {
		logger.Info("Reading embedded road network...")
		network, err = dataset.Default(projection)
	} else {
		logger.Info("Reading road network from ", zap.String("networkFilePath", config.NetworkFilePath))
		network, err = dataset.LoadFile(config.NetworkFilePath, projection)
	}
	if err != nil {
		return nil, err
	}

	return NewEngineDirect(network.Cities, network.Roads, config.EstimateTravelTime, logger)
}

// NewEngineDirect. builds the engine from construction input already in memory
func NewEngineDirect(cities []datastructure.CitySpec, roads []datastructure.RoadSpec, estimateTravelTime bool,
	logger *zap.Logger) (*Engine, error) {
	graph, skipped, err := datastructure.NewGraph(cities, roads)
	if err != nil {
		return nil, err
	}

	for _, s := range skipped {
		logger.Warn("road skipped, unknown city",
			zap.String("origin", s.Road.Origin), zap.String("destination", s.Road.Destination),
			zap.Bool("missing_origin", s.MissingOrigin), zap.Bool("missing_destination", s.MissingDestination))
	}
	logger.Info("road network built", zap.Int("cities", graph.NumberOfCities()),
		zap.Int("roads", graph.NumberOfRoads()), zap.Int("skipped_roads", len(skipped)),
		zap.Int("strongly_connected_components", graph.NumberOfSCCs()))

	checkRoadDistances(graph, logger)

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, logger)

	met := metrics.NewMetric(graph, estimateTravelTime)
	routingEngine := routing.NewRoutingEngine(graph, met, rtree, costfunction.NewDistanceCostFunction(), logger)

	return &Engine{
		routingEngine: routingEngine,
		spatialIndex:  rtree,
	}, nil
}

// checkRoadDistances. warns about roads shorter than the great-circle distance between their cities.
// such roads make the search cost and the displayed distance disagree even more.
func checkRoadDistances(graph *datastructure.Graph, logger *zap.Logger) int {
	suspicious := 0
	graph.ForCities(func(c *datastructure.City) {
		from, ok := c.GetCoordinate()
		if !ok {
			return
		}
		graph.ForOutRoadsOf(c.GetID(), func(r *datastructure.Road) {
			to, ok := graph.GetCity(r.GetHead()).GetCoordinate()
			if !ok {
				return
			}
			greatCircle := geo.GreatCircleDistance(from, to)
			if datastructure.Lt(r.GetDistance(), greatCircle) {
				suspicious++
				logger.Warn("road is shorter than the great-circle distance between its cities",
					zap.String("origin", c.GetName()), zap.String("destination", graph.GetCityName(r.GetHead())),
					zap.Float64("road_distance_km", r.GetDistance()), zap.Float64("great_circle_km", greatCircle))
			}
		})
	})
	return suspicious
}
