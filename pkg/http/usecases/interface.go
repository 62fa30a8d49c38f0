package usecases

import (
	"github.com/lintang-b-s/citynav/pkg/datastructure"
	"github.com/lintang-b-s/citynav/pkg/engine/routing"
)

type RoutingEngine interface {
	GetGraph() *datastructure.Graph
	FindRoute(startName, endName string) *routing.RouteResult
}

type SpatialIndex interface {
	SearchWithinRadius(x, y, radius float64) []datastructure.Index
}
