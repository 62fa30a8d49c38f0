package controllers

import (
	"github.com/lintang-b-s/citynav/pkg/datastructure"
	"github.com/lintang-b-s/citynav/pkg/engine/routing"
)

type RoutingService interface {
	ListCities() []routing.RouteCity
	ListRoads() []datastructure.RoadSpec
	FindRoute(startName, endName string) (*routing.RouteResult, error)
	FindRouteFromPoints(x1, y1, x2, y2 float64) (*routing.RouteResult, error)
}
