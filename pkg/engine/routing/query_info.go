package routing

import (
	"github.com/lintang-b-s/citynav/pkg"
	da "github.com/lintang-b-s/citynav/pkg/datastructure"
	"github.com/lintang-b-s/citynav/pkg/geo"
	met "github.com/lintang-b-s/citynav/pkg/metrics"
)

type VertexInfo struct {
	dist   float64 // best known sum of road distances from the source
	parent da.Index
}

func NewVertexInfo(dist float64, parent da.Index) *VertexInfo {
	return &VertexInfo{
		dist:   dist,
		parent: parent,
	}
}

func (vi *VertexInfo) GetDist() float64 {
	return vi.dist
}

func (vi *VertexInfo) UpdateDist(dist float64) {
	vi.dist = dist
}

func (vi *VertexInfo) GetParent() da.Index {
	return vi.parent
}

func (vi *VertexInfo) UpdateParent(parent da.Index) {
	vi.parent = parent
}

type RouteCity struct {
	Id         da.Index
	Name       string
	X, Y       float64
	Coordinate *geo.Coordinate
}

func NewRouteCity(c *da.City) RouteCity {
	rc := RouteCity{
		Id:   c.GetID(),
		Name: c.GetName(),
		X:    c.GetX(),
		Y:    c.GetY(),
	}
	if coord, ok := c.GetCoordinate(); ok {
		rc.Coordinate = &coord
	}
	return rc
}

// RouteResult. answer of a route query. reachability failures are statuses, not errors.
type RouteResult struct {
	status        pkg.RouteStatus
	origin        string
	destination   string
	path          []RouteCity
	pathMetrics   met.PathMetrics
	invalidCities []string
}

func newInvalidCityResult(origin, destination string, invalidCities []string) *RouteResult {
	return &RouteResult{
		status:        pkg.INVALID_CITY,
		origin:        origin,
		destination:   destination,
		path:          []RouteCity{},
		invalidCities: invalidCities,
	}
}

func newNoRouteResult(origin, destination string) *RouteResult {
	return &RouteResult{
		status:        pkg.NO_ROUTE,
		origin:        origin,
		destination:   destination,
		path:          []RouteCity{},
		invalidCities: []string{},
	}
}

func newRouteFoundResult(origin, destination string, path []RouteCity, pathMetrics met.PathMetrics) *RouteResult {
	return &RouteResult{
		status:        pkg.ROUTE_FOUND,
		origin:        origin,
		destination:   destination,
		path:          path,
		pathMetrics:   pathMetrics,
		invalidCities: []string{},
	}
}

func (rr *RouteResult) GetStatus() pkg.RouteStatus {
	return rr.status
}

func (rr *RouteResult) Found() bool {
	return rr.status == pkg.ROUTE_FOUND
}

func (rr *RouteResult) GetOrigin() string {
	return rr.origin
}

func (rr *RouteResult) GetDestination() string {
	return rr.destination
}

func (rr *RouteResult) GetPath() []RouteCity {
	return rr.path
}

func (rr *RouteResult) GetPathNames() []string {
	names := make([]string, 0, len(rr.path))
	for _, c := range rr.path {
		names = append(names, c.Name)
	}
	return names
}

// GetCoordinates. geographic coordinates of the path, cities without one are left out.
func (rr *RouteResult) GetCoordinates() []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, len(rr.path))
	for _, c := range rr.path {
		if c.Coordinate != nil {
			coords = append(coords, *c.Coordinate)
		}
	}
	return coords
}

// GetDistance. planar length of the path
func (rr *RouteResult) GetDistance() float64 {
	return rr.pathMetrics.Distance
}

// GetRoadDistance. sum of road distances along the path, the quantity the search minimizes
func (rr *RouteResult) GetRoadDistance() float64 {
	return rr.pathMetrics.RoadDistance
}

func (rr *RouteResult) GetTravelTimeHours() float64 {
	return rr.pathMetrics.TravelTimeHours
}

// GetTravelTime. nil when travel time estimation is disabled or no route was found
func (rr *RouteResult) GetTravelTime() *met.TravelTime {
	return rr.pathMetrics.TravelTime
}

func (rr *RouteResult) GetInvalidCities() []string {
	return rr.invalidCities
}
