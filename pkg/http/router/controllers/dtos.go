package controllers

import (
	"fmt"

	"github.com/lintang-b-s/citynav/pkg"
	"github.com/lintang-b-s/citynav/pkg/datastructure"
	"github.com/lintang-b-s/citynav/pkg/engine/routing"
	"github.com/lintang-b-s/citynav/pkg/geo"
	met "github.com/lintang-b-s/citynav/pkg/metrics"
	"github.com/lintang-b-s/citynav/pkg/util"
)

type routeRequest struct {
	Start string `json:"start" validate:"required,max=100"`
	End   string `json:"end" validate:"required,max=100"`
}

type snapRouteRequest struct {
	X1 float64 `json:"x1" validate:"min=-100000,max=100000"`
	Y1 float64 `json:"y1" validate:"min=-100000,max=100000"`
	X2 float64 `json:"x2" validate:"min=-100000,max=100000"`
	Y2 float64 `json:"y2" validate:"min=-100000,max=100000"`
}

type cityResponse struct {
	Name       string          `json:"name"`
	X          float64         `json:"x"`
	Y          float64         `json:"y"`
	Coordinate *geo.Coordinate `json:"coordinate,omitempty"`
}

func newCityResponse(c routing.RouteCity) cityResponse {
	return cityResponse{
		Name:       c.Name,
		X:          c.X,
		Y:          c.Y,
		Coordinate: c.Coordinate,
	}
}

func NewCitiesResponse(cities []routing.RouteCity) []cityResponse {
	resp := make([]cityResponse, 0, len(cities))
	for _, c := range cities {
		resp = append(resp, newCityResponse(c))
	}
	return resp
}

type roadResponse struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Distance    float64 `json:"distance"`
	MaxSpeed    float64 `json:"max_speed"`
}

func NewRoadsResponse(roads []datastructure.RoadSpec) []roadResponse {
	resp := make([]roadResponse, 0, len(roads))
	for _, r := range roads {
		resp = append(resp, roadResponse{
			Origin:      r.Origin,
			Destination: r.Destination,
			Distance:    r.Distance,
			MaxSpeed:    r.MaxSpeed,
		})
	}
	return resp
}

// legResponse. one hop of the route, heading is empty when a city has no coordinate
type legResponse struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Bearing   float64 `json:"bearing,omitempty"`
	Direction string  `json:"direction,omitempty"`
}

func newLegsResponse(path []routing.RouteCity) []legResponse {
	legs := make([]legResponse, 0, len(path))
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		leg := legResponse{From: from.Name, To: to.Name}
		if from.Coordinate != nil && to.Coordinate != nil {
			bearing := geo.BearingTo(*from.Coordinate, *to.Coordinate)
			leg.Bearing = util.RoundFloat(bearing, 1)
			leg.Direction = geo.CompassDirection(bearing)
		}
		legs = append(legs, leg)
	}
	return legs
}

type routeResponse struct {
	Status       string          `json:"status"`
	Origin       string          `json:"origin"`
	Destination  string          `json:"destination"`
	Path         []cityResponse  `json:"path"`
	Legs         []legResponse   `json:"legs"`
	Distance     float64         `json:"distance"`
	RoadDistance float64         `json:"road_distance"`
	TravelTime   *met.TravelTime `json:"travel_time,omitempty"`
	Polyline     string          `json:"polyline,omitempty"`
	Summary      string          `json:"summary"`
}

func NewRouteResponse(res *routing.RouteResult) routeResponse {
	path := make([]cityResponse, 0, len(res.GetPath()))
	for _, c := range res.GetPath() {
		path = append(path, newCityResponse(c))
	}

	return routeResponse{
		Status:       res.GetStatus().String(),
		Origin:       res.GetOrigin(),
		Destination:  res.GetDestination(),
		Path:         path,
		Legs:         newLegsResponse(res.GetPath()),
		Distance:     util.RoundFloat(res.GetDistance(), pkg.DISTANCE_PRECISION),
		RoadDistance: util.RoundFloat(res.GetRoadDistance(), pkg.DISTANCE_PRECISION),
		TravelTime:   res.GetTravelTime(),
		Polyline:     geo.PolylineFromCoords(res.GetCoordinates()),
		Summary:      routeSummary(res),
	}
}

// routeSummary. display text of a route, e.g. "Distance: 87.34 km, Time: 0 H 52 M"
func routeSummary(res *routing.RouteResult) string {
	switch res.GetStatus() {
	case pkg.NO_ROUTE:
		return fmt.Sprintf("No route from %s to %s", res.GetOrigin(), res.GetDestination())
	case pkg.INVALID_CITY:
		return fmt.Sprintf("Unknown city: %v", res.GetInvalidCities())
	}

	summary := fmt.Sprintf("Distance: %s km", met.FormatDistance(res.GetDistance()))
	if tt := res.GetTravelTime(); tt != nil {
		summary += fmt.Sprintf(", Time: %s", tt.String())
	}
	return summary
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
