package geo

import (
	"github.com/golang/geo/s2"
)

// GreatCircleDistance. great-circle distance between two coordinates in km
func GreatCircleDistance(a, b Coordinate) float64 {
	llA := s2.LatLngFromDegrees(a.Lat, a.Lon)
	llB := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return llA.Distance(llB).Radians() * earthRadiusKM
}
