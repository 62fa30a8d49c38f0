package geo

import (
	"math"

	"github.com/lintang-b-s/citynav/pkg/util"
)

type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

const (
	earthRadiusKM = 6371.0
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

// CalculateHaversineDistance. calculate haversine distance in km
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = util.DegreeToRadians(latOne)
	longOne = util.DegreeToRadians(longOne)
	latTwo = util.DegreeToRadians(latTwo)
	longTwo = util.DegreeToRadians(longTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}

// CalculateEuclidianDistance. straight-line distance between two planar (canvas) points
func CalculateEuclidianDistance(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return math.Sqrt(dx*dx + dy*dy)
}

// Projection maps lat/lon onto the planar canvas: x grows with longitude, y grows southward.
// this is a plain equirectangular scaling, not a faithful map projection.
type Projection struct {
	centerLat, centerLon float64
	canvasX, canvasY     float64
	scaleFactor          float64
}

func NewProjection(centerLat, centerLon, canvasX, canvasY, scaleFactor float64) Projection {
	return Projection{
		centerLat:   centerLat,
		centerLon:   centerLon,
		canvasX:     canvasX,
		canvasY:     canvasY,
		scaleFactor: scaleFactor,
	}
}

func (p Projection) ToCanvas(lat, lon float64) (float64, float64) {
	relativeX := lon - p.centerLon
	relativeY := p.centerLat - lat

	return p.canvasX + relativeX*p.scaleFactor, p.canvasY + relativeY*p.scaleFactor
}

func (p Projection) FromCanvas(x, y float64) (float64, float64) {
	lon := (x-p.canvasX)/p.scaleFactor + p.centerLon
	lat := p.centerLat - (y-p.canvasY)/p.scaleFactor
	return lat, lon
}
