package geo

import (
	"math"

	"github.com/lintang-b-s/citynav/pkg/util"
)

var compassPoints = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// BearingTo. initial great-circle bearing from a to b in degrees, [0, 360).
// https://www.movable-type.co.uk/scripts/latlong.html
func BearingTo(a, b Coordinate) float64 {
	dLon := util.DegreeToRadians(b.Lon - a.Lon)

	lat1 := util.DegreeToRadians(a.Lat)
	lat2 := util.DegreeToRadians(b.Lat)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	return math.Mod(util.RadiansToDegree(math.Atan2(y, x))+360, 360.0)
}

// CompassDirection. eight-wind name of a bearing, e.g. 100 -> "E"
func CompassDirection(bearing float64) string {
	bearing = math.Mod(math.Mod(bearing, 360)+360, 360)
	sector := int(math.Floor((bearing+22.5)/45.0)) % len(compassPoints)
	return compassPoints[sector]
}
