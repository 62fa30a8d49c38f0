package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords. encoded polyline (precision 5) of the coordinates in order
func PolylineFromCoords(coords []Coordinate) string {
	if len(coords) == 0 {
		return ""
	}
	pCoords := make([][]float64, 0, len(coords))
	for _, c := range coords {
		pCoords = append(pCoords, []float64{c.Lat, c.Lon})
	}
	return string(polyline.EncodeCoords(pCoords))
}

func CoordsFromPolyline(p string) ([]Coordinate, error) {
	pCoords, _, err := polyline.DecodeCoords([]byte(p))
	if err != nil {
		return nil, err
	}
	coords := make([]Coordinate, 0, len(pCoords))
	for _, c := range pCoords {
		coords = append(coords, NewCoordinate(c[0], c[1]))
	}
	return coords, nil
}
