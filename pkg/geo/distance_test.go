package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectionToCanvas(t *testing.T) {
	proj := NewProjection(42.7, 23.32, 0, 300, 120)

	testCases := []struct {
		name     string
		lat, lon float64
		wantX    float64
		wantY    float64
	}{
		{
			name:  "projection center",
			lat:   42.7,
			lon:   23.32,
			wantX: 0,
			wantY: 300,
		},
		{
			name:  "varna",
			lat:   43.2167,
			lon:   27.9167,
			wantX: (27.9167 - 23.32) * 120,
			wantY: 300 + (42.7-43.2167)*120,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			x, y := proj.ToCanvas(tt.lat, tt.lon)
			assert.InDelta(t, tt.wantX, x, 1e-9)
			assert.InDelta(t, tt.wantY, y, 1e-9)

			lat, lon := proj.FromCanvas(x, y)
			assert.InDelta(t, tt.lat, lat, 1e-9)
			assert.InDelta(t, tt.lon, lon, 1e-9)
		})
	}
}

func TestCalculateEuclidianDistance(t *testing.T) {
	assert.InDelta(t, 5.0, CalculateEuclidianDistance(0, 0, 3, 4), 1e-12)
	assert.InDelta(t, 5.0, CalculateEuclidianDistance(3, 4, 0, 0), 1e-12)
	assert.Zero(t, CalculateEuclidianDistance(1, 1, 1, 1))
}

func TestGreatCircleMatchesHaversine(t *testing.T) {
	varna := NewCoordinate(43.2167, 27.9167)
	dobrich := NewCoordinate(43.5667, 27.8333)

	gc := GreatCircleDistance(varna, dobrich)
	hav := CalculateHaversineDistance(varna.Lat, varna.Lon, dobrich.Lat, dobrich.Lon)

	assert.InDelta(t, hav, gc, 1e-6)
	// straight line is shorter than the 40 km road
	assert.Less(t, gc, 40.0)
	assert.Greater(t, gc, 35.0)
	assert.False(t, math.IsNaN(gc))
}

func TestPolylineRoundTrip(t *testing.T) {
	coords := []Coordinate{
		NewCoordinate(43.2167, 27.9167),
		NewCoordinate(43.5667, 27.8333),
	}
	p := PolylineFromCoords(coords)
	require.NotEmpty(t, p)

	decoded, err := CoordsFromPolyline(p)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	for i := range coords {
		assert.InDelta(t, coords[i].Lat, decoded[i].Lat, 1e-5)
		assert.InDelta(t, coords[i].Lon, decoded[i].Lon, 1e-5)
	}

	assert.Equal(t, "", PolylineFromCoords(nil))
}

func TestBearingTo(t *testing.T) {
	origin := NewCoordinate(42.0, 25.0)

	testCases := []struct {
		name          string
		to            Coordinate
		wantBearing   float64
		wantDirection string
	}{
		{name: "north", to: NewCoordinate(43.0, 25.0), wantBearing: 0, wantDirection: "N"},
		{name: "south", to: NewCoordinate(41.0, 25.0), wantBearing: 180, wantDirection: "S"},
		{name: "east", to: NewCoordinate(42.0, 25.1), wantBearing: 90, wantDirection: "E"},
		{name: "west", to: NewCoordinate(42.0, 24.9), wantBearing: 270, wantDirection: "W"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			bearing := BearingTo(origin, tt.to)
			assert.InDelta(t, tt.wantBearing, bearing, 0.1)
			assert.Equal(t, tt.wantDirection, CompassDirection(bearing))
		})
	}
}

func TestCompassDirectionWrapsAround(t *testing.T) {
	assert.Equal(t, "N", CompassDirection(359))
	assert.Equal(t, "N", CompassDirection(-10))
	assert.Equal(t, "NE", CompassDirection(45))
	assert.Equal(t, "NW", CompassDirection(337))
}
