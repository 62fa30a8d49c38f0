package usecases

import (
	"testing"

	"github.com/lintang-b-s/citynav/pkg"
	"github.com/lintang-b-s/citynav/pkg/datastructure"
	"github.com/lintang-b-s/citynav/pkg/engine"
	"github.com/lintang-b-s/citynav/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *RoutingService {
	cities := []datastructure.CitySpec{
		{Name: "A", X: 0, Y: 0},
		{Name: "B", X: 10, Y: 0},
		{Name: "C", X: 100, Y: 100},
	}
	roads := []datastructure.RoadSpec{
		{Origin: "A", Destination: "B", Distance: 12, MaxSpeed: 60},
		{Origin: "B", Destination: "A", Distance: 12, MaxSpeed: 60},
		{Origin: "C", Destination: "A", Distance: 200, MaxSpeed: 90},
	}
	e, err := engine.NewEngineDirect(cities, roads, true, zap.NewNop())
	require.NoError(t, err)
	return NewRoutingService(zap.NewNop(), e.GetRoutingEngine(), e.GetSpatialIndex(), 5)
}

func TestListCitiesAndRoads(t *testing.T) {
	rs := newTestService(t)

	cities := rs.ListCities()
	require.Len(t, cities, 3)
	assert.Equal(t, "A", cities[0].Name)
	assert.Equal(t, 100.0, cities[2].X)

	assert.Equal(t, []datastructure.RoadSpec{
		{Origin: "A", Destination: "B", Distance: 12, MaxSpeed: 60},
		{Origin: "B", Destination: "A", Distance: 12, MaxSpeed: 60},
		{Origin: "C", Destination: "A", Distance: 200, MaxSpeed: 90},
	}, rs.ListRoads())
}

func TestFindRoute(t *testing.T) {
	rs := newTestService(t)

	testCases := []struct {
		name       string
		start, end string
		wantStatus pkg.RouteStatus
		wantErr    error
	}{
		{name: "found", start: "C", end: "B", wantStatus: pkg.ROUTE_FOUND},
		{name: "no route", start: "A", end: "C", wantStatus: pkg.NO_ROUTE},
		{name: "unknown city", start: "A", end: "Z", wantStatus: pkg.INVALID_CITY, wantErr: util.ErrNotFound},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := rs.FindRoute(tt.start, tt.end)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "Z")
			} else {
				assert.NoError(t, err)
			}
			require.NotNil(t, res)
			assert.Equal(t, tt.wantStatus, res.GetStatus())
		})
	}
}

func TestFindRouteFromPoints(t *testing.T) {
	rs := newTestService(t)

	res, err := rs.FindRouteFromPoints(1, 1, 9, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.GetPathNames())
	assert.Equal(t, 12.0, res.GetRoadDistance())

	_, err = rs.FindRouteFromPoints(50, 50, 9, -1)
	assert.ErrorIs(t, err, util.ErrNotFound)
}
