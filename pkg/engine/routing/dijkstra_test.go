package routing

import (
	"testing"

	"github.com/lintang-b-s/citynav/pkg"
	"github.com/lintang-b-s/citynav/pkg/costfunction"
	da "github.com/lintang-b-s/citynav/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineCities(n int) []da.CitySpec {
	names := []string{"A", "B", "C", "D", "E", "F"}
	cities := make([]da.CitySpec, 0, n)
	for i := 0; i < n; i++ {
		cities = append(cities, da.CitySpec{Name: names[i], X: float64(i), Y: 0})
	}
	return cities
}

func TestDijkstraShortestPath(t *testing.T) {
	roads := []da.RoadSpec{
		{Origin: "A", Destination: "B", Distance: 4, MaxSpeed: 100},
		{Origin: "A", Destination: "C", Distance: 2, MaxSpeed: 100},
		{Origin: "C", Destination: "B", Distance: 1, MaxSpeed: 100},
		{Origin: "B", Destination: "D", Distance: 5, MaxSpeed: 100},
		{Origin: "C", Destination: "D", Distance: 8, MaxSpeed: 100},
		{Origin: "D", Destination: "E", Distance: 3, MaxSpeed: 100},
		// cycle back to the start
		{Origin: "E", Destination: "A", Distance: 1, MaxSpeed: 100},
	}
	g, _, err := da.NewGraph(lineCities(6), roads)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		s, t     da.Index
		wantPath []da.Index
		wantCost float64
	}{
		{name: "relaxed through cheaper detour", s: 0, t: 1, wantPath: []da.Index{0, 2, 1}, wantCost: 3},
		{name: "multi hop", s: 0, t: 4, wantPath: []da.Index{0, 2, 1, 3, 4}, wantCost: 11},
		{name: "through the cycle", s: 3, t: 2, wantPath: []da.Index{3, 4, 0, 2}, wantCost: 6},
		{name: "start equals end", s: 2, t: 2, wantPath: []da.Index{2}, wantCost: 0},
		{name: "unreachable isolated city", s: 0, t: 5, wantPath: []da.Index{}, wantCost: pkg.INF_WEIGHT},
		{name: "isolated city as start", s: 5, t: 0, wantPath: []da.Index{}, wantCost: pkg.INF_WEIGHT},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			dijkstra := NewDijkstra(g, costfunction.NewDistanceCostFunction())
			path, cost := dijkstra.ShortestPath(tt.s, tt.t)
			require.NotNil(t, path)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantCost, cost)
		})
	}
}

func TestDijkstraStopsAtDestination(t *testing.T) {
	roads := []da.RoadSpec{
		{Origin: "A", Destination: "B", Distance: 1, MaxSpeed: 100},
		{Origin: "B", Destination: "C", Distance: 1, MaxSpeed: 100},
		{Origin: "C", Destination: "D", Distance: 1, MaxSpeed: 100},
		{Origin: "D", Destination: "E", Distance: 1, MaxSpeed: 100},
	}
	g, _, err := da.NewGraph(lineCities(5), roads)
	require.NoError(t, err)

	dijkstra := NewDijkstra(g, costfunction.NewDistanceCostFunction())
	path, cost := dijkstra.ShortestPath(0, 1)
	assert.Equal(t, []da.Index{0, 1}, path)
	assert.Equal(t, 1.0, cost)
	// only A is settled before B is picked
	assert.Equal(t, 1, dijkstra.GetNumSettledNodes())

	// the same Dijkstra can be reused
	path, cost = dijkstra.ShortestPath(0, 4)
	assert.Equal(t, []da.Index{0, 1, 2, 3, 4}, path)
	assert.Equal(t, 4.0, cost)
	assert.Equal(t, 4, dijkstra.GetNumSettledNodes())
}

func TestDijkstraTieBreakIsDeterministic(t *testing.T) {
	// A -> B -> D and A -> C -> D both cost 2
	roads := []da.RoadSpec{
		{Origin: "A", Destination: "C", Distance: 1, MaxSpeed: 100},
		{Origin: "A", Destination: "B", Distance: 1, MaxSpeed: 100},
		{Origin: "C", Destination: "D", Distance: 1, MaxSpeed: 100},
		{Origin: "B", Destination: "D", Distance: 1, MaxSpeed: 100},
	}
	g, _, err := da.NewGraph(lineCities(4), roads)
	require.NoError(t, err)

	first, _ := NewDijkstra(g, costfunction.NewDistanceCostFunction()).ShortestPath(0, 3)
	for i := 0; i < 10; i++ {
		path, cost := NewDijkstra(g, costfunction.NewDistanceCostFunction()).ShortestPath(0, 3)
		assert.Equal(t, first, path)
		assert.Equal(t, 2.0, cost)
	}
	// B has the lower index, it is settled first and labels D
	assert.Equal(t, []da.Index{0, 1, 3}, first)
}

func TestDijkstraParallelRoads(t *testing.T) {
	roads := []da.RoadSpec{
		{Origin: "A", Destination: "B", Distance: 10, MaxSpeed: 100},
		{Origin: "A", Destination: "B", Distance: 3, MaxSpeed: 50},
	}
	g, _, err := da.NewGraph(lineCities(2), roads)
	require.NoError(t, err)

	path, cost := NewDijkstra(g, costfunction.NewDistanceCostFunction()).ShortestPath(0, 1)
	assert.Equal(t, []da.Index{0, 1}, path)
	assert.Equal(t, 3.0, cost)
}

func TestDijkstraMatchesBruteForceOnDataset(t *testing.T) {
	re := buildBulgariaEngine(t)
	g := re.GetGraph()
	n := da.Index(g.NumberOfCities())

	for s := da.Index(0); s < n; s++ {
		for tt := da.Index(0); tt < n; tt++ {
			path, cost := re.ShortestPath(s, tt)
			want := bruteForceShortestPath(g, s, tt)

			assert.True(t, eq(want, cost), "%s -> %s: got %v want %v", g.GetCityName(s), g.GetCityName(tt), cost, want)
			require.NotEmpty(t, path)
			assert.Equal(t, s, path[0])
			assert.Equal(t, tt, path[len(path)-1])
			assert.True(t, eq(cost, pathCost(t, g, path)))
		}
	}
}
