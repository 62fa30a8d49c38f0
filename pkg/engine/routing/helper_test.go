package routing

import (
	"math"
	"testing"

	"github.com/lintang-b-s/citynav/pkg/costfunction"
	"github.com/lintang-b-s/citynav/pkg/dataset"
	da "github.com/lintang-b-s/citynav/pkg/datastructure"
	met "github.com/lintang-b-s/citynav/pkg/metrics"
	"github.com/lintang-b-s/citynav/pkg/spatialindex"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	EPS = 1e-9
)

func buildEngine(t *testing.T, cities []da.CitySpec, roads []da.RoadSpec, estimateTravelTime bool) *RoutingEngine {
	g, _, err := da.NewGraph(cities, roads)
	require.NoError(t, err)

	rtree := spatialindex.NewRtree()
	rtree.Build(g, zap.NewNop())

	return NewRoutingEngine(g, met.NewMetric(g, estimateTravelTime), rtree, costfunction.NewDistanceCostFunction(),
		zap.NewNop())
}

func buildBulgariaEngine(t *testing.T) *RoutingEngine {
	nw, err := dataset.Default(dataset.NewProjection(600))
	require.NoError(t, err)
	return buildEngine(t, nw.Cities, nw.Roads, true)
}

// bruteForceShortestPath. minimum road distance over all simple paths from s to t, INF if none.
func bruteForceShortestPath(g *da.Graph, s, t da.Index) float64 {
	best := math.Inf(1)
	visited := make([]bool, g.NumberOfCities())

	var dfs func(u da.Index, cost float64)
	dfs = func(u da.Index, cost float64) {
		if u == t {
			best = math.Min(best, cost)
			return
		}
		g.ForOutRoadsOf(u, func(r *da.Road) {
			v := r.GetHead()
			if visited[v] {
				return
			}
			visited[v] = true
			dfs(v, cost+r.GetDistance())
			visited[v] = false
		})
	}

	visited[s] = true
	dfs(s, 0)
	return best
}

// pathCost. road distance along path, fails the test if consecutive cities are not connected.
func pathCost(t *testing.T, g *da.Graph, path []da.Index) float64 {
	cost := 0.0
	for i := 0; i+1 < len(path); i++ {
		minRoad := math.Inf(1)
		g.ForOutRoadsOf(path[i], func(r *da.Road) {
			if r.GetHead() == path[i+1] {
				minRoad = math.Min(minRoad, r.GetDistance())
			}
		})
		require.False(t, math.IsInf(minRoad, 1), "no road %s -> %s", g.GetCityName(path[i]), g.GetCityName(path[i+1]))
		cost += minRoad
	}
	return cost
}

func eq(a, b float64) bool {
	return math.Abs(a-b) <= EPS
}
