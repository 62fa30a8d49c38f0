package spatialindex

import (
	"sort"

	"github.com/lintang-b-s/citynav/pkg/datastructure"
	"github.com/lintang-b-s/citynav/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree. r-tree over planar city positions, used to snap a point on the canvas to a city.
type Rtree struct {
	tr *rtree.RTreeG[datastructure.Index]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[datastructure.Index]
	return &Rtree{
		tr: &tr,
	}
}

// Build. inserts every city of graph as a point
func (rt *Rtree) Build(graph *datastructure.Graph, log *zap.Logger) {
	log.Info("Building R-tree spatial index...", zap.Int("cities", graph.NumberOfCities()))
	graph.ForCities(func(c *datastructure.City) {
		p := [2]float64{c.GetX(), c.GetY()}
		rt.tr.Insert(p, p, c.GetID())
	})
	log.Info("R-tree spatial index built.")
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// Nearest. city closest to (x, y). false if the index is empty.
func (rt *Rtree) Nearest(x, y float64) (datastructure.Index, bool) {
	q := [2]float64{x, y}
	nearest := datastructure.INVALID_VERTEX_ID
	found := false
	rt.tr.Nearby(
		rtree.BoxDist[float64, datastructure.Index](q, q, nil),
		func(min, max [2]float64, data datastructure.Index, dist float64) bool {
			nearest = data
			found = true
			return false
		},
	)
	return nearest, found
}

type cityDist struct {
	id   datastructure.Index
	dist float64
}

// SearchWithinRadius. cities within radius of (x, y), closest first
func (rt *Rtree) SearchWithinRadius(x, y, radius float64) []datastructure.Index {
	candidates := make([]cityDist, 0, 10)
	rt.tr.Search([2]float64{x - radius, y - radius}, [2]float64{x + radius, y + radius},
		func(min, max [2]float64, data datastructure.Index) bool {
			dist := geo.CalculateEuclidianDistance(x, y, min[0], min[1])
			if dist <= radius {
				candidates = append(candidates, cityDist{id: data, dist: dist})
			}
			return true
		})

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].id < candidates[j].id
	})

	results := make([]datastructure.Index, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, c.id)
	}
	return results
}
