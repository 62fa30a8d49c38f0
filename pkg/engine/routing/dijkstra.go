package routing

import (
	"github.com/lintang-b-s/citynav/pkg"
	da "github.com/lintang-b-s/citynav/pkg/datastructure"
	"github.com/lintang-b-s/citynav/pkg/util"
)

/*
Dijkstra. single-source shortest path with a linear scan for the next city to settle (no priority queue),
O(V^2) per query. fine for a network of tens of cities.

road weights must be non-negative. the search state is per query, a Dijkstra must not be shared between goroutines.
*/
type Dijkstra struct {
	graph        *da.Graph
	costFunction CostFunction

	forwardInfo  []*VertexInfo // nil = no known distance yet
	unsettled    []bool
	numUnsettled int

	numSettledNodes int
}

func NewDijkstra(graph *da.Graph, costFunction CostFunction) *Dijkstra {
	return &Dijkstra{
		graph:        graph,
		costFunction: costFunction,
		forwardInfo:  make([]*VertexInfo, 0),
		unsettled:    make([]bool, 0),
	}
}

// ShortestPath. cities of a minimum cost path from s to t (both inclusive) and its cost.
// s == t gives [s] with cost 0. if t is unreachable the path is empty (not nil) and the cost is pkg.INF_WEIGHT.
func (us *Dijkstra) ShortestPath(s, t da.Index) ([]da.Index, float64) {
	us.Preallocate()

	us.forwardInfo[s] = NewVertexInfo(0, da.INVALID_VERTEX_ID)

	for us.numUnsettled > 0 {
		u, found := us.extractMin()
		if !found {
			// every city with a known distance is settled, t was never reached
			return []da.Index{}, pkg.INF_WEIGHT
		}

		if u == t {
			break
		}

		us.graphSearchUni(u)
		us.settle(u)
	}

	if us.forwardInfo[t] == nil {
		return []da.Index{}, pkg.INF_WEIGHT
	}

	return us.retrievePath(t), us.forwardInfo[t].GetDist()
}

// extractMin. unsettled city with the smallest known distance, lowest index wins ties.
func (us *Dijkstra) extractMin() (da.Index, bool) {
	toOpen := da.INVALID_VERTEX_ID
	bestPrice := pkg.INF_WEIGHT
	found := false

	for v := range us.unsettled {
		if !us.unsettled[v] || us.forwardInfo[v] == nil {
			continue
		}
		if !found || us.forwardInfo[v].GetDist() < bestPrice {
			toOpen = da.Index(v)
			bestPrice = us.forwardInfo[v].GetDist()
			found = true
		}
	}

	return toOpen, found
}

func (us *Dijkstra) graphSearchUni(u da.Index) {
	uDist := us.forwardInfo[u].GetDist()

	us.graph.ForOutRoadsOf(u, func(road *da.Road) {
		vId := road.GetHead()
		newDist := uDist + us.costFunction.GetWeight(road)

		if us.forwardInfo[vId] != nil && us.forwardInfo[vId].GetDist() <= newDist {
			// newDist is not better, do nothing
			return
		}

		if us.forwardInfo[vId] == nil {
			us.forwardInfo[vId] = NewVertexInfo(newDist, u)
			return
		}

		us.forwardInfo[vId].UpdateDist(newDist)
		us.forwardInfo[vId].UpdateParent(u)
	})
}

func (us *Dijkstra) settle(u da.Index) {
	us.unsettled[u] = false
	us.numUnsettled--
	us.numSettledNodes++
}

func (us *Dijkstra) retrievePath(t da.Index) []da.Index {
	path := make([]da.Index, 0)
	for cur := t; cur != da.INVALID_VERTEX_ID; cur = us.forwardInfo[cur].GetParent() {
		path = append(path, cur)
	}
	return util.ReverseG(path)
}

func (us *Dijkstra) Preallocate() {
	n := us.graph.NumberOfCities()
	us.forwardInfo = make([]*VertexInfo, n)
	us.unsettled = make([]bool, n)
	for v := range us.unsettled {
		us.unsettled[v] = true
	}
	us.numUnsettled = n
	us.numSettledNodes = 0
}

func (us *Dijkstra) GetNumSettledNodes() int {
	return us.numSettledNodes
}
