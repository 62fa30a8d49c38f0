package datastructure

import (
	"github.com/lintang-b-s/citynav/pkg/util"
)

// RunKosaraju. runs kosaraju's algorithm to find strongly connected components (SCCs) of the road network.
// two cities in the same scc can reach each other in both directions.
func (g *Graph) RunKosaraju() {
	n := Index(g.NumberOfCities())

	reverseAdj := make([][]Index, n)
	for u := Index(0); u < n; u++ {
		g.ForOutRoadsOf(u, func(r *Road) {
			reverseAdj[r.GetHead()] = append(reverseAdj[r.GetHead()], u)
		})
	}

	order := make([]Index, 0, n)
	visited := make([]bool, n)
	for v := Index(0); v < n; v++ {
		if !visited[v] {
			g.dfs(v, &order, visited)
		}
	}

	order = util.ReverseG[Index](order)

	// reset visited
	visited = make([]bool, n)
	sccs := make([]Index, n)
	numberOfComponents := 0

	for _, v := range order {
		if !visited[v] {
			component := make([]Index, 0, 10)
			reverseDfs(v, reverseAdj, &component, visited)
			for _, u := range component {
				sccs[u] = Index(numberOfComponents)
			}
			numberOfComponents++
		}
	}

	g.setSCCs(sccs, numberOfComponents)
}

func (g *Graph) dfs(v Index, output *[]Index, visited []bool) {
	visited[v] = true

	g.ForOutRoadsOf(v, func(r *Road) {
		if !visited[r.GetHead()] {
			g.dfs(r.GetHead(), output, visited)
		}
	})

	*output = append(*output, v)
}

func reverseDfs(v Index, reverseAdj [][]Index, output *[]Index, visited []bool) {
	visited[v] = true
	for _, u := range reverseAdj[v] {
		if !visited[u] {
			reverseDfs(u, reverseAdj, output, visited)
		}
	}
	*output = append(*output, v)
}
