package routing

import (
	"context"
	"sort"

	"github.com/lintang-b-s/citynav/pkg/concurrent"
	da "github.com/lintang-b-s/citynav/pkg/datastructure"
	"github.com/lintang-b-s/citynav/pkg/util"
	"go.uber.org/zap"
)

type pairQuery struct {
	s, t da.Index
}

type PairResult struct {
	s, t   da.Index
	Result *RouteResult
}

func (pr PairResult) GetOrigin() da.Index {
	return pr.s
}

func (pr PairResult) GetDestination() da.Index {
	return pr.t
}

// AllPairs. routes for every ordered pair of cities (including s == t), computed by numWorkers goroutines.
// results are ordered by origin id then destination id.
func (re *RoutingEngine) AllPairs(ctx context.Context, numWorkers int) ([]PairResult, error) {
	if numWorkers <= 0 {
		numWorkers = DEFAULT_ALL_PAIRS_WORKERS
	}
	n := re.graph.NumberOfCities()

	wp := concurrent.NewWorkerPool[pairQuery, PairResult](numWorkers, n*n)
	wp.Start(func(q pairQuery) PairResult {
		return PairResult{s: q.s, t: q.t, Result: re.findRoute(q.s, q.t)}
	})

	var ctxErr error
	for s := 0; s < n && ctxErr == nil; s++ {
		if util.StopConcurrentOperation(ctx) {
			ctxErr = ctx.Err()
			break
		}
		for t := 0; t < n; t++ {
			wp.AddJob(pairQuery{s: da.Index(s), t: da.Index(t)})
		}
	}
	wp.Close()
	wp.Wait()

	results := make([]PairResult, 0, n*n)
	for res := range wp.CollectResults() {
		results = append(results, res)
	}
	if ctxErr != nil {
		return nil, ctxErr
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].s != results[j].s {
			return results[i].s < results[j].s
		}
		return results[i].t < results[j].t
	})

	re.logger.Info("all pairs routes computed", zap.Int("pairs", len(results)), zap.Int("workers", numWorkers))
	return results, nil
}
