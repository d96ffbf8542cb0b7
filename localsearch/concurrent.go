package localsearch

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/arnoldf/kgls-vrp/datastructure"
)

// SearchCrossExchangesConcurrent runs SearchCrossExchanges independently
// over each seed partition, concurrently, then merges and re-sorts the
// results by Improvement descending.
//
// This is the parallel-search path spec.md §5 allows: each goroutine only
// reads the evaluator (GetNeighborhood, GetDistance, IsFeasible) — it
// never calls DetermineEdgeBadness, GetAndPenalizeWorstEdge,
// UpdateRelocationCosts, or any Solution mutator, so concurrent callers
// never observe or cause a torn evaluator state. Move application must
// still happen serially, after this returns.
func SearchCrossExchangesConcurrent(
	evaluator *datastructure.CostEvaluator,
	partitions [][]*datastructure.Node,
) ([]*Move, error) {
	results := make([][]*Move, len(partitions))

	var g errgroup.Group
	for i, partition := range partitions {
		i, partition := i, partition // pin loop variables for the closure
		g.Go(func() error {
			found, err := SearchCrossExchanges(evaluator, partition)
			if err != nil {
				return err
			}
			results[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []*Move
	for _, r := range results {
		all = append(all, r...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Improvement > all[j].Improvement
	})

	return all, nil
}
