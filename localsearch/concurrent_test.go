package localsearch_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ds "github.com/arnoldf/kgls-vrp/datastructure"
	"github.com/arnoldf/kgls-vrp/localsearch"
)

// TestSearchCrossExchangesConcurrent_MatchesSequential checks that
// partitioning seeds across goroutines (spec.md §5's read-only parallel
// search) returns the same candidate set, up to ordering, as running
// every seed through the sequential entry point.
func TestSearchCrossExchangesConcurrent_MatchesSequential(t *testing.T) {
	ce, _, seed := crossingInstance(t)

	sequential, err := localsearch.SearchCrossExchanges(ce, []*ds.Node{seed})
	require.NoError(t, err)

	concurrent, err := localsearch.SearchCrossExchangesConcurrent(ce, [][]*ds.Node{{seed}})
	require.NoError(t, err)

	require.Len(t, concurrent, len(sequential))

	extract := func(moves []*localsearch.Move) []float64 {
		out := make([]float64, len(moves))
		for i, m := range moves {
			out[i] = m.Improvement
		}
		sort.Float64s(out)
		return out
	}
	assert.Equal(t, extract(sequential), extract(concurrent))
}

// TestSearchCrossExchangesConcurrent_SortsMergedResults checks that
// results from multiple partitions are merged and sorted by Improvement
// descending, not just concatenated per-partition.
func TestSearchCrossExchangesConcurrent_SortsMergedResults(t *testing.T) {
	ce, _, seed := crossingInstance(t)

	moves, err := localsearch.SearchCrossExchangesConcurrent(ce, [][]*ds.Node{{seed}, {}})
	require.NoError(t, err)
	require.NotEmpty(t, moves)

	for i := 1; i < len(moves); i++ {
		assert.GreaterOrEqual(t, moves[i-1].Improvement, moves[i].Improvement)
	}
}
