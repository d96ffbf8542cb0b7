package datastructure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ds "github.com/arnoldf/kgls-vrp/datastructure"
)

// TestSolution_RemoveAndReinsert checks that removing a segment and
// reinserting it elsewhere keeps Volume/Size and the partition invariant
// (spec.md §8 invariants 1-2) intact.
func TestSolution_RemoveAndReinsert(t *testing.T) {
	depot := ds.NewNode(0, 0, 0, 0, true)
	n1 := ds.NewNode(1, 1, 0, 2, false)
	n2 := ds.NewNode(2, 2, 0, 3, false)
	n3 := ds.NewNode(3, 3, 0, 4, false)
	route := buildRoute(t, depot, []*ds.Node{n1, n2, n3})
	sol := ds.NewSolution([]*ds.Route{route})

	require.NoError(t, sol.RemoveNodes([]*ds.Node{n2}))
	assert.Equal(t, 6, route.Volume) // 2+3+4 - 3
	assert.Equal(t, 2, route.Size)
	assert.Nil(t, n2.Route)

	require.NoError(t, sol.InsertNodesAfter([]*ds.Node{n2}, n1))
	assert.Equal(t, 9, route.Volume)
	assert.Equal(t, 3, route.Size)
	assert.Equal(t, route, n2.Route)
	assert.Equal(t, []*ds.Node{n1, n2, n3}, route.GetNodes())
}

// TestSolution_PartitionInvariant checks every non-depot node appears
// exactly once across all routes after a cross-route move.
func TestSolution_PartitionInvariant(t *testing.T) {
	_, r1, r2 := twoRouteInstance(t)
	sol := ds.NewSolution([]*ds.Route{r1, r2})

	xNode := r2.GetNodes()[0] // x
	require.NoError(t, sol.RemoveNodes([]*ds.Node{xNode}))
	require.NoError(t, sol.InsertNodesAfter([]*ds.Node{xNode}, r1.Depot))

	seen := map[*ds.Node]int{}
	for _, n := range sol.AllNonDepotNodes() {
		seen[n]++
	}
	for n, count := range seen {
		assert.Equalf(t, 1, count, "node %d must appear exactly once", n.NodeID)
	}
	assert.Len(t, seen, 4) // a, b, x, y all present exactly once
}

// TestSolution_RemoveNonContiguousIsInvariantViolation checks that
// removing a set of nodes that does not form a single contiguous block
// is rejected rather than silently corrupting the route.
func TestSolution_RemoveNonContiguousIsInvariantViolation(t *testing.T) {
	depot := ds.NewNode(0, 0, 0, 0, true)
	n1 := ds.NewNode(1, 1, 0, 1, false)
	n2 := ds.NewNode(2, 2, 0, 1, false)
	n3 := ds.NewNode(3, 3, 0, 1, false)
	route := buildRoute(t, depot, []*ds.Node{n1, n2, n3})
	sol := ds.NewSolution([]*ds.Route{route})

	err := sol.RemoveNodes([]*ds.Node{n1, n3}) // skips n2: two boundaries on each side
	assert.ErrorIs(t, err, ds.ErrInvariantViolation)
}
