package datastructure_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	ds "github.com/arnoldf/kgls-vrp/datastructure"
)

// buildRoute wires depot and customers (already in route order) into a
// single Route via the public Solution mutators, exactly the way a
// driver would build an initial solution.
func buildRoute(t *testing.T, depot *ds.Node, customers []*ds.Node) *ds.Route {
	t.Helper()
	route := ds.NewRoute(depot)
	sol := ds.NewSolution([]*ds.Route{route})
	require.NoError(t, sol.InsertNodesAfter(customers, depot))
	return route
}

// twoRouteInstance builds the S5 feasibility scenario from spec.md §8:
// capacity 10, route 1 = depot→a(4)→b(4)→depot (volume 8), route 2 =
// depot→x(3)→y(3)→depot (volume 6).
func twoRouteInstance(t *testing.T) (nodes []*ds.Node, r1, r2 *ds.Route) {
	t.Helper()

	depot1 := ds.NewNode(0, 0, 0, 0, true)
	a := ds.NewNode(1, 1, 0, 4, false)
	b := ds.NewNode(2, 2, 0, 4, false)

	depot2 := ds.NewNode(3, 100, 0, 0, true)
	x := ds.NewNode(4, 101, 0, 3, false)
	y := ds.NewNode(5, 102, 0, 3, false)

	r1 = buildRoute(t, depot1, []*ds.Node{a, b})
	r2 = buildRoute(t, depot2, []*ds.Node{x, y})

	return []*ds.Node{depot1, a, b, depot2, x, y}, r1, r2
}
