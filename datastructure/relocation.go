package datastructure

// UpdateEjectionCosts recomputes the marginal distance saved by removing
// node from its current position: d(node,prev) + d(node,next) -
// d(prev,next). Exposed standalone (spec.md §6: update_ejection_costs)
// both for UpdateRelocationCosts's internal use and for a driver wanting
// to refresh a single node without a full relocation-cache pass.
func (ce *CostEvaluator) UpdateEjectionCosts(node *Node) {
	ce.ejectionCosts[node] = ce.GetDistance(node, node.Prev) +
		ce.GetDistance(node, node.Next) -
		ce.GetDistance(node.Prev, node.Next)
}

// EjectionCost returns the cached ejection cost for node (0 if never
// computed).
func (ce *CostEvaluator) EjectionCost(node *Node) int {
	return ce.ejectionCosts[node]
}

// InsertionCost returns the cached marginal cost of inserting node
// adjacent to anchor (0 if never computed), and the node it would sit
// immediately after.
func (ce *CostEvaluator) InsertionCost(node, anchor *Node) (cost int, after *Node) {
	key := insertKey{node.NodeID, anchor.NodeID}
	return ce.insertionCosts[key], ce.insertionAfter[key]
}

// updateInsertionCost recomputes the minimum of "insert before anchor"
// and "insert after anchor" marginal costs for placing node next to
// anchor, ties resolving to "before".
func (ce *CostEvaluator) updateInsertionCost(node, anchor *Node) {
	costBefore := ce.GetDistance(node, anchor.Prev) +
		ce.GetDistance(node, anchor) -
		ce.GetDistance(anchor.Prev, anchor)
	costAfter := ce.GetDistance(node, anchor.Next) +
		ce.GetDistance(node, anchor) -
		ce.GetDistance(anchor, anchor.Next)

	key := insertKey{node.NodeID, anchor.NodeID}
	if costBefore <= costAfter {
		ce.insertionCosts[key] = costBefore
		ce.insertionAfter[key] = anchor.Prev
	} else {
		ce.insertionCosts[key] = costAfter
		ce.insertionAfter[key] = anchor
	}
}

// UpdateRelocationCosts refreshes the ejection cost of every dirty node
// and the insertion cost/anchor of every (node, neighborhood-partner)
// pair in both directions, then clears the dirty set. Idempotent when
// the dirty set is empty.
func (ce *CostEvaluator) UpdateRelocationCosts() {
	for node := range ce.dirty {
		ce.UpdateEjectionCosts(node)

		for _, neighbour := range ce.inNeighborhoodOf[node] {
			ce.updateInsertionCost(node, neighbour)
			ce.updateInsertionCost(neighbour, node)
		}
	}
	ce.dirty = make(map[*Node]struct{})
}

// GetSolutionCosts sums distances along every consecutive pair of every
// non-empty route's cycle (depot → first → … → last → depot). When
// ignorePenalties is true it always uses the raw cost matrix regardless
// of the penalization flag; otherwise it uses GetDistance.
func (ce *CostEvaluator) GetSolutionCosts(solution *Solution, ignorePenalties bool) int {
	total := 0
	for _, route := range solution.Routes {
		if route.Size == 0 {
			continue
		}
		cur := route.Depot
		for {
			next := cur.Next
			if ignorePenalties {
				total += ce.costs[cur.NodeID][next.NodeID]
			} else {
				total += ce.GetDistance(cur, next)
			}
			cur = next
			if cur == route.Depot {
				break
			}
		}
	}
	return total
}
