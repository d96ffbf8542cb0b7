// Package localsearch implements the cross-exchange move generator: given
// a seed node, it enumerates capacity-feasible segment swaps between two
// routes that strictly improve total distance, following
// spec.md §4.5 and the original's
// operator_cross_exchange.py move-by-move.
//
// Errors are the datastructure package's sentinels (ErrEmptyNeighborhood,
// ErrInvariantViolation, ...); localsearch adds none of its own.
package localsearch

import (
	"sort"

	"github.com/arnoldf/kgls-vrp/datastructure"
)

// Move is a candidate cross-exchange: two node segments (stored in the
// order they will be inserted after their anchors), their two
// insert-after anchors, the computed total improvement, and the seed node
// the search grew outward from.
type Move struct {
	Segment1, Segment2                      []*datastructure.Node
	Segment1InsertAfter, Segment2InsertAfter *datastructure.Node
	Improvement                             float64
	StartNode                               *datastructure.Node
}

// GetRoutes returns the (one or two) distinct routes this move touches,
// identified by the current route of each segment's first node.
func (m *Move) GetRoutes() []*datastructure.Route {
	r1 := m.Segment1[0].Route
	r2 := m.Segment2[0].Route
	if r1 == r2 {
		return []*datastructure.Route{r1}
	}
	return []*datastructure.Route{r1, r2}
}

// IsDisjoint reports whether m and other share no route, so a driver can
// accept both within the same batch.
func (m *Move) IsDisjoint(other *Move) bool {
	for _, a := range m.GetRoutes() {
		for _, b := range other.GetRoutes() {
			if a == b {
				return false
			}
		}
	}
	return true
}

// Execute removes both segments from their current routes and reinserts
// each immediately after its stored anchor, then marks every node whose
// Prev/Next changed dirty on evaluator so a subsequent UpdateRelocationCosts
// refreshes their ejection/insertion caches. The operator guarantees
// anchors never lie inside either segment, so the first removal cannot
// invalidate the second insertion's anchor.
func (m *Move) Execute(solution *datastructure.Solution, evaluator *datastructure.CostEvaluator) error {
	boundary1Before, boundary1After := segmentBoundary(m.Segment1)
	boundary2Before, boundary2After := segmentBoundary(m.Segment2)

	if err := solution.RemoveNodes(m.Segment1); err != nil {
		return err
	}
	if err := solution.RemoveNodes(m.Segment2); err != nil {
		return err
	}

	// Captured post-removal, pre-insertion: an anchor adjacent to a removed
	// segment has its Next bridged over by RemoveNodes, so the node that
	// will lose Prev linkage on insertion is only known at this point.
	anchor1Next := m.Segment1InsertAfter.Next
	anchor2Next := m.Segment2InsertAfter.Next

	if err := solution.InsertNodesAfter(m.Segment1, m.Segment1InsertAfter); err != nil {
		return err
	}
	if err := solution.InsertNodesAfter(m.Segment2, m.Segment2InsertAfter); err != nil {
		return err
	}

	for _, n := range m.Segment1 {
		evaluator.MarkDirty(n)
	}
	for _, n := range m.Segment2 {
		evaluator.MarkDirty(n)
	}
	for _, n := range []*datastructure.Node{
		boundary1Before, boundary1After,
		boundary2Before, boundary2After,
		m.Segment1InsertAfter, m.Segment2InsertAfter,
		anchor1Next, anchor2Next,
	} {
		evaluator.MarkDirty(n)
	}

	return nil
}

// segmentBoundary returns the two nodes immediately outside segment in its
// current route: the predecessor of whichever segment node has no in-segment
// Prev, and the successor of whichever has no in-segment Next. segment may be
// stored in reversed-traversal order, so both ends are found by membership
// rather than by indexing segment[0]/segment[len-1].
func segmentBoundary(segment []*datastructure.Node) (before, after *datastructure.Node) {
	inSet := make(map[*datastructure.Node]struct{}, len(segment))
	for _, n := range segment {
		inSet[n] = struct{}{}
	}
	for _, n := range segment {
		if _, ok := inSet[n.Prev]; !ok {
			before = n.Prev
		}
		if _, ok := inSet[n.Next]; !ok {
			after = n.Next
		}
	}
	return before, after
}

// directions enumerated by the operator: 0 follows Next, 1 follows Prev.
var directions = [2]int{datastructure.DirectionNext, datastructure.DirectionPrev}

// SearchCrossExchangesFrom enumerates candidate cross-exchange moves
// seeded at startNode, across all four (segment1Direction,
// segment2Direction) combinations.
func SearchCrossExchangesFrom(evaluator *datastructure.CostEvaluator, startNode *datastructure.Node) ([]*Move, error) {
	neighborhood, err := evaluator.GetNeighborhood(startNode)
	if err != nil {
		return nil, err
	}

	route1 := startNode.Route
	var moves []*Move

	for _, seg1Dir := range directions {
		var conn1Start *datastructure.Node
		if seg1Dir == datastructure.DirectionPrev {
			conn1Start = startNode.Prev
		} else {
			conn1Start = startNode.Next
		}

		for _, seg2Dir := range directions {
			for _, conn2Start := range neighborhood {
				if conn2Start.Route == route1 {
					continue
				}

				segment2Start := conn2Start.Neighbour(seg2Dir)
				if segment2Start.IsDepot {
					continue
				}

				// First-cross improvement: reconnection at the seed side.
				delta1 := evaluator.GetDistance(startNode, conn1Start) +
					evaluator.GetDistance(segment2Start, conn2Start) -
					evaluator.GetDistance(startNode, conn2Start) -
					evaluator.GetDistance(segment2Start, conn1Start)
				if delta1 <= 0 {
					continue
				}

				route2 := conn2Start.Route

				segment1End := startNode
				segment1List := []*datastructure.Node{segment1End}
				segment1Volume := segment1End.Demand

				for !segment1End.IsDepot {
					segment2End := segment2Start
					segment2List := []*datastructure.Node{segment2End}
					segment2Volume := segment2End.Demand

					for !segment2End.IsDepot &&
						evaluator.IsFeasible(route1.Volume-segment1Volume+segment2Volume) {

						if evaluator.IsFeasible(route2.Volume - segment2Volume + segment1Volume) {
							conn1End := segment1End.Neighbour(seg1Dir)
							conn2End := segment2End.Neighbour(seg2Dir)

							delta2 := evaluator.GetDistance(segment1End, conn1End) +
								evaluator.GetDistance(segment2End, conn2End) -
								evaluator.GetDistance(segment1End, conn2End) -
								evaluator.GetDistance(segment2End, conn1End)

							if delta1+delta2 > 0 {
								moves = append(moves, buildMove(
									segment1List, segment2List,
									conn1Start, conn1End, conn2Start, conn2End,
									seg1Dir, seg2Dir,
									float64(delta1+delta2), startNode,
								))
							}
						}

						segment2End = segment2End.Neighbour(seg2Dir)
						if prepend(seg1Dir, seg2Dir, false) {
							segment2List = prependNode(segment2List, segment2End)
						} else {
							segment2List = append(segment2List, segment2End)
						}
						segment2Volume += segment2End.Demand
					}

					segment1End = segment1End.Neighbour(seg1Dir)
					if prepend(seg1Dir, seg2Dir, true) {
						segment1List = prependNode(segment1List, segment1End)
					} else {
						segment1List = append(segment1List, segment1End)
					}
					segment1Volume += segment1End.Demand
				}
			}
		}
	}

	return moves, nil
}

// prepend reports whether a newly extended element should be prepended
// rather than appended, per spec.md §4.5's segment ordering rule. forSeg1
// selects which segment's rule to apply; the two are mirror images of
// each other.
func prepend(seg1Dir, seg2Dir int, forSeg1 bool) bool {
	if seg1Dir+seg2Dir == 0 {
		return true // both directions 0
	}
	if forSeg1 {
		return seg1Dir == datastructure.DirectionPrev && seg2Dir == datastructure.DirectionNext
	}
	return seg2Dir == datastructure.DirectionPrev && seg1Dir == datastructure.DirectionNext
}

func prependNode(list []*datastructure.Node, n *datastructure.Node) []*datastructure.Node {
	return append([]*datastructure.Node{n}, list...)
}

func buildMove(
	segment1List, segment2List []*datastructure.Node,
	conn1Start, conn1End, conn2Start, conn2End *datastructure.Node,
	seg1Dir, seg2Dir int,
	improvement float64,
	startNode *datastructure.Node,
) *Move {
	segment1InsertAfter := conn2End
	if seg2Dir == datastructure.DirectionPrev {
		segment1InsertAfter = conn2Start
	}
	segment2InsertAfter := conn1End
	if seg1Dir == datastructure.DirectionPrev {
		segment2InsertAfter = conn1Start
	}

	return &Move{
		Segment1:            append([]*datastructure.Node(nil), segment1List...),
		Segment2:            append([]*datastructure.Node(nil), segment2List...),
		Segment1InsertAfter: segment1InsertAfter,
		Segment2InsertAfter: segment2InsertAfter,
		Improvement:         improvement,
		StartNode:           startNode,
	}
}

// SearchCrossExchanges returns the concatenation of per-seed candidate
// lists from startNodes, sorted by Improvement descending.
func SearchCrossExchanges(evaluator *datastructure.CostEvaluator, startNodes []*datastructure.Node) ([]*Move, error) {
	var moves []*Move
	for _, startNode := range startNodes {
		found, err := SearchCrossExchangesFrom(evaluator, startNode)
		if err != nil {
			return nil, err
		}
		moves = append(moves, found...)
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Improvement > moves[j].Improvement
	})

	return moves, nil
}
