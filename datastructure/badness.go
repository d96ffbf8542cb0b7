package datastructure

import "math"

// criterion is the rotating element of the cycle width → length →
// width_length → width … used by DetermineEdgeBadness.
type criterion int

const (
	criterionWidth criterion = iota
	criterionLength
	criterionWidthLength
)

func (c criterion) next() criterion {
	return (c + 1) % 3
}

// DetermineEdgeBadness collects every edge present across routes, scores
// each by the current rotating criterion divided by 1+penalty, rebuilds
// edgeRanking from scratch, and advances the criterion cursor.
//
// Edge objects are freshly allocated per call (Route.GetEdges), so Value
// lives on the edge instance itself rather than in a side table; penalty
// counts persist across calls keyed by the order-independent EdgeKey.
func (ce *CostEvaluator) DetermineEdgeBadness(routes []*Route) {
	var edges []*Edge

	for _, route := range routes {
		var centerX, centerY float64
		needsCenter := ce.criterion == criterionWidth || ce.criterion == criterionWidthLength
		if needsCenter && route.Size > 0 {
			centerX, centerY = route.Centroid()
		}

		for _, e := range route.GetEdges() {
			e.Value = ce.criterionValue(e, centerX, centerY, route) / float64(1+ce.edgePenalties[e.Key()])
			edges = append(edges, e)
		}
	}

	ce.edgeRanking = NewEdgeHeap(edges)
	ce.criterion = ce.criterion.next()
}

func (ce *CostEvaluator) criterionValue(e *Edge, centerX, centerY float64, route *Route) float64 {
	length := float64(ce.costs[e.A.NodeID][e.B.NodeID])

	switch ce.criterion {
	case criterionLength:
		return length
	case criterionWidth:
		return computeEdgeWidth(e, centerX, centerY, route.Depot)
	case criterionWidthLength:
		return computeEdgeWidth(e, centerX, centerY, route.Depot) + length
	default:
		return length
	}
}

// computeEdgeWidth computes the perpendicular-distance-difference width
// criterion (spec.md §4.3): the unnormalized signed distance of each
// endpoint from the line through the route's depot and its centroid,
// each divided by the depot-to-centroid distance (0 if that distance is
// 0, the documented degenerate case), then the absolute difference.
func computeEdgeWidth(e *Edge, centerX, centerY float64, depot *Node) float64 {
	node1, node2 := e.A, e.B

	dx := depot.X - centerX
	dy := depot.Y - centerY
	distanceDepotCenter := math.Sqrt(dx*dx + dy*dy)

	signedDistance := func(n *Node) float64 {
		d := (centerY-depot.Y)*n.X - (centerX-depot.X)*n.Y + (centerX*depot.Y - centerY*depot.X)
		if distanceDepotCenter == 0 {
			return 0
		}
		return d / distanceDepotCenter
	}

	return math.Abs(signedDistance(node1) - signedDistance(node2))
}

// GetAndPenalizeWorstEdge pops the max-Value edge from edgeRanking,
// increments its penalty, updates penalizedCosts symmetrically, reduces
// its Value (to costs/(1+penalty), so it doesn't re-emerge immediately)
// and reinserts it, and marks its non-depot endpoints dirty.
//
// Returns ErrInvariantViolation if edgeRanking hasn't been populated by a
// prior DetermineEdgeBadness call.
func (ce *CostEvaluator) GetAndPenalizeWorstEdge() (*Edge, error) {
	if ce.edgeRanking == nil {
		return nil, ErrInvariantViolation
	}
	worst, ok := ce.edgeRanking.PeekAndPopMax()
	if !ok {
		return nil, ErrInvariantViolation
	}

	key := worst.Key()
	ce.edgePenalties[key]++

	costIJ := ce.costs[key[0]][key[1]]
	penalized := int(math.Round(float64(costIJ) + 0.1*float64(ce.baselineCost)*float64(ce.edgePenalties[key])))
	ce.penalizedCosts[key[0]][key[1]] = penalized
	ce.penalizedCosts[key[1]][key[0]] = penalized

	worst.Value = float64(costIJ) / float64(1+ce.edgePenalties[key])
	ce.edgeRanking.Insert(worst)

	if !worst.A.IsDepot {
		ce.dirty[worst.A] = struct{}{}
	}
	if !worst.B.IsDepot {
		ce.dirty[worst.B] = struct{}{}
	}

	return worst, nil
}

// Penalize increments edge's penalty counter without touching distances;
// for operators that keep their own penalization accounting.
func (ce *CostEvaluator) Penalize(edge *Edge) {
	ce.edgePenalties[edge.Key()]++
}
