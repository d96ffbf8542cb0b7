package datastructure

import (
	"math"
	"sort"
)

// DefaultNeighborhoodSize is K from spec.md §3: the number of nearest
// non-depot nodes kept per node's neighborhood.
const DefaultNeighborhoodSize = 20

// Option configures a CostEvaluator at construction time, following the
// teacher's functional-options shape (see tsp.Options/DefaultOptions).
type Option func(*evaluatorConfig)

type evaluatorConfig struct {
	neighborhoodSize int
}

// WithNeighborhoodSize overrides K, the neighborhood size. Must be
// positive; non-positive values are silently ignored, leaving the size at
// DefaultNeighborhoodSize (or an earlier option's value), since a
// zero-size neighborhood would make every node unreachable by the
// cross-exchange operator.
func WithNeighborhoodSize(k int) Option {
	return func(c *evaluatorConfig) {
		if k > 0 {
			c.neighborhoodSize = k
		}
	}
}

func defaultEvaluatorConfig() evaluatorConfig {
	return evaluatorConfig{neighborhoodSize: DefaultNeighborhoodSize}
}

// insertKey identifies a directed insertion-cost cache entry: "insert node
// next to anchor". insertKey{n, a} and insertKey{a, n} are distinct
// entries, since the marginal cost of inserting n next to a differs from
// inserting a next to n.
type insertKey [2]int

// CostEvaluator owns the distance matrices, the k-nearest-neighbor index,
// and the penalty/ranking/incremental-cache state for a fixed set of
// nodes. Its distance matrices and neighborhoods are immutable after
// construction; only penalizedCosts, edgePenalties, edgeRanking, the
// incremental caches, the criterion cursor, and the dirty set mutate
// during search.
type CostEvaluator struct {
	nodes            []*Node
	capacity         int
	neighborhoodSize int

	costs          [][]int
	penalizedCosts [][]int
	edgePenalties  map[EdgeKey]int

	neighborhood     map[*Node][]*Node
	inNeighborhoodOf map[*Node][]*Node
	allNonDepotNodes []*Node

	baselineCost int

	ejectionCosts  map[*Node]int
	insertionCosts map[insertKey]int
	insertionAfter map[insertKey]*Node

	edgeRanking *EdgeHeap

	penalizationEnabled bool
	criterion           criterion

	dirty map[*Node]struct{}
}

// New builds a CostEvaluator from nodes (dense NodeID from 0) and the
// vehicle capacity. Distance matrices and the neighborhood index are
// computed once, here; every non-depot node starts in the dirty set so a
// driver's first UpdateRelocationCosts call populates the full ejection/
// insertion caches.
func New(nodes []*Node, capacity int, opts ...Option) (*CostEvaluator, error) {
	cfg := defaultEvaluatorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(nodes)
	for _, node := range nodes {
		if node.NodeID < 0 || node.NodeID >= n {
			return nil, ErrUnknownNode
		}
	}

	byID := make([]*Node, n)
	for _, node := range nodes {
		byID[node.NodeID] = node
	}

	costs := make([][]int, n)
	for i, ni := range byID {
		row := make([]int, n)
		for j, nj := range byID {
			if i == j {
				continue // costs[i][i] == 0
			}
			row[j] = euclideanDistance(ni, nj)
		}
		costs[i] = row
	}

	penalizedCosts := make([][]int, n)
	for i, row := range costs {
		penalizedCosts[i] = append([]int(nil), row...)
	}

	neighborhood, inNeighborhoodOf := computeNeighborhood(byID, costs, cfg.neighborhoodSize)

	var allNonDepotNodes []*Node
	for _, node := range byID {
		if !node.IsDepot {
			allNonDepotNodes = append(allNonDepotNodes, node)
		}
	}

	ce := &CostEvaluator{
		nodes:            byID,
		capacity:         capacity,
		neighborhoodSize: cfg.neighborhoodSize,
		costs:            costs,
		penalizedCosts:   penalizedCosts,
		edgePenalties:    make(map[EdgeKey]int),
		neighborhood:     neighborhood,
		inNeighborhoodOf: inNeighborhoodOf,
		allNonDepotNodes: allNonDepotNodes,
		ejectionCosts:    make(map[*Node]int),
		insertionCosts:   make(map[insertKey]int),
		insertionAfter:   make(map[insertKey]*Node),
		criterion:        criterionWidth,
		dirty:            make(map[*Node]struct{}, len(allNonDepotNodes)),
	}
	for _, node := range allNonDepotNodes {
		ce.dirty[node] = struct{}{}
	}
	ce.baselineCost = ce.computeBaselineCost()

	return ce, nil
}

// computeBaselineCost averages neighborhood edge length over all
// non-depot nodes, truncating toward zero exactly like the original's
// int(sum(...) / (K * len(nodes))) — Go's integer division does the same
// for non-negative operands.
func (ce *CostEvaluator) computeBaselineCost() int {
	sum := 0
	for _, node := range ce.allNonDepotNodes {
		for _, other := range ce.neighborhood[node] {
			sum += ce.costs[node.NodeID][other.NodeID]
		}
	}
	denom := ce.neighborhoodSize * len(ce.nodes)
	if denom == 0 {
		return 0
	}
	return sum / denom
}

// euclideanDistance rounds to the nearest integer, ties away from zero.
func euclideanDistance(a, b *Node) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return int(math.Round(math.Sqrt(dx*dx + dy*dy)))
}

func computeNeighborhood(nodes []*Node, costs [][]int, k int) (map[*Node][]*Node, map[*Node][]*Node) {
	type candidate struct {
		node *Node
		dist int
	}

	neighborhood := make(map[*Node][]*Node)
	for _, n := range nodes {
		if n.IsDepot {
			continue
		}
		candidates := make([]candidate, 0, len(nodes))
		for _, m := range nodes {
			if m.IsDepot || m == n {
				continue
			}
			candidates = append(candidates, candidate{m, costs[n.NodeID][m.NodeID]})
		}
		sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })
		if len(candidates) > k {
			candidates = candidates[:k]
		}
		list := make([]*Node, len(candidates))
		for i, c := range candidates {
			list[i] = c.node
		}
		neighborhood[n] = list
	}

	inNeighborhoodOf := make(map[*Node][]*Node, len(neighborhood))
	for n := range neighborhood {
		inNeighborhoodOf[n] = nil
	}
	for m, list := range neighborhood {
		for _, n := range list {
			inNeighborhoodOf[n] = append(inNeighborhoodOf[n], m)
		}
	}

	return neighborhood, inNeighborhoodOf
}

// GetDistance returns costs[a][b] when penalization is disabled, or
// penalizedCosts[a][b] when enabled. Never fails.
func (ce *CostEvaluator) GetDistance(a, b *Node) int {
	if !ce.penalizationEnabled {
		return ce.costs[a.NodeID][b.NodeID]
	}
	return ce.penalizedCosts[a.NodeID][b.NodeID]
}

// IsFeasible reports whether load fits within vehicle capacity.
func (ce *CostEvaluator) IsFeasible(load int) bool {
	return load <= ce.capacity
}

// GetNeighborhood returns the K nearest non-depot nodes to node, ordered
// by unpenalized distance ascending. Returns ErrEmptyNeighborhood for a
// depot node.
func (ce *CostEvaluator) GetNeighborhood(node *Node) ([]*Node, error) {
	if node.IsDepot {
		return nil, ErrEmptyNeighborhood
	}
	list, ok := ce.neighborhood[node]
	if !ok {
		return nil, ErrUnknownNode
	}
	return list, nil
}

// EnablePenalization switches the distance oracle to penalizedCosts and
// marks every non-depot node dirty, since all distances just changed in
// bulk. Seeded from the evaluator's own node list rather than by
// iterating the neighborhood map, resolving spec.md's Open Question about
// the intended "all non-depot nodes" seeding explicitly.
func (ce *CostEvaluator) EnablePenalization() {
	ce.penalizationEnabled = true
	ce.markAllDirty()
}

// DisablePenalization switches the distance oracle back to costs, with
// the same dirty-set seeding as EnablePenalization.
func (ce *CostEvaluator) DisablePenalization() {
	ce.penalizationEnabled = false
	ce.markAllDirty()
}

func (ce *CostEvaluator) markAllDirty() {
	for _, node := range ce.allNonDepotNodes {
		ce.dirty[node] = struct{}{}
	}
}

// MarkDirty flags node for relocation-cost refresh on the next
// UpdateRelocationCosts call. Exported so operators report topology changes
// they make to a route; localsearch.Move.Execute calls this on every node
// whose Prev/Next it changes.
func (ce *CostEvaluator) MarkDirty(node *Node) {
	if !node.IsDepot {
		ce.dirty[node] = struct{}{}
	}
}
