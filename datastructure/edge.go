package datastructure

// Edge is an unordered pair of Nodes carrying a mutable ranking Value.
//
// Two Edges are equal iff their unordered node sets are equal; A and B are
// canonicalized by ascending NodeID on construction so equality, hashing
// (via Key), and heap tie-breaking are all order-independent, following
// the "ordered pair" strategy for hashable unordered pairs.
type Edge struct {
	A, B *Node

	// Value is the current badness score, set by
	// CostEvaluator.DetermineEdgeBadness and used only for heap ranking.
	Value float64
}

// EdgeKey is the hashable, order-independent identity of an Edge.
type EdgeKey [2]int

// NewEdge builds an Edge from two nodes, canonicalizing their order so
// NewEdge(a, b) and NewEdge(b, a) produce Edges with identical Key().
func NewEdge(a, b *Node) *Edge {
	if a.NodeID <= b.NodeID {
		return &Edge{A: a, B: b}
	}
	return &Edge{A: b, B: a}
}

// Key returns the order-independent identity of e, suitable as a map key.
func (e *Edge) Key() EdgeKey {
	return EdgeKey{e.A.NodeID, e.B.NodeID}
}

// FirstNode and SecondNode expose the canonical endpoints (A, B), matching
// the original's get_first_node/get_second_node accessors.
func (e *Edge) FirstNode() *Node  { return e.A }
func (e *Edge) SecondNode() *Node { return e.B }
