package datastructure

// Solution is the ordered collection of Routes that together partition
// every customer node exactly once. RemoveNodes and InsertNodesAfter are
// its only mutators; they are the sole place Route.Volume/Size and Node
// back-references (Prev, Next, Route) change.
type Solution struct {
	Routes []*Route
}

// NewSolution wraps the given routes into a Solution.
func NewSolution(routes []*Route) *Solution {
	return &Solution{Routes: routes}
}

// RemoveNodes splices the given nodes, a single contiguous block of one
// route's cycle (in any order — not necessarily route-traversal order;
// cross-exchange segments are stored in insertion order, which may be
// reversed), out of that route. Route.Volume and Size are decremented,
// and each removed node's Prev/Next/Route are cleared.
//
// An empty nodes slice is a no-op returning nil. Returns
// ErrInvariantViolation if nodes spans more than one contiguous block, or
// leaves a route with negative volume/size.
func (s *Solution) RemoveNodes(nodes []*Node) error {
	if len(nodes) == 0 {
		return nil
	}

	inSet := make(map[*Node]struct{}, len(nodes))
	for _, n := range nodes {
		inSet[n] = struct{}{}
	}

	var head, tail *Node
	for _, n := range nodes {
		if _, ok := inSet[n.Prev]; !ok {
			if head != nil {
				return ErrInvariantViolation // more than one external-facing boundary
			}
			head = n
		}
		if _, ok := inSet[n.Next]; !ok {
			if tail != nil {
				return ErrInvariantViolation
			}
			tail = n
		}
	}
	if head == nil || tail == nil || head.Route == nil {
		return ErrInvariantViolation
	}

	route := head.Route
	before := head.Prev
	after := tail.Next
	before.Next = after
	after.Prev = before

	for _, n := range nodes {
		route.Volume -= n.Demand
		route.Size--
		n.Prev = nil
		n.Next = nil
		n.Route = nil
	}
	if route.Volume < 0 || route.Size < 0 {
		return ErrInvariantViolation
	}

	return nil
}

// InsertNodesAfter splices nodes, in the given order, immediately after
// anchor in anchor's route. nodes[0] becomes anchor.Next; each subsequent
// node follows the previous one; the last takes over anchor's original
// Next. Route.Volume and Size are incremented accordingly.
//
// Anchors must lie outside any segment being inserted in the same move
// (the operator guarantees this by construction); InsertNodesAfter does
// not itself check for that, since by the time it runs the anchor's own
// route membership is the only invariant left to trust.
func (s *Solution) InsertNodesAfter(nodes []*Node, anchor *Node) error {
	if len(nodes) == 0 {
		return nil
	}
	if anchor == nil || anchor.Route == nil {
		return ErrInvariantViolation
	}

	route := anchor.Route
	after := anchor.Next
	prev := anchor
	for _, n := range nodes {
		n.Prev = prev
		prev.Next = n
		n.Route = route
		route.Volume += n.Demand
		route.Size++
		prev = n
	}
	prev.Next = after
	after.Prev = prev

	return nil
}

// AllNonDepotNodes returns every customer node across all routes, in
// route order. Used by tests asserting the partition invariant (spec.md
// §8, invariant 2); the evaluator keeps its own non-depot node list,
// built in New, for dirty-set seeding.
func (s *Solution) AllNonDepotNodes() []*Node {
	var nodes []*Node
	for _, r := range s.Routes {
		nodes = append(nodes, r.GetNodes()...)
	}
	return nodes
}
