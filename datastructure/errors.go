// Package datastructure provides the Node, Edge, Route, Solution and
// CostEvaluator types underlying the KGLS cross-exchange search engine.
//
// Topology (Node ↔ Route) is a cyclic doubly-linked structure: a Route is
// a circular list of customer Nodes anchored at a depot sentinel, and each
// Node carries back-references (Prev, Next, Route) updated only by
// Solution.RemoveNodes / Solution.InsertNodesAfter. The CostEvaluator owns
// the distance matrices, the k-nearest-neighbor index, and the penalty and
// incremental move-cost state; it never mutates topology.
//
// Errors:
//
//	ErrInvariantViolation — solution's cycle broken, duplicate node, route volume inconsistent.
//	ErrCapacityOverflow   — a move execution would exceed vehicle capacity.
//	ErrUnknownNode        — a node id outside the evaluator's distance matrix.
//	ErrEmptyNeighborhood  — a neighborhood query on a depot.
package datastructure

import "errors"

// Sentinel errors for the fatal, programmer-error failure classes of the
// cost evaluator and solution mutators. None of these are expected on
// well-formed inputs; callers decide whether to abort or recover.
var (
	// ErrInvariantViolation indicates a broken route cycle, a node present
	// in more than one route, or a volume/size mismatch.
	ErrInvariantViolation = errors.New("datastructure: invariant violation")

	// ErrCapacityOverflow indicates a move would exceed vehicle capacity.
	ErrCapacityOverflow = errors.New("datastructure: capacity overflow")

	// ErrUnknownNode indicates a node id outside the evaluator's matrices.
	ErrUnknownNode = errors.New("datastructure: unknown node")

	// ErrEmptyNeighborhood indicates a neighborhood query on a depot node,
	// which by construction has no neighborhood entry.
	ErrEmptyNeighborhood = errors.New("datastructure: depot has no neighborhood")
)
