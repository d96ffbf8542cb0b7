// Package kglsvrp is the search-engine core of a Guided Local Search (GLS)
// solver for the Capacitated Vehicle Routing Problem (CVRP), built on
// Knowledge-driven neighborhoods (KGLS).
//
// 🚀 What is this?
//
//	Given customer nodes with planar coordinates and demands, a single
//	depot, and a vehicle capacity, the engine maintains a penalty-aware
//	distance oracle over an evolving set of routes and generates
//	capacity-feasible cross-exchange moves that improve total distance.
//
// Everything lives under three subpackages:
//
//	datastructure/ — Node, Edge, Route, Solution, CostEvaluator, edge heap
//	localsearch/    — cross-exchange move generator and its concurrent variant
//	visualize/      — optional plot of a Solution's routes
//
// This is deliberately not a full GLS driver: instance parsing, the
// construction heuristic, the outer GLS loop, and other local-search
// operators are external collaborators (see the interfaces exposed by
// datastructure.CostEvaluator and localsearch.SearchCrossExchanges).
package kglsvrp
