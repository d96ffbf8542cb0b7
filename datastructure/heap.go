package datastructure

import "container/heap"

// EdgeHeap is a max-priority queue of *Edge ordered by descending Value,
// built on container/heap the same way the teacher's dijkstra and
// prim_kruskal packages build their own priority queues on top of it.
//
// Ties break on the canonical edge key for a stable order within one
// session; spec.md leaves tie-breaking to the implementer.
type EdgeHeap []*Edge

func (h EdgeHeap) Len() int { return len(h) }

func (h EdgeHeap) Less(i, j int) bool {
	if h[i].Value != h[j].Value {
		return h[i].Value > h[j].Value // max-heap: larger Value sorts first
	}
	ki, kj := h[i].Key(), h[j].Key()
	if ki[0] != kj[0] {
		return ki[0] < kj[0]
	}
	return ki[1] < kj[1]
}

func (h EdgeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push and Pop satisfy heap.Interface; callers use the wrapper methods
// below (Insert, PeekAndPopMax) rather than calling heap.Push/heap.Pop
// directly, so the container/heap bookkeeping stays internal.
func (h *EdgeHeap) Push(x any) {
	*h = append(*h, x.(*Edge))
}

func (h *EdgeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// NewEdgeHeap builds a fresh max-heap from elements, heapifying in O(n).
func NewEdgeHeap(elements []*Edge) *EdgeHeap {
	h := EdgeHeap(elements)
	heap.Init(&h)
	return &h
}

// PeekAndPopMax removes and returns the current maximum-Value edge, or nil
// if the heap is empty. An empty pop is an invariant violation on the
// caller's part (determine_edge_badness must populate the heap first); it
// is reported as a bool rather than panicking so callers can decide.
func (h *EdgeHeap) PeekAndPopMax() (*Edge, bool) {
	if h.Len() == 0 {
		return nil, false
	}
	return heap.Pop(h).(*Edge), true
}

// Insert adds edge to the heap, preserving the heap invariant.
func (h *EdgeHeap) Insert(edge *Edge) {
	heap.Push(h, edge)
}

// SortedSnapshot returns a new slice with all current elements sorted by
// descending Value, without mutating h.
func (h *EdgeHeap) SortedSnapshot() []*Edge {
	cp := make(EdgeHeap, len(*h))
	copy(cp, *h)
	out := make([]*Edge, 0, len(cp))
	for cp.Len() > 0 {
		e, _ := cp.PeekAndPopMax()
		out = append(out, e)
	}
	return out
}
