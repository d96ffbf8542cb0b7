package datastructure

// Route is a circular doubly-linked list of customer Nodes anchored at a
// depot sentinel. Depot.Prev is the route's last customer and Depot.Next
// its first (or Depot itself when the route is empty).
//
// Invariant: Volume equals the sum of Demand over non-depot members, and
// Size equals their count.
type Route struct {
	// Depot is this route's sentinel node (IsDepot == true).
	Depot *Node

	// Volume is the sum of Demand over all non-depot members.
	Volume int

	// Size is the count of non-depot members.
	Size int
}

// NewRoute creates an empty route anchored at depot, wiring depot's Prev
// and Next to itself.
func NewRoute(depot *Node) *Route {
	depot.Prev = depot
	depot.Next = depot

	r := &Route{Depot: depot}
	depot.Route = r

	return r
}

// GetNodes returns the non-depot members of r in route order, starting
// from Depot.Next.
func (r *Route) GetNodes() []*Node {
	nodes := make([]*Node, 0, r.Size)
	for cur := r.Depot.Next; cur != r.Depot; cur = cur.Next {
		nodes = append(nodes, cur)
	}
	return nodes
}

// GetEdges returns every consecutive pair along r's cycle, including the
// two depot-adjacent edges. An empty route (Size == 0) yields no edges:
// a lone depot has no distinct consecutive pair to report.
func (r *Route) GetEdges() []*Edge {
	if r.Size == 0 {
		return nil
	}

	edges := make([]*Edge, 0, r.Size+1)
	cur := r.Depot
	for {
		edges = append(edges, NewEdge(cur, cur.Next))
		cur = cur.Next
		if cur == r.Depot {
			break
		}
	}
	return edges
}

// Centroid returns the mean coordinates of r's non-depot members. Callers
// must not invoke this on an empty route.
func (r *Route) Centroid() (x, y float64) {
	var sumX, sumY float64
	for cur := r.Depot.Next; cur != r.Depot; cur = cur.Next {
		sumX += cur.X
		sumY += cur.Y
	}
	n := float64(r.Size)
	return sumX / n, sumY / n
}
