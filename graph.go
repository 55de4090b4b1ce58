package route

import "fmt"

// Neighbor is one adjacency entry: a reachable node with the raw
// attributes of the connecting edge.
type Neighbor struct {
	ID       string
	Distance int
	Traffic  int
}

// Graph is a validated, symmetric adjacency view over caller-supplied
// nodes and edges. It is built fresh per request and never mutated
// after construction.
type Graph struct {
	nodes map[string]struct{}
	adj   map[string][]Neighbor
}

// NewGraph validates the edge set and builds the adjacency structure.
// Duplicate node ids are tolerated. An edge whose endpoint is missing
// from nodes fails with ErrUnknownNode; non-positive distance or
// traffic fails with ErrBadEdgeWeight. Re-declaring an edge between the
// same pair overwrites its attributes (last declaration wins) while
// keeping the original adjacency position, so iteration order stays
// deterministic.
func NewGraph(nodes []string, edges []Edge) (*Graph, error) {
	g := &Graph{
		nodes: make(map[string]struct{}, len(nodes)),
		adj:   make(map[string][]Neighbor, len(nodes)),
	}
	for _, id := range nodes {
		g.nodes[id] = struct{}{}
	}

	for _, e := range edges {
		if _, ok := g.nodes[e.From]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNode, e.From)
		}
		if _, ok := g.nodes[e.To]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNode, e.To)
		}
		if e.Distance <= 0 || e.Traffic <= 0 {
			return nil, fmt.Errorf("%w: %s-%s", ErrBadEdgeWeight, e.From, e.To)
		}
		g.addArc(e.From, e.To, e.Distance, e.Traffic)
		if e.From != e.To {
			g.addArc(e.To, e.From, e.Distance, e.Traffic)
		}
	}

	return g, nil
}

func (g *Graph) addArc(from, to string, distance, traffic int) {
	for i, nb := range g.adj[from] {
		if nb.ID == to {
			g.adj[from][i].Distance = distance
			g.adj[from][i].Traffic = traffic
			return
		}
	}
	g.adj[from] = append(g.adj[from], Neighbor{ID: to, Distance: distance, Traffic: traffic})
}

// HasNode reports whether id is part of the node set.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Neighbors returns the adjacency entries of id in edge-declaration
// order. Pure lookup; the returned slice must not be modified.
func (g *Graph) Neighbors(id string) []Neighbor {
	return g.adj[id]
}

// edge returns the raw attributes of the edge between a and b, if any.
func (g *Graph) edge(a, b string) (distance, traffic int, ok bool) {
	for _, nb := range g.adj[a] {
		if nb.ID == b {
			return nb.Distance, nb.Traffic, true
		}
	}
	return 0, 0, false
}
