package route

import "errors"

var (
	ErrUnknownNode         = errors.New("route: edge references unknown node")
	ErrUnknownAlgorithm    = errors.New("route: unknown algorithm")
	ErrUnknownWeightPolicy = errors.New("route: unknown weight policy")
	ErrBadEdgeWeight       = errors.New("route: edge distance and traffic must be positive")
	ErrCorruptPath         = errors.New("route: predecessor chain broken")
)

// Algorithm selects the search strategy used by Solve.
type Algorithm string

const (
	Dijkstra Algorithm = "dijkstra"
	AStar    Algorithm = "astar"
)

// WeightPolicy maps an edge's raw attributes to a traversal cost.
type WeightPolicy string

const (
	WeightDistance WeightPolicy = "distance"
	WeightTraffic  WeightPolicy = "traffic"
	WeightCombined WeightPolicy = "combined"
)

// Cost returns the traversal cost of an edge under the policy.
// Combined weighs traffic double: distance + 2*traffic.
func (p WeightPolicy) Cost(distance, traffic int) int {
	switch p {
	case WeightTraffic:
		return traffic
	case WeightCombined:
		return distance + 2*traffic
	default:
		return distance
	}
}

func (p WeightPolicy) valid() bool {
	switch p {
	case WeightDistance, WeightTraffic, WeightCombined:
		return true
	}
	return false
}

// Edge is an undirected road segment between two intersections.
// Distance and Traffic are positive integers; traversal is permitted
// in either direction.
type Edge struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance int    `json:"distance"`
	Traffic  int    `json:"traffic"`
}

// Position is a 2-D coordinate for a node, used only by the A*
// heuristic. Nodes without positions degrade A* to uniform-cost search.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Request describes one route computation. The engine treats it as an
// immutable value: nothing in it is retained or mutated across calls.
type Request struct {
	Nodes         []string            `json:"nodes"`
	Edges         []Edge              `json:"edges"`
	Start         string              `json:"start"`
	End           string              `json:"end"`
	Algorithm     Algorithm           `json:"algorithm"`
	WeightType    WeightPolicy        `json:"weightType"`
	NodePositions map[string]Position `json:"nodePositions,omitempty"`
}

// Step is a snapshot of solver state taken when a node is finalized.
// Visited lists finalized nodes in finalization order; Distances holds
// the best-known tentative cost per discovered node; Previous holds the
// predecessor links used for path reconstruction. Steps are never
// revised after being emitted.
type Step struct {
	Current   string            `json:"current"`
	Visited   []string          `json:"visited"`
	Distances map[string]int    `json:"distances"`
	Previous  map[string]string `json:"previous"`
}

// Result is the outcome of one route computation. TotalDistance and
// TotalTraffic sum the raw edge attributes along Path regardless of the
// weight policy used for the search.
type Result struct {
	Path          []string `json:"path"`
	Steps         []Step   `json:"steps"`
	TotalDistance int      `json:"totalDistance"`
	TotalTraffic  int      `json:"totalTraffic"`
	Success       bool     `json:"success"`
	Message       string   `json:"message,omitempty"`
}
