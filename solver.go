package route

import (
	"container/heap"
	"fmt"
	"math"
)

// Node coordinates come from an editor canvas and are much coarser
// than the integer edge weights; the straight-line estimate is damped
// so it stays a lower bound on the remaining cost.
const heuristicScale = 0.1

// Solve runs the requested algorithm over the requested graph and
// returns the optimal path together with a replayable trace of the
// search. Malformed input (unknown algorithm or weight policy, edge
// referencing an unknown node, non-positive weights) is returned as an
// error; absent endpoints and disconnected graphs are reported inside
// the Result with Success=false.
//
// Solve is deterministic: identical requests produce identical results
// and byte-identical traces. Frontier ties are broken by discovery
// order, and an equal-cost alternative never displaces an earlier
// predecessor.
func Solve(req Request) (*Result, error) {
	switch req.Algorithm {
	case Dijkstra, AStar:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, req.Algorithm)
	}
	if !req.WeightType.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWeightPolicy, req.WeightType)
	}

	g, err := NewGraph(req.Nodes, req.Edges)
	if err != nil {
		return nil, err
	}

	if !g.HasNode(req.Start) || !g.HasNode(req.End) {
		return &Result{Path: []string{}, Steps: []Step{}, Message: "node not found"}, nil
	}
	if req.Start == req.End {
		return &Result{Path: []string{req.Start}, Steps: []Step{}, Success: true}, nil
	}

	h := heuristicFor(req)

	best := map[string]int{req.Start: 0}
	prev := make(map[string]string)
	finalized := make(map[string]bool, len(req.Nodes))
	visitOrder := make([]string, 0, len(req.Nodes))
	steps := []Step{}

	fr := &frontier{}
	heap.Init(fr)
	fr.add(req.Start, h(req.Start))

	for fr.Len() > 0 {
		u := heap.Pop(fr).(*frontierItem)
		if finalized[u.node] {
			// stale entry superseded by a cheaper relaxation
			continue
		}
		finalized[u.node] = true
		visitOrder = append(visitOrder, u.node)
		steps = append(steps, snapshot(u.node, visitOrder, best, prev))

		if u.node == req.End {
			break
		}

		for _, nb := range g.Neighbors(u.node) {
			if finalized[nb.ID] {
				continue
			}
			candidate := best[u.node] + req.WeightType.Cost(nb.Distance, nb.Traffic)
			if cur, ok := best[nb.ID]; !ok || candidate < cur {
				best[nb.ID] = candidate
				prev[nb.ID] = u.node
				fr.add(nb.ID, float64(candidate)+h(nb.ID))
			}
		}
	}

	if !finalized[req.End] {
		return &Result{Path: []string{}, Steps: steps, Message: "no path exists"}, nil
	}

	path, err := reconstruct(prev, req.Start, req.End, len(g.nodes))
	if err != nil {
		return nil, err
	}

	totalDistance, totalTraffic := 0, 0
	for i := 0; i < len(path)-1; i++ {
		d, t, ok := g.edge(path[i], path[i+1])
		if !ok {
			return nil, fmt.Errorf("%w: no edge %s-%s", ErrCorruptPath, path[i], path[i+1])
		}
		totalDistance += d
		totalTraffic += t
	}

	return &Result{
		Path:          path,
		Steps:         steps,
		TotalDistance: totalDistance,
		TotalTraffic:  totalTraffic,
		Success:       true,
	}, nil
}

// heuristicFor returns the frontier-key estimate for the request.
// Dijkstra always gets zero. A* gets the scaled Euclidean distance to
// the goal, except under the traffic policy (traffic has no spatial
// lower bound) or when either coordinate is missing.
func heuristicFor(req Request) func(string) float64 {
	zero := func(string) float64 { return 0 }
	if req.Algorithm != AStar || req.WeightType == WeightTraffic {
		return zero
	}
	goal, ok := req.NodePositions[req.End]
	if !ok {
		return zero
	}
	return func(id string) float64 {
		pos, ok := req.NodePositions[id]
		if !ok {
			return 0
		}
		return math.Hypot(goal.X-pos.X, goal.Y-pos.Y) * heuristicScale
	}
}

// snapshot captures the solver state at the moment current is
// finalized. All containers are copied so later iterations cannot
// revise an emitted step.
func snapshot(current string, visitOrder []string, best map[string]int, prev map[string]string) Step {
	visited := make([]string, len(visitOrder))
	copy(visited, visitOrder)

	distances := make(map[string]int, len(best))
	for k, v := range best {
		distances[k] = v
	}
	previous := make(map[string]string, len(prev))
	for k, v := range prev {
		previous[k] = v
	}

	return Step{Current: current, Visited: visited, Distances: distances, Previous: previous}
}

// reconstruct walks predecessor links from end back to start. The walk
// is bounded by the node count so a corrupt chain surfaces as an error
// instead of an infinite loop.
func reconstruct(prev map[string]string, start, end string, bound int) ([]string, error) {
	path := []string{end}
	cur := end
	for cur != start {
		if len(path) > bound {
			return nil, fmt.Errorf("%w: cycle while walking back from %q", ErrCorruptPath, end)
		}
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no predecessor", ErrCorruptPath, cur)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// frontierItem is one priority-queue entry. seq records discovery
// order; equal keys pop first-discovered-first so traces are
// reproducible across runs.
type frontierItem struct {
	node string
	key  float64
	seq  int
}

// frontier implements heap.Interface ordered by (key, seq). Cheaper
// re-relaxations push fresh entries; stale ones are skipped on pop.
type frontier struct {
	items []*frontierItem
	seq   int
}

func (f *frontier) add(node string, key float64) {
	f.seq++
	heap.Push(f, &frontierItem{node: node, key: key, seq: f.seq})
}

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	if f.items[i].key != f.items[j].key {
		return f.items[i].key < f.items[j].key
	}
	return f.items[i].seq < f.items[j].seq
}

func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier) Push(x any) {
	f.items = append(f.items, x.(*frontierItem))
}

func (f *frontier) Pop() any {
	old := f.items
	n := len(old)
	it := old[n-1]
	f.items = old[:n-1]
	return it
}
