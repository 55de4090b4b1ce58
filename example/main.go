package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/meikuraledutech/route"
	"github.com/meikuraledutech/route/memory"
)

func main() {
	ctx := context.Background()

	// A small road grid: two short hops A→B→C versus one long edge A→C.
	req := route.Request{
		Nodes: []string{"A", "B", "C", "D"},
		Edges: []route.Edge{
			{From: "A", To: "B", Distance: 4, Traffic: 1},
			{From: "B", To: "C", Distance: 4, Traffic: 1},
			{From: "A", To: "C", Distance: 10, Traffic: 1},
			{From: "C", To: "D", Distance: 3, Traffic: 5},
		},
		Start:      "A",
		End:        "D",
		Algorithm:  route.Dijkstra,
		WeightType: route.WeightDistance,
	}

	result, err := route.Solve(req)
	if err != nil {
		log.Fatalf("solve: %v", err)
	}

	fmt.Printf("path: %v (distance=%d traffic=%d)\n",
		result.Path, result.TotalDistance, result.TotalTraffic)

	fmt.Println("\ntrace:")
	for i, step := range result.Steps {
		fmt.Printf("  step %d: finalized %s, visited %v\n", i+1, step.Current, step.Visited)
	}

	// ── A* over the same graph, guided by node coordinates ────────────
	req.Algorithm = route.AStar
	req.NodePositions = map[string]route.Position{
		"A": {X: 0, Y: 0},
		"B": {X: 40, Y: 0},
		"C": {X: 80, Y: 0},
		"D": {X: 110, Y: 0},
	}

	astarResult, err := route.Solve(req)
	if err != nil {
		log.Fatalf("solve: %v", err)
	}
	fmt.Printf("\nastar path: %v in %d steps (dijkstra took %d)\n",
		astarResult.Path, len(astarResult.Steps), len(result.Steps))

	// ── Record the chosen route in history ────────────────────────────
	store := memory.New()
	id, err := store.Append(ctx, &route.HistoryEntry{
		From:          req.Start,
		To:            req.End,
		Path:          result.Path,
		Algorithm:     route.Dijkstra,
		TotalDistance: result.TotalDistance,
		TotalTraffic:  result.TotalTraffic,
	})
	if err != nil {
		log.Fatalf("append: %v", err)
	}
	fmt.Printf("\nrecorded as %s\n", id)

	entries, err := store.List(ctx)
	if err != nil {
		log.Fatalf("list: %v", err)
	}
	printJSON(entries)
}

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}
