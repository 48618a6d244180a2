package core_test

import (
	"fmt"

	"github.com/Ben-Hilger/frontend-masters/core"
)

// ExampleWeightedAdjacencyList builds a triangle with a tail and queries it.
func ExampleWeightedAdjacencyList() {
	// 0 → 1 → 2 → 0, 2 → 3
	g := core.WeightedAdjacencyList{
		{{To: 1, Weight: 3}},
		{{To: 2, Weight: 5}},
		{{To: 0, Weight: 1}, {To: 3, Weight: 9}},
		{},
	}

	fmt.Println("nodes:", g.Len(), "edges:", g.EdgeCount())
	fmt.Println("2→3?", g.HasEdge(2, 3))
	fmt.Println("3→2?", g.HasEdge(3, 2))
	fmt.Println("walk 0 1 2 3?", g.IsPath([]int{0, 1, 2, 3}))

	// Output:
	// nodes: 4 edges: 4
	// 2→3? true
	// 3→2? false
	// walk 0 1 2 3? true
}
