package dfs_test

import (
	"fmt"

	"github.com/Ben-Hilger/frontend-masters/core"
	"github.com/Ben-Hilger/frontend-masters/dfs"
)

// ExampleFindPath walks a graph whose only exit sits behind a cycle.
// Graph structure:
//
//	0 ──▶ 1 ──▶ 2 ──▶ 3
//	▲           │
//	└───────────┘
func ExampleFindPath() {
	g := core.WeightedAdjacencyList{
		{{To: 1, Weight: 1}},
		{{To: 2, Weight: 1}},
		{{To: 0, Weight: 1}, {To: 3, Weight: 1}},
		{},
	}

	path, ok := dfs.FindPath(g, 0, 3)
	fmt.Println(path, ok)

	// Nothing leaves 3, so 0 is unreachable from it.
	path, ok = dfs.FindPath(g, 3, 0)
	fmt.Println(path, ok)

	// Output:
	// [0 1 2 3] true
	// [] false
}

// ExampleSearch traces which nodes are entered and abandoned on the way to
// the target. Graph structure:
//
//	  0
//	 / \
//	1   2
//	    |
//	    3
//
// Edge 0→1 is tried first, fails, and 1 is backtracked.
func ExampleSearch() {
	g := core.WeightedAdjacencyList{
		{{To: 1, Weight: 2}, {To: 2, Weight: 5}},
		{},
		{{To: 3, Weight: 1}},
		{},
	}

	res, err := dfs.Search(g, 0, 3,
		dfs.WithOnVisit(func(id int) error {
			fmt.Println("visit", id)
			return nil
		}),
		dfs.WithOnBacktrack(func(id int) error {
			fmt.Println("backtrack", id)
			return nil
		}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", res.Path, "backtracks:", res.Backtracks)

	// Output:
	// visit 0
	// visit 1
	// backtrack 1
	// visit 2
	// visit 3
	// path: [0 2 3] backtracks: 1
}
