// Package frontendmasters finds paths in small weighted directed graphs by
// depth-first search.
//
// The module is split into two packages:
//
//	core/ — WeightedAdjacencyList and Edge: a graph stored as one edge list per
//	        node ID, plus read-only queries (HasNode, Neighbors, HasEdge, IsPath)
//	dfs/  — FindPath and Search: recursive depth-first search with
//	        backtracking that returns the first path found from source to target
//
// Quick example:
//
//	g := core.WeightedAdjacencyList{
//		{{To: 1}, {To: 2}}, // 0 → 1, 0 → 2
//		{},                 // 1 is a dead end
//		{{To: 3}},          // 2 → 3
//		{},
//	}
//	path, ok := dfs.FindPath(g, 0, 3) // [0 2 3], true
//
// Edge weights are stored but never read by the search; the path returned is
// the first one depth-first order reaches, not the cheapest.
package frontendmasters
