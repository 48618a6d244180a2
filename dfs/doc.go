// Package dfs finds a path between two nodes of a core.WeightedAdjacencyList
// using recursive depth-first search with backtracking.
//
// What:
//
//   - FindPath: returns the first path from source to target discovered by
//     DFS, exploring each node's edges in stored order, or reports absence.
//   - Search: the same walk with bounds checking, cancellation, hooks,
//     depth limiting, edge filtering, structured logging and diagnostics.
//
// How:
//
//	walk(curr):
//	    if visited[curr]: return false
//	    visited[curr] = true
//	    path.push(curr)
//	    if curr == target: return true
//	    for e in edges(curr):
//	        if walk(e.To): return true
//	    path.pop()
//	    return false
//
// The visited marker set is global to one call, not per branch: a node
// abandoned as a dead end is never retried from another branch. The result is
// therefore a path, not the shortest one, and it depends entirely on edge
// order. Edge weights are ignored.
//
// Key Types & Options:
//
//   - PathResult: Path, Found, Visited markers, Backtracks and SkippedEdges counts
//   - SearchOptions / Option: WithContext, WithOnVisit, WithOnBacktrack,
//     WithMaxDepth, WithFilterEdge, WithLogger
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for visited markers, path buffer and recursion stack
//
// Errors (Search only):
//
//   - ErrSourceOutOfRange      source is not a node
//   - ErrTargetOutOfRange      target is not a node
//   - core.ErrNodeOutOfRange   an edge points outside the graph
//   - context.Canceled         search canceled via context
//   - hook errors              propagated from OnVisit or OnBacktrack
package dfs
