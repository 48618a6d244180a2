package core

import "fmt"

// Len returns the number of nodes in the graph.
//
// Complexity: O(1)
func (g WeightedAdjacencyList) Len() int {
	return len(g)
}

// HasNode reports whether id is a valid node index.
//
// Complexity: O(1)
func (g WeightedAdjacencyList) HasNode(id int) bool {
	return id >= 0 && id < len(g)
}

// Neighbors returns the outgoing edges of id in stored order.
// The returned slice aliases the graph and must not be modified.
//
// Complexity: O(1)
func (g WeightedAdjacencyList) Neighbors(id int) ([]Edge, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("core: Neighbors(%d): %w", id, ErrNodeOutOfRange)
	}

	return g[id], nil
}

// HasEdge reports whether at least one edge from→to exists.
// An out-of-range from yields false.
//
// Complexity: O(deg(from))
func (g WeightedAdjacencyList) HasEdge(from, to int) bool {
	if !g.HasNode(from) {
		return false
	}
	for _, e := range g[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// EdgeCount returns the total number of edges, counting parallel edges and loops.
//
// Complexity: O(V)
func (g WeightedAdjacencyList) EdgeCount() int {
	n := 0
	for _, edges := range g {
		n += len(edges)
	}

	return n
}

// IsPath reports whether path is a non-empty walk through g: every ID is a
// node and every consecutive pair (u, v) is backed by an edge u→v.
//
// Complexity: O(sum of deg(u) over path)
func (g WeightedAdjacencyList) IsPath(path []int) bool {
	if len(path) == 0 {
		return false
	}
	for i, id := range path {
		if !g.HasNode(id) {
			return false
		}
		if i > 0 && !g.HasEdge(path[i-1], id) {
			return false
		}
	}

	return true
}
