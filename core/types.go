package core

import "errors"

// ErrNodeOutOfRange indicates a node ID that is not a valid index into the graph.
var ErrNodeOutOfRange = errors.New("core: node out of range")

// Edge is a directed, weighted connection to node To.
type Edge struct {
	// To is the destination node ID.
	To int

	// Weight is the cost of the edge. Carried, never consumed by traversals.
	Weight int64
}

// WeightedAdjacencyList is a directed graph stored as one edge list per node.
// The node ID is the index into the outer slice.
type WeightedAdjacencyList [][]Edge
