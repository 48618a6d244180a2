// Package core defines the weighted adjacency-list graph consumed by the
// traversal packages.
//
// A WeightedAdjacencyList is a plain slice indexed by node ID: node IDs are
// the implicit positions 0..N-1, and each entry holds the node's outgoing
// edges in stored order. Edge order matters: depth-first traversals explore
// edges exactly in the order they appear.
//
//	0 ──▶ 1 ──▶ 2
//	▲           │
//	└───────────┘
//
//	g := core.WeightedAdjacencyList{
//		{{To: 1, Weight: 1}},
//		{{To: 2, Weight: 1}},
//		{{To: 0, Weight: 1}},
//	}
//
// Weights are carried by every Edge but no algorithm in this module consumes
// them.
//
// All methods use value receivers and never mutate the graph, so a graph may
// be shared freely between callers as long as nobody writes to it.
//
// Errors:
//
//	ErrNodeOutOfRange - node ID is negative or >= Len().
package core
