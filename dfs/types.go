package dfs

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Ben-Hilger/frontend-masters/core"
)

var (
	// ErrSourceOutOfRange is returned by Search when source is not a node of the graph.
	ErrSourceOutOfRange = errors.New("dfs: source node out of range")

	// ErrTargetOutOfRange is returned by Search when target is not a node of the graph.
	ErrTargetOutOfRange = errors.New("dfs: target node out of range")
)

// Option configures optional behavior of Search.
type Option func(*SearchOptions)

// SearchOptions holds configurable parameters for Search.
type SearchOptions struct {
	// Ctx is checked each time a new node is entered; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked after a node is marked visited and
	// pushed onto the path. Returning an error aborts the search.
	OnVisit func(id int) error

	// OnBacktrack, if non-nil, is invoked after a dead-end node is popped
	// from the path. Returning an error aborts the search.
	OnBacktrack func(id int) error

	// MaxDepth, if non-negative, stops the walk from entering nodes more than
	// MaxDepth edges away from the source. Default is -1 (no limit).
	MaxDepth int

	// FilterEdge, if non-nil, is called for each outgoing edge of from before
	// recursing. Return false to skip the edge; skips are counted in
	// PathResult.SkippedEdges.
	FilterEdge func(from int, e core.Edge) bool

	// Logger receives one debug event per visit, find and backtrack, and a
	// summary per search.
	Logger zerolog.Logger
}

// DefaultOptions returns SearchOptions with a background context, no hooks,
// no depth limit, no edge filter and a disabled logger.
func DefaultOptions() SearchOptions {
	return SearchOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
		Logger:   zerolog.Nop(),
	}
}

// WithContext returns an Option that sets the cancellation context.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *SearchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *SearchOptions) {
		o.OnVisit = fn
	}
}

// WithOnBacktrack installs fn as the dead-end hook.
func WithOnBacktrack(fn func(id int) error) Option {
	return func(o *SearchOptions) {
		o.OnBacktrack = fn
	}
}

// WithMaxDepth returns an Option that limits the walk to limit edges from
// the source. A limit of 0 only considers the source itself.
func WithMaxDepth(limit int) Option {
	return func(o *SearchOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterEdge returns an Option that skips every edge for which fn
// returns false.
func WithFilterEdge(fn func(from int, e core.Edge) bool) Option {
	return func(o *SearchOptions) {
		o.FilterEdge = fn
	}
}

// WithLogger routes search events to logger at debug level: "visit",
// "found" and "backtrack" per node, then "search finished".
func WithLogger(logger zerolog.Logger) Option {
	return func(o *SearchOptions) {
		o.Logger = logger
	}
}

// PathResult captures the outcome of a Search.
type PathResult struct {
	// Path lists node IDs from source to target inclusive. Nil when not found.
	Path []int

	// Found reports whether target was reached.
	Found bool

	// Visited holds the global visited markers, indexed by node ID, as they
	// stood when the search stopped.
	Visited []bool

	// Backtracks counts nodes popped from the path as dead ends.
	Backtracks int

	// SkippedEdges counts edges rejected by FilterEdge.
	SkippedEdges int
}
