package dfs

import (
	"fmt"

	"github.com/Ben-Hilger/frontend-masters/core"
)

// pathWalker carries the state shared by every recursive step of one search.
type pathWalker struct {
	graph  core.WeightedAdjacencyList
	target int
	opts   SearchOptions
	res    *PathResult
	path   []int // current recursion stack, source first
}

// FindPath returns the first path from source to target found by depth-first
// search, or (nil, false) when target is unreachable. Out-of-range endpoints
// and malformed edges are reported as absence; use Search to tell them apart.
//
// FindPath(g, n, n) returns [n] for every node n.
func FindPath(g core.WeightedAdjacencyList, source, target int) ([]int, bool) {
	res, err := Search(g, source, target)
	if err != nil || !res.Found {
		return nil, false
	}

	return res.Path, true
}

// Search runs the depth-first path search from source to target and reports
// the path together with traversal diagnostics. The graph is never modified.
func Search(g core.WeightedAdjacencyList, source, target int, opts ...Option) (*PathResult, error) {
	// 1. Validate endpoints
	if !g.HasNode(source) {
		return nil, fmt.Errorf("dfs: source %d with %d nodes: %w", source, g.Len(), ErrSourceOutOfRange)
	}
	if !g.HasNode(target) {
		return nil, fmt.Errorf("dfs: target %d with %d nodes: %w", target, g.Len(), ErrTargetOutOfRange)
	}

	// 2. Apply options
	sopts := DefaultOptions()
	for _, fn := range opts {
		fn(&sopts)
	}

	// 3. Fresh per-call state
	res := &PathResult{Visited: make([]bool, g.Len())}
	w := &pathWalker{
		graph:  g,
		target: target,
		opts:   sopts,
		res:    res,
		path:   make([]int, 0, g.Len()),
	}

	found, err := w.walk(source, 0)
	if err != nil {
		logSummary(sopts, g, source, target, res, err)
		return res, err
	}

	// 4. An empty path means the root itself was popped
	if found && len(w.path) > 0 {
		res.Path = w.path
		res.Found = true
	}

	logSummary(sopts, g, source, target, res, nil)

	return res, nil
}

// logSummary emits the "search finished" event for both completed and
// aborted searches. The graph size is only computed when the event is enabled.
func logSummary(opts SearchOptions, g core.WeightedAdjacencyList, source, target int, res *PathResult, err error) {
	ev := opts.Logger.Debug()
	if !ev.Enabled() {
		return
	}
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Int("source", source).
		Int("target", target).
		Int("nodes", g.Len()).
		Int("edges", g.EdgeCount()).
		Bool("found", res.Found).
		Int("path_len", len(res.Path)).
		Int("backtracks", res.Backtracks).
		Int("skipped_edges", res.SkippedEdges).
		Msg("search finished")
}

// walk enters curr and reports whether target is reachable from it through
// nodes not yet visited. On success curr stays on the path.
func (w *pathWalker) walk(curr, depth int) (bool, error) {
	if w.res.Visited[curr] {
		return false, nil
	}

	// beyond the depth limit: not entered, so a shallower route may still claim it
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return false, nil
	}

	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[curr] = true
	w.path = append(w.path, curr)
	w.opts.Logger.Debug().Int("node", curr).Int("depth", depth).Msg("visit")

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(curr); err != nil {
			return false, fmt.Errorf("dfs: OnVisit hook for node %d: %w", curr, err)
		}
	}

	if curr == w.target {
		w.opts.Logger.Debug().Int("node", curr).Int("depth", depth).Msg("found")
		return true, nil
	}

	// curr is in range: source is validated by Search, edges below.
	for _, e := range w.graph[curr] {
		if !w.graph.HasNode(e.To) {
			return false, fmt.Errorf("dfs: edge %d→%d: %w", curr, e.To, core.ErrNodeOutOfRange)
		}

		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(curr, e) {
			w.res.SkippedEdges++
			continue
		}

		found, err := w.walk(e.To, depth+1)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}

	// dead end
	w.path = w.path[:len(w.path)-1]
	w.res.Backtracks++
	w.opts.Logger.Debug().Int("node", curr).Int("depth", depth).Msg("backtrack")

	if w.opts.OnBacktrack != nil {
		if err := w.opts.OnBacktrack(curr); err != nil {
			return false, fmt.Errorf("dfs: OnBacktrack hook for node %d: %w", curr, err)
		}
	}

	return false, nil
}
