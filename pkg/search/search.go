// Package search implements the path search core: breadth-first search,
// depth-first search, and A* with a Euclidean heuristic, over a generic
// adjacency mapping.
//
// The package is pure computation. Each call allocates its own frontier,
// came-from map, and visit log, and releases them on return; the adjacency
// mapping is borrowed read-only for the duration of the call, so concurrent
// searches over a shared graph are safe.
//
// The adjacency mapping may be directed or undirected: listed neighbors are
// the only reachable successors and no symmetry is assumed. Neighbor order is
// significant; it decides tie-breaking between equal-cost paths and makes
// visitation traces reproducible.
//
// [Run] is the validating entry point used by the CLI, TUI, and HTTP server.
// The raw [BFS], [DFS], and [AStar] functions assume start and goal are
// adjacency keys; a node absent from the mapping is treated as having no
// neighbors rather than causing a failure.
package search

import (
	"slices"

	"github.com/pathtrace/pathtrace/pkg/errors"
	"github.com/pathtrace/pathtrace/pkg/graph"
)

// Kind selects a search strategy.
type Kind string

// Supported search strategies.
const (
	KindBFS   Kind = "bfs"
	KindDFS   Kind = "dfs"
	KindAStar Kind = "astar"
)

// Kinds lists the supported strategies in display order.
func Kinds() []Kind {
	return []Kind{KindBFS, KindDFS, KindAStar}
}

// ParseKind validates a user-supplied algorithm name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindBFS, KindDFS, KindAStar:
		return Kind(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidAlgorithm,
		"unknown algorithm %q (want bfs, dfs, or astar)", s)
}

// Result is the outcome of a single search.
//
// Path is empty when no start-to-goal path exists. A non-empty path starts at
// the queried start node, ends at the queried goal node, and every
// consecutive pair is an edge of the adjacency mapping. Distance is the edge
// count along Path, 0 when Path is empty or trivial. VisitedOrder records
// every node in dequeue order, including the goal; VisitedCount always equals
// len(VisitedOrder).
type Result[N comparable] struct {
	Path         []N `json:"path"`
	Distance     int `json:"distance"`
	VisitedCount int `json:"visited_count"`
	VisitedOrder []N `json:"visited_order"`
}

// Run executes the selected strategy after validating that start and goal are
// present as keys of the adjacency mapping. Missing endpoints fail fast with
// an INVALID_NODE error before any traversal starts.
//
// positions feeds the A* heuristic and may be nil or partial; it is ignored
// by BFS and DFS.
func Run[N comparable](kind Kind, adj map[N][]N, positions map[N]graph.Position, start, goal N) (Result[N], error) {
	if _, ok := adj[start]; !ok {
		return Result[N]{}, errors.New(errors.ErrCodeInvalidNode, "start node %v not in graph", start)
	}
	if _, ok := adj[goal]; !ok {
		return Result[N]{}, errors.New(errors.ErrCodeInvalidNode, "goal node %v not in graph", goal)
	}

	switch kind {
	case KindBFS:
		return BFS(adj, start, goal), nil
	case KindDFS:
		return DFS(adj, start, goal), nil
	case KindAStar:
		return AStar(adj, positions, start, goal), nil
	}
	return Result[N]{}, errors.New(errors.ErrCodeInvalidAlgorithm, "unknown algorithm %q", string(kind))
}

// reconstructPath walks the came-from map backward from goal, reverses the
// sequence, and validates that it reaches start. It returns nil when goal was
// never discovered or the parent chain does not lead back to start.
func reconstructPath[N comparable](parent map[N]N, start, goal N) []N {
	path := []N{goal}
	for cur := goal; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			return nil
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)
	return path
}

// pathDistance is the edge count of a reconstructed path.
func pathDistance[N comparable](path []N) int {
	if len(path) < 2 {
		return 0
	}
	return len(path) - 1
}
