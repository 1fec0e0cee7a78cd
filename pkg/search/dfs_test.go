package search

import (
	"slices"
	"testing"
)

func TestDFSLineGraph(t *testing.T) {
	// Only one path exists, so DFS must find the same one as BFS.
	res := DFS(line(), "A", "C")

	if want := []string{"A", "B", "C"}; !slices.Equal(res.Path, want) {
		t.Errorf("Path = %v, want %v", res.Path, want)
	}
	if res.Distance != 2 {
		t.Errorf("Distance = %d, want 2", res.Distance)
	}
	if res.VisitedCount != 3 {
		t.Errorf("VisitedCount = %d, want 3", res.VisitedCount)
	}
}

func TestDFSTrivialPath(t *testing.T) {
	res := DFS(line(), "C", "C")

	if want := []string{"C"}; !slices.Equal(res.Path, want) {
		t.Errorf("Path = %v, want %v", res.Path, want)
	}
	if res.Distance != 0 {
		t.Errorf("Distance = %d, want 0", res.Distance)
	}
}

func TestDFSDisconnected(t *testing.T) {
	res := DFS(twoTriangles(), "A", "D")

	if len(res.Path) != 0 {
		t.Errorf("Path = %v, want empty", res.Path)
	}
	if res.Distance != 0 {
		t.Errorf("Distance = %d, want 0", res.Distance)
	}
	if res.VisitedCount != 3 {
		t.Errorf("VisitedCount = %d, want 3", res.VisitedCount)
	}
}

func TestDFSExploresAdjacencyReversed(t *testing.T) {
	// Neighbors are pushed in adjacency order and popped in reverse, so from
	// A the last-listed neighbor is explored first.
	adj := map[string][]string{
		"A": {"B", "C", "D"},
		"B": {"A"},
		"C": {"A"},
		"D": {"A"},
	}
	res := DFS(adj, "A", "B")

	if want := []string{"A", "D", "C", "B"}; !slices.Equal(res.VisitedOrder, want) {
		t.Errorf("VisitedOrder = %v, want %v", res.VisitedOrder, want)
	}
}

func TestDFSPathIsValidButNotNecessarilyShortest(t *testing.T) {
	// Pentagon A-B-C-D-E-A. The shortest A-to-C route is A-B-C, but the stack
	// pops A's last-listed neighbor E first and reaches C the long way round.
	adj := map[string][]string{
		"A": {"B", "E"},
		"B": {"A", "C"},
		"C": {"B", "D"},
		"D": {"C", "E"},
		"E": {"D", "A"},
	}
	res := DFS(adj, "A", "C")

	if want := []string{"A", "E", "D", "C"}; !slices.Equal(res.Path, want) {
		t.Errorf("Path = %v, want %v", res.Path, want)
	}
	if res.Distance != 3 {
		t.Errorf("Distance = %d, want 3 (DFS makes no shortest-path promise)", res.Distance)
	}
	assertEdgesExist(t, adj, res.Path)
}

// assertEdgesExist verifies every consecutive path pair is an adjacency edge.
func assertEdgesExist(t *testing.T, adj map[string][]string, path []string) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		if !slices.Contains(adj[path[i-1]], path[i]) {
			t.Errorf("path step %s -> %s is not an edge", path[i-1], path[i])
		}
	}
}
