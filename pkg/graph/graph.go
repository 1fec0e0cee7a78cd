// Package graph provides the node identifier and adjacency types shared by
// the search core, the built-in catalog, and the presentation layers.
//
// A Graph is built once with [Graph.AddEdge], [Graph.AddArc], and
// [Graph.SetPosition], then treated as read-only. Searches never mutate it,
// so a single Graph may back any number of concurrent searches.
package graph

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownNode is returned by [Graph.PositionOf] when the node has no
// position entry.
var ErrUnknownNode = errors.New("node not in graph")

// =============================================================================
// Node - Sum-Typed Identifier
// =============================================================================

// nodeKind discriminates the closed set of identifier shapes.
type nodeKind uint8

const (
	kindName  nodeKind = iota // opaque string, e.g. "Gate" or "L3"
	kindIndex                 // integer label, e.g. binary tree nodes 1..15
	kindCell                  // (row, col) grid coordinate
)

// Node identifies a vertex. It is a closed sum over the identifier shapes the
// built-in graphs use: a name, an integer index, or a grid cell. Node is
// comparable and therefore usable as a map key; the zero value is the empty
// name node.
type Node struct {
	kind nodeKind
	name string
	num  int
	row  int
	col  int
}

// Name returns a string-identified node.
func Name(s string) Node { return Node{kind: kindName, name: s} }

// Index returns an integer-identified node.
func Index(i int) Node { return Node{kind: kindIndex, num: i} }

// Cell returns a grid-coordinate node.
func Cell(row, col int) Node { return Node{kind: kindCell, row: row, col: col} }

// String renders the node the way users type it: bare names, bare integers,
// and "(row, col)" pairs. The CLI parser accepts exactly these forms back.
func (n Node) String() string {
	switch n.kind {
	case kindIndex:
		return fmt.Sprintf("%d", n.num)
	case kindCell:
		return fmt.Sprintf("(%d, %d)", n.row, n.col)
	default:
		return n.name
	}
}

// MarshalText implements encoding.TextMarshaler so nodes serialize as their
// user-facing string form in JSON arrays and map keys.
func (n Node) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// =============================================================================
// Position
// =============================================================================

// Position is a 2D embedding coordinate used by the A* heuristic and by
// renderers. Graphs without positions still support BFS and DFS.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// =============================================================================
// Graph
// =============================================================================

// Graph is an adjacency mapping with optional node positions. Neighbor order
// is the insertion order of edges; traversal tie-breaking depends on it, so
// the order is preserved exactly.
type Graph struct {
	order []Node
	adj   map[Node][]Node
	pos   map[Node]Position
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		adj: make(map[Node][]Node),
		pos: make(map[Node]Position),
	}
}

// ensure registers n as a vertex if it is new, preserving first-seen order.
func (g *Graph) ensure(n Node) {
	if _, ok := g.adj[n]; !ok {
		g.adj[n] = nil
		g.order = append(g.order, n)
	}
}

// AddNode registers an isolated vertex. Adding an existing vertex is a no-op.
func (g *Graph) AddNode(n Node) { g.ensure(n) }

// AddArc inserts the directed edge from -> to, appending to the source's
// neighbor list. Both endpoints become vertices.
func (g *Graph) AddArc(from, to Node) {
	g.ensure(from)
	g.ensure(to)
	g.adj[from] = append(g.adj[from], to)
}

// AddEdge inserts the undirected edge a <-> b as two arcs, matching how the
// built-in graphs are wired.
func (g *Graph) AddEdge(a, b Node) {
	g.AddArc(a, b)
	g.AddArc(b, a)
}

// SetPosition records the 2D embedding coordinate for n and registers n as a
// vertex if needed.
func (g *Graph) SetPosition(n Node, x, y float64) {
	g.ensure(n)
	g.pos[n] = Position{X: x, Y: y}
}

// Has reports whether n is a vertex of the graph.
func (g *Graph) Has(n Node) bool {
	_, ok := g.adj[n]
	return ok
}

// Nodes returns the vertices in insertion order. The returned slice is a
// copy and safe to mutate.
func (g *Graph) Nodes() []Node {
	return slices.Clone(g.order)
}

// Neighbors returns the successor list of n in insertion order. The returned
// slice is shared with the graph and must not be mutated. Unknown nodes have
// no neighbors.
func (g *Graph) Neighbors(n Node) []Node {
	return g.adj[n]
}

// Adjacency exposes the underlying adjacency mapping for the search core and
// for presentation-layer iteration. Callers borrow it read-only.
func (g *Graph) Adjacency() map[Node][]Node {
	return g.adj
}

// Positions exposes the position mapping, which may be empty or partial.
// Callers borrow it read-only.
func (g *Graph) Positions() map[Node]Position {
	return g.pos
}

// PositionOf returns the embedding coordinate of n, or ErrUnknownNode when n
// has no position entry.
func (g *Graph) PositionOf(n Node) (Position, error) {
	p, ok := g.pos[n]
	if !ok {
		return Position{}, fmt.Errorf("position of %s: %w", n, ErrUnknownNode)
	}
	return p, nil
}

// NodeCount returns the number of vertices.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of arcs. An undirected edge counts as two.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, ns := range g.adj {
		total += len(ns)
	}
	return total
}
