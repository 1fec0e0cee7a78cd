// Package render converts graphs to Graphviz DOT and rasterizes them to SVG
// or PNG, optionally highlighting a search result.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/pathtrace/pathtrace/pkg/graph"
)

// Color palette, matching the TUI legend.
const (
	colorNode    = "#1976d2"
	colorVisited = "#90caf9"
	colorPath    = "#ff8f00"
	colorStart   = "#43a047"
	colorGoal    = "#e53935"
)

// Highlight marks a search result on the rendered graph. The zero value
// renders the bare graph.
type Highlight struct {
	Start   graph.Node
	Goal    graph.Node
	Path    []graph.Node
	Visited []graph.Node
	Active  bool // false renders the bare graph, ignoring the other fields
}

// ToDOT converts a graph to Graphviz DOT for node-link visualization. Nodes
// with position entries are pinned (pos="x,y!"), which the neato engine
// honors, so the rendered drawing matches the embedding the A* heuristic
// sees. Undirected edges are emitted once.
func ToDOT(g *graph.Graph, hl Highlight) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=10, fixedsize=false];\n")
	buf.WriteString("\n")

	pathNodes := make(map[graph.Node]bool, len(hl.Path))
	for _, n := range hl.Path {
		pathNodes[n] = true
	}
	visited := make(map[graph.Node]bool, len(hl.Visited))
	for _, n := range hl.Visited {
		visited[n] = true
	}
	pathEdges := make(map[[2]string]bool, len(hl.Path))
	for i := 1; i < len(hl.Path); i++ {
		pathEdges[edgeKey(hl.Path[i-1], hl.Path[i])] = true
	}

	for _, n := range g.Nodes() {
		attrs := []string{fmt.Sprintf("label=%q", n.String())}
		if pos, err := g.PositionOf(n); err == nil {
			// Embeddings are y-down, DOT pinning is y-up.
			y := -pos.Y
			if y == 0 {
				y = 0 // clear the negative-zero sign so it prints as "0"
			}
			attrs = append(attrs, fmt.Sprintf("pos=\"%g,%g!\"", pos.X, y))
		}
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", nodeColor(n, hl, pathNodes, visited)), "fontcolor=white")
		fmt.Fprintf(&buf, "  %q [%s];\n", n.String(), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	seen := make(map[[2]string]bool)
	for _, a := range g.Nodes() {
		for _, b := range g.Neighbors(a) {
			key := edgeKey(a, b)
			if seen[key] {
				continue
			}
			seen[key] = true
			if hl.Active && pathEdges[key] {
				fmt.Fprintf(&buf, "  %q -- %q [color=%q, penwidth=3];\n", a.String(), b.String(), colorPath)
			} else {
				fmt.Fprintf(&buf, "  %q -- %q;\n", a.String(), b.String())
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeColor(n graph.Node, hl Highlight, pathNodes, visited map[graph.Node]bool) string {
	if !hl.Active {
		return colorNode
	}
	switch {
	case n == hl.Start:
		return colorStart
	case n == hl.Goal:
		return colorGoal
	case pathNodes[n]:
		return colorPath
	case visited[n]:
		return colorVisited
	default:
		return colorNode
	}
}

// edgeKey normalizes an undirected edge to a stable key.
func edgeKey(a, b graph.Node) [2]string {
	as, bs := a.String(), b.String()
	if as > bs {
		as, bs = bs, as
	}
	return [2]string{as, bs}
}

// RenderSVG renders a DOT graph to SVG with the neato engine, which honors
// pinned positions.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG with the neato engine.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
