// Package catalog builds the set of demo graphs the CLI, TUI, and server
// operate on. Every graph carries a full 2D embedding, so all three search
// strategies apply to all of them.
//
// The catalog is constructed eagerly once at startup and handed to the
// presentation layer as an explicit value; there is no package-level
// registry. Graphs are immutable after construction.
package catalog

import (
	"fmt"
	"math"

	"github.com/pathtrace/pathtrace/pkg/graph"
)

// Catalog maps human-readable graph names to prebuilt graphs.
type Catalog struct {
	names  []string
	graphs map[string]*graph.Graph
}

// Default builds the five demo graphs.
func Default() *Catalog {
	c := &Catalog{graphs: make(map[string]*graph.Graph)}
	c.add("UrbanGrid-6x6", urbanGrid6x6())
	c.add("Ladder-10", ladder10())
	c.add("BinaryTree-15", binaryTree15())
	c.add("HexRing-12", hexRing12())
	c.add("CampusMap", campusMap())
	return c
}

func (c *Catalog) add(name string, g *graph.Graph) {
	c.names = append(c.names, name)
	c.graphs[name] = g
}

// Names returns the graph names in a stable display order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Get returns the named graph, or false when no graph has that name.
func (c *Catalog) Get(name string) (*graph.Graph, bool) {
	g, ok := c.graphs[name]
	return g, ok
}

// =============================================================================
// Demo Graphs
// =============================================================================

// urbanGrid6x6 is a 6x6 street grid with two blocked streets and one diagonal
// shortcut. The shortcut spans more than unit distance in the embedding, so
// the A* heuristic can overestimate across it.
func urbanGrid6x6() *graph.Graph {
	const size = 6
	g := graph.New()

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			g.SetPosition(graph.Cell(r, c), float64(c), float64(r))
		}
	}

	blocked := map[[2]graph.Node]bool{
		{graph.Cell(1, 1), graph.Cell(1, 2)}: true,
		{graph.Cell(2, 3), graph.Cell(3, 3)}: true,
	}
	open := func(a, b graph.Node) bool {
		return !blocked[[2]graph.Node{a, b}] && !blocked[[2]graph.Node{b, a}]
	}

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if r+1 < size && open(graph.Cell(r, c), graph.Cell(r+1, c)) {
				g.AddEdge(graph.Cell(r, c), graph.Cell(r+1, c))
			}
			if c+1 < size && open(graph.Cell(r, c), graph.Cell(r, c+1)) {
				g.AddEdge(graph.Cell(r, c), graph.Cell(r, c+1))
			}
		}
	}

	g.AddEdge(graph.Cell(0, 0), graph.Cell(2, 2))
	return g
}

// ladder10 is two parallel rails of five nodes joined by rungs.
func ladder10() *graph.Graph {
	g := graph.New()
	for i := 0; i < 5; i++ {
		left := graph.Name(fmt.Sprintf("L%d", i))
		right := graph.Name(fmt.Sprintf("R%d", i))
		g.SetPosition(left, 0, float64(i))
		g.SetPosition(right, 2, float64(i))
		if i > 0 {
			g.AddEdge(graph.Name(fmt.Sprintf("L%d", i-1)), left)
			g.AddEdge(graph.Name(fmt.Sprintf("R%d", i-1)), right)
		}
		g.AddEdge(left, right)
	}
	return g
}

// binaryTree15 is a complete binary tree labeled 1..15, laid out by level.
func binaryTree15() *graph.Graph {
	g := graph.New()
	for i := 1; i <= 15; i++ {
		level := int(math.Floor(math.Log2(float64(i))))
		indexInLevel := i - (1 << level)
		nodesInLevel := 1 << level
		x := float64(indexInLevel+1) / float64(nodesInLevel+1) * 10.0
		y := float64(level) * 2.0
		g.SetPosition(graph.Index(i), x, -y)

		if left := 2 * i; left <= 15 {
			g.AddEdge(graph.Index(i), graph.Index(left))
		}
		if right := 2*i + 1; right <= 15 {
			g.AddEdge(graph.Index(i), graph.Index(right))
		}
	}
	return g
}

// hexRing12 is two concentric hexagons joined by spokes and two chords.
func hexRing12() *graph.Graph {
	g := graph.New()

	outer := make([]graph.Node, 6)
	inner := make([]graph.Node, 6)
	for i := 0; i < 6; i++ {
		outer[i] = graph.Name(fmt.Sprintf("O%d", i))
		inner[i] = graph.Name(fmt.Sprintf("I%d", i))

		angle := 2 * math.Pi * float64(i) / 6
		g.SetPosition(outer[i], math.Cos(angle)*6.0, math.Sin(angle)*6.0)

		angle = 2 * math.Pi * (float64(i) + 0.5) / 6
		g.SetPosition(inner[i], math.Cos(angle)*3.5, math.Sin(angle)*3.5)
	}

	for i := 0; i < 6; i++ {
		g.AddEdge(outer[i], outer[(i+1)%6])
		g.AddEdge(inner[i], inner[(i+1)%6])
	}
	for i := 0; i < 6; i++ {
		g.AddEdge(outer[i], inner[i])
	}
	for i := 0; i < 6; i += 4 {
		g.AddEdge(outer[i], inner[(i+3)%6])
	}
	return g
}

// campusMap is ten named places with criss-cross walkways.
func campusMap() *graph.Graph {
	g := graph.New()

	positions := []struct {
		name string
		x, y float64
	}{
		{"Gate", -5.0, -1.0},
		{"Parking", -6.0, -3.0},
		{"Admin", -2.0, 0.0},
		{"Library", 0.0, 2.5},
		{"Cafeteria", 1.0, -1.5},
		{"LabA", 3.0, 1.5},
		{"LabB", 4.5, -0.5},
		{"Sports", 6.0, -2.5},
		{"Auditorium", 2.0, 3.5},
		{"Hostel", 5.5, 2.5},
	}
	for _, p := range positions {
		g.SetPosition(graph.Name(p.name), p.x, p.y)
	}

	edges := [][2]string{
		{"Gate", "Admin"}, {"Gate", "Parking"}, {"Admin", "Library"}, {"Admin", "Cafeteria"},
		{"Library", "Auditorium"}, {"Library", "LabA"}, {"Cafeteria", "LabB"}, {"LabA", "LabB"},
		{"LabB", "Sports"}, {"Auditorium", "Hostel"}, {"LabA", "Hostel"},
	}
	for _, e := range edges {
		g.AddEdge(graph.Name(e[0]), graph.Name(e[1]))
	}
	return g
}
