package catalog

import (
	"slices"
	"testing"

	"github.com/pathtrace/pathtrace/pkg/graph"
	"github.com/pathtrace/pathtrace/pkg/search"
)

func TestDefaultNames(t *testing.T) {
	c := Default()
	want := []string{"UrbanGrid-6x6", "Ladder-10", "BinaryTree-15", "HexRing-12", "CampusMap"}
	if got := c.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestGetUnknown(t *testing.T) {
	if _, ok := Default().Get("Atlantis"); ok {
		t.Error("Get(Atlantis) = true, want false")
	}
}

func TestGraphShapes(t *testing.T) {
	tests := []struct {
		name  string
		nodes int
		edges int // undirected edge count
	}{
		{"UrbanGrid-6x6", 36, 59},
		{"Ladder-10", 10, 13},
		{"BinaryTree-15", 15, 14},
		{"HexRing-12", 12, 20},
		{"CampusMap", 10, 11},
	}

	c := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := c.Get(tt.name)
			if !ok {
				t.Fatalf("graph %q missing", tt.name)
			}
			if g.NodeCount() != tt.nodes {
				t.Errorf("NodeCount = %d, want %d", g.NodeCount(), tt.nodes)
			}
			if g.EdgeCount() != tt.edges*2 {
				t.Errorf("EdgeCount = %d arcs, want %d (undirected %d)", g.EdgeCount(), tt.edges*2, tt.edges)
			}
		})
	}
}

func TestEveryGraphIsSymmetricAndEmbedded(t *testing.T) {
	c := Default()
	for _, name := range c.Names() {
		t.Run(name, func(t *testing.T) {
			g, _ := c.Get(name)
			adj := g.Adjacency()

			for from, neighbors := range adj {
				for _, to := range neighbors {
					if !slices.Contains(adj[to], from) {
						t.Errorf("edge %s -> %s has no reverse arc", from, to)
					}
				}
			}
			for _, n := range g.Nodes() {
				if _, err := g.PositionOf(n); err != nil {
					t.Errorf("node %s has no position", n)
				}
			}
		})
	}
}

func TestUrbanGridBlockedStreets(t *testing.T) {
	g, _ := Default().Get("UrbanGrid-6x6")

	blocked := [][2]graph.Node{
		{graph.Cell(1, 1), graph.Cell(1, 2)},
		{graph.Cell(2, 3), graph.Cell(3, 3)},
	}
	for _, e := range blocked {
		if slices.Contains(g.Neighbors(e[0]), e[1]) {
			t.Errorf("blocked street %s - %s is present", e[0], e[1])
		}
	}

	// The diagonal shortcut stays open.
	if !slices.Contains(g.Neighbors(graph.Cell(0, 0)), graph.Cell(2, 2)) {
		t.Error("shortcut (0, 0) - (2, 2) is missing")
	}
}

func TestUrbanGridShortcutShortensRoute(t *testing.T) {
	g, _ := Default().Get("UrbanGrid-6x6")

	res := search.BFS(g.Adjacency(), graph.Cell(0, 0), graph.Cell(2, 2))
	if res.Distance != 1 {
		t.Errorf("Distance((0,0), (2,2)) = %d, want 1 via the shortcut", res.Distance)
	}
}

func TestEveryGraphIsConnected(t *testing.T) {
	c := Default()
	for _, name := range c.Names() {
		t.Run(name, func(t *testing.T) {
			g, _ := c.Get(name)
			nodes := g.Nodes()
			res := search.BFS(g.Adjacency(), nodes[0], graph.Name("__absent__"))
			if res.VisitedCount != g.NodeCount() {
				t.Errorf("reached %d of %d nodes from %s", res.VisitedCount, g.NodeCount(), nodes[0])
			}
		})
	}
}

func TestBinaryTreeStructure(t *testing.T) {
	g, _ := Default().Get("BinaryTree-15")

	for i := 2; i <= 15; i++ {
		parent := graph.Index(i / 2)
		if !slices.Contains(g.Neighbors(graph.Index(i)), parent) {
			t.Errorf("node %d is not linked to its parent %d", i, i/2)
		}
	}
}

func TestHexRingChords(t *testing.T) {
	g, _ := Default().Get("HexRing-12")

	chords := [][2]graph.Node{
		{graph.Name("O0"), graph.Name("I3")},
		{graph.Name("O4"), graph.Name("I1")},
	}
	for _, e := range chords {
		if !slices.Contains(g.Neighbors(e[0]), e[1]) {
			t.Errorf("chord %s - %s is missing", e[0], e[1])
		}
	}
}
