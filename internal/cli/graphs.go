package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// graphsCommand creates the graphs command for browsing the catalog.
func (c *CLI) graphsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "graphs [name]",
		Short: "List the built-in graphs and their nodes",
		Long: `List the built-in graphs and their nodes.

Without arguments, all catalog graphs are listed with node and edge counts.
With a graph name, its nodes are printed in the exact form accepted by the
search, animate, and render commands.

Examples:
  pathtrace graphs
  pathtrace graphs CampusMap
  pathtrace graphs UrbanGrid-6x6`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				c.listGraphs()
				return nil
			}
			return c.listNodes(args[0])
		},
	}
}

// listGraphs prints every catalog graph with its size.
func (c *CLI) listGraphs() {
	fmt.Println(StyleTitle.Render("Available graphs"))
	for _, name := range c.Catalog.Names() {
		g, _ := c.Catalog.Get(name)
		fmt.Printf("  %s %s %s\n",
			StyleHighlight.Render(name),
			StyleDim.Render(iconArrow),
			StyleDim.Render(fmt.Sprintf("%d nodes, %d edges", g.NodeCount(), g.EdgeCount()/2)))
	}
}

// listNodes prints the nodes of one graph in parse-compatible form.
func (c *CLI) listNodes(name string) error {
	g, err := c.lookupGraph(name)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(name))
	names := make([]string, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		names = append(names, n.String())
	}
	fmt.Println("  " + StyleValue.Render(strings.Join(names, ", ")))
	return nil
}
