package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pathtrace/pathtrace/pkg/graph"
	"github.com/pathtrace/pathtrace/pkg/search"
)

// searchCommand creates the search command.
func (c *CLI) searchCommand() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "search <graph> <start> <goal>",
		Short: "Find a path between two nodes",
		Long: `Find a path between two nodes of a catalog graph.

Node arguments use the same form "pathtrace graphs <name>" prints: bare names
("Gate"), integers ("7"), or grid cells ("(2, 3)").

BFS returns a path with the minimum number of edges. DFS returns the first
path the traversal reaches. A* uses the graph's 2D embedding as a Euclidean
heuristic and unit edge costs.

Examples:
  pathtrace search CampusMap Gate Sports
  pathtrace search UrbanGrid-6x6 "(0, 0)" "(5, 5)" -a astar
  pathtrace search BinaryTree-15 1 13 -a dfs`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSearch(args[0], args[1], args[2], algorithm)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "search algorithm: bfs (default), dfs, astar")

	return cmd
}

// runSearch resolves inputs, runs the core, and prints the outcome.
func (c *CLI) runSearch(graphName, startArg, goalArg, algorithm string) error {
	kind, err := c.resolveKind(algorithm)
	if err != nil {
		return err
	}
	g, err := c.lookupGraph(graphName)
	if err != nil {
		return err
	}
	start, goal, err := parseEndpoints(g, startArg, goalArg)
	if err != nil {
		return err
	}

	p := newProgress(c.Logger)
	res, err := search.Run(kind, g.Adjacency(), g.Positions(), start, goal)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Visited %d of %d nodes", res.VisitedCount, g.NodeCount()))

	printResult(graphName, kind, start, goal, res)
	return nil
}

// printResult renders a search outcome with the shared styles.
func printResult(graphName string, kind search.Kind, start, goal graph.Node, res search.Result[graph.Node]) {
	printInfo("%s %s %s on %s with %s",
		StyleStart.Render(start.String()),
		StyleDim.Render(iconArrow),
		StyleGoal.Render(goal.String()),
		StyleHighlight.Render(graphName),
		StyleHighlight.Render(strings.ToUpper(string(kind))))

	if len(res.Path) == 0 {
		printWarning("No path found")
		printDetail("visited %d nodes", res.VisitedCount)
		return
	}

	printSuccess("Path found")
	printDetail("distance: %d edges", res.Distance)
	printDetail("visited:  %d nodes", res.VisitedCount)

	segments := make([]string, len(res.Path))
	for i, n := range res.Path {
		segments[i] = StylePath.Render(n.String())
	}
	segments[0] = StyleStart.Render(res.Path[0].String())
	segments[len(segments)-1] = StyleGoal.Render(res.Path[len(res.Path)-1].String())
	fmt.Println("  " + strings.Join(segments, StyleDim.Render(" "+iconArrow+" ")))
}
