package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pathtrace/pathtrace/pkg/errors"
	"github.com/pathtrace/pathtrace/pkg/render"
	"github.com/pathtrace/pathtrace/pkg/search"
)

// Supported render formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// renderCommand creates the render command for Graphviz export.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		format    string
		output    string
		algorithm string
		startArg  string
		goalArg   string
	)

	cmd := &cobra.Command{
		Use:   "render <graph>",
		Short: "Export a graph as DOT, SVG, or PNG",
		Long: `Export a catalog graph as Graphviz DOT, SVG, or PNG.

Node positions are pinned to the graph's 2D embedding, so the drawing matches
what the A* heuristic sees. When --start and --goal are given, a search runs
first and its result is highlighted: start green, goal red, path orange,
other visited nodes light blue.

Examples:
  pathtrace render CampusMap
  pathtrace render HexRing-12 -f png -o hex.png
  pathtrace render UrbanGrid-6x6 --start "(0, 0)" --goal "(5, 5)" -a astar`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = c.Config.Render.Format
			}
			if format != formatDOT && format != formatSVG && format != formatPNG {
				return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want dot, svg, or png)", format)
			}
			return c.runRender(cmd, args[0], format, output, algorithm, startArg, goalArg)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: svg (default), png, dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <graph>.<format>)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "search algorithm for highlighting: bfs (default), dfs, astar")
	cmd.Flags().StringVar(&startArg, "start", "", "start node to highlight a search from")
	cmd.Flags().StringVar(&goalArg, "goal", "", "goal node to highlight a search to")

	return cmd
}

// runRender optionally runs a search for highlighting, then writes the
// requested artifact.
func (c *CLI) runRender(cmd *cobra.Command, graphName, format, output, algorithm, startArg, goalArg string) error {
	g, err := c.lookupGraph(graphName)
	if err != nil {
		return err
	}

	var hl render.Highlight
	if startArg != "" || goalArg != "" {
		if startArg == "" || goalArg == "" {
			return errors.New(errors.ErrCodeInvalidNode, "--start and --goal must be given together")
		}
		kind, err := c.resolveKind(algorithm)
		if err != nil {
			return err
		}
		start, goal, err := parseEndpoints(g, startArg, goalArg)
		if err != nil {
			return err
		}
		res, err := search.Run(kind, g.Adjacency(), g.Positions(), start, goal)
		if err != nil {
			return err
		}
		if len(res.Path) == 0 {
			printWarning("No path found; highlighting visited nodes only")
		}
		hl = render.Highlight{
			Start:   start,
			Goal:    goal,
			Path:    res.Path,
			Visited: res.VisitedOrder,
			Active:  true,
		}
	}

	dot := render.ToDOT(g, hl)

	var data []byte
	switch format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG, formatPNG:
		spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Rendering %s...", format))
		spinner.Start()
		if format == formatSVG {
			data, err = render.RenderSVG(dot)
		} else {
			data, err = render.RenderPNG(dot)
		}
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return fmt.Errorf("render %s: %w", format, err)
		}
		spinner.Stop()
	}

	if output == "" {
		output = fmt.Sprintf("%s.%s", graphName, format)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Render complete")
	printFile(output)
	return nil
}
