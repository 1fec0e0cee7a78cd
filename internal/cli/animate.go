package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pathtrace/pathtrace/pkg/search"
)

// animateCommand creates the animate command for step-through replay.
func (c *CLI) animateCommand() *cobra.Command {
	var (
		algorithm string
		interval  int
	)

	cmd := &cobra.Command{
		Use:   "animate <graph> <start> <goal>",
		Short: "Replay a search step by step in the terminal",
		Long: `Replay a search step by step in the terminal.

The search runs to completion first; the animation then replays its
visitation order and finally sweeps in the found path. Playback pacing is
purely presentational and never re-enters the search core.

Keys: space pauses, n steps once, r restarts, +/- adjusts speed, q quits.

Examples:
  pathtrace animate CampusMap Gate Sports
  pathtrace animate UrbanGrid-6x6 "(0, 0)" "(5, 5)" -a astar --interval 100`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnimate(args[0], args[1], args[2], algorithm, interval)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "search algorithm: bfs (default), dfs, astar")
	cmd.Flags().IntVar(&interval, "interval", 0, "autoplay interval in milliseconds (default from config: 200)")

	return cmd
}

// runAnimate computes the search eagerly and hands the finished result to the
// bubbletea replay model.
func (c *CLI) runAnimate(graphName, startArg, goalArg, algorithm string, intervalMS int) error {
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

	res, err := search.Run(kind, g.Adjacency(), g.Positions(), start, goal)
	if err != nil {
		return err
	}

	if intervalMS <= 0 {
		intervalMS = c.Config.Animate.IntervalMS
	}
	model := NewAnimModel(graphName, g, kind, start, goal, res, time.Duration(intervalMS)*time.Millisecond)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("animation: %w", err)
	}

	printResult(graphName, kind, start, goal, res)
	return nil
}
