package cli

import (
	"github.com/pathtrace/pathtrace/pkg/errors"
	"github.com/pathtrace/pathtrace/pkg/graph"
)

// parseEndpoints parses and validates the start and goal arguments against
// the selected graph. Membership is checked here, before the search core is
// invoked, per its fail-fast contract.
func parseEndpoints(g *graph.Graph, startArg, goalArg string) (start, goal graph.Node, err error) {
	start = graph.ParseNode(startArg)
	if !g.Has(start) {
		return start, goal, errors.New(errors.ErrCodeInvalidNode, "start node %q not in graph", startArg)
	}
	goal = graph.ParseNode(goalArg)
	if !g.Has(goal) {
		return start, goal, errors.New(errors.ErrCodeInvalidNode, "goal node %q not in graph", goalArg)
	}
	return start, goal, nil
}
