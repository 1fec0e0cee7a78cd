// Package server exposes the graph catalog and the search core as a small
// JSON API, so searches can be scripted without the terminal UI.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/pathtrace/pathtrace/pkg/catalog"
	"github.com/pathtrace/pathtrace/pkg/errors"
	"github.com/pathtrace/pathtrace/pkg/graph"
	"github.com/pathtrace/pathtrace/pkg/search"
)

// Server routes catalog and search requests. It holds no mutable state: the
// catalog is immutable and every search allocates its own working set, so the
// handlers are safe under concurrent load without locking.
type Server struct {
	catalog *catalog.Catalog
	logger  *log.Logger
	router  chi.Router
}

// New creates a server over the given catalog.
func New(cat *catalog.Catalog, logger *log.Logger) *Server {
	s := &Server{catalog: cat, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/api/graphs", s.handleListGraphs)
	r.Get("/api/graphs/{name}", s.handleGetGraph)
	r.Get("/api/search", s.handleSearch)
	s.router = r

	return s
}

// Handler returns the HTTP handler for mounting or serving.
func (s *Server) Handler() http.Handler { return s.router }

// =============================================================================
// Response Types
// =============================================================================

// GraphSummary is one catalog entry in the graph listing.
type GraphSummary struct {
	Name      string `json:"name"`
	NodeCount int    `json:"node_count"`
	EdgeCount int    `json:"edge_count"`
}

// GraphDetail is the full adjacency and embedding of one graph. Nodes render
// as their user-facing string form.
type GraphDetail struct {
	Name      string                    `json:"name"`
	Nodes     []graph.Node              `json:"nodes"`
	Adjacency map[string][]graph.Node   `json:"adjacency"`
	Positions map[string]graph.Position `json:"positions"`
}

// SearchResponse is a search outcome plus request echo and a run id for log
// correlation.
type SearchResponse struct {
	RunID     string                    `json:"run_id"`
	Graph     string                    `json:"graph"`
	Algorithm string                    `json:"algorithm"`
	Start     string                    `json:"start"`
	Goal      string                    `json:"goal"`
	Result    search.Result[graph.Node] `json:"result"`
}

// errorResponse carries the machine-readable code alongside the message.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleListGraphs(w http.ResponseWriter, r *http.Request) {
	names := s.catalog.Names()
	out := make([]GraphSummary, 0, len(names))
	for _, name := range names {
		g, _ := s.catalog.Get(name)
		out = append(out, GraphSummary{
			Name:      name,
			NodeCount: g.NodeCount(),
			EdgeCount: g.EdgeCount() / 2,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	g, ok := s.catalog.Get(name)
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeUnknownGraph, "unknown graph %q", name))
		return
	}

	detail := GraphDetail{
		Name:      name,
		Nodes:     g.Nodes(),
		Adjacency: make(map[string][]graph.Node, g.NodeCount()),
		Positions: make(map[string]graph.Position, g.NodeCount()),
	}
	for _, n := range g.Nodes() {
		detail.Adjacency[n.String()] = g.Neighbors(n)
		if pos, err := g.PositionOf(n); err == nil {
			detail.Positions[n.String()] = pos
		}
	}
	s.writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	graphName := q.Get("graph")
	algorithm := q.Get("algorithm")
	if algorithm == "" {
		algorithm = string(search.KindBFS)
	}

	kind, err := search.ParseKind(algorithm)
	if err != nil {
		s.writeError(w, err)
		return
	}
	g, ok := s.catalog.Get(graphName)
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeUnknownGraph, "unknown graph %q", graphName))
		return
	}
	start, goal, err := parseEndpoints(g, q.Get("start"), q.Get("goal"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := search.Run(kind, g.Adjacency(), g.Positions(), start, goal)
	if err != nil {
		s.writeError(w, err)
		return
	}

	runID := uuid.NewString()
	s.logger.Info("search",
		"run_id", runID,
		"graph", graphName,
		"algorithm", string(kind),
		"start", start.String(),
		"goal", goal.String(),
		"distance", res.Distance,
		"visited", res.VisitedCount)

	s.writeJSON(w, http.StatusOK, SearchResponse{
		RunID:     runID,
		Graph:     graphName,
		Algorithm: string(kind),
		Start:     start.String(),
		Goal:      goal.String(),
		Result:    res,
	})
}

// parseEndpoints converts and validates the start/goal query parameters.
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

// =============================================================================
// Response Helpers
// =============================================================================

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Errorf("encode response: %v", err)
	}
}

// writeError maps the error taxonomy to HTTP status codes: validation
// failures are 400, unknown resources 404, everything else 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidNode, errors.ErrCodeInvalidAlgorithm, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeUnknownGraph:
		status = http.StatusNotFound
	}
	s.writeJSON(w, status, errorResponse{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}
