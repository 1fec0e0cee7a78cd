// Package cli implements the pathtrace command-line interface.
//
// This package provides commands for running searches over the built-in graph
// catalog, animating them step by step in the terminal, exporting Graphviz
// renderings, and serving the catalog over HTTP. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - graphs: List the built-in graphs and their nodes
//   - search: Find a path between two nodes with BFS, DFS, or A*
//   - animate: Replay a search step by step in the terminal
//   - render: Export a graph (optionally with a highlighted path) as DOT, SVG, or PNG
//   - serve: Expose the catalog and search as a JSON API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Status output
// goes to stdout; log lines go to stderr so piped output stays clean.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with
// elapsed duration. It is safe for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Searched 36 nodes (1.2ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Microsecond))
}
