package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pathtrace/pathtrace/pkg/buildinfo"
	"github.com/pathtrace/pathtrace/pkg/catalog"
	"github.com/pathtrace/pathtrace/pkg/errors"
	"github.com/pathtrace/pathtrace/pkg/graph"
	"github.com/pathtrace/pathtrace/pkg/search"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "pathtrace"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands: the logger, the prebuilt graph
// catalog, and the user config. The catalog is constructed once here and
// passed down explicitly; no command reaches for global state.
type CLI struct {
	Logger  *log.Logger
	Catalog *catalog.Catalog
	Config  Config
}

// New creates a new CLI instance with a default logger, the built-in graph
// catalog, and config loaded from the XDG config dir. A malformed config file
// is logged as a warning and replaced with defaults.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger:  newLogger(w, level),
		Catalog: catalog.Default(),
	}

	path, err := configPath()
	if err != nil {
		path = ""
	}
	cfg, err := loadConfig(path)
	if err != nil {
		c.Logger.Warnf("Ignoring config: %v", errors.UserMessage(err))
	}
	c.Config = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Pathtrace finds and animates shortest paths on demo graphs",
		Long:         `Pathtrace is a CLI tool for exploring classic path search - BFS, DFS, and A* - on a catalog of small demo graphs, with step-through terminal animation and Graphviz export.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.graphsCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.animateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Lookups
// =============================================================================

// lookupGraph resolves a catalog graph by name, listing the available names
// on failure.
func (c *CLI) lookupGraph(name string) (*graph.Graph, error) {
	g, ok := c.Catalog.Get(name)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownGraph,
			"unknown graph %q (available: %s)", name, strings.Join(c.Catalog.Names(), ", "))
	}
	return g, nil
}

// resolveKind picks the search algorithm from the flag value, falling back to
// the configured default.
func (c *CLI) resolveKind(flag string) (search.Kind, error) {
	if flag == "" {
		flag = c.Config.Algorithm
	}
	return search.ParseKind(flag)
}
