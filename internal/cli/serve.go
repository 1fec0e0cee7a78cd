package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/pathtrace/pathtrace/internal/server"
)

// serveShutdownTimeout bounds graceful shutdown after Ctrl-C.
const serveShutdownTimeout = 5 * time.Second

// serveCommand creates the serve command exposing the JSON API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog and search as a JSON API",
		Long: `Serve the graph catalog and search as a JSON API.

Endpoints:
  GET /api/graphs                 List graphs with node and edge counts
  GET /api/graphs/{name}          Adjacency and positions of one graph
  GET /api/search?graph=&start=&goal=&algorithm=
                                  Run a search and return the result

Example:
  pathtrace serve --addr :8080
  curl 'localhost:8080/api/search?graph=CampusMap&start=Gate&goal=Sports'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")

	return cmd
}

// runServe blocks until the context is cancelled, then shuts down gracefully.
func (c *CLI) runServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(c.Catalog, c.Logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Serving on http://%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	c.Logger.Info("Server stopped")
	return nil
}
