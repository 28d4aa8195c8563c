package observability

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

// ServerGroup runs a set of HTTP servers until a shutdown signal arrives,
// then drains them with a shared timeout.
type ServerGroup struct {
	logger  *Logger
	timeout time.Duration
	names   []string
	servers []*http.Server
}

// NewServerGroup creates a server group with the given shutdown timeout
func NewServerGroup(logger *Logger, timeout time.Duration) *ServerGroup {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &ServerGroup{
		logger:  logger,
		timeout: timeout,
	}
}

// Add registers a named server with the group
func (g *ServerGroup) Add(name string, server *http.Server) {
	g.names = append(g.names, name)
	g.servers = append(g.servers, server)
}

// Run starts all servers and blocks until SIGINT/SIGTERM or the first server
// failure, then shuts the group down gracefully.
func (g *ServerGroup) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)

	for i := range g.servers {
		name, server := g.names[i], g.servers[i]
		eg.Go(func() error {
			g.logger.Infof("Starting %s server on %s", name, server.Addr)
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	eg.Go(func() error {
		<-ctx.Done()
		g.logger.Info("Shutdown signal received, draining servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), g.timeout)
		defer cancel()

		var shutdownErr error
		for i := range g.servers {
			if err := g.servers[i].Shutdown(shutdownCtx); err != nil {
				g.logger.WithError(err).Errorf("%s server shutdown failed", g.names[i])
				shutdownErr = err
			} else {
				g.logger.Infof("%s server shutdown complete", g.names[i])
			}
		}
		return shutdownErr
	})

	return eg.Wait()
}
