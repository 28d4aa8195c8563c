// Package observability provides structured logging, Prometheus metrics,
// health probes, and graceful shutdown for the catalog service.
//
// # Logging
//
// Logger wraps stdlib slog with leveled JSON output and context plumbing for
// per-request correlation IDs:
//
//	logger := observability.NewLogger(observability.InfoLevel, os.Stdout)
//	logger.WithField("catalog_size", cat.Len()).Info("Catalog loaded")
//	logger.FromContext(ctx).WithError(err).Error("Request failed")
//
// # Metrics
//
// NewMetrics registers HTTP, catalog, and validation metrics on a Prometheus
// registry. HTTPMetricsMiddleware instruments a gorilla/mux router; the path
// label uses the matched route template to keep cardinality bounded.
//
// # Health
//
// HealthChecker serves liveness and readiness probes on the health port. The
// catalog is the only dependency checked; it is immutable after startup.
//
// # Shutdown
//
// ServerGroup runs the API and health servers under an errgroup and drains
// both on SIGINT/SIGTERM with a shared timeout.
package observability
