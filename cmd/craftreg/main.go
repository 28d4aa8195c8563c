package main

import (
	"context"
	"flag"
	"log"
	"net"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/craftreg/craftreg/pkg/api"
	"github.com/craftreg/craftreg/pkg/catalog"
	"github.com/craftreg/craftreg/pkg/config"
	"github.com/craftreg/craftreg/pkg/httputil"
	"github.com/craftreg/craftreg/pkg/metadata"
	"github.com/craftreg/craftreg/pkg/openapi"
	"github.com/craftreg/craftreg/pkg/observability"
)

const apiVersion = "1.0.0"

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file")
	catalogPath := flag.String("catalog", "", "Path to catalog JSON file (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}

	logger := observability.NewLogger(observability.ParseLevel(cfg.Observability.LogLevel), os.Stdout)

	var cat *catalog.Catalog
	if cfg.Catalog.Path != "" {
		cat, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			logger.WithError(err).Error("Failed to load catalog")
			os.Exit(1)
		}
		logger.Infof("Loaded catalog of %d plugins from %s", cat.Len(), cfg.Catalog.Path)
	} else {
		cat = catalog.Default()
		logger.Infof("Using embedded catalog of %d plugins", cat.Len())
	}

	registry := prometheus.NewRegistry()
	var metrics *observability.Metrics
	if cfg.Observability.MetricsEnabled {
		metrics = observability.NewMetrics(registry)
		metrics.CatalogSize.Set(float64(cat.Len()))
	}

	validator := metadata.NewValidator(&metadata.Config{Locale: cfg.Validation.Locale})
	server := api.NewServer(cat, validator, logger, metrics)

	builder := openapi.NewBuilder("craftreg", apiVersion)
	builder.SetDescription("Read-only catalog of known Minecraft plugin identifiers and their metadata contract.")
	server.Describe(builder)
	docs, err := openapi.NewHandlers(builder)
	if err != nil {
		logger.WithError(err).Error("Failed to build OpenAPI document")
		os.Exit(1)
	}
	server.Register(docs)

	server.Use(httputil.RequestIDMiddleware(), httputil.LoggingMiddleware(logger), httputil.RecoveryMiddleware(logger))
	if metrics != nil {
		server.Use(observability.HTTPMetricsMiddleware(metrics))
	}

	apiServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      server,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	healthMux := http.NewServeMux()
	observability.RegisterHealthRoutes(healthMux, observability.NewHealthChecker(cat))
	if cfg.Observability.MetricsEnabled {
		healthMux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}
	healthServer := &http.Server{
		Addr:    net.JoinHostPort(cfg.Server.Host, cfg.Server.HealthPort),
		Handler: healthMux,
	}

	group := observability.NewServerGroup(logger, cfg.Server.ShutdownTimeout)
	group.Add("api", apiServer)
	group.Add("health", healthServer)

	if err := group.Run(context.Background()); err != nil {
		logger.WithError(err).Error("Server exited with error")
		os.Exit(1)
	}
}
