// Package config provides application configuration from defaults, an
// optional YAML file, and environment variable overrides.
//
// # Configuration Structure
//
// Server settings:
//
//	CRAFTREG_HOST="0.0.0.0"
//	CRAFTREG_PORT="8080"
//	CRAFTREG_HEALTH_PORT="9090"
//	CRAFTREG_READ_TIMEOUT="15s"
//	CRAFTREG_WRITE_TIMEOUT="15s"
//	CRAFTREG_SHUTDOWN_TIMEOUT="30s"
//
// Catalog settings:
//
//	CRAFTREG_CATALOG_PATH="/etc/craftreg/plugins.json"  # empty = embedded catalog
//
// Observability settings:
//
//	CRAFTREG_LOG_LEVEL="info"  # debug, info, warn, error
//	CRAFTREG_METRICS_ENABLED="true"
//
// Validation settings:
//
//	CRAFTREG_VALIDATION_LOCALE="en"
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Server: %s:%s\n", cfg.Server.Host, cfg.Server.Port)
package config
