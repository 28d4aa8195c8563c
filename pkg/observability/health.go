package observability

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// CatalogStater reports the state of the loaded plugin catalog.
type CatalogStater interface {
	Len() int
}

// HealthChecker provides liveness and readiness probes. The catalog is the
// only dependency: it is loaded once at startup, so readiness reduces to the
// catalog being present.
type HealthChecker struct {
	catalog CatalogStater
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(catalog CatalogStater) *HealthChecker {
	return &HealthChecker{catalog: catalog}
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status       string                      `json:"status"`
	Timestamp    time.Time                   `json:"timestamp"`
	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}

// DependencyStatus represents the health of a single dependency
type DependencyStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Liveness returns a simple liveness probe (always 200 while the process runs)
func (h *HealthChecker) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    StatusHealthy,
		"timestamp": time.Now(),
	})
}

// Readiness returns a readiness probe reporting catalog state
func (h *HealthChecker) Readiness(w http.ResponseWriter, r *http.Request) {
	status := h.Check()

	w.Header().Set("Content-Type", "application/json")
	if status.Status == StatusUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	json.NewEncoder(w).Encode(status)
}

// Check performs the health check
func (h *HealthChecker) Check() HealthStatus {
	status := HealthStatus{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyStatus),
	}

	if h.catalog == nil {
		status.Status = StatusUnhealthy
		status.Dependencies["catalog"] = DependencyStatus{
			Status:  StatusUnhealthy,
			Message: "catalog not loaded",
		}
		return status
	}

	status.Dependencies["catalog"] = DependencyStatus{
		Status:  StatusHealthy,
		Message: fmt.Sprintf("%d plugins", h.catalog.Len()),
	}
	return status
}

// RegisterHealthRoutes registers health check endpoints
func RegisterHealthRoutes(mux *http.ServeMux, checker *HealthChecker) {
	mux.HandleFunc("/health", checker.Readiness)
	mux.HandleFunc("/health/live", checker.Liveness)
	mux.HandleFunc("/health/ready", checker.Readiness)
}
