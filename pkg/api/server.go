package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/craftreg/craftreg/pkg/catalog"
	"github.com/craftreg/craftreg/pkg/metadata"
	"github.com/craftreg/craftreg/pkg/observability"
)

// Server wires the catalog endpoints onto a gorilla/mux router. Handlers
// hold a read-only reference to the catalog; there is no per-request state.
type Server struct {
	catalog   *catalog.Catalog
	validator *metadata.Validator
	logger    *observability.Logger
	metrics   *observability.Metrics
	router    *mux.Router
}

// NewServer creates a new API server. metrics may be nil when metrics are
// disabled.
func NewServer(cat *catalog.Catalog, validator *metadata.Validator, logger *observability.Logger, metrics *observability.Metrics) *Server {
	s := &Server{
		catalog:   cat,
		validator: validator,
		logger:    logger,
		metrics:   metrics,
		// StrictSlash redirects trailing-slash paths to the slash-free form.
		router: mux.NewRouter().StrictSlash(true),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures the catalog routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("/paper/list", s.listPlugins).Methods("GET")
	s.router.HandleFunc("/paper/plugins/{pluginId}", s.getPlugin).Methods("GET")
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Use attaches middleware to the router
func (s *Server) Use(middleware ...mux.MiddlewareFunc) {
	s.router.Use(middleware...)
}

// RouteRegistrar is an interface for types that can register routes
type RouteRegistrar interface {
	RegisterRoutes(router *mux.Router)
}

// Register registers routes from a RouteRegistrar
func (s *Server) Register(registrar RouteRegistrar) {
	registrar.RegisterRoutes(s.router)
}
