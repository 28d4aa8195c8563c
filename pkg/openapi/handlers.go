package openapi

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers serves the generated OpenAPI document and the documentation UI.
// The document is rendered once at construction; the routes it describes are
// fixed for the lifetime of the process.
type Handlers struct {
	document []byte
}

// NewHandlers renders the builder's document for serving
func NewHandlers(builder *Builder) (*Handlers, error) {
	document, err := json.MarshalIndent(builder.Build(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render OpenAPI document: %w", err)
	}
	return &Handlers{document: document}, nil
}

// RegisterRoutes registers the documentation routes with the router
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/openapi", h.serveDocument).Methods("GET")
	router.HandleFunc("/openapi.json", h.serveDocument).Methods("GET") // Alias
	router.HandleFunc("/api-docs", h.serveUI).Methods("GET")
}

// serveDocument serves the OpenAPI document as JSON
func (h *Handlers) serveDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	w.Write(h.document)
}

// serveUI serves the Swagger UI HTML page
func (h *Handlers) serveUI(w http.ResponseWriter, r *http.Request) {
	tmpl := template.Must(template.New("api-docs").Parse(uiTemplate))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, nil); err != nil {
		http.Error(w, "failed to render documentation UI", http.StatusInternalServerError)
	}
}

const uiTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>craftreg API - Swagger UI</title>
  <link rel="stylesheet" type="text/css" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5.10.5/swagger-ui.css" />
  <style>
    html {
      box-sizing: border-box;
      overflow-y: scroll;
    }
    *, *:before, *:after {
      box-sizing: inherit;
    }
    body {
      margin:0;
      padding:0;
    }
  </style>
</head>
<body>
<div id="swagger-ui"></div>

<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5.10.5/swagger-ui-bundle.js" charset="UTF-8"></script>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5.10.5/swagger-ui-standalone-preset.js" charset="UTF-8"></script>
<script>
window.onload = function() {
  window.ui = SwaggerUIBundle({
    url: "/openapi",
    dom_id: '#swagger-ui',
    deepLinking: true,
    presets: [
      SwaggerUIBundle.presets.apis,
      SwaggerUIStandalonePreset
    ],
    layout: "StandaloneLayout"
  });
};
</script>
</body>
</html>`
