package api

import (
	"github.com/craftreg/craftreg/pkg/metadata"
	"github.com/craftreg/craftreg/pkg/openapi"
)

// Describe registers the endpoint descriptions and response schemas with the
// OpenAPI builder. Purely declarative; it has no effect on request handling.
//
// The lookup endpoint's 200 response is documented as the bare identifier
// string it actually returns. The PluginInfo and RepositoryDescriptor schemas
// are still published under components as the metadata contract for consumers
// that resolve full records out of band.
func (s *Server) Describe(builder *openapi.Builder) {
	builder.AddSchemas(metadata.Schemas())
	builder.AddSchema("Error", map[string]interface{}{
		"type":     "object",
		"required": []string{"error"},
		"properties": map[string]interface{}{
			"error": map[string]interface{}{"type": "string"},
		},
	})
	builder.AddSchema("ValidationErrorList", map[string]interface{}{
		"type":     "object",
		"required": []string{"errors"},
		"properties": map[string]interface{}{
			"errors": map[string]interface{}{
				"type":  "array",
				"items": openapi.Ref("ValidationError"),
			},
		},
	})

	builder.AddRoute(openapi.Route{
		Method:      "GET",
		Path:        "/paper/list",
		OperationID: "listPlugins",
		Summary:     "List known plugin identifiers",
		Description: "Returns the full catalog of known plugin identifiers in catalog order.",
		Responses: map[int]openapi.Response{
			200: {
				Description: "Plugin identifiers in catalog order",
				Schema: map[string]interface{}{
					"type":  "array",
					"items": map[string]interface{}{"type": "string"},
				},
			},
		},
	})

	builder.AddRoute(openapi.Route{
		Method:      "GET",
		Path:        "/paper/plugins/{pluginId}",
		OperationID: "getPlugin",
		Summary:     "Look up a plugin identifier",
		Description: "Returns the identifier itself when it exists in the catalog.",
		Parameters: []openapi.Parameter{
			{
				Name:        "pluginId",
				In:          "path",
				Required:    true,
				Description: "Plugin identifier to look up",
				Schema: map[string]interface{}{
					"type":    "string",
					"default": DefaultPluginID,
				},
			},
		},
		Responses: map[int]openapi.Response{
			200: {
				Description: "The matched plugin identifier",
				Schema:      map[string]interface{}{"type": "string"},
			},
			400: {
				Description: "The path parameter failed schema validation",
				Schema:      openapi.Ref("ValidationErrorList"),
			},
			404: {
				Description: "No catalog entry matches the identifier",
				Schema:      openapi.Ref("Error"),
			},
		},
	})
}
