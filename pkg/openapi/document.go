// Package openapi assembles and serves the OpenAPI 3.1 description of the
// service's routes from declarative route descriptions and component schemas.
package openapi

import (
	"fmt"
	"strings"
)

// Parameter describes a request parameter for documentation purposes.
type Parameter struct {
	Name        string
	In          string // path, query
	Required    bool
	Description string
	Schema      map[string]interface{}
}

// Response describes one documented response for an endpoint.
type Response struct {
	Description string
	Schema      map[string]interface{} // may be a $ref
}

// Route describes one documented endpoint. Registration is purely
// declarative; it has no effect on request handling.
type Route struct {
	Method      string
	Path        string
	OperationID string
	Summary     string
	Description string
	Parameters  []Parameter
	Responses   map[int]Response
}

// Builder assembles an OpenAPI 3.1 document from registered routes and
// component schemas.
type Builder struct {
	title       string
	version     string
	description string
	routes      []Route
	schemas     map[string]interface{}
}

// NewBuilder creates a document builder for the named API
func NewBuilder(title, version string) *Builder {
	return &Builder{
		title:   title,
		version: version,
		schemas: make(map[string]interface{}),
	}
}

// SetDescription sets the API description shown in the info section
func (b *Builder) SetDescription(description string) {
	b.description = description
}

// AddSchema registers a named component schema
func (b *Builder) AddSchema(name string, schema map[string]interface{}) {
	b.schemas[name] = schema
}

// AddSchemas registers multiple component schemas at once
func (b *Builder) AddSchemas(schemas map[string]interface{}) {
	for name, schema := range schemas {
		b.schemas[name] = schema
	}
}

// AddRoute registers a route description
func (b *Builder) AddRoute(route Route) {
	b.routes = append(b.routes, route)
}

// Build assembles the OpenAPI 3.1 document
func (b *Builder) Build() map[string]interface{} {
	info := map[string]interface{}{
		"title":   b.title,
		"version": b.version,
	}
	if b.description != "" {
		info["description"] = b.description
	}

	paths := make(map[string]interface{})
	for _, route := range b.routes {
		item, ok := paths[route.Path].(map[string]interface{})
		if !ok {
			item = make(map[string]interface{})
			paths[route.Path] = item
		}
		item[strings.ToLower(route.Method)] = b.buildOperation(route)
	}

	doc := map[string]interface{}{
		"openapi": "3.1.0",
		"info":    info,
		"paths":   paths,
	}
	if len(b.schemas) > 0 {
		doc["components"] = map[string]interface{}{
			"schemas": b.schemas,
		}
	}
	return doc
}

// buildOperation projects one route into an OpenAPI operation object
func (b *Builder) buildOperation(route Route) map[string]interface{} {
	op := make(map[string]interface{})
	if route.OperationID != "" {
		op["operationId"] = route.OperationID
	}
	if route.Summary != "" {
		op["summary"] = route.Summary
	}
	if route.Description != "" {
		op["description"] = route.Description
	}

	if len(route.Parameters) > 0 {
		params := make([]interface{}, 0, len(route.Parameters))
		for _, p := range route.Parameters {
			param := map[string]interface{}{
				"name":     p.Name,
				"in":       p.In,
				"required": p.Required,
			}
			if p.Description != "" {
				param["description"] = p.Description
			}
			if p.Schema != nil {
				param["schema"] = p.Schema
			}
			params = append(params, param)
		}
		op["parameters"] = params
	}

	responses := make(map[string]interface{}, len(route.Responses))
	for code, response := range route.Responses {
		entry := map[string]interface{}{
			"description": response.Description,
		}
		if response.Schema != nil {
			entry["content"] = map[string]interface{}{
				"application/json": map[string]interface{}{
					"schema": response.Schema,
				},
			}
		}
		responses[fmt.Sprintf("%d", code)] = entry
	}
	op["responses"] = responses

	return op
}

// Ref returns a reference to a named component schema
func Ref(name string) map[string]interface{} {
	return map[string]interface{}{
		"$ref": "#/components/schemas/" + name,
	}
}
