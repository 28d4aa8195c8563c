// Package api exposes the read-only catalog HTTP surface.
//
// # Endpoints
//
//	GET /paper/list                 200: JSON array of plugin identifiers
//	GET /paper/plugins/{pluginId}   200: the identifier as a JSON string
//	                                404: {"error": "Plugin not found"}
//	                                400: structured validation errors
//
// Requests are independent: the catalog and validator are immutable, shared
// read-only, and no handler keeps state between requests. Trailing slashes
// redirect to the slash-free form.
//
// Describe registers the declarative route descriptions consumed by the
// pkg/openapi document builder.
package api
