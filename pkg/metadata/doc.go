// Package metadata defines the plugin metadata contract and its validator.
//
// # Overview
//
// A PluginInfo record describes where and how to obtain a plugin: its
// canonical identifier, website, source repository, license, and an ordered
// list of RepositoryDescriptor entries naming the distribution channels a
// build can be fetched from.
//
// # Validation
//
// Validate a raw JSON-like value:
//
//	validator := metadata.NewValidator(nil)
//	info, issues := validator.Validate(raw)
//	if metadata.HasErrors(issues) {
//		// one ValidationError per offending field, nested repository
//		// entries indexed as repositories[i].field
//	}
//
// On success the returned record is normalized: a repository descriptor that
// omitted versionModifier carries metadata.DefaultVersionModifier. Defaulting
// is idempotent; re-validating a normalized record yields the same value.
//
// # Documentation Schemas
//
// Schemas() projects the same contract into OpenAPI-compatible JSON Schema
// fragments for the documentation generator. The projection is pure and has
// no effect on validation.
package metadata
