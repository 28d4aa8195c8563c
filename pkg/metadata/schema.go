package metadata

// Schema projections for the documentation generator. These are pure
// functions returning OpenAPI-compatible JSON Schema fragments that mirror
// the struct definitions in types.go; they carry no runtime behavior.

// RepositoryDescriptorSchema returns the JSON Schema fragment for a single
// repository descriptor.
func RepositoryDescriptorSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"type", "id", "fileNameRegex"},
		"properties": map[string]interface{}{
			"type": map[string]interface{}{
				"type":        "string",
				"description": "Kind of repository or distribution channel",
			},
			"id": map[string]interface{}{
				"type":        "string",
				"description": "Identifier within that repository type",
			},
			"fileNameRegex": map[string]interface{}{
				"type":        "string",
				"format":      "regex",
				"description": "Pattern used to recognize the correct release asset",
			},
			"versionModifier": map[string]interface{}{
				"type":        "string",
				"format":      "regex",
				"default":     DefaultVersionModifier,
				"description": "Version-matching pattern stored as configuration; not evaluated by this service",
			},
			"downloadUrl": map[string]interface{}{
				"type":   "string",
				"format": "uri",
			},
			"fileNameTemplate": map[string]interface{}{
				"type": "string",
			},
		},
	}
}

// PluginInfoSchema returns the JSON Schema fragment for a full plugin
// metadata record.
func PluginInfoSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"id", "website", "source", "license", "repositories"},
		"properties": map[string]interface{}{
			"id": map[string]interface{}{
				"type":        "string",
				"description": "Canonical plugin identifier",
			},
			"website": map[string]interface{}{
				"type":   "string",
				"format": "uri",
			},
			"source": map[string]interface{}{
				"type":   "string",
				"format": "uri",
			},
			"license": map[string]interface{}{
				"type":        "string",
				"description": "Free-form license identifier or name",
			},
			"repositories": map[string]interface{}{
				"type":        "array",
				"description": "Ordered by source preference; may be empty",
				"items": map[string]interface{}{
					"$ref": "#/components/schemas/RepositoryDescriptor",
				},
			},
		},
	}
}

// ValidationErrorSchema returns the JSON Schema fragment for a field-level
// validation issue.
func ValidationErrorSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"field", "message", "severity"},
		"properties": map[string]interface{}{
			"field":    map[string]interface{}{"type": "string"},
			"message":  map[string]interface{}{"type": "string"},
			"severity": map[string]interface{}{"type": "string", "enum": []string{SeverityError, SeverityWarning}},
		},
	}
}

// Schemas returns all component schemas keyed by name.
func Schemas() map[string]interface{} {
	return map[string]interface{}{
		"PluginInfo":           PluginInfoSchema(),
		"RepositoryDescriptor": RepositoryDescriptorSchema(),
		"ValidationError":      ValidationErrorSchema(),
	}
}
