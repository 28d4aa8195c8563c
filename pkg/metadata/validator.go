package metadata

import (
	"fmt"
	"regexp"

	"github.com/asaskevich/govalidator"
)

// Config defines validator settings. The locale selects the message catalog
// used for error text; it is passed in explicitly at construction so that
// validation stays pure and testable.
type Config struct {
	Locale string
}

// DefaultConfig returns default validator settings.
func DefaultConfig() *Config {
	return &Config{Locale: "en"}
}

// Validator checks raw JSON-like values against the plugin metadata contract.
type Validator struct {
	config   *Config
	messages map[string]string
}

// NewValidator creates a new validator. An unknown locale falls back to "en".
func NewValidator(config *Config) *Validator {
	if config == nil {
		config = DefaultConfig()
	}
	messages, ok := messageCatalogs[config.Locale]
	if !ok {
		messages = messageCatalogs["en"]
	}
	return &Validator{config: config, messages: messages}
}

// messageCatalogs holds per-locale error message templates, keyed by issue
// kind. Each template receives the field path as its first argument.
var messageCatalogs = map[string]map[string]string{
	"en": {
		"required": "%s is required",
		"object":   "%s must be an object",
		"string":   "%s must be a string",
		"array":    "%s must be an array",
		"url":      "%s must be a well-formed URL",
		"regex":    "%s is not a valid regular expression",
	},
}

// Validate checks an arbitrary JSON-like value (as produced by encoding/json
// into map[string]interface{}) against the PluginInfo contract. It returns
// one ValidationError per offending field; nested repository issues carry
// their index in the field path. On success the returned record is normalized
// with versionModifier defaulted where omitted, and the error list contains
// at most warning-severity entries.
func (v *Validator) Validate(raw interface{}) (*PluginInfo, []ValidationError) {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, []ValidationError{v.issue(SeverityError, "object", "$")}
	}

	var errs []ValidationError
	info := &PluginInfo{
		ID:      v.requireString(obj, "id", &errs),
		Website: v.requireURL(obj, "website", &errs),
		Source:  v.requireURL(obj, "source", &errs),
		License: v.requireString(obj, "license", &errs),
	}

	repos, present := obj["repositories"]
	switch {
	case !present:
		errs = append(errs, v.issue(SeverityError, "required", "repositories"))
	default:
		list, ok := repos.([]interface{})
		if !ok {
			errs = append(errs, v.issue(SeverityError, "array", "repositories"))
			break
		}
		info.Repositories = make([]RepositoryDescriptor, 0, len(list))
		for i, entry := range list {
			desc, repoErrs := v.validateRepository(fmt.Sprintf("repositories[%d]", i), entry)
			errs = append(errs, repoErrs...)
			if desc != nil {
				info.Repositories = append(info.Repositories, *desc)
			}
		}
	}

	if HasErrors(errs) {
		return nil, errs
	}
	return info, errs
}

// ValidateIdentifier checks a single identifier value against the string
// schema used for the pluginId path parameter. Any string satisfies the
// schema; only a non-string value can fail.
func (v *Validator) ValidateIdentifier(field string, value interface{}) []ValidationError {
	if _, ok := value.(string); !ok {
		return []ValidationError{v.issue(SeverityError, "string", field)}
	}
	return nil
}

// validateRepository checks one repositories[i] entry.
func (v *Validator) validateRepository(path string, raw interface{}) (*RepositoryDescriptor, []ValidationError) {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, []ValidationError{v.issue(SeverityError, "object", path)}
	}

	var errs []ValidationError
	desc := &RepositoryDescriptor{
		Type:          v.requireString(obj, path+".type", &errs, "type"),
		ID:            v.requireString(obj, path+".id", &errs, "id"),
		FileNameRegex: v.requireString(obj, path+".fileNameRegex", &errs, "fileNameRegex"),
	}

	desc.VersionModifier = DefaultVersionModifier
	if modifier, present := obj["versionModifier"]; present {
		if s, ok := modifier.(string); ok {
			desc.VersionModifier = s
		} else {
			errs = append(errs, v.issue(SeverityError, "string", path+".versionModifier"))
		}
	}

	desc.DownloadURL = v.optionalString(obj, path+".downloadUrl", &errs, "downloadUrl")
	desc.FileNameTemplate = v.optionalString(obj, path+".fileNameTemplate", &errs, "fileNameTemplate")

	// fileNameRegex must be usable by downstream consumers; a pattern that
	// does not compile is flagged but does not fail validation.
	if desc.FileNameRegex != "" {
		if _, err := regexp.Compile(desc.FileNameRegex); err != nil {
			errs = append(errs, v.issue(SeverityWarning, "regex", path+".fileNameRegex"))
		}
	}

	if HasErrors(errs) {
		return nil, errs
	}
	return desc, errs
}

// requireString checks a required string field. The optional key argument
// overrides the object key when the field path is a nested one.
func (v *Validator) requireString(obj map[string]interface{}, path string, errs *[]ValidationError, key ...string) string {
	k := path
	if len(key) > 0 {
		k = key[0]
	}
	value, present := obj[k]
	if !present {
		*errs = append(*errs, v.issue(SeverityError, "required", path))
		return ""
	}
	s, ok := value.(string)
	if !ok {
		*errs = append(*errs, v.issue(SeverityError, "string", path))
		return ""
	}
	return s
}

// requireURL checks a required string field that must be a well-formed URL.
func (v *Validator) requireURL(obj map[string]interface{}, path string, errs *[]ValidationError) string {
	before := len(*errs)
	s := v.requireString(obj, path, errs)
	if len(*errs) > before {
		return s
	}
	if !govalidator.IsURL(s) {
		*errs = append(*errs, v.issue(SeverityError, "url", path))
	}
	return s
}

// optionalString checks an optional string field.
func (v *Validator) optionalString(obj map[string]interface{}, path string, errs *[]ValidationError, key string) string {
	value, present := obj[key]
	if !present {
		return ""
	}
	s, ok := value.(string)
	if !ok {
		*errs = append(*errs, v.issue(SeverityError, "string", path))
		return ""
	}
	return s
}

// issue builds a ValidationError from the active message catalog.
func (v *Validator) issue(severity, kind, field string) ValidationError {
	return ValidationError{
		Field:    field,
		Message:  fmt.Sprintf(v.messages[kind], field),
		Severity: severity,
	}
}
