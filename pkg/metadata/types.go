package metadata

// DefaultVersionModifier is the semantic-version pattern applied when a
// repository descriptor omits versionModifier. It is stored as configuration
// for downstream consumers and never evaluated by this service.
const DefaultVersionModifier = `^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)$`

// RepositoryDescriptor describes one distribution channel from which a
// specific plugin build can be obtained. Descriptors are ordered within a
// PluginInfo record; the order expresses source preference.
type RepositoryDescriptor struct {
	Type             string `json:"type"`                       // Repository kind (e.g. "github", "spigot")
	ID               string `json:"id"`                         // Identifier within that repository type
	FileNameRegex    string `json:"fileNameRegex"`              // Pattern recognizing the correct release asset
	VersionModifier  string `json:"versionModifier"`            // Version-matching pattern, defaulted when omitted
	DownloadURL      string `json:"downloadUrl,omitempty"`      // Direct download URL
	FileNameTemplate string `json:"fileNameTemplate,omitempty"` // Template for the downloaded file name
}

// PluginInfo is the full metadata record for one plugin.
type PluginInfo struct {
	ID           string                 `json:"id"`
	Website      string                 `json:"website"`
	Source       string                 `json:"source"`
	License      string                 `json:"license"`
	Repositories []RepositoryDescriptor `json:"repositories"`
}

// ValidationError represents a single field-level issue found while checking
// a raw value against the metadata contract.
type ValidationError struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // error, warning
}

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// HasErrors reports whether any entry in the list is error-severity.
// Warning-severity entries do not fail validation.
func HasErrors(errs []ValidationError) bool {
	for _, e := range errs {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}
