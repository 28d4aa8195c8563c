package api

import (
	"net/http"

	"github.com/craftreg/craftreg/pkg/httputil"
	"github.com/craftreg/craftreg/pkg/observability"
)

// DefaultPluginID is the documented default for the pluginId path parameter.
// It mirrors the on-disk naming convention of the catalog's source data. The
// default applies only when the parameter is syntactically absent, never when
// an empty or explicit value is supplied.
const DefaultPluginID = "MinecraftPluginManager.json"

// listPlugins handles GET /paper/list
func (s *Server) listPlugins(w http.ResponseWriter, r *http.Request) {
	httputil.WriteSuccess(w, s.catalog.List())
}

// getPlugin handles GET /paper/plugins/{pluginId}
func (s *Server) getPlugin(w http.ResponseWriter, r *http.Request) {
	pluginID, present := httputil.PathVar(r, "pluginId")
	if !present {
		pluginID = DefaultPluginID
	}

	// Any string satisfies the identifier schema, so this cannot fail for a
	// value coming off the router; the check keeps the documented 400
	// contract honest for other callers.
	if issues := s.validator.ValidateIdentifier("pluginId", pluginID); len(issues) > 0 {
		if s.metrics != nil {
			for _, issue := range issues {
				s.metrics.ValidationIssuesTotal.WithLabelValues(issue.Severity).Inc()
			}
		}
		httputil.WriteValidationErrors(w, issues)
		return
	}

	if !s.catalog.Has(pluginID) {
		if s.metrics != nil {
			s.metrics.RecordLookup(observability.LookupMiss)
		}
		s.logger.FromContext(r.Context()).WithField("plugin_id", pluginID).Debug("Plugin not in catalog")
		httputil.WriteNotFoundError(w, "Plugin not found")
		return
	}

	if s.metrics != nil {
		s.metrics.RecordLookup(observability.LookupHit)
	}
	httputil.WriteSuccess(w, pluginID)
}
