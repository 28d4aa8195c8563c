package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftreg/craftreg/pkg/catalog"
	"github.com/craftreg/craftreg/pkg/metadata"
	"github.com/craftreg/craftreg/pkg/observability"
)

func newTestServer(ids ...string) *Server {
	logger := observability.NewLogger(observability.ErrorLevel, io.Discard)
	return NewServer(catalog.New(ids), metadata.NewValidator(nil), logger, nil)
}

func doRequest(server *Server, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

// TestListPlugins_CatalogOrder tests that the list endpoint returns the
// catalog identifiers in their declared order
func TestListPlugins_CatalogOrder(t *testing.T) {
	server := newTestServer("LuckPerms", "MinecraftPluginManager", "QuickShop-Hikari")

	w := doRequest(server, "GET", "/paper/list")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var ids []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ids))
	assert.Equal(t, []string{"LuckPerms", "MinecraftPluginManager", "QuickShop-Hikari"}, ids)
}

// TestListPlugins_EmptyCatalog tests that an empty catalog yields an empty array
func TestListPlugins_EmptyCatalog(t *testing.T) {
	server := newTestServer()

	w := doRequest(server, "GET", "/paper/list")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

// TestGetPlugin_Known tests that every catalog identifier round-trips
func TestGetPlugin_Known(t *testing.T) {
	ids := []string{"LuckPerms", "MinecraftPluginManager", "QuickShop-Hikari"}
	server := newTestServer(ids...)

	for _, id := range ids {
		w := doRequest(server, "GET", "/paper/plugins/"+id)

		assert.Equal(t, http.StatusOK, w.Code)

		var body string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, id, body)
	}
}

// TestGetPlugin_NotFound tests the 404 contract for unknown identifiers
func TestGetPlugin_NotFound(t *testing.T) {
	server := newTestServer("LuckPerms", "MinecraftPluginManager", "QuickShop-Hikari")

	w := doRequest(server, "GET", "/paper/plugins/DoesNotExist")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Plugin not found"}`, w.Body.String())
}

// TestGetPlugin_CaseSensitive tests that lookup matching is exact
func TestGetPlugin_CaseSensitive(t *testing.T) {
	server := newTestServer("LuckPerms")

	w := doRequest(server, "GET", "/paper/plugins/luckperms")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestGetPlugin_Idempotent tests that repeated identical requests return
// byte-identical bodies
func TestGetPlugin_Idempotent(t *testing.T) {
	server := newTestServer("LuckPerms", "Vault")

	first := doRequest(server, "GET", "/paper/plugins/LuckPerms")
	second := doRequest(server, "GET", "/paper/plugins/LuckPerms")
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())

	firstList := doRequest(server, "GET", "/paper/list")
	secondList := doRequest(server, "GET", "/paper/list")
	assert.Equal(t, firstList.Body.Bytes(), secondList.Body.Bytes())
}

// TestGetPlugin_DefaultOnlyOnAbsence tests that the documented default is
// applied when the path parameter is syntactically absent, and that the same
// literal passed explicitly is treated as an ordinary string
func TestGetPlugin_DefaultOnlyOnAbsence(t *testing.T) {
	server := newTestServer("LuckPerms", DefaultPluginID)

	// Handler invoked without route vars: the parameter is absent
	req := httptest.NewRequest("GET", "/paper/plugins/ignored", nil)
	w := httptest.NewRecorder()
	server.getPlugin(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, DefaultPluginID, body)

	// The same value supplied explicitly behaves identically
	explicit := doRequest(server, "GET", "/paper/plugins/"+DefaultPluginID)
	assert.Equal(t, http.StatusOK, explicit.Code)
	assert.Equal(t, w.Body.Bytes(), explicit.Body.Bytes())
}

// TestGetPlugin_DefaultNotInCatalog tests that the default substitutes the
// value, not the outcome: an absent parameter still 404s when the default is
// not a catalog entry
func TestGetPlugin_DefaultNotInCatalog(t *testing.T) {
	server := newTestServer("LuckPerms")

	req := httptest.NewRequest("GET", "/paper/plugins/ignored", nil)
	w := httptest.NewRecorder()
	server.getPlugin(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Plugin not found"}`, w.Body.String())
}

// TestTrailingSlash_List tests that trailing slashes redirect to the
// slash-free form
func TestTrailingSlash_List(t *testing.T) {
	server := newTestServer("LuckPerms")

	w := doRequest(server, "GET", "/paper/list/")

	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/paper/list", w.Header().Get("Location"))
}

// TestTrailingSlash_EmptyPluginID tests that an empty identifier never
// matches a catalog entry
func TestTrailingSlash_EmptyPluginID(t *testing.T) {
	server := newTestServer("LuckPerms", "")

	w := doRequest(server, "GET", "/paper/plugins/")

	assert.NotEqual(t, http.StatusOK, w.Code)
}

// TestGetPlugin_LookupMetrics tests hit/miss counters
func TestGetPlugin_LookupMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)
	logger := observability.NewLogger(observability.ErrorLevel, io.Discard)
	server := NewServer(catalog.New([]string{"LuckPerms"}), metadata.NewValidator(nil), logger, metrics)

	doRequest(server, "GET", "/paper/plugins/LuckPerms")
	doRequest(server, "GET", "/paper/plugins/DoesNotExist")
	doRequest(server, "GET", "/paper/plugins/AlsoMissing")

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.CatalogLookupsTotal.WithLabelValues(observability.LookupHit)))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.CatalogLookupsTotal.WithLabelValues(observability.LookupMiss)))
}

// TestMethodNotAllowed tests that write methods are rejected by the router
func TestMethodNotAllowed(t *testing.T) {
	server := newTestServer("LuckPerms")

	w := doRequest(server, "POST", "/paper/list")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
