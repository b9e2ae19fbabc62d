package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splunk-genie/genie/pkg/config"
	"github.com/splunk-genie/genie/pkg/metrics"
)

// newTestServer wires a router-only server: no database, no adapters.
// Good enough for routing, auth and health wiring assertions.
func newTestServer(t *testing.T, authEnabled bool) *Server {
	t.Helper()
	return NewServer(Deps{
		Config: &config.Config{
			Auth: config.AuthConfig{
				Enabled:     authEnabled,
				DefaultUser: "dev",
				DevPassword: "hunter2",
				SecretKey:   "test-secret",
				TokenExpiry: time.Hour,
			},
			Server: config.ServerConfig{
				CORSOrigins: []string{"http://localhost:5173"},
			},
		},
		Exporter: metrics.NewExporter(),
	})
}

func TestServerRouting(t *testing.T) {
	t.Run("health responds without auth", func(t *testing.T) {
		s := newTestServer(t, true)

		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, healthStatusHealthy, resp.Status)
	})

	t.Run("metrics responds without auth", func(t *testing.T) {
		s := newTestServer(t, true)

		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "go_goroutines")
	})

	t.Run("protected routes reject missing token when auth is enabled", func(t *testing.T) {
		s := newTestServer(t, true)

		for _, target := range []string{"/auth/me", "/conversations", "/jobs/abc", "/api/v1/system/info"} {
			rec := httptest.NewRecorder()
			s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code, "expected 401 for %s", target)
		}
	})

	t.Run("login then access protected route", func(t *testing.T) {
		s := newTestServer(t, true)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"username":"dev","password":"hunter2"}`))
		req.Header.Set("Content-Type", "application/json")
		s.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var token TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))

		rec = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
		s.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var me MeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
		assert.Equal(t, "dev", me.Username)
	})

	t.Run("disabled auth runs requests as the default user", func(t *testing.T) {
		s := newTestServer(t, false)

		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var me MeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
		assert.Equal(t, "dev", me.Username)
	})

	t.Run("system info requires auth but not adapters", func(t *testing.T) {
		s := newTestServer(t, false)

		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/system/info", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp SystemInfoResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Adapters, 3)
	})
}
