package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splunk-genie/genie/pkg/services"
)

func TestSystemInfoHandler(t *testing.T) {
	getInfo := func(t *testing.T, s *Server) SystemInfoResponse {
		t.Helper()
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/system/info", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, s.systemInfoHandler(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp SystemInfoResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	t.Run("all adapters unavailable when unconfigured", func(t *testing.T) {
		resp := getInfo(t, &Server{})

		require.Len(t, resp.Adapters, 3)
		for _, a := range resp.Adapters {
			assert.False(t, a.Available, "adapter %s should be unavailable", a.Name)
		}
		assert.NotEmpty(t, resp.Version)
		assert.Empty(t, resp.Warnings)
	})

	t.Run("includes active warnings", func(t *testing.T) {
		warnings := services.NewSystemWarningsService()
		warnings.AddWarning(services.WarningCategoryAdapter,
			"LLM adapter is not configured", "set OPENAI_API_KEY", "llm")

		resp := getInfo(t, &Server{warnings: warnings})

		require.Len(t, resp.Warnings, 1)
		assert.Equal(t, "llm", resp.Warnings[0].Adapter)
		assert.Contains(t, resp.Warnings[0].Message, "not configured")
	})
}
