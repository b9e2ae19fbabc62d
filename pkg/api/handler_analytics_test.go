package api

import (
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splunk-genie/genie/pkg/analytics"
	"github.com/splunk-genie/genie/pkg/config"
)

func TestExecuteQueryHandler(t *testing.T) {
	// An unconfigured analytics client fails fast with ErrUnavailable,
	// so these paths never need a backend or a database.
	s := &Server{analytics: analytics.NewClient(config.AnalyticsConfig{})}

	t.Run("empty query returns 400", func(t *testing.T) {
		c, _ := postJSON(t, "/analytics/execute", `{"query":""}`)

		err := s.executeQueryHandler(c)
		require.IsType(t, &echo.HTTPError{}, err)
		he := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusBadRequest, he.Code)
		assert.Contains(t, he.Error(), "query is required")
	})

	t.Run("unsupported language returns 400", func(t *testing.T) {
		c, _ := postJSON(t, "/analytics/execute", `{"query":"index=main","language":"sql"}`)

		err := s.executeQueryHandler(c)
		require.IsType(t, &echo.HTTPError{}, err)
		he := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusBadRequest, he.Code)
		assert.Contains(t, he.Error(), "unsupported query language")
	})

	t.Run("unavailable backend returns 503", func(t *testing.T) {
		c, _ := postJSON(t, "/analytics/execute", `{"query":"index=main | stats count","language":"spl"}`)

		err := s.executeQueryHandler(c)
		require.IsType(t, &echo.HTTPError{}, err)
		assert.Equal(t, http.StatusServiceUnavailable, err.(*echo.HTTPError).Code)
	})

	t.Run("unknown timezone falls back to UTC", func(t *testing.T) {
		// The timezone is cosmetic; a bogus zone must not fail the
		// request before execution.
		c, _ := postJSON(t, "/analytics/execute", `{"query":"index=main","timezone":"Mars/Olympus_Mons"}`)

		err := s.executeQueryHandler(c)
		require.IsType(t, &echo.HTTPError{}, err)
		assert.Equal(t, http.StatusServiceUnavailable, err.(*echo.HTTPError).Code)
	})
}
