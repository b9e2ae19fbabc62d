package api

import (
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/splunk-genie/genie/pkg/analytics"
	"github.com/splunk-genie/genie/pkg/services"
)

// executeQueryHandler handles POST /analytics/execute: runs an SPL
// query against the analytics backend, classifies the result for
// visualization, and caches the outcome under the user's fingerprint.
// Failed executions are cached too, so the client sees the same error
// on refresh without re-running the search.
func (s *Server) executeQueryHandler(c *echo.Context) error {
	var req ExecuteQueryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}
	if req.Language != "" && req.Language != "spl" {
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported query language: "+req.Language)
	}

	loc := time.UTC
	if req.Timezone != "" {
		if parsed, err := time.LoadLocation(req.Timezone); err == nil {
			loc = parsed
		}
	}

	var earliest, latest *string
	if req.Earliest != "" {
		earliest = &req.Earliest
	}
	if req.Latest != "" {
		latest = &req.Latest
	}

	ctx := c.Request().Context()
	userID := currentUser(c)

	result, execErr := s.analytics.ExecuteQuery(ctx, req.Query, req.Earliest, req.Latest)
	if execErr != nil {
		// Best effort: the cached error is cosmetic, the HTTP status is
		// what the client acts on.
		if s.results != nil {
			errText := execErr.Error()
			if _, err := s.results.Upsert(ctx, services.UpsertQueryResultInput{
				UserID:   userID,
				Query:    req.Query,
				Earliest: earliest,
				Latest:   latest,
				Error:    &errText,
			}); err != nil {
				slog.Warn("Failed to cache query error", "error", err)
			}
		}
		return mapServiceError(execErr)
	}

	formatted := analytics.FormatQueryResult(result, req.Query, loc)
	row, err := s.results.Upsert(ctx, services.UpsertQueryResultInput{
		UserID:    userID,
		Query:     req.Query,
		Earliest:  earliest,
		Latest:    latest,
		Formatted: &formatted,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, queryResultRead(row, formatted))
}
