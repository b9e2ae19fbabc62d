package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/splunk-genie/genie/pkg/analytics"
	"github.com/splunk-genie/genie/pkg/llm"
	"github.com/splunk-genie/genie/pkg/services"
)

// mapServiceError maps service and adapter errors to HTTP error
// responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrInvalidTransition) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if errors.Is(err, llm.ErrUnavailable) || errors.Is(err, analytics.ErrUnavailable) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	if errors.Is(err, llm.ErrTimeout) || errors.Is(err, analytics.ErrTimeout) {
		return echo.NewHTTPError(http.StatusGatewayTimeout, err.Error())
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
