package api

import (
	"fmt"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/splunk-genie/genie/pkg/analytics"
	"github.com/splunk-genie/genie/pkg/llm"
	"github.com/splunk-genie/genie/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("role", "must be user or assistant"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "must be user or assistant",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "invalid transition maps to 409",
			err:        fmt.Errorf("%w: job is already completed", services.ErrInvalidTransition),
			expectCode: http.StatusConflict,
			expectMsg:  "already completed",
		},
		{
			name:       "llm unavailable maps to 503",
			err:        fmt.Errorf("%w: no api key", llm.ErrUnavailable),
			expectCode: http.StatusServiceUnavailable,
			expectMsg:  "llm service unavailable",
		},
		{
			name:       "analytics unavailable maps to 503",
			err:        fmt.Errorf("%w: set SPLUNK_HOST", analytics.ErrUnavailable),
			expectCode: http.StatusServiceUnavailable,
			expectMsg:  "splunk service unavailable",
		},
		{
			name:       "analytics timeout maps to 504",
			err:        fmt.Errorf("%w: job sid123 did not complete", analytics.ErrTimeout),
			expectCode: http.StatusGatewayTimeout,
			expectMsg:  "timed out",
		},
		{
			name:       "llm timeout maps to 504",
			err:        fmt.Errorf("%w: deadline exceeded", llm.ErrTimeout),
			expectCode: http.StatusGatewayTimeout,
			expectMsg:  "timed out",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.IsType(t, &echo.HTTPError{}, he)
			assert.Equal(t, tt.expectCode, he.Code)
			assert.Contains(t, he.Error(), tt.expectMsg)
		})
	}
}
