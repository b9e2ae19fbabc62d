package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/splunk-genie/genie/pkg/services"
	"github.com/splunk-genie/genie/pkg/version"
)

// systemInfoHandler handles GET /api/v1/system/info: version, adapter
// availability, and active system warnings. The frontend uses this to
// surface degraded-mode banners.
func (s *Server) systemInfoHandler(c *echo.Context) error {
	adapters := []AdapterStatus{
		{Name: "llm", Available: s.llmClient != nil && s.llmClient.Available()},
		{Name: "retrieval", Available: s.retrieval != nil && s.retrieval.Available()},
		{Name: "analytics", Available: s.analytics != nil && s.analytics.Available()},
	}

	warnings := []*services.SystemWarning{}
	if s.warnings != nil {
		warnings = s.warnings.GetWarnings()
	}

	return c.JSON(http.StatusOK, &SystemInfoResponse{
		Version:  version.Full(),
		Adapters: adapters,
		Warnings: warnings,
	})
}
