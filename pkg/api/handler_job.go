package api

import (
	"fmt"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/splunk-genie/genie/ent/job"
	"github.com/splunk-genie/genie/pkg/models"
)

// createJobHandler handles POST /jobs. The type set is closed; unknown
// types are rejected before touching the database.
func (s *Server) createJobHandler(c *echo.Context) error {
	var req models.CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !models.IsKnownJobType(req.Type) {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("unknown job type %q", req.Type))
	}

	ctx := c.Request().Context()
	if req.ConversationID != nil {
		if _, err := s.conversations.Get(ctx, *req.ConversationID); err != nil {
			return mapServiceError(err)
		}
	}

	params := req.Params
	if params == nil {
		params = map[string]interface{}{}
	}
	if _, ok := params["user_id"]; !ok {
		params["user_id"] = currentUser(c)
	}

	j, err := s.jobs.Create(ctx, job.Type(req.Type), params, req.ConversationID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, jobRead(j))
}

// getJobHandler handles GET /jobs/:id.
func (s *Server) getJobHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "job id is required")
	}

	j, err := s.jobs.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, jobRead(j))
}
