package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/splunk-genie/genie/ent/job"
	"github.com/splunk-genie/genie/ent/message"
	"github.com/splunk-genie/genie/pkg/events"
	"github.com/splunk-genie/genie/pkg/models"
)

// conversationID parses the :id route parameter.
func conversationID(c *echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid conversation id")
	}
	return id, nil
}

// listConversationsHandler handles GET /conversations.
func (s *Server) listConversationsHandler(c *echo.Context) error {
	convs, err := s.conversations.List(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]models.ConversationRead, 0, len(convs))
	for _, conv := range convs {
		out = append(out, conversationRead(conv))
	}
	return c.JSON(http.StatusOK, out)
}

// createConversationHandler handles POST /conversations.
func (s *Server) createConversationHandler(c *echo.Context) error {
	var req models.CreateConversationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	conv, err := s.conversations.Create(c.Request().Context(), req.Title)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, conversationRead(conv))
}

// deleteConversationHandler handles DELETE /conversations/:id. Messages
// are removed with the conversation; jobs keep their rows.
func (s *Server) deleteConversationHandler(c *echo.Context) error {
	id, err := conversationID(c)
	if err != nil {
		return err
	}

	if err := s.conversations.Delete(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// listMessagesHandler handles GET /conversations/:id/messages.
func (s *Server) listMessagesHandler(c *echo.Context) error {
	id, err := conversationID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := s.conversations.Get(ctx, id); err != nil {
		return mapServiceError(err)
	}
	msgs, err := s.messages.ListByConversation(ctx, id)
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]models.MessageRead, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, messageRead(msg))
	}
	return c.JSON(http.StatusOK, out)
}

// createMessageHandler handles POST /conversations/:id/messages.
//
// A user message always spawns an assistant_response job and the job id
// is returned alongside the persisted message; the job's message.new
// event announces the eventual reply. Assistant messages are a
// passthrough for externally produced replies and broadcast message.new
// immediately.
func (s *Server) createMessageHandler(c *echo.Context) error {
	id, err := conversationID(c)
	if err != nil {
		return err
	}

	var req models.CreateMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content is required")
	}
	role := req.Role
	if role == "" {
		role = string(message.RoleUser)
	}

	ctx := c.Request().Context()
	if _, err := s.conversations.Get(ctx, id); err != nil {
		return mapServiceError(err)
	}

	msg, err := s.messages.Create(ctx, id, role, req.Content, req.Blocks)
	if err != nil {
		return mapServiceError(err)
	}

	resp := &MessageCreateResponse{Message: messageRead(msg)}

	switch role {
	case string(message.RoleUser):
		j, err := s.jobs.Create(ctx, job.TypeAssistantResponse, map[string]interface{}{
			"user_message": req.Content,
			"user_id":      currentUser(c),
		}, &id)
		if err != nil {
			return mapServiceError(err)
		}
		resp.JobID = &j.ID
	case string(message.RoleAssistant):
		if s.publisher != nil {
			_ = s.publisher.PublishMessageNew(events.MessageNewPayload{
				ID:             msg.ID,
				ConversationID: msg.ConversationID,
				Role:           string(msg.Role),
				Content:        msg.Content,
				Blocks:         msg.Blocks,
				CreatedAt:      msg.CreatedAt,
			})
		}
	}

	return c.JSON(http.StatusCreated, resp)
}
