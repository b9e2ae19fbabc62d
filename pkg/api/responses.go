package api

import (
	"github.com/splunk-genie/genie/ent"
	"github.com/splunk-genie/genie/pkg/models"
	"github.com/splunk-genie/genie/pkg/services"
)

// TokenResponse is returned by POST /auth/login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MeResponse is returned by GET /auth/me.
type MeResponse struct {
	Username string `json:"username"`
}

// MessageCreateResponse is returned by POST /conversations/:id/messages.
// JobID is set only when the message spawned an assistant response job.
type MessageCreateResponse struct {
	Message models.MessageRead `json:"message"`
	JobID   *string            `json:"job_id,omitempty"`
}

// HealthCheck is one component entry of the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// AdapterStatus reports whether one external adapter is configured.
type AdapterStatus struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// SystemInfoResponse is returned by GET /api/v1/system/info.
type SystemInfoResponse struct {
	Version  string                    `json:"version"`
	Adapters []AdapterStatus           `json:"adapters"`
	Warnings []*services.SystemWarning `json:"warnings"`
}

func conversationRead(conv *ent.Conversation) models.ConversationRead {
	return models.ConversationRead{
		ID:        conv.ID,
		Title:     conv.Title,
		CreatedAt: conv.CreatedAt,
		UpdatedAt: conv.UpdatedAt,
	}
}

func messageRead(msg *ent.Message) models.MessageRead {
	blocks := msg.Blocks
	if blocks == nil {
		blocks = []models.Block{}
	}
	return models.MessageRead{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		Role:           string(msg.Role),
		Content:        msg.Content,
		Blocks:         blocks,
		CreatedAt:      msg.CreatedAt,
	}
}

func jobRead(j *ent.Job) models.JobRead {
	return models.JobRead{
		JobID:          j.ID,
		Type:           string(j.Type),
		Status:         string(j.Status),
		Progress:       j.Progress,
		ConversationID: j.ConversationID,
		Params:         j.Params,
		Result:         j.Result,
		Error:          j.Error,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

// queryResultRead combines the cached row with the formatted result of
// this execution. formatted is zero-valued for failed executions.
func queryResultRead(row *ent.QueryResult, formatted models.FormattedResult) models.QueryResultRead {
	return models.QueryResultRead{
		ID:              row.ID,
		UserID:          row.UserID,
		Query:           row.Query,
		QueryHash:       row.QueryHash,
		Earliest:        row.Earliest,
		Latest:          row.Latest,
		Error:           row.Error,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		FormattedResult: formatted,
	}
}
