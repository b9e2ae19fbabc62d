package models

import "time"

// Job types accepted by POST /jobs. The set is closed: unknown types
// are rejected at creation.
const (
	JobTypeAssistantResponse = "assistant_response"
	JobTypeChartBuild        = "chart_build"
)

// IsKnownJobType reports whether t is a dispatchable job type.
func IsKnownJobType(t string) bool {
	return t == JobTypeAssistantResponse || t == JobTypeChartBuild
}

// CreateJobRequest contains fields for creating a job via the API.
type CreateJobRequest struct {
	Type           string                 `json:"type"`
	Params         map[string]interface{} `json:"params,omitempty"`
	ConversationID *int                   `json:"conversation_id,omitempty"`
}

// JobRead is the API representation of a job.
type JobRead struct {
	JobID          string                 `json:"job_id"`
	Type           string                 `json:"type"`
	Status         string                 `json:"status"`
	Progress       int                    `json:"progress"`
	ConversationID *int                   `json:"conversation_id"`
	Params         map[string]interface{} `json:"params,omitempty"`
	Result         map[string]interface{} `json:"result,omitempty"`
	Error          *string                `json:"error,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}
