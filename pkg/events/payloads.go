package events

import (
	"time"

	"github.com/splunk-genie/genie/pkg/models"
)

// MessageNewPayload is the data of a message.new event: the complete
// final message record.
type MessageNewPayload struct {
	ID             int            `json:"id"`
	ConversationID int            `json:"conversation_id"`
	Role           string         `json:"role"`
	Content        string         `json:"content"`
	Blocks         []models.Block `json:"blocks"`
	CreatedAt      time.Time      `json:"created_at"`
}

// StreamStartPayload is the data of a stream.start event.
type StreamStartPayload struct {
	ConversationID int `json:"conversation_id"`
	MessageID      int `json:"message_id"`
}

// StreamTokenPayload is the data of a stream.token event.
type StreamTokenPayload struct {
	Token          string `json:"token"`
	MessageID      int    `json:"message_id"`
	ConversationID int    `json:"conversation_id"`
}

// StreamEndPayload is the data of a stream.end event. Blocks carries
// whatever could be extracted from the (possibly partial) content.
type StreamEndPayload struct {
	MessageID int            `json:"message_id"`
	Blocks    []models.Block `json:"blocks"`
}

// JobUpdatePayload is the data of a job.update event.
type JobUpdatePayload struct {
	JobID    string                 `json:"job_id"`
	Status   string                 `json:"status"`
	Progress int                    `json:"progress"`
	Result   map[string]interface{} `json:"result,omitempty"`
	Error    *string                `json:"error,omitempty"`
}
