package models

import "time"

// CreateConversationRequest contains fields for creating a conversation.
type CreateConversationRequest struct {
	Title *string `json:"title,omitempty"`
}

// ConversationRead is the API representation of a conversation.
type ConversationRead struct {
	ID        int       `json:"id"`
	Title     *string   `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateMessageRequest contains fields for appending a message to a
// conversation. Role defaults to "user" when empty.
type CreateMessageRequest struct {
	Content string  `json:"content"`
	Role    string  `json:"role,omitempty"`
	Blocks  []Block `json:"blocks,omitempty"`
}

// MessageRead is the API representation of a message.
type MessageRead struct {
	ID             int       `json:"id"`
	ConversationID int       `json:"conversation_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	Blocks         []Block   `json:"blocks"`
	CreatedAt      time.Time `json:"created_at"`
}
