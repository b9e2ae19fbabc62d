package services

import (
	"context"
	"fmt"
	"time"

	"github.com/splunk-genie/genie/ent"
	"github.com/splunk-genie/genie/ent/message"
	"github.com/splunk-genie/genie/pkg/models"
)

// MessageService manages conversation messages. Streaming assistant
// messages are created empty, updated incrementally while tokens
// arrive, and frozen by Finalize when the owning job terminates.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService.
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// Create appends a message to a conversation and refreshes the
// conversation's updated_at.
func (s *MessageService) Create(ctx context.Context, conversationID int, role, content string, blocks []models.Block) (*ent.Message, error) {
	if role != string(message.RoleUser) && role != string(message.RoleAssistant) {
		return nil, NewValidationError("role", "must be user or assistant")
	}

	create := s.client.Message.Create().
		SetConversationID(conversationID).
		SetRole(message.Role(role)).
		SetContent(content)
	if blocks = models.SanitizeBlocks(blocks); blocks != nil {
		create.SetBlocks(blocks)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	// Appending bumps the conversation's recency. Best effort: the
	// message itself is already committed.
	if _, err := s.client.Conversation.UpdateOneID(conversationID).
		SetUpdatedAt(time.Now()).
		Save(ctx); err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to touch conversation: %w", err)
	}

	return msg, nil
}

// Get returns one message by id.
func (s *MessageService) Get(ctx context.Context, id int) (*ent.Message, error) {
	msg, err := s.client.Message.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return msg, nil
}

// ListByConversation returns the messages of a conversation in append
// order.
func (s *MessageService) ListByConversation(ctx context.Context, conversationID int) ([]*ent.Message, error) {
	msgs, err := s.client.Message.Query().
		Where(message.ConversationIDEQ(conversationID)).
		Order(ent.Asc(message.FieldCreatedAt), ent.Asc(message.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}

// Recent returns the last limit messages of a conversation in append
// order, for prompt history.
func (s *MessageService) Recent(ctx context.Context, conversationID, limit int) ([]*ent.Message, error) {
	msgs, err := s.client.Message.Query().
		Where(message.ConversationIDEQ(conversationID)).
		Order(ent.Desc(message.FieldCreatedAt), ent.Desc(message.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent messages: %w", err)
	}
	// Reverse into chronological order.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// UpdateContent replaces the content of an in-flight streaming
// message. Must not be called after Finalize.
func (s *MessageService) UpdateContent(ctx context.Context, id int, content string) error {
	err := s.client.Message.UpdateOneID(id).
		SetContent(content).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update message content: %w", err)
	}
	return nil
}

// Finalize freezes a message with its final content and blocks.
func (s *MessageService) Finalize(ctx context.Context, id int, content string, blocks []models.Block) (*ent.Message, error) {
	update := s.client.Message.UpdateOneID(id).
		SetContent(content)
	if blocks = models.SanitizeBlocks(blocks); blocks != nil {
		update.SetBlocks(blocks)
	}

	msg, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to finalize message: %w", err)
	}
	return msg, nil
}
