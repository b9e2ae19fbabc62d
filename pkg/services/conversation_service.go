package services

import (
	"context"
	"fmt"

	"github.com/splunk-genie/genie/ent"
	"github.com/splunk-genie/genie/ent/conversation"
)

// ConversationService manages chat conversations. Deleting a
// conversation cascades to its messages; jobs keep their rows and lose
// only the conversation link.
type ConversationService struct {
	client *ent.Client
}

// NewConversationService creates a new ConversationService.
func NewConversationService(client *ent.Client) *ConversationService {
	return &ConversationService{client: client}
}

// Create creates a conversation. title may be nil.
func (s *ConversationService) Create(ctx context.Context, title *string) (*ent.Conversation, error) {
	conv, err := s.client.Conversation.Create().
		SetNillableTitle(title).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conv, nil
}

// Get returns one conversation by id.
func (s *ConversationService) Get(ctx context.Context, id int) (*ent.Conversation, error) {
	conv, err := s.client.Conversation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return conv, nil
}

// List returns all conversations, most recently active first.
func (s *ConversationService) List(ctx context.Context) ([]*ent.Conversation, error) {
	convs, err := s.client.Conversation.Query().
		Order(ent.Desc(conversation.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return convs, nil
}

// Delete removes a conversation. Messages go with it (ON DELETE
// CASCADE); jobs survive with conversation_id set to NULL.
func (s *ConversationService) Delete(ctx context.Context, id int) error {
	err := s.client.Conversation.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	return nil
}
