package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/splunk-genie/genie/ent"
	"github.com/splunk-genie/genie/ent/job"
	"github.com/splunk-genie/genie/pkg/config"
	"github.com/splunk-genie/genie/pkg/events"
	"github.com/splunk-genie/genie/pkg/llm"
	"github.com/splunk-genie/genie/pkg/models"
	"github.com/splunk-genie/genie/pkg/services"
)

// StreamDriver relays a token stream into a placeholder assistant
// message. Tokens are published individually but persisted in batches;
// whatever terminates the stream, the stored content equals the full
// token accumulation at that point, exactly one stream.end is
// published, and the job reaches a terminal status.
type StreamDriver struct {
	cfg       config.StreamConfig
	messages  MessageStore
	jobs      JobStore
	publisher *events.Publisher
	logger    *slog.Logger
}

// NewStreamDriver creates a stream driver.
func NewStreamDriver(cfg config.StreamConfig, messages MessageStore, jobs JobStore, publisher *events.Publisher, logger *slog.Logger) *StreamDriver {
	if cfg.FlushTokens <= 0 {
		cfg.FlushTokens = 20
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 500 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StreamDriver{
		cfg:       cfg,
		messages:  messages,
		jobs:      jobs,
		publisher: publisher,
		logger:    logger.With("component", "stream"),
	}
}

// Run consumes the chunk stream until it closes. On return the job is
// terminal: completed when the stream finished, failed when it broke
// mid-way (the partial message is kept either way). A non-nil error
// means the terminal state itself could not be recorded.
func (d *StreamDriver) Run(ctx context.Context, j *ent.Job, conversationID int, userMessage string, queryBlocks []models.Block, chunks <-chan llm.Chunk) error {
	placeholder, err := d.messages.Create(ctx, conversationID, "assistant", "", nil)
	if err != nil {
		return fmt.Errorf("failed to create placeholder message: %w", err)
	}

	if err := d.publisher.PublishStreamStart(events.StreamStartPayload{
		ConversationID: conversationID,
		MessageID:      placeholder.ID,
	}); err != nil {
		d.logger.Warn("failed to publish stream start", "error", err)
	}

	var (
		acc         strings.Builder
		unflushed   int
		lastFlush   = time.Now()
		streamErr   error
		interrupted bool
	)

loop:
	for {
		select {
		case <-ctx.Done():
			streamErr = ctx.Err()
			interrupted = true
			break loop
		case chunk, ok := <-chunks:
			if !ok {
				// Closed without Done or Error; treat as done.
				break loop
			}
			switch c := chunk.(type) {
			case llm.TextChunk:
				acc.WriteString(c.Text)
				unflushed++
				if err := d.publisher.PublishStreamToken(events.StreamTokenPayload{
					Token:          c.Text,
					MessageID:      placeholder.ID,
					ConversationID: conversationID,
				}); err != nil {
					d.logger.Warn("failed to publish token", "error", err)
				}
				if unflushed >= d.cfg.FlushTokens || time.Since(lastFlush) >= d.cfg.FlushInterval {
					if err := d.messages.UpdateContent(ctx, placeholder.ID, acc.String()); err != nil {
						d.logger.Warn("failed to flush partial content", "message_id", placeholder.ID, "error", err)
					}
					unflushed = 0
					lastFlush = time.Now()
				}
			case llm.DoneChunk:
				break loop
			case llm.ErrorChunk:
				streamErr = c.Err
				interrupted = true
				break loop
			}
		}
	}

	content := acc.String()
	_, blocks := ExtractBlocks(content, userMessage)
	merged := mergeBlocks(queryBlocks, blocks)

	// Terminal persistence must not die with the caller's context.
	persistCtx, cancel := detachedContext(ctx)
	defer cancel()

	msg, err := d.messages.Finalize(persistCtx, placeholder.ID, content, merged)
	if err != nil {
		return fmt.Errorf("failed to finalize streamed message: %w", err)
	}

	var updated *ent.Job
	if interrupted {
		errText := fmt.Sprintf("stream interrupted: %v", streamErr)
		updated, err = d.jobs.Transition(persistCtx, j.ID, job.StatusFailed, services.TransitionFields{
			Error: &errText,
		})
	} else {
		updated, err = d.jobs.Transition(persistCtx, j.ID, job.StatusCompleted, services.TransitionFields{
			Result: map[string]interface{}{
				"message_id": msg.ID,
				"content":    content,
				"blocks":     merged,
			},
		})
	}
	if err != nil {
		return fmt.Errorf("failed to record stream outcome: %w", err)
	}

	if err := d.publisher.PublishStreamEnd(events.StreamEndPayload{
		MessageID: msg.ID,
		Blocks:    merged,
	}); err != nil {
		d.logger.Warn("failed to publish stream end", "error", err)
	}
	if !interrupted {
		if err := d.publisher.PublishMessageNew(events.MessageNewPayload{
			ID:             msg.ID,
			ConversationID: msg.ConversationID,
			Role:           string(msg.Role),
			Content:        msg.Content,
			Blocks:         msg.Blocks,
			CreatedAt:      msg.CreatedAt,
		}); err != nil {
			d.logger.Warn("failed to publish message event", "error", err)
		}
	}
	if err := d.publisher.PublishJobUpdate(events.JobUpdatePayload{
		JobID:    updated.ID,
		Status:   string(updated.Status),
		Progress: updated.Progress,
		Result:   updated.Result,
		Error:    updated.Error,
	}); err != nil {
		d.logger.Warn("failed to publish job event", "error", err)
	}

	if interrupted {
		d.logger.Warn("stream interrupted", "job_id", j.ID, "message_id", msg.ID, "error", streamErr)
	}
	return nil
}
