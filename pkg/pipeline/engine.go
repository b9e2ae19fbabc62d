// Package pipeline turns a queued assistant_response job into a
// persisted assistant message: intent classification, knowledge-base
// retrieval, query generation and execution, response generation
// (streamed or whole), block extraction, and the final emit.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/splunk-genie/genie/ent"
	"github.com/splunk-genie/genie/ent/job"
	"github.com/splunk-genie/genie/pkg/analytics"
	"github.com/splunk-genie/genie/pkg/config"
	"github.com/splunk-genie/genie/pkg/events"
	"github.com/splunk-genie/genie/pkg/llm"
	"github.com/splunk-genie/genie/pkg/models"
	"github.com/splunk-genie/genie/pkg/services"
)

// Default time window for generated query execution.
const (
	defaultEarliest = "-24h"
	defaultLatest   = "now"
)

// Deps bundles everything the engine calls out to.
type Deps struct {
	Config    config.PipelineConfig
	Stream    config.StreamConfig
	LLM       llm.Client
	Retrieval RetrievalAdapter
	Analytics AnalyticsAdapter
	Messages  MessageStore
	Jobs      JobStore
	Results   ResultStore
	Publisher *events.Publisher
	Logger    *slog.Logger
}

// Engine runs the response pipeline for one job at a time. It owns the
// job's progress checkpoints and, on every path that produces output,
// the terminal transition and event publication; the caller only
// handles errors the engine could not turn into a response.
type Engine struct {
	cfg       config.PipelineConfig
	stream    config.StreamConfig
	llm       llm.Client
	retrieval RetrievalAdapter
	analytics AnalyticsAdapter
	messages  MessageStore
	jobs      JobStore
	results   ResultStore
	publisher *events.Publisher
	logger    *slog.Logger
}

// NewEngine creates a pipeline engine.
func NewEngine(deps Deps) *Engine {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		cfg:       deps.Config,
		stream:    deps.Stream,
		llm:       deps.LLM,
		retrieval: deps.Retrieval,
		analytics: deps.Analytics,
		messages:  deps.Messages,
		jobs:      deps.Jobs,
		results:   deps.Results,
		publisher: deps.Publisher,
		logger:    logger.With("component", "pipeline"),
	}
}

// Run executes the pipeline for an assistant_response job. On success
// and on partial failure the job is already terminal when Run returns
// nil; a non-nil error means no response was produced and the caller
// must fail the job.
func (e *Engine) Run(ctx context.Context, j *ent.Job) error {
	userMessage, _ := j.Params["user_message"].(string)
	if j.ConversationID == nil {
		return fmt.Errorf("job %s has no conversation", j.ID)
	}
	conversationID := *j.ConversationID

	logger := e.logger.With("job_id", j.ID, "conversation_id", conversationID)

	// Forced mock mode skips every external stage.
	if e.cfg.MockResponses {
		content, blocks := MockResponse(userMessage)
		return e.emit(ctx, j, conversationID, content, blocks, nil)
	}

	intent := ClassifyIntent(userMessage)
	logger.Info("pipeline started", "intent", intent)
	e.checkpoint(ctx, j, 10)

	var contextBlob string
	if wantsContext(intent) && e.retrieval.Available() {
		contextBlob = e.retrieval.SplunkContext(ctx, userMessage)
	}
	e.checkpoint(ctx, j, 25)

	// Only an explicit analytics request gets a query generated and
	// executed; visualization requests take the chat path so charts
	// come from the response, not from a fabricated search.
	var queryBlocks []models.Block
	if intent == IntentAnalyticsQuery {
		query := e.generateQuery(ctx, userMessage, contextBlob)
		e.checkpoint(ctx, j, 40)
		queryBlocks = e.executeQuery(ctx, j, query)
		e.checkpoint(ctx, j, 60)
	}

	if e.cfg.Streaming && e.llm.Available() {
		e.checkpoint(ctx, j, 80)
		history, err := e.history(ctx, conversationID, userMessage)
		if err != nil {
			return err
		}
		chunks, err := e.llm.Stream(ctx, llm.BuildMessages(userMessage, history, e.cfg.MaxHistory))
		if err != nil {
			return fmt.Errorf("failed to open completion stream: %w", err)
		}
		driver := NewStreamDriver(e.stream, e.messages, e.jobs, e.publisher, e.logger)
		return driver.Run(ctx, j, conversationID, userMessage, queryBlocks, chunks)
	}

	content, blocks, err := e.generateResponse(ctx, conversationID, userMessage)
	if err != nil {
		if partial, ok := AsPartial(err); ok {
			// Output exists, so the exchange is preserved even though
			// the job fails.
			return e.emitPartial(ctx, j, conversationID, userMessage, partial, queryBlocks)
		}
		return err
	}
	e.checkpoint(ctx, j, 90)

	return e.emit(ctx, j, conversationID, content, blocks, queryBlocks)
}

// wantsContext reports whether knowledge base grounding helps the
// intent. Visualization requests get context but no generated query.
func wantsContext(intent Intent) bool {
	return intent == IntentAnalyticsQuery || intent == IntentVisualization
}

// generateQuery produces an SPL query for the message, via the LLM
// when it is reachable and the template rules otherwise. It never
// fails: any LLM problem degrades to the template.
func (e *Engine) generateQuery(ctx context.Context, userMessage, contextBlob string) string {
	if !e.llm.Available() {
		return TemplateQuery(userMessage)
	}

	prompt := llm.QueryGenerationPrompt(userMessage, contextBlob)
	raw, err := e.llm.Complete(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}})
	if err != nil {
		e.logger.Warn("query generation failed, using template", "error", err)
		return TemplateQuery(userMessage)
	}
	query := llm.CleanGeneratedQuery(raw)
	if len(query) < 5 {
		return TemplateQuery(userMessage)
	}
	return query
}

// executeQuery runs the generated query when the analytics backend is
// reachable and returns the blocks to attach to the response. When the
// backend is down the query ships as an auto-execute block so the
// client can run it later.
func (e *Engine) executeQuery(ctx context.Context, j *ent.Job, query string) []models.Block {
	if query == "" {
		return nil
	}
	if !e.analytics.Available() {
		return []models.Block{queryBlock(query, map[string]interface{}{"autoExecute": true})}
	}

	userID, _ := j.Params["user_id"].(string)
	if userID == "" {
		userID = "system"
	}
	earliest, latest := defaultEarliest, defaultLatest

	result, err := e.analytics.ExecuteQuery(ctx, query, earliest, latest)
	if err != nil {
		e.logger.Warn("query execution failed", "job_id", j.ID, "error", err)
		errText := err.Error()
		if _, upsertErr := e.results.Upsert(ctx, services.UpsertQueryResultInput{
			UserID:   userID,
			Query:    query,
			Earliest: &earliest,
			Latest:   &latest,
			Error:    &errText,
		}); upsertErr != nil {
			e.logger.Warn("failed to cache query error", "error", upsertErr)
		}
		return []models.Block{queryBlock(query, map[string]interface{}{"error": errText})}
	}

	formatted := analytics.FormatQueryResult(result, query, time.UTC)
	if _, err := e.results.Upsert(ctx, services.UpsertQueryResultInput{
		UserID:    userID,
		Query:     query,
		Earliest:  &earliest,
		Latest:    &latest,
		Formatted: &formatted,
	}); err != nil {
		e.logger.Warn("failed to cache query result", "error", err)
	}

	return []models.Block{queryBlock(query, map[string]interface{}{"result": formatted})}
}

func queryBlock(query string, extra map[string]interface{}) models.Block {
	data := map[string]interface{}{
		"query":       query,
		"language":    "spl",
		"title":       "Splunk Query",
		"autoExecute": false,
	}
	for k, v := range extra {
		data[k] = v
	}
	return models.Block{Type: models.BlockTypeQuery, Data: data}
}

// generateResponse produces the whole assistant reply. An unreachable
// LLM degrades to the deterministic mock generator instead of failing
// the job.
func (e *Engine) generateResponse(ctx context.Context, conversationID int, userMessage string) (string, []models.Block, error) {
	if !e.llm.Available() {
		content, blocks := MockResponse(userMessage)
		return content, blocks, nil
	}

	history, err := e.history(ctx, conversationID, userMessage)
	if err != nil {
		return "", nil, err
	}
	text, err := e.llm.Complete(ctx, llm.BuildMessages(userMessage, history, e.cfg.MaxHistory))
	if err != nil {
		if partial, ok := AsPartial(err); ok {
			return "", nil, partial
		}
		return "", nil, fmt.Errorf("failed to generate response: %w", err)
	}

	cleaned, blocks := ExtractBlocks(text, userMessage)
	return cleaned, blocks, nil
}

// history loads the prompt history, excluding the user message the
// pipeline is currently answering.
func (e *Engine) history(ctx context.Context, conversationID int, userMessage string) ([]llm.HistoryMessage, error) {
	limit := e.cfg.MaxHistory
	if limit <= 0 {
		limit = 10
	}
	msgs, err := e.messages.Recent(ctx, conversationID, limit+1)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	if n := len(msgs); n > 0 && string(msgs[n-1].Role) == "user" && msgs[n-1].Content == userMessage {
		msgs = msgs[:n-1]
	}
	history := make([]llm.HistoryMessage, 0, len(msgs))
	for _, m := range msgs {
		history = append(history, llm.HistoryMessage{
			Role:    string(m.Role),
			Content: m.Content,
			Blocks:  m.Blocks,
		})
	}
	return history, nil
}

// emit persists the assistant message, completes the job, and
// publishes the message and job events.
func (e *Engine) emit(ctx context.Context, j *ent.Job, conversationID int, content string, blocks, queryBlocks []models.Block) error {
	merged := mergeBlocks(queryBlocks, blocks)

	msg, err := e.messages.Create(ctx, conversationID, "assistant", content, merged)
	if err != nil {
		return fmt.Errorf("failed to persist assistant message: %w", err)
	}

	updated, err := e.jobs.Transition(ctx, j.ID, job.StatusCompleted, services.TransitionFields{
		Result: map[string]interface{}{
			"message_id": msg.ID,
			"content":    content,
			"blocks":     merged,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}

	e.publishMessage(msg)
	e.publishJob(updated)
	return nil
}

// emitPartial persists whatever output survived a mid-generation
// failure and fails the job. The exchange is kept so the user sees the
// partial answer next to the failed job.
func (e *Engine) emitPartial(ctx context.Context, j *ent.Job, conversationID int, userMessage string, partial *PartialError, queryBlocks []models.Block) error {
	content, blocks := partial.Content, partial.Blocks
	if len(blocks) == 0 && content != "" {
		content, blocks = ExtractBlocks(content, userMessage)
	}
	merged := mergeBlocks(queryBlocks, blocks)

	// The failure may stem from the caller's context; persistence gets
	// its own deadline so the partial output is not lost with it.
	persistCtx, cancel := detachedContext(ctx)
	defer cancel()

	msg, err := e.messages.Create(persistCtx, conversationID, "assistant", content, merged)
	if err != nil {
		return fmt.Errorf("failed to persist partial message: %w", err)
	}

	errText := partial.Err.Error()
	updated, err := e.jobs.Transition(persistCtx, j.ID, job.StatusFailed, services.TransitionFields{
		Error: &errText,
	})
	if err != nil {
		return fmt.Errorf("failed to fail job: %w", err)
	}

	e.publishMessage(msg)
	e.publishJob(updated)
	return nil
}

// checkpoint advances the job's progress. Best effort: a checkpoint
// that cannot be recorded never aborts the pipeline.
func (e *Engine) checkpoint(ctx context.Context, j *ent.Job, progress int) {
	updated, err := e.jobs.Transition(ctx, j.ID, job.StatusProgress, services.TransitionFields{
		Progress: &progress,
	})
	if err != nil {
		e.logger.Warn("failed to record progress", "job_id", j.ID, "progress", progress, "error", err)
		return
	}
	e.publishJob(updated)
}

func (e *Engine) publishMessage(msg *ent.Message) {
	if err := e.publisher.PublishMessageNew(events.MessageNewPayload{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		Role:           string(msg.Role),
		Content:        msg.Content,
		Blocks:         msg.Blocks,
		CreatedAt:      msg.CreatedAt,
	}); err != nil {
		e.logger.Warn("failed to publish message event", "message_id", msg.ID, "error", err)
	}
}

func (e *Engine) publishJob(j *ent.Job) {
	if err := e.publisher.PublishJobUpdate(events.JobUpdatePayload{
		JobID:    j.ID,
		Status:   string(j.Status),
		Progress: j.Progress,
		Result:   j.Result,
		Error:    j.Error,
	}); err != nil {
		e.logger.Warn("failed to publish job event", "job_id", j.ID, "error", err)
	}
}

// mergeBlocks prepends the execution blocks to the extracted ones,
// dropping extracted query blocks that duplicate an executed query.
func mergeBlocks(queryBlocks, extracted []models.Block) []models.Block {
	if len(queryBlocks) == 0 {
		return extracted
	}
	executed := make(map[string]bool, len(queryBlocks))
	for _, b := range queryBlocks {
		if q, ok := b.Data["query"].(string); ok {
			executed[q] = true
		}
	}
	merged := append([]models.Block{}, queryBlocks...)
	for _, b := range extracted {
		if b.Type == models.BlockTypeQuery {
			if q, ok := b.Data["query"].(string); ok && executed[q] {
				continue
			}
		}
		merged = append(merged, b)
	}
	return merged
}

// detachedContext returns a context that survives cancellation of the
// parent but keeps a bounded deadline for cleanup writes.
func detachedContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent.Err() == nil {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(context.Background(), 10*time.Second)
}
