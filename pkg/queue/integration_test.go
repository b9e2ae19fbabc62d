package queue

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splunk-genie/genie/ent"
	"github.com/splunk-genie/genie/ent/job"
	"github.com/splunk-genie/genie/pkg/analytics"
	"github.com/splunk-genie/genie/pkg/config"
	"github.com/splunk-genie/genie/pkg/events"
	"github.com/splunk-genie/genie/pkg/llm"
	"github.com/splunk-genie/genie/pkg/models"
	"github.com/splunk-genie/genie/pkg/pipeline"
	"github.com/splunk-genie/genie/pkg/services"
	"github.com/splunk-genie/genie/test/util"
)

// scriptedLLM streams a fixed token sequence, optionally ending with
// an error instead of completion.
type scriptedLLM struct {
	available bool
	tokens    []string
	streamErr error
}

func (s *scriptedLLM) Available() bool { return s.available }

func (s *scriptedLLM) Complete(context.Context, []llm.Message) (string, error) {
	if !s.available {
		return "", llm.ErrUnavailable
	}
	return strings.Join(s.tokens, ""), nil
}

func (s *scriptedLLM) Stream(context.Context, []llm.Message) (<-chan llm.Chunk, error) {
	ch := make(chan llm.Chunk, len(s.tokens)+1)
	for _, tok := range s.tokens {
		ch <- llm.TextChunk{Text: tok}
	}
	if s.streamErr != nil {
		ch <- llm.ErrorChunk{Err: s.streamErr}
	} else {
		ch <- llm.DoneChunk{}
	}
	close(ch)
	return ch, nil
}

type offlineRetrieval struct{}

func (offlineRetrieval) Available() bool                              { return false }
func (offlineRetrieval) SplunkContext(context.Context, string) string { return "" }

type offlineAnalytics struct{}

func (offlineAnalytics) Available() bool { return false }
func (offlineAnalytics) ExecuteQuery(context.Context, string, string, string) (*analytics.QueryResult, error) {
	return nil, analytics.ErrUnavailable
}

// eventLog records every decoded envelope across both topics.
type eventLog struct {
	mu        sync.Mutex
	envelopes []loggedEvent
}

type loggedEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func newEventLog(bus *events.Bus) *eventLog {
	l := &eventLog{}
	record := func(evt events.Event) error {
		var env loggedEvent
		if err := json.Unmarshal(evt.Payload, &env); err != nil {
			return err
		}
		l.mu.Lock()
		l.envelopes = append(l.envelopes, env)
		l.mu.Unlock()
		return nil
	}
	bus.Subscribe(events.TopicConversation, record)
	bus.Subscribe(events.TopicJobs, record)
	return l
}

func (l *eventLog) snapshot() []loggedEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]loggedEvent(nil), l.envelopes...)
}

func (l *eventLog) count(eventType string) int {
	n := 0
	for _, e := range l.snapshot() {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

func (l *eventLog) tokens() []string {
	var out []string
	for _, e := range l.snapshot() {
		if e.Type != events.EventTypeStreamToken {
			continue
		}
		var payload events.StreamTokenPayload
		if json.Unmarshal(e.Data, &payload) == nil {
			out = append(out, payload.Token)
		}
	}
	return out
}

// stack wires the full dispatch path against a real database.
type stack struct {
	conversations *services.ConversationService
	messages      *services.MessageService
	jobs          *services.JobService
	pool          *WorkerPool
	bus           *events.Bus
	log           *eventLog
}

func newStack(t *testing.T, model llm.Client, pipelineCfg config.PipelineConfig) *stack {
	t.Helper()
	entClient, _ := util.SetupTestDatabase(t)

	bus := events.NewBus(1024)
	t.Cleanup(bus.Close)
	log := newEventLog(bus)
	publisher := events.NewPublisher(bus)

	conversations := services.NewConversationService(entClient)
	messages := services.NewMessageService(entClient)
	jobs := services.NewJobService(entClient)
	results := services.NewQueryResultService(entClient)

	engine := pipeline.NewEngine(pipeline.Deps{
		Config:    pipelineCfg,
		Stream:    config.StreamConfig{FlushTokens: 2, FlushInterval: 20 * time.Millisecond},
		LLM:       model,
		Retrieval: offlineRetrieval{},
		Analytics: offlineAnalytics{},
		Messages:  messages,
		Jobs:      jobs,
		Results:   results,
		Publisher: publisher,
	})

	queueCfg := config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentJobs:       4,
		PollInterval:            20 * time.Millisecond,
		PollIntervalJitter:      5 * time.Millisecond,
		JobTimeout:              30 * time.Second,
		GracefulShutdownTimeout: 2 * time.Second,
	}
	executor := NewExecutor(queueCfg, jobs, publisher, engine, NewChartBuilder(jobs, publisher, nil), nil)
	pool := NewWorkerPool(entClient, queueCfg, executor)
	require.NoError(t, pool.Start(context.Background()))
	t.Cleanup(pool.Stop)

	return &stack{
		conversations: conversations,
		messages:      messages,
		jobs:          jobs,
		pool:          pool,
		bus:           bus,
		log:           log,
	}
}

// submitUserMessage mirrors the request surface: persist the user
// message, then enqueue the response job.
func (s *stack) submitUserMessage(t *testing.T, text string) (conversationID int, jobID string) {
	t.Helper()
	ctx := context.Background()
	conv, err := s.conversations.Create(ctx, nil)
	require.NoError(t, err)
	_, err = s.messages.Create(ctx, conv.ID, "user", text, nil)
	require.NoError(t, err)
	j, err := s.jobs.Create(ctx, job.TypeAssistantResponse,
		map[string]interface{}{"user_message": text, "user_id": "tester"}, &conv.ID)
	require.NoError(t, err)
	return conv.ID, j.ID
}

func (s *stack) waitTerminal(t *testing.T, jobID string) *ent.Job {
	t.Helper()
	var final *ent.Job
	require.Eventually(t, func() bool {
		j, err := s.jobs.Get(context.Background(), jobID)
		if err != nil {
			return false
		}
		if j.Status == job.StatusCompleted || j.Status == job.StatusFailed {
			final = j
			return true
		}
		return false
	}, 20*time.Second, 25*time.Millisecond)

	// Let the final events drain.
	require.Eventually(t, func() bool {
		return s.bus.Depth(events.TopicConversation) == 0 && s.bus.Depth(events.TopicJobs) == 0
	}, 5*time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	return final
}

func TestDispatchStreamedResponse(t *testing.T) {
	tokens := []string{"The ", "quick ", "answer ", "is ", "42."}
	s := newStack(t, &scriptedLLM{available: true, tokens: tokens},
		config.PipelineConfig{Streaming: true, MaxHistory: 10})

	conversationID, jobID := s.submitUserMessage(t, "what is the answer")
	final := s.waitTerminal(t, jobID)

	assert.Equal(t, job.StatusCompleted, final.Status)
	assert.Equal(t, 100, final.Progress)
	require.NotNil(t, final.Result)

	// The streamed tokens concatenate to the stored message content.
	msgs, err := s.messages.ListByConversation(context.Background(), conversationID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "assistant", string(msgs[1].Role))
	assert.Equal(t, strings.Join(tokens, ""), msgs[1].Content)

	// Token events arrive in order; each lifecycle event fires once.
	assert.Equal(t, tokens, s.log.tokens())
	assert.Equal(t, 1, s.log.count(events.EventTypeStreamStart))
	assert.Equal(t, 1, s.log.count(events.EventTypeStreamEnd))
	assert.Equal(t, 1, s.log.count(events.EventTypeMessageNew))

	// job.update progressions are monotonic and end at completed.
	var statuses []string
	lastProgress := -1
	for _, e := range s.log.snapshot() {
		if e.Type != events.EventTypeJobUpdate {
			continue
		}
		var payload events.JobUpdatePayload
		require.NoError(t, json.Unmarshal(e.Data, &payload))
		statuses = append(statuses, payload.Status)
		assert.GreaterOrEqual(t, payload.Progress, lastProgress)
		lastProgress = payload.Progress
	}
	require.NotEmpty(t, statuses)
	assert.Equal(t, string(job.StatusStarted), statuses[0])
	assert.Equal(t, string(job.StatusCompleted), statuses[len(statuses)-1])
}

func TestDispatchMidStreamFailure(t *testing.T) {
	tokens := []string{"Partial ", "output "}
	s := newStack(t, &scriptedLLM{available: true, tokens: tokens, streamErr: errors.New("connection reset")},
		config.PipelineConfig{Streaming: true, MaxHistory: 10})

	conversationID, jobID := s.submitUserMessage(t, "tell me something long")
	final := s.waitTerminal(t, jobID)

	assert.Equal(t, job.StatusFailed, final.Status)
	require.NotNil(t, final.Error)
	assert.Contains(t, *final.Error, "connection reset")

	// The partial message survives the failure.
	msgs, err := s.messages.ListByConversation(context.Background(), conversationID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Partial output ", msgs[1].Content)

	// Exactly one stream.end and one terminal job.update failed.
	assert.Equal(t, 1, s.log.count(events.EventTypeStreamEnd))
	failedUpdates := 0
	for _, e := range s.log.snapshot() {
		if e.Type != events.EventTypeJobUpdate {
			continue
		}
		var payload events.JobUpdatePayload
		require.NoError(t, json.Unmarshal(e.Data, &payload))
		if payload.Status == string(job.StatusFailed) {
			failedUpdates++
		}
	}
	assert.Equal(t, 1, failedUpdates)
	assert.Zero(t, s.log.count(events.EventTypeMessageNew))
}

func TestDispatchFallbackWithoutAdapters(t *testing.T) {
	s := newStack(t, &scriptedLLM{available: false},
		config.PipelineConfig{Streaming: true, MaxHistory: 10})

	conversationID, jobID := s.submitUserMessage(t, "search splunk for errors")
	final := s.waitTerminal(t, jobID)

	// Every adapter down still yields a completed job and a response.
	assert.Equal(t, job.StatusCompleted, final.Status)

	msgs, err := s.messages.ListByConversation(context.Background(), conversationID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	reply := msgs[1]
	assert.NotEmpty(t, reply.Content)
	require.NotEmpty(t, reply.Blocks)

	// The generated query ships as an auto-execute block since the
	// analytics backend could not run it.
	first := reply.Blocks[0]
	assert.Equal(t, models.BlockTypeQuery, first.Type)
	assert.Equal(t, "index=* error | stats count by status", first.Data["query"])
	assert.Equal(t, true, first.Data["autoExecute"])
}

func TestDispatchChartBuild(t *testing.T) {
	s := newStack(t, &scriptedLLM{available: false}, config.PipelineConfig{})

	// Reach into the executor to shorten the simulated build.
	s.pool.executor.runners[job.TypeChartBuild].(*ChartBuilder).stepDelay = time.Millisecond

	j, err := s.jobs.Create(context.Background(), job.TypeChartBuild,
		map[string]interface{}{"range": float64(7)}, nil)
	require.NoError(t, err)

	final := s.waitTerminal(t, j.ID)
	assert.Equal(t, job.StatusCompleted, final.Status)
	assert.Equal(t, "chart", final.Result["type"])

	dataset, ok := final.Result["dataset"].([]interface{})
	require.True(t, ok, "result round-trips through JSON")
	assert.Len(t, dataset, 7)
}

func TestDispatchFIFOOrder(t *testing.T) {
	s := newStack(t, &scriptedLLM{available: true, tokens: []string{"ok"}},
		config.PipelineConfig{Streaming: false, MaxHistory: 10})

	var jobIDs []string
	for i := 0; i < 3; i++ {
		_, id := s.submitUserMessage(t, "hello")
		jobIDs = append(jobIDs, id)
	}
	for _, id := range jobIDs {
		final := s.waitTerminal(t, id)
		assert.Equal(t, job.StatusCompleted, final.Status)
	}
}
