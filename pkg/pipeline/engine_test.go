package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splunk-genie/genie/ent"
	"github.com/splunk-genie/genie/ent/job"
	"github.com/splunk-genie/genie/ent/message"
	"github.com/splunk-genie/genie/pkg/analytics"
	"github.com/splunk-genie/genie/pkg/config"
	"github.com/splunk-genie/genie/pkg/events"
	"github.com/splunk-genie/genie/pkg/llm"
	"github.com/splunk-genie/genie/pkg/models"
	"github.com/splunk-genie/genie/pkg/services"
)

// --- fakes -----------------------------------------------------------

type fakeMessages struct {
	mu     sync.Mutex
	nextID int
	msgs   map[int]*ent.Message
}

func newFakeMessages() *fakeMessages {
	return &fakeMessages{msgs: make(map[int]*ent.Message)}
}

func (f *fakeMessages) Create(_ context.Context, conversationID int, role, content string, blocks []models.Block) (*ent.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	m := &ent.Message{
		ID:             f.nextID,
		ConversationID: conversationID,
		Role:           message.Role(role),
		Content:        content,
		Blocks:         blocks,
		CreatedAt:      time.Now(),
	}
	f.msgs[m.ID] = m
	return m, nil
}

func (f *fakeMessages) Recent(_ context.Context, conversationID, limit int) ([]*ent.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*ent.Message
	for id := 1; id <= f.nextID; id++ {
		if m, ok := f.msgs[id]; ok && m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (f *fakeMessages) UpdateContent(_ context.Context, id int, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.msgs[id]
	if !ok {
		return services.ErrNotFound
	}
	m.Content = content
	return nil
}

func (f *fakeMessages) Finalize(_ context.Context, id int, content string, blocks []models.Block) (*ent.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.msgs[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	m.Content = content
	if blocks = models.SanitizeBlocks(blocks); blocks != nil {
		m.Blocks = blocks
	}
	return m, nil
}

func (f *fakeMessages) get(id int) *ent.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.msgs[id]
}

// fakeJobs applies transitions through the real validator so the fakes
// reject exactly what the database-backed service would.
type fakeJobs struct {
	mu   sync.Mutex
	jobs map[string]*ent.Job
}

func newFakeJobs(seed ...*ent.Job) *fakeJobs {
	f := &fakeJobs{jobs: make(map[string]*ent.Job)}
	for _, j := range seed {
		cp := *j
		f.jobs[j.ID] = &cp
	}
	return f
}

func (f *fakeJobs) Transition(_ context.Context, id string, next job.Status, fields services.TransitionFields) (*ent.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	if err := services.ValidateTransition(j.Status, j.Progress, j.Result != nil, next, fields); err != nil {
		return nil, err
	}
	j.Status = next
	switch {
	case next == job.StatusCompleted:
		j.Progress = 100
	case fields.Progress != nil:
		j.Progress = *fields.Progress
	}
	if fields.Result != nil {
		j.Result = fields.Result
	}
	if fields.Error != nil {
		j.Error = fields.Error
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJobs) get(id string) *ent.Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *f.jobs[id]
	return &cp
}

type fakeLLM struct {
	available    bool
	completeText string
	completeErr  error
	streamChunks []llm.Chunk

	mu        sync.Mutex
	completes [][]llm.Message
}

func (f *fakeLLM) Available() bool { return f.available }

func (f *fakeLLM) Complete(_ context.Context, messages []llm.Message) (string, error) {
	f.mu.Lock()
	f.completes = append(f.completes, messages)
	f.mu.Unlock()
	if f.completeErr != nil {
		return "", f.completeErr
	}
	return f.completeText, nil
}

func (f *fakeLLM) Stream(_ context.Context, _ []llm.Message) (<-chan llm.Chunk, error) {
	ch := make(chan llm.Chunk, len(f.streamChunks))
	for _, c := range f.streamChunks {
		ch <- c
	}
	close(ch)
	return ch, nil
}

type fakeRetrieval struct {
	available bool
	context   string
	calls     int
}

func (f *fakeRetrieval) Available() bool { return f.available }
func (f *fakeRetrieval) SplunkContext(context.Context, string) string {
	f.calls++
	return f.context
}

type fakeAnalytics struct {
	available bool
	result    *analytics.QueryResult
	err       error
	queries   []string
}

func (f *fakeAnalytics) Available() bool { return f.available }
func (f *fakeAnalytics) ExecuteQuery(_ context.Context, query, _, _ string) (*analytics.QueryResult, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeResults struct {
	mu      sync.Mutex
	upserts []services.UpsertQueryResultInput
}

func (f *fakeResults) Upsert(_ context.Context, input services.UpsertQueryResultInput) (*ent.QueryResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, input)
	return &ent.QueryResult{ID: len(f.upserts)}, nil
}

// capture subscribes to both topics and records decoded envelopes.
type capture struct {
	mu        sync.Mutex
	envelopes []capturedEvent
}

type capturedEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func newCapture(bus *events.Bus) *capture {
	c := &capture{}
	record := func(evt events.Event) error {
		var env capturedEvent
		if err := json.Unmarshal(evt.Payload, &env); err != nil {
			return err
		}
		c.mu.Lock()
		c.envelopes = append(c.envelopes, env)
		c.mu.Unlock()
		return nil
	}
	bus.Subscribe(events.TopicConversation, record)
	bus.Subscribe(events.TopicJobs, record)
	return c
}

func (c *capture) types() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.envelopes))
	for i, e := range c.envelopes {
		out[i] = e.Type
	}
	return out
}

func (c *capture) count(eventType string) int {
	n := 0
	for _, typ := range c.types() {
		if typ == eventType {
			n++
		}
	}
	return n
}

// --- harness ---------------------------------------------------------

type engineHarness struct {
	engine    *Engine
	messages  *fakeMessages
	jobs      *fakeJobs
	llm       *fakeLLM
	retrieval *fakeRetrieval
	analytics *fakeAnalytics
	results   *fakeResults
	bus       *events.Bus
	capture   *capture
	job       *ent.Job
}

func newEngineHarness(t *testing.T, cfg config.PipelineConfig, userMessage string) *engineHarness {
	t.Helper()
	cid := 1
	j := &ent.Job{
		ID:             "job-1",
		Type:           job.TypeAssistantResponse,
		Status:         job.StatusStarted,
		Params:         map[string]interface{}{"user_message": userMessage, "user_id": "tester"},
		ConversationID: &cid,
	}

	bus := events.NewBus(256)
	t.Cleanup(bus.Close)

	h := &engineHarness{
		messages:  newFakeMessages(),
		jobs:      newFakeJobs(j),
		llm:       &fakeLLM{},
		retrieval: &fakeRetrieval{},
		analytics: &fakeAnalytics{},
		results:   &fakeResults{},
		bus:       bus,
		capture:   newCapture(bus),
		job:       j,
	}
	h.engine = NewEngine(Deps{
		Config:    cfg,
		Stream:    config.StreamConfig{FlushTokens: 2, FlushInterval: 50 * time.Millisecond},
		LLM:       h.llm,
		Retrieval: h.retrieval,
		Analytics: h.analytics,
		Messages:  h.messages,
		Jobs:      h.jobs,
		Results:   h.results,
		Publisher: events.NewPublisher(bus),
		Logger:    nil,
	})
	return h
}

func (h *engineHarness) waitForTerminalEvent(t *testing.T) {
	t.Helper()
	require.Eventually(t, func() bool {
		h.capture.mu.Lock()
		defer h.capture.mu.Unlock()
		for _, env := range h.capture.envelopes {
			if env.Type != events.EventTypeJobUpdate {
				continue
			}
			var payload events.JobUpdatePayload
			if json.Unmarshal(env.Data, &payload) != nil {
				continue
			}
			if payload.Status == string(job.StatusCompleted) || payload.Status == string(job.StatusFailed) {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

// --- tests -----------------------------------------------------------

func TestEngineMockShortCircuit(t *testing.T) {
	h := newEngineHarness(t, config.PipelineConfig{MockResponses: true}, "hello there")
	h.llm.available = true
	h.retrieval.available = true

	require.NoError(t, h.engine.Run(context.Background(), h.job))
	h.waitForTerminalEvent(t)

	j := h.jobs.get("job-1")
	assert.Equal(t, job.StatusCompleted, j.Status)
	assert.Equal(t, 100, j.Progress)
	assert.Equal(t, "Hello! How can I help you today?", j.Result["content"])

	// No external stage ran.
	assert.Zero(t, h.retrieval.calls)
	assert.Empty(t, h.llm.completes)

	msg := h.messages.get(1)
	require.NotNil(t, msg)
	assert.Equal(t, "assistant", string(msg.Role))
	require.Eventually(t, func() bool {
		return h.capture.count(events.EventTypeMessageNew) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestEngineChatWithLLM(t *testing.T) {
	h := newEngineHarness(t, config.PipelineConfig{MaxHistory: 10}, "how do retries work")
	h.llm.available = true
	h.llm.completeText = "Retries use exponential backoff.\n```python\nretry()\n```"

	require.NoError(t, h.engine.Run(context.Background(), h.job))
	h.waitForTerminalEvent(t)

	j := h.jobs.get("job-1")
	assert.Equal(t, job.StatusCompleted, j.Status)

	msg := h.messages.get(1)
	require.NotNil(t, msg)
	assert.Equal(t, "Retries use exponential backoff.", msg.Content)
	require.Len(t, msg.Blocks, 1)
	assert.Equal(t, models.BlockTypeCode, msg.Blocks[0].Type)

	// Chat intent skips retrieval and query stages.
	assert.Zero(t, h.retrieval.calls)
	assert.Empty(t, h.analytics.queries)
}

func TestEngineVisualizationSkipsQueryStages(t *testing.T) {
	// A chart request grounds itself with retrieval context but never
	// generates or executes a search on its own.
	h := newEngineHarness(t, config.PipelineConfig{MaxHistory: 5}, "visualize sales per region")
	h.llm.available = true
	h.llm.completeText = "Here is a chart of sales per region."
	h.retrieval.available = true
	h.retrieval.context = "Relevant context from knowledge base:\n- sales docs"
	h.analytics.available = true
	h.analytics.result = &analytics.QueryResult{Fields: []string{"count"}}

	require.NoError(t, h.engine.Run(context.Background(), h.job))
	h.waitForTerminalEvent(t)

	assert.Equal(t, 1, h.retrieval.calls)
	assert.Empty(t, h.analytics.queries)
	assert.Empty(t, h.results.upserts)

	msg := h.messages.get(1)
	require.NotNil(t, msg)
	for _, b := range msg.Blocks {
		assert.NotEqual(t, models.BlockTypeQuery, b.Type)
	}

	j := h.jobs.get("job-1")
	assert.Equal(t, job.StatusCompleted, j.Status)
}

func TestEngineDegradedAdapters(t *testing.T) {
	// LLM and analytics both down: the query stages still run with the
	// template query, and the content comes from the mock generator.
	h := newEngineHarness(t, config.PipelineConfig{}, "search splunk for errors")
	h.retrieval.available = false
	h.analytics.available = false

	require.NoError(t, h.engine.Run(context.Background(), h.job))
	h.waitForTerminalEvent(t)

	j := h.jobs.get("job-1")
	assert.Equal(t, job.StatusCompleted, j.Status)

	msg := h.messages.get(1)
	require.NotNil(t, msg)
	require.NotEmpty(t, msg.Blocks)
	first := msg.Blocks[0]
	assert.Equal(t, models.BlockTypeQuery, first.Type)
	assert.Equal(t, "index=* error | stats count by status", first.Data["query"])
	assert.Equal(t, true, first.Data["autoExecute"], "offline query ships as auto-execute")
}

func TestEngineExecutesGeneratedQuery(t *testing.T) {
	h := newEngineHarness(t, config.PipelineConfig{MaxHistory: 5}, "search splunk for failed logins")
	h.llm.available = true
	h.llm.completeText = "Here are the failed logins."
	h.retrieval.available = true
	h.retrieval.context = "Relevant context from knowledge base:\n- auth docs"
	h.analytics.available = true
	h.analytics.result = &analytics.QueryResult{
		Results: []map[string]interface{}{{"count": "42"}},
		Fields:  []string{"count"},
	}

	require.NoError(t, h.engine.Run(context.Background(), h.job))
	h.waitForTerminalEvent(t)

	assert.Equal(t, 1, h.retrieval.calls)
	require.Len(t, h.analytics.queries, 1)

	// Executed query is cached under the requesting user.
	require.Len(t, h.results.upserts, 1)
	assert.Equal(t, "tester", h.results.upserts[0].UserID)
	assert.NotNil(t, h.results.upserts[0].Formatted)

	msg := h.messages.get(1)
	require.NotNil(t, msg)
	require.NotEmpty(t, msg.Blocks)
	assert.Equal(t, models.BlockTypeQuery, msg.Blocks[0].Type)
	assert.Contains(t, msg.Blocks[0].Data, "result")
}

func TestEngineQueryExecutionFailureCachesError(t *testing.T) {
	h := newEngineHarness(t, config.PipelineConfig{}, "search splunk for errors")
	h.analytics.available = true
	h.analytics.err = analytics.ErrTimeout

	require.NoError(t, h.engine.Run(context.Background(), h.job))
	h.waitForTerminalEvent(t)

	require.Len(t, h.results.upserts, 1)
	require.NotNil(t, h.results.upserts[0].Error)
	assert.Nil(t, h.results.upserts[0].Formatted)

	j := h.jobs.get("job-1")
	assert.Equal(t, job.StatusCompleted, j.Status, "query failure degrades, it does not fail the job")
}

func TestEnginePartialFailureKeepsOutput(t *testing.T) {
	h := newEngineHarness(t, config.PipelineConfig{}, "how do I parse logs")
	h.llm.available = true
	h.llm.completeErr = &PartialError{
		Content: "You can parse logs with",
		Err:     errors.New("connection reset"),
	}

	require.NoError(t, h.engine.Run(context.Background(), h.job))
	h.waitForTerminalEvent(t)

	j := h.jobs.get("job-1")
	assert.Equal(t, job.StatusFailed, j.Status)
	require.NotNil(t, j.Error)
	assert.Contains(t, *j.Error, "connection reset")

	msg := h.messages.get(1)
	require.NotNil(t, msg)
	assert.Equal(t, "You can parse logs with", msg.Content)
}

func TestEngineHardFailureReturnsError(t *testing.T) {
	h := newEngineHarness(t, config.PipelineConfig{}, "how do I parse logs")
	h.llm.available = true
	h.llm.completeErr = llm.ErrUnavailable

	err := h.engine.Run(context.Background(), h.job)
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrUnavailable)

	// The job is left non-terminal for the caller to fail.
	j := h.jobs.get("job-1")
	assert.NotEqual(t, job.StatusFailed, j.Status)
	assert.NotEqual(t, job.StatusCompleted, j.Status)
}

func TestEngineProgressIsMonotonic(t *testing.T) {
	h := newEngineHarness(t, config.PipelineConfig{}, "search splunk for errors")
	h.analytics.available = true
	h.analytics.result = &analytics.QueryResult{Fields: []string{"count"}}

	require.NoError(t, h.engine.Run(context.Background(), h.job))
	h.waitForTerminalEvent(t)

	var progresses []int
	h.capture.mu.Lock()
	for _, env := range h.capture.envelopes {
		if env.Type != events.EventTypeJobUpdate {
			continue
		}
		var payload events.JobUpdatePayload
		require.NoError(t, json.Unmarshal(env.Data, &payload))
		progresses = append(progresses, payload.Progress)
	}
	h.capture.mu.Unlock()

	require.NotEmpty(t, progresses)
	for i := 1; i < len(progresses); i++ {
		assert.GreaterOrEqual(t, progresses[i], progresses[i-1])
	}
	assert.Equal(t, 100, progresses[len(progresses)-1])
}
