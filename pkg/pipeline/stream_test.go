package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splunk-genie/genie/ent"
	"github.com/splunk-genie/genie/ent/job"
	"github.com/splunk-genie/genie/pkg/config"
	"github.com/splunk-genie/genie/pkg/events"
	"github.com/splunk-genie/genie/pkg/llm"
	"github.com/splunk-genie/genie/pkg/models"
)

type streamHarness struct {
	driver   *StreamDriver
	messages *fakeMessages
	jobs     *fakeJobs
	bus      *events.Bus
	capture  *capture
	job      *ent.Job
}

func newStreamHarness(t *testing.T) *streamHarness {
	t.Helper()
	cid := 1
	j := &ent.Job{
		ID:             "job-1",
		Type:           job.TypeAssistantResponse,
		Status:         job.StatusStarted,
		Params:         map[string]interface{}{"user_message": "hello"},
		ConversationID: &cid,
	}

	bus := events.NewBus(256)
	t.Cleanup(bus.Close)

	h := &streamHarness{
		messages: newFakeMessages(),
		jobs:     newFakeJobs(j),
		bus:      bus,
		capture:  newCapture(bus),
		job:      j,
	}
	h.driver = NewStreamDriver(
		config.StreamConfig{FlushTokens: 2, FlushInterval: 50 * time.Millisecond},
		h.messages, h.jobs, events.NewPublisher(bus), nil,
	)
	return h
}

func chunksFor(tokens []string, tail llm.Chunk) <-chan llm.Chunk {
	ch := make(chan llm.Chunk, len(tokens)+1)
	for _, tok := range tokens {
		ch <- llm.TextChunk{Text: tok}
	}
	ch <- tail
	close(ch)
	return ch
}

func (h *streamHarness) waitDrained(t *testing.T) {
	t.Helper()
	require.Eventually(t, func() bool {
		return h.bus.Depth(events.TopicConversation) == 0 && h.bus.Depth(events.TopicJobs) == 0 &&
			h.capture.count(events.EventTypeStreamEnd) > 0
	}, 2*time.Second, 10*time.Millisecond)
	// One more beat for in-flight handler invocations.
	time.Sleep(20 * time.Millisecond)
}

func TestStreamDriverCompletes(t *testing.T) {
	h := newStreamHarness(t)
	tokens := []string{"The ", "answer ", "is ", "42."}

	err := h.driver.Run(context.Background(), h.job, 1, "hello", nil,
		chunksFor(tokens, llm.DoneChunk{}))
	require.NoError(t, err)
	h.waitDrained(t)

	msg := h.messages.get(1)
	require.NotNil(t, msg)
	assert.Equal(t, "The answer is 42.", msg.Content,
		"final content equals the token concatenation")

	j := h.jobs.get("job-1")
	assert.Equal(t, job.StatusCompleted, j.Status)
	assert.Equal(t, 100, j.Progress)
	assert.Equal(t, msg.ID, j.Result["message_id"])

	types := h.capture.types()
	assert.Contains(t, types, events.EventTypeStreamStart)
	assert.Equal(t, len(tokens), h.capture.count(events.EventTypeStreamToken))
	assert.Equal(t, 1, h.capture.count(events.EventTypeStreamEnd))
	assert.Equal(t, 1, h.capture.count(events.EventTypeMessageNew))
}

func TestStreamDriverTokenOrder(t *testing.T) {
	h := newStreamHarness(t)
	tokens := []string{"a", "b", "c", "d", "e", "f"}

	err := h.driver.Run(context.Background(), h.job, 1, "hello", nil,
		chunksFor(tokens, llm.DoneChunk{}))
	require.NoError(t, err)
	h.waitDrained(t)

	var got []string
	h.capture.mu.Lock()
	for _, env := range h.capture.envelopes {
		if env.Type != events.EventTypeStreamToken {
			continue
		}
		var payload events.StreamTokenPayload
		require.NoError(t, json.Unmarshal(env.Data, &payload))
		got = append(got, payload.Token)
	}
	h.capture.mu.Unlock()

	assert.Equal(t, tokens, got, "tokens are delivered in publish order")
	assert.Equal(t, strings.Join(tokens, ""), h.messages.get(1).Content)
}

func TestStreamDriverMidStreamFailure(t *testing.T) {
	h := newStreamHarness(t)
	tokens := []string{"Partial ", "response ", "before "}

	err := h.driver.Run(context.Background(), h.job, 1, "hello", nil,
		chunksFor(tokens, llm.ErrorChunk{Err: errors.New("upstream reset")}))
	require.NoError(t, err)
	h.waitDrained(t)

	// The partial message is kept.
	msg := h.messages.get(1)
	require.NotNil(t, msg)
	assert.Equal(t, "Partial response before ", msg.Content)

	// The job failed with the stream error.
	j := h.jobs.get("job-1")
	assert.Equal(t, job.StatusFailed, j.Status)
	require.NotNil(t, j.Error)
	assert.Contains(t, *j.Error, "upstream reset")

	// Exactly one stream.end, exactly one job.update, no message.new.
	assert.Equal(t, 1, h.capture.count(events.EventTypeStreamEnd))
	assert.Equal(t, 1, h.capture.count(events.EventTypeJobUpdate))
	assert.Zero(t, h.capture.count(events.EventTypeMessageNew))
}

func TestStreamDriverExtractsBlocksFromStream(t *testing.T) {
	h := newStreamHarness(t)
	tokens := []string{"Run this:\n", "index=web status=500 ", "| stats count by host"}

	err := h.driver.Run(context.Background(), h.job, 1, "hello", nil,
		chunksFor(tokens, llm.DoneChunk{}))
	require.NoError(t, err)
	h.waitDrained(t)

	msg := h.messages.get(1)
	require.NotNil(t, msg)
	require.Len(t, msg.Blocks, 1)
	assert.Equal(t, models.BlockTypeQuery, msg.Blocks[0].Type)

	var payload events.StreamEndPayload
	h.capture.mu.Lock()
	for _, env := range h.capture.envelopes {
		if env.Type == events.EventTypeStreamEnd {
			require.NoError(t, json.Unmarshal(env.Data, &payload))
		}
	}
	h.capture.mu.Unlock()
	assert.Equal(t, msg.ID, payload.MessageID)
	require.Len(t, payload.Blocks, 1)
}

func TestStreamDriverMergesExecutionBlocks(t *testing.T) {
	h := newStreamHarness(t)
	executed := []models.Block{queryBlock("index=web | stats count", map[string]interface{}{"result": "cached"})}

	err := h.driver.Run(context.Background(), h.job, 1, "hello", executed,
		chunksFor([]string{"Done."}, llm.DoneChunk{}))
	require.NoError(t, err)
	h.waitDrained(t)

	msg := h.messages.get(1)
	require.NotNil(t, msg)
	require.Len(t, msg.Blocks, 1)
	assert.Equal(t, "cached", msg.Blocks[0].Data["result"])
}

func TestStreamDriverConcatenationProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	tokenGen := gen.SliceOf(gen.OneConstOf("a", "b ", "word", "\n", "x y z", "."))

	properties.Property("stored content equals the concatenation, done or failed", prop.ForAll(
		func(tokens []string, fail bool) bool {
			h := newStreamHarness(t)
			defer h.bus.Close()

			var tail llm.Chunk = llm.DoneChunk{}
			if fail {
				tail = llm.ErrorChunk{Err: errors.New("synthetic")}
			}
			if err := h.driver.Run(context.Background(), h.job, 1, "hi", nil, chunksFor(tokens, tail)); err != nil {
				return false
			}
			msg := h.messages.get(1)
			if msg == nil {
				return false
			}
			return msg.Content == strings.Join(tokens, "")
		},
		tokenGen,
		gen.Bool(),
	))

	properties.TestingRun(t)
}
