package events

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splunk-genie/genie/pkg/models"
)

// capture records every event delivered on a topic.
type capture struct {
	mu     sync.Mutex
	events []Event
}

func (c *capture) handle(evt Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, evt)
	return nil
}

func (c *capture) wait(t *testing.T, n int) []Event {
	t.Helper()
	require.Eventually(t, func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		return len(c.events) >= n
	}, 2*time.Second, 10*time.Millisecond)
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

func TestPublisherStreamEventShapes(t *testing.T) {
	bus := NewBus(16)
	defer bus.Close()
	conv := &capture{}
	bus.Subscribe(TopicConversation, conv.handle)

	pub := NewPublisher(bus)
	require.NoError(t, pub.PublishStreamStart(StreamStartPayload{ConversationID: 7, MessageID: 42}))
	require.NoError(t, pub.PublishStreamToken(StreamTokenPayload{Token: "hel", MessageID: 42, ConversationID: 7}))
	require.NoError(t, pub.PublishStreamEnd(StreamEndPayload{
		MessageID: 42,
		Blocks:    []models.Block{{Type: models.BlockTypeQuery, Data: map[string]interface{}{"query": "index=main"}}},
	}))

	got := conv.wait(t, 3)

	assert.Equal(t, EventTypeStreamStart, got[0].Type)
	assert.False(t, got[0].Terminal)
	var start map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(got[0].Payload, &start))
	assert.JSONEq(t, `"stream.start"`, string(start["type"]))
	assert.JSONEq(t, `{"conversation_id":7,"message_id":42}`, string(start["data"]))

	assert.Equal(t, EventTypeStreamToken, got[1].Type)
	assert.False(t, got[1].Terminal)
	var token map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(got[1].Payload, &token))
	assert.JSONEq(t, `{"token":"hel","message_id":42,"conversation_id":7}`, string(token["data"]))

	assert.Equal(t, EventTypeStreamEnd, got[2].Type)
	assert.True(t, got[2].Terminal, "stream.end must never be droppable")
	var end struct {
		Type string `json:"type"`
		Data struct {
			MessageID int            `json:"message_id"`
			Blocks    []models.Block `json:"blocks"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(got[2].Payload, &end))
	assert.Equal(t, "stream.end", end.Type)
	assert.Equal(t, 42, end.Data.MessageID)
	require.Len(t, end.Data.Blocks, 1)
	assert.Equal(t, models.BlockTypeQuery, end.Data.Blocks[0].Type)
	assert.NotContains(t, string(got[2].Payload), "conversation_id")
}

func TestPublisherMessageNewShape(t *testing.T) {
	bus := NewBus(16)
	defer bus.Close()
	conv := &capture{}
	bus.Subscribe(TopicConversation, conv.handle)

	pub := NewPublisher(bus)
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, pub.PublishMessageNew(MessageNewPayload{
		ID:             42,
		ConversationID: 7,
		Role:           "assistant",
		Content:        "done",
		Blocks:         []models.Block{},
		CreatedAt:      created,
	}))

	got := conv.wait(t, 1)
	assert.Equal(t, EventTypeMessageNew, got[0].Type)
	assert.False(t, got[0].Terminal)

	var env struct {
		Type string            `json:"type"`
		Data MessageNewPayload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(got[0].Payload, &env))
	assert.Equal(t, "message.new", env.Type)
	assert.Equal(t, 42, env.Data.ID)
	assert.Equal(t, "assistant", env.Data.Role)
	assert.Equal(t, "done", env.Data.Content)
	assert.True(t, created.Equal(env.Data.CreatedAt))
}

func TestPublisherJobUpdateTerminalMarking(t *testing.T) {
	bus := NewBus(16)
	defer bus.Close()
	jobs := &capture{}
	bus.Subscribe(TopicJobs, jobs.handle)

	pub := NewPublisher(bus)
	errMsg := "llm unavailable"
	updates := []JobUpdatePayload{
		{JobID: "j1", Status: "queued", Progress: 0},
		{JobID: "j1", Status: "started", Progress: 0},
		{JobID: "j1", Status: "progress", Progress: 40},
		{JobID: "j1", Status: "completed", Progress: 100, Result: map[string]interface{}{"type": "chat_response"}},
		{JobID: "j2", Status: "failed", Progress: 10, Error: &errMsg},
	}
	for _, u := range updates {
		require.NoError(t, pub.PublishJobUpdate(u))
	}

	got := jobs.wait(t, len(updates))
	wantTerminal := []bool{false, false, false, true, true}
	for i, evt := range got {
		assert.Equal(t, EventTypeJobUpdate, evt.Type)
		assert.Equal(t, wantTerminal[i], evt.Terminal, "update %d", i)
	}

	// Optional fields stay off the wire until set.
	assert.NotContains(t, string(got[0].Payload), "result")
	assert.NotContains(t, string(got[0].Payload), "error")
	assert.Contains(t, string(got[3].Payload), `"result"`)
	assert.Contains(t, string(got[4].Payload), `"error":"llm unavailable"`)
}
