package llm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splunk-genie/genie/pkg/config"
)

func testLLMConfig(baseURL string) config.LLMConfig {
	return config.LLMConfig{
		APIKey:    "test-key",
		Model:     "test-model",
		BaseURL:   baseURL,
		MaxTokens: 64,
		Timeout:   5 * time.Second,
	}
}

func TestSendChunkRespectsCancellation(t *testing.T) {
	t.Run("delivers while context is live", func(t *testing.T) {
		ch := make(chan Chunk, 1)
		assert.True(t, sendChunk(context.Background(), ch, TextChunk{Text: "x"}))
		assert.Equal(t, TextChunk{Text: "x"}, <-ch)
	})

	t.Run("bails out with no receiver after cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ch := make(chan Chunk)
		assert.False(t, sendChunk(ctx, ch, TextChunk{Text: "x"}))
	})
}

func TestStreamStopsAfterCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fl := w.(http.Flusher)
		_, _ = io.WriteString(w, "data: {\"choices\":[{\"delta\":{\"content\":\"hello\"}}]}\n\n")
		fl.Flush()
		// Hold the stream open until the client goes away.
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewOpenAIClient(testLLMConfig(srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := client.Stream(ctx, []Message{{Role: RoleUser, Content: "hi"}})
	require.NoError(t, err)

	chunk, ok := (<-ch).(TextChunk)
	require.True(t, ok)
	assert.Equal(t, "hello", chunk.Text)

	// Cancel and stop receiving. The producer must notice on its own
	// and close the channel instead of blocking on a final send.
	cancel()
	time.Sleep(500 * time.Millisecond)

	select {
	case c, open := <-ch:
		assert.False(t, open, "expected closed channel, got %T after cancellation", c)
	case <-time.After(2 * time.Second):
		t.Fatal("stream channel not closed after cancellation")
	}
}

func TestStreamDeliversTokensAndDone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = io.WriteString(w, "data: {\"choices\":[{\"delta\":{\"content\":\"hello\"}}]}\n\n")
		_, _ = io.WriteString(w, "data: {\"choices\":[{\"delta\":{\"content\":\" world\"}}]}\n\n")
		_, _ = io.WriteString(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	client := NewOpenAIClient(testLLMConfig(srv.URL))

	ch, err := client.Stream(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.NoError(t, err)

	var text string
	var done bool
	for chunk := range ch {
		switch c := chunk.(type) {
		case TextChunk:
			text += c.Text
		case DoneChunk:
			done = true
		case ErrorChunk:
			t.Fatalf("unexpected stream error: %v", c.Err)
		}
	}
	assert.Equal(t, "hello world", text)
	assert.True(t, done)
}
