// Package llm provides the chat completion client used to generate
// assistant responses and SPL queries, plus the prompt construction
// shared by every completion call.
package llm

import (
	"context"
	"errors"
)

// Message roles accepted by the completion API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of model input.
type Message struct {
	Role    string
	Content string
}

// Chunk is one unit of a streamed completion. Exactly one of
// TextChunk, DoneChunk or ErrorChunk arrives per receive; the stream
// always ends with a DoneChunk or an ErrorChunk.
type Chunk interface {
	chunkType() string
}

// TextChunk carries an incremental piece of the completion text.
type TextChunk struct {
	Text string
}

// DoneChunk signals that the completion finished normally.
type DoneChunk struct{}

// ErrorChunk signals that the stream failed. Text received before the
// error remains valid partial output.
type ErrorChunk struct {
	Err error
}

func (TextChunk) chunkType() string  { return "text" }
func (DoneChunk) chunkType() string  { return "done" }
func (ErrorChunk) chunkType() string { return "error" }

// Sentinel errors for completion failures. Wrapped errors carry the
// underlying cause; match with errors.Is.
var (
	// ErrUnavailable means the model could not be reached or the client
	// is not configured with an API key.
	ErrUnavailable = errors.New("llm service unavailable")

	// ErrTimeout means the completion did not finish within its
	// deadline.
	ErrTimeout = errors.New("llm request timed out")
)

// Client generates chat completions.
type Client interface {
	// Available reports whether the client is configured to reach a
	// model. Callers fall back to deterministic generation when false.
	Available() bool

	// Complete returns the full completion for the messages.
	Complete(ctx context.Context, messages []Message) (string, error)

	// Stream emits the completion incrementally. The returned channel
	// is closed after a DoneChunk or ErrorChunk; the caller must
	// consume it until closed. Stream errors are delivered in-band and
	// never retried, so partial output stays usable.
	Stream(ctx context.Context, messages []Message) (<-chan Chunk, error)
}
