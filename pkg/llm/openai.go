package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/splunk-genie/genie/pkg/config"
	"github.com/splunk-genie/genie/pkg/metrics"
)

// OpenAIClient is the production Client backed by the OpenAI chat
// completions API.
type OpenAIClient struct {
	client    openai.Client
	cfg       config.LLMConfig
	available bool
}

var _ Client = (*OpenAIClient)(nil)

// NewOpenAIClient creates a client from configuration. A missing API
// key yields a client that reports unavailable instead of an error, so
// the service can run in mock-only mode.
func NewOpenAIClient(cfg config.LLMConfig) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey == "" {
		slog.Warn("OpenAI API key not set, LLM client unavailable")
	}
	return &OpenAIClient{
		client:    openai.NewClient(opts...),
		cfg:       cfg,
		available: cfg.APIKey != "",
	}
}

// Available reports whether an API key is configured.
func (c *OpenAIClient) Available() bool {
	return c.available
}

// Complete returns the full completion text. The request is retried
// with backoff inside the SDK; exhausted retries map to ErrUnavailable
// and an expired deadline maps to ErrTimeout.
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message) (string, error) {
	if !c.available {
		return "", ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, c.params(messages))
	if err != nil {
		metrics.RecordLLMRequest("complete", "error")
		return "", c.classify(ctx, err)
	}
	if len(resp.Choices) == 0 {
		metrics.RecordLLMRequest("complete", "error")
		return "", fmt.Errorf("%w: model returned no choices", ErrUnavailable)
	}
	metrics.RecordLLMRequest("complete", "success")
	return resp.Choices[0].Message.Content, nil
}

// Stream emits the completion token by token. Errors, including a
// connection that drops mid-stream, arrive as an ErrorChunk after any
// text already received.
func (c *OpenAIClient) Stream(ctx context.Context, messages []Message) (<-chan Chunk, error) {
	if !c.available {
		return nil, ErrUnavailable
	}

	out := make(chan Chunk)
	go func() {
		defer close(out)
		stream := c.client.Chat.Completions.NewStreaming(ctx, c.params(messages))
		defer func() { _ = stream.Close() }()

		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 {
				continue
			}
			if delta := chunk.Choices[0].Delta.Content; delta != "" {
				if !sendChunk(ctx, out, TextChunk{Text: delta}) {
					return
				}
			}
		}
		if err := stream.Err(); err != nil {
			metrics.RecordLLMRequest("stream", "error")
			sendChunk(ctx, out, ErrorChunk{Err: c.classify(ctx, err)})
			return
		}
		metrics.RecordLLMRequest("stream", "success")
		sendChunk(ctx, out, DoneChunk{})
	}()
	return out, nil
}

// sendChunk delivers a chunk unless the context is cancelled first.
// The consumer stops receiving on cancellation, so an unguarded send
// would strand the producer goroutine.
func sendChunk(ctx context.Context, out chan<- Chunk, chunk Chunk) bool {
	select {
	case out <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}

// classify maps transport failures onto the package sentinels.
// Cancellation passes through untouched so job cancellation is not
// mistaken for a provider outage.
func (c *OpenAIClient) classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func (c *OpenAIClient) params(messages []Message) openai.ChatCompletionNewParams {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			msgs = append(msgs, openai.SystemMessage(m.Content))
		case RoleAssistant:
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}
	return openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.cfg.Model),
		Messages:    msgs,
		Temperature: openai.Float(c.cfg.Temperature),
		MaxTokens:   openai.Int(int64(c.cfg.MaxTokens)),
	}
}
