package events

import (
	"encoding/json"
	"fmt"

	"github.com/splunk-genie/genie/pkg/metrics"
)

// Publisher marshals typed payloads into wire envelopes and publishes
// them on the bus. Each payload is marshaled exactly once; subscribers
// receive the same bytes.
type Publisher struct {
	bus *Bus
}

// NewPublisher creates a publisher bound to the bus.
func NewPublisher(bus *Bus) *Publisher {
	return &Publisher{bus: bus}
}

// PublishMessageNew announces a persisted assistant message.
func (p *Publisher) PublishMessageNew(payload MessageNewPayload) error {
	return p.publish(TopicConversation, EventTypeMessageNew, payload, false)
}

// PublishStreamStart announces the beginning of a token stream.
func (p *Publisher) PublishStreamStart(payload StreamStartPayload) error {
	return p.publish(TopicConversation, EventTypeStreamStart, payload, false)
}

// PublishStreamToken delivers one streamed token batch.
func (p *Publisher) PublishStreamToken(payload StreamTokenPayload) error {
	return p.publish(TopicConversation, EventTypeStreamToken, payload, false)
}

// PublishStreamEnd closes a token stream. Terminal: never dropped on
// queue overflow.
func (p *Publisher) PublishStreamEnd(payload StreamEndPayload) error {
	return p.publish(TopicConversation, EventTypeStreamEnd, payload, true)
}

// PublishJobUpdate announces a job status change. Updates carrying a
// terminal status are never dropped on queue overflow.
func (p *Publisher) PublishJobUpdate(payload JobUpdatePayload) error {
	terminal := payload.Status == "completed" || payload.Status == "failed"
	return p.publish(TopicJobs, EventTypeJobUpdate, payload, terminal)
}

func (p *Publisher) publish(topic, eventType string, payload interface{}, terminal bool) error {
	data, err := json.Marshal(Envelope{Type: eventType, Data: payload})
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}
	p.bus.Publish(topic, Event{Type: eventType, Payload: data, Terminal: terminal})
	metrics.RecordEventPublished(topic, eventType)
	return nil
}
