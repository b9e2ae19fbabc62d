// Package events provides the in-process event bus and the WebSocket
// connection manager that delivers bus events to clients.
//
// Delivery model: components publish typed events through Publisher;
// the bus guarantees per-topic FIFO ordering; the connection manager
// broadcasts each event to every connected client. Delivery to clients
// is at-most-once — a client that misses events (disconnect, queue
// overflow) recovers by re-reading state over REST, where the final
// message and job records are authoritative.
package events

// Event types delivered over WebSocket (the "type" field of the wire
// envelope).
const (
	// EventTypeMessageNew carries a final message record. Published for
	// assistant messages only; user messages are returned synchronously
	// on the HTTP call that created them.
	EventTypeMessageNew = "message.new"

	// Streaming lifecycle for one assistant message.
	EventTypeStreamStart = "stream.start"
	EventTypeStreamToken = "stream.token"
	EventTypeStreamEnd   = "stream.end"

	// EventTypeJobUpdate carries a job status/progress change.
	EventTypeJobUpdate = "job.update"

	// Connection-level control messages (never routed through the bus).
	EventTypePing        = "ping"
	EventTypeAck         = "ack"
	EventTypeEstablished = "connection.established"
)

// Bus topics. Conversation-scoped events (messages, streaming) and job
// lifecycle events flow through separate queues so a token flood cannot
// starve job updates.
const (
	TopicConversation = "conversation.events"
	TopicJobs         = "job.events"
)

// Envelope is the wire format for every server → client event.
type Envelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}
