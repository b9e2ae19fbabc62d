package events

// AttachBroadcaster subscribes the connection manager to both event
// topics so every published envelope is fanned out to the active
// WebSocket connections. Send failures are handled inside the manager
// by detaching the dead connection, so the handler itself never fails.
func AttachBroadcaster(bus *Bus, m *ConnectionManager) {
	forward := func(evt Event) error {
		m.Broadcast(evt.Payload)
		return nil
	}
	bus.Subscribe(TopicConversation, forward)
	bus.Subscribe(TopicJobs, forward)
}
