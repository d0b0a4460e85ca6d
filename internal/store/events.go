package store

// Topics published on the store's event bus. Handlers run synchronously on the
// goroutine that performed the mutation, before the mutation call returns.
const (
	TopicChanged = "store:changed"
	TopicError   = "store:error"
)

// Event is the single payload type for every topic. Subscribers register a
// func(Event).
type Event struct {
	Topic    string
	Products []Product // Snapshot after the mutation
	Err      string    // Current error slot, empty when absent
}

// Handler receives store events. A handler may mutate the store; the events
// that raises are delivered after the current dispatch finishes. Handlers must
// not Subscribe or Unsubscribe while running.
type Handler func(Event)
