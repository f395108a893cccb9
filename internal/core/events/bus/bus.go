package bus

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is an animation lifecycle notification.
type Event struct {
	Type      string
	Source    string
	Timestamp time.Time
	Data      any
}

// NewEvent creates an event stamped with the current time.
func NewEvent(typ, source string, data any) Event {
	return Event{Type: typ, Source: source, Timestamp: time.Now(), Data: data}
}

// Handler consumes events. Delivery is synchronous: the publisher's goroutine
// runs the handler, matching the engine's single-threaded execution model.
type Handler func(Event)

// Subscription identifies a registered handler.
type Subscription interface {
	ID() string
	EventType() string
	Cancel()
}

// Bus routes events to subscribed handlers.
type Bus interface {
	Publish(Event)
	Subscribe(eventType string, h Handler) Subscription
}

type subscription struct {
	id        string
	eventType string
	cancel    func()
}

func (s *subscription) ID() string        { return s.id }
func (s *subscription) EventType() string { return s.eventType }
func (s *subscription) Cancel() {
	if s.cancel != nil {
		s.cancel()
	}
}

// inMemoryBus is a thread-safe Bus. Handlers are keyed by event type, then
// subscription ID.
type inMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string]map[string]Handler
}

// New creates a new Bus instance.
func New() Bus {
	return &inMemoryBus{
		handlers: make(map[string]map[string]Handler),
	}
}

func (b *inMemoryBus) Publish(event Event) {
	b.mu.RLock()
	subs := make([]Handler, 0, len(b.handlers[event.Type]))
	for _, h := range b.handlers[event.Type] {
		subs = append(subs, h)
	}
	b.mu.RUnlock()

	for _, h := range subs {
		h(event)
	}
}

func (b *inMemoryBus) Subscribe(eventType string, h Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make(map[string]Handler)
	}
	id := uuid.New().String()
	b.handlers[eventType][id] = h

	return &subscription{
		id:        id,
		eventType: eventType,
		cancel: func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.handlers[eventType], id)
		},
	}
}
