package eventbus

import (
	"runtime/debug"
	"sync"

	"burrow/internal/domain"
	"burrow/internal/logging"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventEnumRequested     = domain.EventEnumRequested
	EventEnumStarted       = domain.EventEnumStarted
	EventEntriesFoundBatch = domain.EventEntriesFoundBatch
	EventEnumCompleted     = domain.EventEnumCompleted
	EventError             = domain.EventError
)

// Re-export domain event types
type EnumRequestedEvent = domain.EnumRequestedEvent
type EnumStartedEvent = domain.EnumStartedEvent
type EntriesFoundBatchEvent = domain.EntriesFoundBatchEvent
type EnumCompletedEvent = domain.EnumCompletedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

// subscription pairs a handler with a stable id so unsubscribing removes
// exactly the handler it was issued for.
type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	nextID    int
	handlers  map[EventType][]subscription
	eventChan chan DomainEvent
	quit      chan struct{}
	done      chan struct{}
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 1024),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}

	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers. Events are delivered in
// publication order; if the buffer is full the publisher blocks rather
// than dropping (feed output must arrive complete, see Subscribe).
// Handlers run on the dispatcher goroutine, so they must never call
// Publish themselves; a handler reacting with further events spawns a
// goroutine for them.
func (b *bus) Publish(event DomainEvent) {
	select {
	case b.eventChan <- event:
	case <-b.quit:
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Close stops the dispatcher. Events still buffered are discarded.
func (b *bus) Close() {
	close(b.quit)
	<-b.done
}

// dispatch handles event distribution to subscribers. Handlers run on the
// dispatcher goroutine so one publisher's events are observed in order.
func (b *bus) dispatch() {
	defer close(b.done)

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				b.call(s.handler, event)
			}

		case <-b.quit:
			return
		}
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Error("event handler panic",
				"type", event.Type(), "panic", r, "stack", string(debug.Stack()))
		}
	}()
	h(event)
}
