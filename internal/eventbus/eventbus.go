package eventbus

import (
	"runtime/debug"
	"sync"

	"github.com/charmbracelet/log"

	"typeahead/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventInstanceBound       = domain.EventInstanceBound
	EventInstanceDestroyed   = domain.EventInstanceDestroyed
	EventSearchStarted       = domain.EventSearchStarted
	EventSearchCompleted     = domain.EventSearchCompleted
	EventSearchDiscarded     = domain.EventSearchDiscarded
	EventSearchFailed        = domain.EventSearchFailed
	EventSuggestionCommitted = domain.EventSuggestionCommitted
	EventFieldCleared        = domain.EventFieldCleared
	EventListDismissed       = domain.EventListDismissed
)

// Re-export domain event types
type InstanceBoundEvent = domain.InstanceBoundEvent
type InstanceDestroyedEvent = domain.InstanceDestroyedEvent
type SearchStartedEvent = domain.SearchStartedEvent
type SearchCompletedEvent = domain.SearchCompletedEvent
type SearchDiscardedEvent = domain.SearchDiscardedEvent
type SearchFailedEvent = domain.SearchFailedEvent
type SuggestionCommittedEvent = domain.SuggestionCommittedEvent
type FieldClearedEvent = domain.FieldClearedEvent
type ListDismissedEvent = domain.ListDismissedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	nextSubID int
	handlers  map[EventType][]subscription
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	select {
	case b.eventChan <- event:
	default:
		log.Warn("event bus channel full, dropping event", "type", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextSubID++
	id := b.nextSubID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and discards queued events
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			subsCopy := make([]subscription, len(subs))
			copy(subsCopy, subs)
			b.mu.RUnlock()

			for _, s := range subsCopy {
				b.invoke(s.handler, event)
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

// invoke calls a handler, isolating the dispatcher from handler panics
func (b *bus) invoke(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("event handler panic", "type", event.Type(), "recovered", r, "stack", string(debug.Stack()))
		}
	}()
	h(event)
}
