package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventInstanceBound       EventType = "InstanceBound"
	EventInstanceDestroyed   EventType = "InstanceDestroyed"
	EventSearchStarted       EventType = "SearchStarted"
	EventSearchCompleted     EventType = "SearchCompleted"
	EventSearchDiscarded     EventType = "SearchDiscarded"
	EventSearchFailed        EventType = "SearchFailed"
	EventSuggestionCommitted EventType = "SuggestionCommitted"
	EventFieldCleared        EventType = "FieldCleared"
	EventListDismissed       EventType = "ListDismissed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// InstanceBoundEvent is emitted when a widget instance is bound to a field
type InstanceBoundEvent struct {
	FieldID int
	Rebound bool // true when a prior instance on the same field was replaced
}

func (e InstanceBoundEvent) Type() EventType { return EventInstanceBound }

// InstanceDestroyedEvent is emitted when a widget instance is torn down
type InstanceDestroyedEvent struct {
	FieldID int
}

func (e InstanceDestroyedEvent) Type() EventType { return EventInstanceDestroyed }

// SearchStartedEvent is emitted when a debounced search is dispatched
type SearchStartedEvent struct {
	FieldID int
	Query   string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted when a search result was rendered
type SearchCompletedEvent struct {
	FieldID int
	Query   string
	Count   int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchDiscardedEvent is emitted when a stale result is dropped unrendered
type SearchDiscardedEvent struct {
	FieldID int
	Query   string // the query the discarded result was computed for
}

func (e SearchDiscardedEvent) Type() EventType { return EventSearchDiscarded }

// SearchFailedEvent is emitted when the search function reports an error
type SearchFailedEvent struct {
	FieldID int
	Query   string
	Message string
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// SuggestionCommittedEvent is emitted when a suggestion becomes the field value
type SuggestionCommittedEvent struct {
	FieldID int
	Label   string
}

func (e SuggestionCommittedEvent) Type() EventType { return EventSuggestionCommitted }

// FieldClearedEvent is emitted when an emptied field clears its list
type FieldClearedEvent struct {
	FieldID int
}

func (e FieldClearedEvent) Type() EventType { return EventFieldCleared }

// ListDismissedEvent is emitted when an outside interaction closes an open list
type ListDismissedEvent struct {
	FieldID int
}

func (e ListDismissedEvent) Type() EventType { return EventListDismissed }
