package ui

import (
	"fmt"

	"typeahead/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// describe renders a domain event for the status line
func describe(e eventbus.DomainEvent) string {
	switch ev := e.(type) {
	case eventbus.SearchStartedEvent:
		return fmt.Sprintf("searching %q…", ev.Query)
	case eventbus.SearchCompletedEvent:
		return fmt.Sprintf("%d suggestions for %q", ev.Count, ev.Query)
	case eventbus.SearchDiscardedEvent:
		return fmt.Sprintf("discarded stale result for %q", ev.Query)
	case eventbus.SearchFailedEvent:
		return "search failed: " + ev.Message
	case eventbus.SuggestionCommittedEvent:
		return fmt.Sprintf("picked %q", ev.Label)
	case eventbus.FieldClearedEvent:
		return "cleared"
	case eventbus.ListDismissedEvent:
		return "list dismissed"
	case eventbus.InstanceBoundEvent:
		if ev.Rebound {
			return "widget rebound"
		}
		return "widget bound"
	case eventbus.InstanceDestroyedEvent:
		return "widget destroyed"
	default:
		return string(e.Type())
	}
}
