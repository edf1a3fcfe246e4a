package typeahead

import (
	"context"

	"typeahead/internal/eventbus"
)

// dispatch starts an asynchronous search for query. Caller holds mu.
//
// The captured token is what the staleness guard in resolve compares
// against; overlapping dispatches are never cancelled, a result is applied
// only if the field still shows the query it was computed for.
func (in *Instance) dispatch(query string) {
	in.searchingFor = query
	in.publish(eventbus.SearchStartedEvent{FieldID: in.id, Query: query})
	in.log.Debug("search dispatched", "field", in.id, "query", query)

	go func() {
		raw, err := in.cfg.Search(context.Background(), query)
		in.resolve(query, raw, err)
	}()
}

// resolve applies a settled search to the instance, or drops it
func (in *Instance) resolve(token string, raw []any, err error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.destroyed {
		return
	}

	if err != nil {
		// Errors are not staleness-guarded: any settling failure surfaces,
		// even when the field has moved on.
		in.searchingFor = ""
		in.items = nil
		in.highlight = -1
		in.visible = false
		in.errText = err.Error()
		in.log.Warn("search failed", "field", in.id, "query", token, "err", err)
		in.publish(eventbus.SearchFailedEvent{FieldID: in.id, Query: token, Message: err.Error()})
		return
	}

	if in.field.Value() != token {
		// Superseded by a newer dispatch or a clear. Only the dispatch that
		// owns the busy indicator may turn it off, so a later call's
		// indicator is not stolen.
		if in.searchingFor == token {
			in.searchingFor = ""
		}
		in.log.Debug("stale result discarded", "field", in.id, "query", token)
		in.publish(eventbus.SearchDiscardedEvent{FieldID: in.id, Query: token})
		return
	}

	in.searchingFor = ""
	in.render(token, raw)
	in.publish(eventbus.SearchCompletedEvent{FieldID: in.id, Query: token, Count: len(in.items)})
}
