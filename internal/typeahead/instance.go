package typeahead

import (
	"sync"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"typeahead/internal/eventbus"
)

// Instance is one widget bound to one field. All state behind the mutex;
// debounce timers and search goroutines re-enter through it, which is how
// the widget serializes its work without an event loop.
type Instance struct {
	mu    sync.Mutex
	id    int
	cfg   Config
	field Field
	reg   *Registry
	bus   eventbus.EventBus
	log   *log.Logger

	timer        *time.Timer
	searchingFor string // query responsible for the busy indicator, "" when idle

	items     []*Suggestion
	highlight int // index into items, -1 for none
	offset    int // first visible row of the list window
	visible   bool
	errText   string

	savedPlaceholder string
	destroyed        bool
}

// ID returns the opaque handle assigned at bind time
func (in *Instance) ID() int {
	return in.id
}

// HandleInput reacts to a change of the field's value by (re)arming the
// debounce timer. Rapid calls coalesce into a single lookup.
func (in *Instance) HandleInput() {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.destroyed {
		return
	}
	in.schedule()
}

// schedule cancels any armed timer and arms a new one. Caller holds mu.
func (in *Instance) schedule() {
	if in.timer != nil {
		in.timer.Stop()
	}
	in.timer = time.AfterFunc(in.cfg.Debounce, in.lookup)
}

// lookup fires when the debounce interval elapses with no further input.
// It reads the field's value at fire time, not the value that armed the timer.
func (in *Instance) lookup() {
	in.mu.Lock()
	if in.destroyed {
		in.mu.Unlock()
		return
	}
	query := in.field.Value()
	if query == "" {
		in.mu.Unlock()
		in.Clear()
		return
	}
	if utf8.RuneCountInString(query) < in.cfg.MinLength {
		// too short to search: drop the list and any rendered error instead
		in.items = nil
		in.highlight = -1
		in.visible = false
		in.errText = ""
		in.mu.Unlock()
		return
	}
	in.dispatch(query)
	in.mu.Unlock()
}

// HandleFocus reacts to the field gaining focus or being clicked: a still
// populated list is shown again, an empty one stays hidden.
func (in *Instance) HandleFocus() {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.destroyed {
		return
	}
	in.visible = len(in.items) > 0
}

// Commit finalizes item as the field's value, marks it active, hides the
// list and notifies the consumer. No-op for a nil item.
func (in *Instance) Commit(item *Suggestion) {
	in.mu.Lock()
	if in.destroyed || item == nil {
		in.mu.Unlock()
		return
	}
	in.field.SetValue(item.Label)
	for _, it := range in.items {
		it.Active = false
	}
	item.Active = true
	in.highlight = -1
	in.visible = false
	onSelect := in.cfg.OnSelect
	in.publish(eventbus.SuggestionCommittedEvent{FieldID: in.id, Label: item.Label})
	in.mu.Unlock()

	if onSelect != nil {
		onSelect(item.Raw, item)
	}
}

// Clear hides the list, discards its items, empties the field and notifies
// the consumer.
func (in *Instance) Clear() {
	in.mu.Lock()
	if in.destroyed {
		in.mu.Unlock()
		return
	}
	in.items = nil
	in.highlight = -1
	in.visible = false
	in.errText = ""
	in.field.SetValue("")
	onClear := in.cfg.OnClear
	in.publish(eventbus.FieldClearedEvent{FieldID: in.id})
	in.mu.Unlock()

	if onClear != nil {
		onClear()
	}
}

// Destroy tears the instance down: the pending debounce timer is cancelled,
// the field's placeholder is restored, and the registry forgets the binding.
// An in-flight search is not cancelled; its late resolution is ignored.
func (in *Instance) Destroy() {
	in.reg.unbind(in)
}

// teardown releases instance state. Called exactly once, via the registry.
func (in *Instance) teardown() {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.destroyed {
		return
	}
	in.destroyed = true
	if in.timer != nil {
		in.timer.Stop()
		in.timer = nil
	}
	in.field.SetPlaceholder(in.savedPlaceholder)
	in.items = nil
	in.highlight = -1
	in.visible = false
	in.publish(eventbus.InstanceDestroyedEvent{FieldID: in.id})
}

// dismiss closes the list and drops the keyboard highlight, leaving the
// field value and items untouched. Used by the shared outside-click path.
func (in *Instance) dismiss() {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.destroyed {
		return
	}
	wasVisible := in.visible
	in.visible = false
	in.highlight = -1
	if wasVisible {
		in.publish(eventbus.ListDismissedEvent{FieldID: in.id})
	}
}

// contains reports whether a pointer target belongs to this instance
func (in *Instance) contains(target any) bool {
	if in.cfg.HitTest != nil {
		return in.cfg.HitTest(target)
	}
	return target == any(in.field)
}

func (in *Instance) publish(e eventbus.DomainEvent) {
	if in.bus != nil {
		in.bus.Publish(e)
	}
}

// Accessors for the host's view layer. Items returns the live entries in
// render order; the host must treat them as read-only.

func (in *Instance) Items() []*Suggestion {
	in.mu.Lock()
	defer in.mu.Unlock()
	out := make([]*Suggestion, len(in.items))
	copy(out, in.items)
	return out
}

// Highlight returns the hovered index, or -1 for none
func (in *Instance) Highlight() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.highlight
}

// Visible reports whether the suggestion list is shown
func (in *Instance) Visible() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.visible
}

// Window returns the first visible row of the scrolled list window
func (in *Instance) Window() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.offset
}

// Searching reports whether a dispatched search is still unresolved
func (in *Instance) Searching() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.searchingFor != ""
}

// ErrorText returns the message of the last failed search, "" when none
func (in *Instance) ErrorText() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.errText
}
