package typeahead

import (
	"sync"

	"github.com/charmbracelet/log"

	"typeahead/internal/eventbus"
	"typeahead/internal/logger"
)

// PointerHook is the host's document-level pointer listener. Install is
// called once when the first instance binds, Remove once when the last one
// is destroyed; in between the host feeds every pointer-down target to the
// installed handler.
type PointerHook interface {
	Install(handler func(target any))
	Remove()
}

// Registry tracks all live widget instances and owns the one shared
// outside-click listener that closes open lists.
type Registry struct {
	mu            sync.Mutex
	nextID        int
	entries       []*Instance
	bus           eventbus.EventBus
	hook          PointerHook
	hookInstalled bool
	log           *log.Logger
}

// NewRegistry creates a registry. Both bus and hook may be nil when the
// host needs neither events nor outside-click dismissal.
func NewRegistry(bus eventbus.EventBus, hook PointerHook) *Registry {
	return &Registry{
		bus:  bus,
		hook: hook,
		log:  logger.New("typeahead"),
	}
}

// Bind attaches a widget to field. A field carries at most one instance:
// binding it again destroys the prior instance first. The field's
// placeholder is snapshotted for restoration at teardown.
func (r *Registry) Bind(field Field, cfg Config) (*Instance, error) {
	if field == nil {
		return nil, ErrNilField
	}
	if cfg.Search == nil {
		return nil, ErrMissingSearch
	}
	if cfg.Label == nil {
		cfg.Label = defaultLabel
	}
	if cfg.Mark == nil {
		cfg.Mark = defaultMark
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = DefaultMinLength
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.ListHeight <= 0 {
		cfg.ListHeight = DefaultListHeight
	}

	r.mu.Lock()
	var prior *Instance
	for i, e := range r.entries {
		if e.field == field {
			prior = e
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}
	if prior != nil {
		prior.teardown()
	}

	r.nextID++
	in := &Instance{
		id:               r.nextID,
		cfg:              cfg,
		field:            field,
		reg:              r,
		bus:              r.bus,
		log:              r.log,
		highlight:        -1,
		savedPlaceholder: field.Placeholder(),
	}
	r.entries = append(r.entries, in)

	if !r.hookInstalled && r.hook != nil {
		r.hook.Install(r.pointerDown)
		r.hookInstalled = true
	}
	r.mu.Unlock()

	in.publish(eventbus.InstanceBoundEvent{FieldID: in.id, Rebound: prior != nil})
	r.log.Debug("instance bound", "field", in.id, "rebound", prior != nil)
	return in, nil
}

// unbind removes in from the registry; the last removal also removes the
// shared pointer listener.
func (r *Registry) unbind(in *Instance) {
	r.mu.Lock()
	removed := false
	for i, e := range r.entries {
		if e == in {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			removed = true
			break
		}
	}
	if removed && len(r.entries) == 0 && r.hookInstalled {
		r.hook.Remove()
		r.hookInstalled = false
	}
	r.mu.Unlock()

	if removed {
		in.teardown()
	}
}

// Count returns the number of live instances
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Lookup returns the instance bound to field, or nil
func (r *Registry) Lookup(field Field) *Instance {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.field == field {
			return e
		}
	}
	return nil
}

// pointerDown routes one pointer interaction to every live instance: any
// instance not containing the target closes its list and drops its
// highlight. This is the single shared "click outside closes the menu"
// listener; instances never install their own.
func (r *Registry) pointerDown(target any) {
	r.mu.Lock()
	live := make([]*Instance, len(r.entries))
	copy(live, r.entries)
	r.mu.Unlock()

	for _, in := range live {
		if in.contains(target) {
			continue
		}
		in.dismiss()
	}
}
