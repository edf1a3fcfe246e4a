package ui

import (
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
)

// FieldAdapter exposes a bubbles textinput as a typeahead.Field
type FieldAdapter struct {
	ti *textinput.Model
}

// NewFieldAdapter wraps ti; the pointer must stay stable for the lifetime
// of the binding since the registry identifies fields by it.
func NewFieldAdapter(ti *textinput.Model) *FieldAdapter {
	return &FieldAdapter{ti: ti}
}

func (f *FieldAdapter) Value() string          { return f.ti.Value() }
func (f *FieldAdapter) SetValue(v string)      { f.ti.SetValue(v) }
func (f *FieldAdapter) Focused() bool          { return f.ti.Focused() }
func (f *FieldAdapter) Placeholder() string    { return f.ti.Placeholder }
func (f *FieldAdapter) SetPlaceholder(p string) { f.ti.Placeholder = p }

// PointerHook is the registry's document-level pointer listener slot. The
// model's mouse handling feeds every press through Fire; the registry
// installs its handler while at least one widget is bound.
type PointerHook struct {
	mu      sync.Mutex
	handler func(target any)
}

func NewPointerHook() *PointerHook {
	return &PointerHook{}
}

func (h *PointerHook) Install(fn func(target any)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handler = fn
}

func (h *PointerHook) Remove() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handler = nil
}

// Installed reports whether the registry currently listens
func (h *PointerHook) Installed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.handler != nil
}

// Fire routes one pointer-down target to the installed handler, if any
func (h *PointerHook) Fire(target any) {
	h.mu.Lock()
	fn := h.handler
	h.mu.Unlock()
	if fn != nil {
		fn(target)
	}
}
