package typeahead

import (
	"context"
	"sync"
	"time"
)

// fakeField is an in-memory Field for tests
type fakeField struct {
	mu          sync.Mutex
	value       string
	focused     bool
	placeholder string
}

func newFakeField() *fakeField {
	return &fakeField{focused: true}
}

func (f *fakeField) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

func (f *fakeField) SetValue(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = v
}

func (f *fakeField) Focused() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.focused
}

func (f *fakeField) setFocused(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.focused = v
}

func (f *fakeField) Placeholder() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.placeholder
}

func (f *fakeField) SetPlaceholder(p string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.placeholder = p
}

// fakeHook records install/remove calls of the shared pointer listener
type fakeHook struct {
	mu       sync.Mutex
	handler  func(target any)
	installs int
	removes  int
}

func (h *fakeHook) Install(fn func(target any)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handler = fn
	h.installs++
}

func (h *fakeHook) Remove() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handler = nil
	h.removes++
}

func (h *fakeHook) installed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.handler != nil
}

func (h *fakeHook) fire(target any) {
	h.mu.Lock()
	fn := h.handler
	h.mu.Unlock()
	if fn != nil {
		fn(target)
	}
}

// recordingSearch counts dispatches and answers each query with fixed items
type recordingSearch struct {
	mu      sync.Mutex
	queries []string
	items   []any
	err     error
}

func (s *recordingSearch) fn(ctx context.Context, query string) ([]any, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if s.items != nil {
		return s.items, nil
	}
	return []any{query}, nil
}

func (s *recordingSearch) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.queries))
	copy(out, s.queries)
	return out
}

// testConfig is a Config with a short debounce suited to test timing
func testConfig(search SearchFunc) Config {
	return Config{
		Debounce: 10 * time.Millisecond,
		Search:   search,
	}
}

// typeInto simulates a keystroke: new field value plus the input event
func typeInto(in *Instance, f *fakeField, value string) {
	f.SetValue(value)
	in.HandleInput()
}
