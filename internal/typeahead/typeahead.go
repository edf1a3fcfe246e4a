// Package typeahead implements a debounced suggestion widget bound to a text
// field: as the field's value changes, searches are dispatched after a quiet
// interval, results are rendered as a navigable list, and a selection is
// committed back into the field. Rendering of the list is left to the host;
// the widget owns the state the host draws from.
package typeahead

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Defaults applied by Registry.Bind when a Config field is zero
const (
	DefaultMinLength  = 1
	DefaultDebounce   = 200 * time.Millisecond
	DefaultListHeight = 8
)

// ErrMissingSearch is returned by Bind when no search function is configured.
// This is a consumer configuration defect; no instance is registered.
var ErrMissingSearch = errors.New("typeahead: config has no search function")

// ErrNilField is returned by Bind when no field is given
var ErrNilField = errors.New("typeahead: cannot bind a nil field")

// Field is the bound input control. It is owned by the host; the widget only
// reads and writes its value, focus state and placeholder.
type Field interface {
	Value() string
	SetValue(string)
	Focused() bool
	Placeholder() string
	SetPlaceholder(string)
}

// SearchFunc produces the raw suggestion items for a query. It may block;
// the widget never cancels it, a stale result is simply ignored.
type SearchFunc func(ctx context.Context, query string) ([]any, error)

// LabelFunc derives the display/commit text from a raw item
type LabelFunc func(raw any) string

// MarkFunc derives the highlighted display markup from the query and label
type MarkFunc func(query, label string, raw any) string

// Config is the per-instance configuration. It is immutable after Bind.
type Config struct {
	// MinLength is the query length below which the list is cleared and no
	// search is dispatched.
	MinLength int
	// Debounce is the span of input quiescence before a search dispatches
	Debounce time.Duration
	// ListHeight is the number of visible rows of the suggestion list,
	// used to keep the highlight inside the scrolled window.
	ListHeight int

	// Search is required; it is the sole source of result data
	Search SearchFunc
	// Label derives display/commit text; defaults to the raw string value
	Label LabelFunc
	// Mark derives highlighted markup; defaults to the unmarked label
	Mark MarkFunc

	// OnSelect is invoked when a suggestion is committed
	OnSelect func(raw any, item *Suggestion)
	// OnClear is invoked when the emptied field clears the list
	OnClear func()
	// OnEnter, when set, replaces the Enter key's default commit behavior.
	// It receives the highlighted or last-committed item, or nil for neither.
	OnEnter func(raw any, item *Suggestion)

	// HitTest reports whether a pointer target lies within this instance's
	// field or list. Defaults to target == the bound field.
	HitTest func(target any) bool
}

// Suggestion is one rendered list entry, rebuilt on every successful search
type Suggestion struct {
	Raw    any    // underlying item from the search function, opaque here
	Label  string // display and commit text
	Markup string // highlighted display markup
	Active bool   // last committed choice; independent of the hover highlight
}

// Key is the subset of keys the navigator recognizes
type Key int

const (
	KeyOther Key = iota
	KeyDown
	KeyUp
	KeyEnter
	KeyTab
)

func defaultLabel(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func defaultMark(query, label string, raw any) string {
	return label
}
