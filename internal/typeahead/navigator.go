package typeahead

// HandleKey feeds one recognized key to the navigator. The return value
// reports whether the widget consumed the key; an unconsumed key should be
// handled by the host as usual.
//
// Keys are only honored while the bound field has focus. With the list
// closed and no retained items, every key passes through.
func (in *Instance) HandleKey(key Key) bool {
	var commit *Suggestion
	var enter func(raw any, item *Suggestion)
	var enterItem *Suggestion

	in.mu.Lock()
	if in.destroyed || !in.field.Focused() {
		in.mu.Unlock()
		return false
	}

	switch key {
	case KeyDown, KeyUp:
		if !in.visible {
			if len(in.items) == 0 {
				in.mu.Unlock()
				return false
			}
			// reopen a previously populated, hidden list without picking
			// a highlight
			in.visible = true
			in.mu.Unlock()
			return true
		}
		in.moveHighlight(key)
		in.mu.Unlock()
		return true

	case KeyEnter:
		if !in.visible {
			in.mu.Unlock()
			return false
		}
		if in.cfg.OnEnter != nil {
			enter = in.cfg.OnEnter
			enterItem = in.highlightedOrActive()
		} else {
			commit = in.commitTarget()
		}

	case KeyTab:
		if !in.visible {
			in.mu.Unlock()
			return false
		}
		commit = in.commitTarget()

	default:
		in.mu.Unlock()
		return false
	}
	in.mu.Unlock()

	if enter != nil {
		if enterItem != nil {
			enter(enterItem.Raw, enterItem)
		} else {
			enter(nil, nil)
		}
		return true
	}
	in.Commit(commit)
	return true
}

// moveHighlight advances the hover one step with wrap-around. From no
// highlight, down lands on the first entry and up on the last. Caller
// holds mu; the list is open, hence non-empty.
func (in *Instance) moveHighlight(key Key) {
	n := len(in.items)
	if n == 0 {
		return
	}
	switch {
	case key == KeyDown && in.highlight < 0:
		in.highlight = 0
	case key == KeyDown:
		in.highlight = (in.highlight + 1) % n
	case key == KeyUp && in.highlight < 0:
		in.highlight = n - 1
	default:
		in.highlight = (in.highlight - 1 + n) % n
	}
	in.scrollIntoView()
}

// scrollIntoView keeps the highlighted row inside the list window
func (in *Instance) scrollIntoView() {
	h := in.cfg.ListHeight
	if h <= 0 || in.highlight < 0 {
		return
	}
	if in.highlight < in.offset {
		in.offset = in.highlight
	} else if in.highlight >= in.offset+h {
		in.offset = in.highlight - h + 1
	}
}

// commitTarget picks what Tab (and default Enter) commits: the hovered
// entry, else the previously committed one, else the first. Caller holds mu.
func (in *Instance) commitTarget() *Suggestion {
	if in.highlight >= 0 && in.highlight < len(in.items) {
		return in.items[in.highlight]
	}
	for _, it := range in.items {
		if it.Active {
			return it
		}
	}
	if len(in.items) > 0 {
		return in.items[0]
	}
	return nil
}

// highlightedOrActive is the item handed to a configured Enter override,
// nil when the list has neither a hover nor a prior commit. Caller holds mu.
func (in *Instance) highlightedOrActive() *Suggestion {
	if in.highlight >= 0 && in.highlight < len(in.items) {
		return in.items[in.highlight]
	}
	for _, it := range in.items {
		if it.Active {
			return it
		}
	}
	return nil
}
