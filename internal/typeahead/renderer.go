package typeahead

// render rebuilds the suggestion list from a raw result set. Order and
// content are exactly as the search function returned them; no sorting, no
// deduplication. Caller holds mu.
func (in *Instance) render(query string, raw []any) {
	in.errText = ""
	in.highlight = -1
	in.offset = 0

	if len(raw) == 0 {
		in.items = nil
		in.visible = false
		return
	}

	items := make([]*Suggestion, 0, len(raw))
	for _, r := range raw {
		label := in.cfg.Label(r)
		items = append(items, &Suggestion{
			Raw:    r,
			Label:  label,
			Markup: in.cfg.Mark(query, label, r),
		})
	}
	in.items = items
	in.visible = true
}
