package ui

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"typeahead/internal/config"
	"typeahead/internal/eventbus"
	"typeahead/internal/sources"
	"typeahead/internal/typeahead"
)

// boundField is one demo input with its live widget instance
type boundField struct {
	name    string
	ti      *textinput.Model
	adapter *FieldAdapter
	inst    *typeahead.Instance
}

// section maps rendered rows back to what was drawn there, so mouse
// presses can be routed to the owning widget or reported as outside
type section struct {
	field    *boundField
	top      int // first row of the block (label line)
	inputRow int
	listTop  int // first suggestion row, -1 when no list is drawn
	listRows int
}

// Model is the demo program: two fields sharing one registry, so the
// shared outside-click dismissal is actually exercised.
type Model struct {
	cfg    *config.Config
	bus    eventbus.EventBus
	reg    *typeahead.Registry
	hook   *PointerHook
	fields []*boundField
	focus  int
	status string
	width  int
}

// NewModel builds the demo model and binds its widgets
func NewModel(cfg *config.Config, bus eventbus.EventBus) (*Model, error) {
	m := &Model{
		cfg:  cfg,
		bus:  bus,
		hook: NewPointerHook(),
	}
	m.reg = typeahead.NewRegistry(bus, m.hook)

	fruitTI := textinput.New()
	fruitTI.Placeholder = "type a fruit…"
	fruitTI.Prompt = "> "
	fruitTI.Focus()
	fruit := &boundField{name: "fruit", ti: &fruitTI}
	fruit.adapter = NewFieldAdapter(fruit.ti)

	cityTI := textinput.New()
	cityTI.Placeholder = "type a city…"
	cityTI.Prompt = "> "
	city := &boundField{name: "city", ti: &cityTI}
	city.adapter = NewFieldAdapter(city.ti)

	widgetCfg := func(search typeahead.SearchFunc, mark typeahead.MarkFunc) typeahead.Config {
		return typeahead.Config{
			MinLength:  cfg.Widget.MinLength,
			Debounce:   time.Duration(cfg.Widget.DebounceMs) * time.Millisecond,
			ListHeight: cfg.Widget.ListHeight,
			Search:     search,
			Label:      entryLabel,
			Mark:       mark,
		}
	}

	var err error
	fruit.inst, err = m.reg.Bind(fruit.adapter, widgetCfg(fruitSource().Search, typeahead.MarkPrefix))
	if err != nil {
		return nil, fmt.Errorf("binding fruit field: %w", err)
	}

	citySearch := citySource().Search
	if cfg.Demo.SearchURL != "" {
		citySearch = sources.NewHTTPSearch(func(query string) string {
			return cfg.Demo.SearchURL + "?q=" + url.QueryEscape(query)
		}, sources.HTTPOptions{})
	}
	city.inst, err = m.reg.Bind(city.adapter, widgetCfg(citySearch, typeahead.MarkAnywhere))
	if err != nil {
		return nil, fmt.Errorf("binding city field: %w", err)
	}

	m.fields = []*boundField{fruit, city}
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case EventMsg:
		m.status = describe(msg.Event)
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.press(msg.Y)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateFocusedInput(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.teardown()
		return m, tea.Quit
	case "ctrl+l":
		m.fields[m.focus].inst.Clear()
		return m, nil
	case "shift+tab":
		return m, m.cycleFocus()
	}

	if key := mapKey(msg); key != typeahead.KeyOther {
		if m.fields[m.focus].inst.HandleKey(key) {
			return m, nil
		}
		// an unconsumed Tab keeps its usual meaning and moves focus
		if key == typeahead.KeyTab {
			return m, m.cycleFocus()
		}
		if key == typeahead.KeyEnter {
			return m, nil
		}
	}

	return m, m.updateFocusedInput(msg)
}

// updateFocusedInput forwards a message to the focused textinput and
// notifies the widget when the value actually changed.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	f := m.fields[m.focus]
	before := f.ti.Value()
	var cmd tea.Cmd
	*f.ti, cmd = f.ti.Update(msg)
	if f.ti.Value() != before {
		f.inst.HandleInput()
	}
	return cmd
}

// cycleFocus moves keyboard focus to the next field
func (m *Model) cycleFocus() tea.Cmd {
	m.fields[m.focus].ti.Blur()
	m.focus = (m.focus + 1) % len(m.fields)
	next := m.fields[m.focus]
	next.ti.Focus()
	next.inst.HandleFocus()
	return textinput.Blink
}

// press routes a mouse press at row y: inside a field's block it focuses
// the field (or commits the clicked suggestion), anywhere else it is an
// outside interaction that dismisses open lists.
func (m *Model) press(y int) {
	_, secs := m.layout()
	for _, sec := range secs {
		inList := sec.listTop >= 0 && y >= sec.listTop && y < sec.listTop+sec.listRows
		if y != sec.top && y != sec.inputRow && !inList {
			continue
		}

		if m.fields[m.focus] != sec.field {
			m.fields[m.focus].ti.Blur()
			for i, f := range m.fields {
				if f == sec.field {
					m.focus = i
				}
			}
			sec.field.ti.Focus()
		}

		if inList {
			items := sec.field.inst.Items()
			idx := sec.field.inst.Window() + (y - sec.listTop)
			if idx >= 0 && idx < len(items) {
				sec.field.inst.Commit(items[idx])
			}
		} else {
			sec.field.inst.HandleFocus()
		}

		m.hook.Fire(sec.field.adapter)
		return
	}

	// outside every widget
	m.hook.Fire(nil)
}

func (m *Model) View() string {
	lines, _ := m.layout()
	return strings.Join(lines, "\n")
}

// layout renders the screen and records which rows belong to which widget.
// View and mouse routing share it so they can never drift apart.
func (m *Model) layout() ([]string, []section) {
	var lines []string
	var secs []section

	lines = append(lines, titleStyle.Render("typeahead demo"))

	for _, f := range m.fields {
		sec := section{field: f, top: len(lines), listTop: -1}
		lines = append(lines, labelStyle.Render(f.name))
		sec.inputRow = len(lines)
		lines = append(lines, f.ti.View())

		switch {
		case f.inst.Searching():
			lines = append(lines, searchingStyle.Render("searching…"))
		case f.inst.ErrorText() != "":
			lines = append(lines, errorStyle.Render(f.inst.ErrorText()))
		case f.inst.Visible():
			items := f.inst.Items()
			offset := f.inst.Window()
			end := offset + m.cfg.Widget.ListHeight
			if end > len(items) {
				end = len(items)
			}
			sec.listTop = len(lines)
			for i := offset; i < end; i++ {
				lines = append(lines, m.renderRow(f, items, i))
				sec.listRows++
			}
		}

		lines = append(lines, "")
		secs = append(secs, sec)
	}

	lines = append(lines, statusStyle.Render(m.status))
	lines = append(lines, helpStyle.Render("↑/↓ navigate · enter/tab pick · shift+tab switch field · ctrl+l clear · esc quit"))
	return lines, secs
}

func (m *Model) renderRow(f *boundField, items []*typeahead.Suggestion, i int) string {
	it := items[i]
	text := it.Markup
	if it.Active {
		text = activeMarkStyle.Render("•") + " " + text
	}
	if i == f.inst.Highlight() {
		return hoverRowStyle.Render(text)
	}
	return listRowStyle.Render(text)
}

// teardown destroys every widget; the last one removes the shared listener
func (m *Model) teardown() {
	for _, f := range m.fields {
		f.inst.Destroy()
	}
}

// mapKey translates a bubbletea key into the navigator's vocabulary
func mapKey(msg tea.KeyMsg) typeahead.Key {
	switch msg.Type {
	case tea.KeyDown:
		return typeahead.KeyDown
	case tea.KeyUp:
		return typeahead.KeyUp
	case tea.KeyEnter:
		return typeahead.KeyEnter
	case tea.KeyTab:
		return typeahead.KeyTab
	default:
		return typeahead.KeyOther
	}
}

// entryLabel derives display text from the demo's raw item shapes: trie
// entries, plain strings from a JSON endpoint, or objects with a "name"
func entryLabel(raw any) string {
	switch v := raw.(type) {
	case sources.Entry:
		return v.Word
	case string:
		return v
	case map[string]any:
		if name, ok := v["name"].(string); ok {
			return name
		}
	}
	return fmt.Sprintf("%v", raw)
}

func fruitSource() *sources.TrieSource {
	s := sources.NewTrieSource(25)
	for word, weight := range map[string]int{
		"apple": 90, "apricot": 40, "avocado": 55, "banana": 85,
		"blackberry": 45, "blueberry": 60, "cherry": 70, "cranberry": 35,
		"fig": 30, "grape": 75, "grapefruit": 50, "kiwi": 52, "lemon": 65,
		"lime": 48, "mango": 80, "melon": 58, "orange": 88, "papaya": 42,
		"peach": 68, "pear": 62, "pineapple": 72, "plum": 46,
		"pomegranate": 38, "raspberry": 56, "strawberry": 82,
	} {
		s.Add(word, weight)
	}
	return s
}

func citySource() *sources.TrieSource {
	s := sources.NewTrieSource(25)
	for word, weight := range map[string]int{
		"Amsterdam": 60, "Athens": 50, "Barcelona": 70, "Berlin": 80,
		"Boston": 55, "Budapest": 45, "Buenos Aires": 58, "Cairo": 52,
		"Chicago": 62, "Copenhagen": 48, "Dublin": 46, "Helsinki": 40,
		"Lisbon": 56, "London": 90, "Madrid": 72, "Melbourne": 54,
		"Mumbai": 64, "Nairobi": 42, "New York": 88, "Oslo": 44,
		"Paris": 86, "Prague": 57, "Seoul": 66, "Singapore": 68,
		"Tokyo": 84, "Vienna": 59, "Warsaw": 47, "Wellington": 36,
	} {
		s.Add(word, weight)
	}
	return s
}
