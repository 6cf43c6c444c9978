// Package search implements the search bar's interaction state: the trigger
// zone that reveals the shortcuts button, "/" autocomplete over the site
// catalog, keyboard navigation and what Enter does.
package search

import (
	"strings"

	"github.com/automoto/startpage/sites"
)

const (
	// TriggerPrefix starts an autocomplete query.
	TriggerPrefix = "/"
	// TriggerZoneWidth is the band at the right edge of the container that
	// reveals the shortcuts button. A pointer exactly TriggerZoneWidth from
	// the edge is outside the band.
	TriggerZoneWidth = 78.0
	// MaxSuggestions caps the autocomplete list.
	MaxSuggestions = 5
)

// State is the visible mode of the search bar, derived from the machine's
// flags. When several apply the last in declaration order wins.
type State int

const (
	Idle State = iota
	Focused
	HoveringTriggerZone
	ShowingSuggestions
	ModalOpen
)

func (s State) String() string {
	switch s {
	case Focused:
		return "focused"
	case HoveringTriggerZone:
		return "hoveringTriggerZone"
	case ShowingSuggestions:
		return "showingSuggestions"
	case ModalOpen:
		return "modalOpen"
	default:
		return "idle"
	}
}

// Key is a key the input reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyArrowDown
	KeyArrowUp
	KeyEnter
	KeyEscape
)

// Machine holds the search bar state. It is driven by the page's input
// system; every method runs on the update goroutine.
type Machine struct {
	catalog []sites.Site
	engine  string

	value       string
	suggestions []sites.Site
	selected    int

	focused   bool
	triggered bool
	modalOpen bool
}

// NewMachine returns a machine filtering catalog and submitting plain queries
// to engine.
func NewMachine(catalog []sites.Site, engine string) *Machine {
	return &Machine{catalog: catalog, engine: engine}
}

// PointerMove handles a move inside the container. x is relative to the
// container's left edge and width is its current width. Moves are ignored
// while the modal is open or the input has text.
func (m *Machine) PointerMove(x, width float64) {
	if m.modalOpen || m.value != "" {
		return
	}
	m.triggered = width-x < TriggerZoneWidth
}

// PointerLeave handles the pointer leaving the container.
func (m *Machine) PointerLeave() {
	if !m.modalOpen {
		m.triggered = false
	}
}

// MouseDownOutside handles a press outside both the container and the
// shortcuts button.
func (m *Machine) MouseDownOutside() {
	m.triggered = false
}

func (m *Machine) Focus() {
	m.focused = true
	m.triggered = false
}

func (m *Machine) Blur() {
	m.focused = false
}

// Change replaces the input text and refreshes the suggestions.
func (m *Machine) Change(value string) {
	m.value = value
	m.triggered = false

	if !strings.HasPrefix(value, TriggerPrefix) {
		m.suggestions = nil
		return
	}
	m.suggestions = sites.Filter(m.catalog, strings.TrimPrefix(value, TriggerPrefix), MaxSuggestions)
	m.selected = 0
}

// KeyDown handles a key press in the input and returns what the page should
// do in response.
func (m *Machine) KeyDown(k Key) Action {
	if m.modalOpen && k == KeyEscape {
		m.CloseModal()
		return Action{PreventDefault: true}
	}

	if n := len(m.suggestions); n > 0 {
		switch k {
		case KeyArrowDown:
			m.selected = (m.selected + 1) % n
			return Action{PreventDefault: true}
		case KeyArrowUp:
			m.selected = (m.selected - 1 + n) % n
			return Action{PreventDefault: true}
		}
	}

	switch k {
	case KeyEnter:
		return m.enter()
	case KeyEscape:
		m.suggestions = nil
	}
	return Action{}
}

func (m *Machine) enter() Action {
	if strings.HasPrefix(m.value, TriggerPrefix) && len(m.suggestions) > 0 {
		if m.selected < 0 || m.selected >= len(m.suggestions) {
			return Action{PreventDefault: true}
		}
		return Navigate(m.suggestions[m.selected].URL)
	}
	if u, ok := DirectURL(m.value); ok {
		return Navigate(u)
	}
	return Submit(SearchURL(m.engine, m.value))
}

// Choose navigates to suggestion i, as when its row is clicked.
func (m *Machine) Choose(i int) Action {
	if i < 0 || i >= len(m.suggestions) {
		return Action{}
	}
	m.selected = i
	return Navigate(m.suggestions[i].URL)
}

func (m *Machine) OpenModal() {
	m.modalOpen = true
}

func (m *Machine) CloseModal() {
	m.modalOpen = false
}

// State returns the current visible mode.
func (m *Machine) State() State {
	switch {
	case m.modalOpen:
		return ModalOpen
	case m.SuggestionsVisible():
		return ShowingSuggestions
	case m.triggered:
		return HoveringTriggerZone
	case m.focused:
		return Focused
	default:
		return Idle
	}
}

// SuggestionsVisible reports whether the autocomplete list is shown.
func (m *Machine) SuggestionsVisible() bool {
	return m.focused && strings.HasPrefix(m.value, TriggerPrefix) && len(m.suggestions) > 0
}

func (m *Machine) Value() string { return m.value }
func (m *Machine) Suggestions() []sites.Site { return m.suggestions }
func (m *Machine) Selected() int { return m.selected }
func (m *Machine) Triggered() bool { return m.triggered }
func (m *Machine) IsFocused() bool { return m.focused }
func (m *Machine) IsModalOpen() bool { return m.modalOpen }
func (m *Machine) Catalog() []sites.Site { return m.catalog }
