package search

import (
	"net/url"
	"strings"
)

// ActionKind says what a key press asks the page to do.
type ActionKind int

const (
	ActionNone ActionKind = iota
	// ActionNavigate opens URL directly.
	ActionNavigate
	// ActionSubmit is the default form submission: a web search for the input.
	ActionSubmit
)

// Action is the result of a key press.
type Action struct {
	Kind ActionKind
	URL  string
	// PreventDefault is set when the machine consumed the key.
	PreventDefault bool
}

func Navigate(u string) Action {
	return Action{Kind: ActionNavigate, URL: u, PreventDefault: true}
}

func Submit(u string) Action {
	return Action{Kind: ActionSubmit, URL: u}
}

// DirectURL treats input that contains a dot and no space as a bare address.
// It adds https:// unless the input already starts with a scheme://, in any
// case.
func DirectURL(input string) (string, bool) {
	if !strings.Contains(input, ".") || strings.Contains(input, " ") {
		return "", false
	}
	if hasScheme(input) {
		return input, true
	}
	return "https://" + input, true
}

// hasScheme reports whether input starts with scheme "://". A bare
// host:port parses with a scheme too, so the slashes are required.
func hasScheme(input string) bool {
	u, err := url.Parse(input)
	if err != nil || u.Scheme == "" {
		return false
	}
	return strings.HasPrefix(input[len(u.Scheme):], "://")
}

// SearchURL builds the query address for engine, the way a GET form with a
// single "q" field would.
func SearchURL(engine, query string) string {
	return engine + "?" + url.Values{"q": {query}}.Encode()
}

// Navigator performs navigation side effects.
type Navigator interface {
	Navigate(u string) error
}

// Perform hands a navigating or submitting action to nav. Other actions are
// ignored.
func Perform(nav Navigator, a Action) error {
	if nav == nil || a.Kind == ActionNone || a.URL == "" {
		return nil
	}
	return nav.Navigate(a.URL)
}
