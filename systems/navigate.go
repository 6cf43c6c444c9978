package systems

import (
	"fmt"
	"log"

	"github.com/automoto/startpage/search"
	"github.com/pkg/browser"
)

// BrowserNavigator opens URLs in the system browser
type BrowserNavigator struct{}

func (BrowserNavigator) Navigate(u string) error {
	if err := browser.OpenURL(u); err != nil {
		return fmt.Errorf("failed to open %s: %w", u, err)
	}
	return nil
}

// Navigator is used by the page for every search action
var Navigator search.Navigator = BrowserNavigator{}

func perform(a search.Action) {
	if err := search.Perform(Navigator, a); err != nil {
		log.Printf("Warning: %v", err)
	}
}
