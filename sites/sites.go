// Package sites holds the shortcut catalog shown in autocomplete and the
// shortcuts modal.
package sites

import "strings"

// Site is one shortcut entry.
type Site struct {
	Name    string `toml:"name"`
	URL     string `toml:"url"`
	Favicon string `toml:"favicon"`
}

// FaviconURL returns the favicon service address for a domain.
func FaviconURL(domain string) string {
	return "https://www.google.com/s2/favicons?domain=" + domain + "&sz=128"
}

// Default is the built-in catalog, in display order.
var Default = []Site{
	{Name: "Gmail", URL: "https://mail.google.com", Favicon: FaviconURL("mail.google.com")},
	{Name: "YouTube", URL: "https://youtube.com", Favicon: FaviconURL("youtube.com")},
	{Name: "Church", URL: "https://churchofjesuschrist.org", Favicon: FaviconURL("churchofjesuschrist.org")},
	{Name: "Drive", URL: "https://drive.google.com", Favicon: FaviconURL("drive.google.com")},
	{Name: "Sight Reading Factory", URL: "https://sightreadingfactory.com", Favicon: FaviconURL("sightreadingfactory.com")},
	{Name: "ChatGPT", URL: "https://chat.openai.com", Favicon: FaviconURL("chat.openai.com")},
	{Name: "Google AI Studio", URL: "https://aistudio.google.com", Favicon: FaviconURL("aistudio.google.com")},
}

// Filter returns the sites whose name contains query, ignoring case, in
// catalog order and capped at limit. A limit <= 0 means no cap.
func Filter(catalog []Site, query string, limit int) []Site {
	q := strings.ToLower(query)
	var out []Site
	for _, s := range catalog {
		if !strings.Contains(strings.ToLower(s.Name), q) {
			continue
		}
		out = append(out, s)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Initial returns the letter drawn in place of a favicon.
func (s Site) Initial() string {
	for _, r := range s.Name {
		return strings.ToUpper(string(r))
	}
	return "?"
}
