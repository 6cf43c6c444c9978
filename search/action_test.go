package search

import "testing"

func TestDirectURLKeepsAnyScheme(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"example.com", "https://example.com", true},
		{"https://example.com", "https://example.com", true},
		{"HTTPS://x.com", "HTTPS://x.com", true},
		{"Http://x.com", "Http://x.com", true},
		{"ftp://x.com", "ftp://x.com", true},
		{"example.com:8080/path", "https://example.com:8080/path", true},
		{"localhost", "", false},
		{"a.b c", "", false},
	}
	for _, tt := range tests {
		got, ok := DirectURL(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%q: expected (%q, %v), got (%q, %v)", tt.input, tt.want, tt.ok, got, ok)
		}
	}
}
