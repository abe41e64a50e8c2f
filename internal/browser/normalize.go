package browser

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultSearchEngine is used when no engine is configured.
const DefaultSearchEngine = "google"

// SearchEngines maps engine names to query URL prefixes.
var SearchEngines = map[string]string{
	"google":     "https://www.google.com/search?q=",
	"duckduckgo": "https://duckduckgo.com/?q=",
	"bing":       "https://www.bing.com/search?q=",
}

var hostPattern = regexp.MustCompile(`^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)

// componentEscaper turns url.QueryEscape output into encodeURIComponent form.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// SearchPrefix returns the query prefix for a named engine.
func SearchPrefix(engine string) (string, bool) {
	p, ok := SearchEngines[strings.ToLower(engine)]
	return p, ok
}

// NormalizeInput turns address bar input into a target URL. It returns false
// for blank input. searchPrefix is prepended to the escaped query when the
// input does not look like an address.
func NormalizeInput(raw, searchPrefix string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	if hasScheme(raw) {
		return raw, true
	}

	if looksLikeURL(raw) {
		return "https://" + raw, true
	}

	if searchPrefix == "" {
		searchPrefix = SearchEngines[DefaultSearchEngine]
	}
	return searchPrefix + EscapeComponent(raw), true
}

// EscapeComponent escapes s the way JavaScript's encodeURIComponent does.
func EscapeComponent(s string) string {
	return componentEscaper.Replace(url.QueryEscape(s))
}

var passthroughSchemes = []string{"http://", "https://", "internal://"}

// hasScheme reports whether s starts with a scheme that is loaded as is.
// Schemes compare case-insensitively.
func hasScheme(s string) bool {
	for _, scheme := range passthroughSchemes {
		if len(s) >= len(scheme) && strings.EqualFold(s[:len(scheme)], scheme) {
			return true
		}
	}
	return false
}

// looksLikeURL ORs the hostname pattern with a bare dot check, so inputs the
// pattern rejects (uppercase hosts, ports) still count as addresses.
func looksLikeURL(s string) bool {
	return hostPattern.MatchString(s) || strings.Contains(s, ".")
}
