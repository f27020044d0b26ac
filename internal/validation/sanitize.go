package validation

import "strings"

// Field-specific maximum lengths applied after escaping.
const (
	MaxUsernameLen        = 30
	MaxItemNameLen        = 100
	MaxPersonalityNameLen = 50
	MaxSuggestionLen      = 500
	DefaultMaxLen         = 200
)

// htmlEscaper rewrites every character that a downstream HTML consumer
// could interpret as markup. Single-pass, so already-escaped entities are
// only escaped at their ampersand and never recursively.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"/", "&#x2F;",
)

// Sanitize trims, HTML-escapes and truncates a free-text field. Safe
// ASCII without special characters passes through unchanged.
func Sanitize(input string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLen
	}

	clean := htmlEscaper.Replace(strings.TrimSpace(input))

	if runes := []rune(clean); len(runes) > maxLength {
		clean = string(runes[:maxLength])
	}
	return clean
}
