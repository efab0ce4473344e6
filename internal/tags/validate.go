package tags

import (
	"regexp"
	"strings"
)

// markupPattern catches angle-bracket tag-like substrings. This is a
// conservative sanitation check, not an HTML parser.
var markupPattern = regexp.MustCompile(`<[^>]*>`)

// ValidText reports whether a token name or symbol is usable in a tag: it
// must be non-empty after trimming and free of markup-like substrings.
func ValidText(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return !markupPattern.MatchString(s)
}
