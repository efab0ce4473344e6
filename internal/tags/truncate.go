package tags

const ellipsis = "..."

// Truncate bounds s to at most max characters. A trimmed string keeps its
// first max-3 runes and ends in an ellipsis, so multi-byte symbols are never
// cut mid-rune.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-len(ellipsis)]) + ellipsis
}
