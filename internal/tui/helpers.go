package tui

import "unicode/utf8"

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}

// tailStr keeps the last maxLen runes of s, prefixing an ellipsis when cut.
// Used for inputs, where the end being typed matters most.
func tailStr(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return "…" + string(runes[len(runes)-maxLen+1:])
}
