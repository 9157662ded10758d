package tui

import (
	"strings"
	"unicode/utf8"
)

// maxInputLen is the maximum number of runes allowed in a form field.
const maxInputLen = 256

// editRune processes a keystroke for inline text editing.
// Handles backspace (rune-aware) and single printable characters.
// Returns the text unchanged for non-printable keys (enter, esc, etc.).
// Input is clamped to maxInputLen runes.
func editRune(text string, key string) string {
	switch key {
	case "backspace":
		if len(text) > 0 {
			runes := []rune(text)
			return string(runes[:len(runes)-1])
		}
		return text
	default:
		if utf8.RuneCountInString(key) == 1 {
			if utf8.RuneCountInString(text) >= maxInputLen {
				return text
			}
			return text + key
		}
		return text
	}
}

// appendPaste appends pasted text to a single-line field. Only the first
// line is kept and the result is clamped to maxInputLen runes.
func appendPaste(text, pasted string) string {
	if i := strings.IndexAny(pasted, "\r\n"); i >= 0 {
		pasted = pasted[:i]
	}
	out := []rune(text + pasted)
	if len(out) > maxInputLen {
		out = out[:maxInputLen]
	}
	return string(out)
}

// truncateToHeight limits output to maxLines newline-delimited lines.
// Returns the original string if it fits or maxLines is <= 0.
func truncateToHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return s
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
			if n >= maxLines {
				return s[:i+1]
			}
		}
	}
	return s
}

// renderFieldInput renders a single-line text input. Masked inputs show one
// bullet per rune. The cursor blinks with animFrame while focused.
func renderFieldInput(value, placeholder string, masked, focused bool, width, animFrame int) string {
	display := value
	if masked {
		display = strings.Repeat("•", utf8.RuneCountInString(value))
	}
	display = tailStr(display, width)

	cursor := ""
	if focused {
		cursor = " "
		if (animFrame/4)%2 == 0 {
			cursor = accentStyle.Render("█")
		}
	}
	if display == "" {
		if focused {
			return cursor
		}
		return inputPlaceholderStyle.Render(placeholder)
	}
	if focused {
		return selectedStyle.Render(display) + cursor
	}
	return normalStyle.Render(display)
}
