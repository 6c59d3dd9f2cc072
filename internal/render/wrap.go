package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Wrap performs word wrapping of every line in text to the given width.
// Empty lines are kept, and words longer than width are broken.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	var result strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(wrapLine(line, width))
	}
	return result.String()
}

func wrapLine(line string, width int) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return ""
	}
	var sb strings.Builder
	lineLen := 0
	for _, word := range words {
		for lipgloss.Width(word) > width {
			head, tail := splitAt(word, width)
			if lineLen > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(head)
			lineLen = width
			word = tail
		}
		wlen := lipgloss.Width(word)
		switch {
		case lineLen == 0:
		case lineLen+1+wlen > width:
			sb.WriteString("\n")
			lineLen = 0
		default:
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(word)
		lineLen += wlen
	}
	return sb.String()
}

// splitAt cuts s after n cells.
func splitAt(s string, n int) (string, string) {
	w := 0
	for i, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > n {
			return s[:i], s[i:]
		}
		w += rw
	}
	return s, ""
}
