package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// truncate shortens s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 1 {
		return strings.Repeat("…", max(width, 0))
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > width-1 {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	b.WriteString("…")
	return b.String()
}

// splitWord breaks a word longer than width into chunks.
func splitWord(word string, width int) []string {
	var out []string
	var b strings.Builder
	cur := 0
	for _, r := range word {
		w := lipgloss.Width(string(r))
		if cur+w > width && b.Len() > 0 {
			out = append(out, b.String())
			b.Reset()
			cur = 0
		}
		b.WriteRune(r)
		cur += w
	}
	if b.Len() > 0 {
		out = append(out, b.String())
	}
	return out
}

// wrapText word-wraps every paragraph of text to width cells. Error
// messages from the network stack can be long single lines.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return strings.Split(text, "\n")
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		fields := strings.Fields(para)
		if len(fields) == 0 {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, word := range fields {
			ww := lipgloss.Width(word)
			switch {
			case line == "" && ww <= width:
				line = word
			case line == "":
				chunks := splitWord(word, width)
				lines = append(lines, chunks[:len(chunks)-1]...)
				line = chunks[len(chunks)-1]
			case lipgloss.Width(line)+1+ww <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				if ww <= width {
					line = word
				} else {
					chunks := splitWord(word, width)
					lines = append(lines, chunks[:len(chunks)-1]...)
					line = chunks[len(chunks)-1]
				}
			}
		}
		lines = append(lines, line)
	}
	return lines
}
