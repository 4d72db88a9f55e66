package normalize

import "strings"

// SmartStrip trims surrounding whitespace from a cell while keeping the
// newlines inside it: each line is stripped, leading and trailing blank
// lines are dropped, interior line breaks survive.
func SmartStrip(s string) string {
	if s == "" {
		return ""
	}

	lines := strings.Split(s, "\n")

	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}

	stripped := make([]string, 0, end-start)
	for _, line := range lines[start:end] {
		stripped = append(stripped, strings.TrimSpace(line))
	}

	return strings.Join(stripped, "\n")
}

// Preview renders a card for diagnostic output: newlines become literal
// "\n" and anything past n runes is cut with an ellipsis.
func Preview(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
