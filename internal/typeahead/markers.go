package typeahead

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// markStyle renders the matched span of a suggestion label
var markStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// MarkPrefix is a Mark strategy that highlights the query only when the
// label starts with it, case-insensitively.
func MarkPrefix(query, label string, raw any) string {
	if query == "" {
		return label
	}
	end := runeSpan(label, utf8.RuneCountInString(query))
	if end < 0 || !strings.EqualFold(label[:end], query) {
		return label
	}
	return markStyle.Render(label[:end]) + label[end:]
}

// MarkAnywhere is a Mark strategy that highlights the first occurrence of
// the query anywhere in the label, case-insensitively.
func MarkAnywhere(query, label string, raw any) string {
	if query == "" {
		return label
	}
	runes := utf8.RuneCountInString(query)
	for start := 0; start < len(label); {
		width := runeSpan(label[start:], runes)
		if width < 0 {
			break
		}
		end := start + width
		if strings.EqualFold(label[start:end], query) {
			return label[:start] + markStyle.Render(label[start:end]) + label[end:]
		}
		_, size := utf8.DecodeRuneInString(label[start:])
		start += size
	}
	return label
}

// runeSpan returns the byte length of the first n runes of s, or -1 when s
// holds fewer. Case folding can change a rune's byte length, so match spans
// are measured on the label itself, never on a folded copy.
func runeSpan(s string, n int) int {
	end := 0
	for i := 0; i < n; i++ {
		if end >= len(s) {
			return -1
		}
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	return end
}
