package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals outside this block.
var (
	// ColorCyan is used for keys and identifiable nouns.
	ColorCyan = lipgloss.Color("14")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorBoldRed is used for failed checks.
	ColorBoldRed = lipgloss.Color("204")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles keys and identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleTitle styles headings.
	StyleTitle = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// KeyValue is one row of key/value output.
type KeyValue struct {
	Key   string
	Value string
}

// FormatKeyValues renders rows as "key:  value" lines with values aligned.
// Keys are colored when styled is true.
func FormatKeyValues(rows []KeyValue, styled bool) string {
	width := 0
	for _, r := range rows {
		if len(r.Key) > width {
			width = len(r.Key)
		}
	}

	var b strings.Builder
	for _, r := range rows {
		key := r.Key + ":"
		pad := strings.Repeat(" ", width-len(r.Key)+2)
		if styled {
			key = StyleNoun.Render(key)
		}
		b.WriteString(key)
		b.WriteString(pad)
		b.WriteString(r.Value)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatCheckmark renders a checkmark with a message.
func FormatCheckmark(msg string, styled bool) string {
	check := "✔"
	if styled {
		check = lipgloss.NewStyle().Foreground(ColorGreenCheck).Render(check)
	}
	return check + " " + msg
}

// FormatCross renders a failure cross with a message.
func FormatCross(msg string, styled bool) string {
	cross := "✘"
	if styled {
		cross = lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed).Render(cross)
	}
	return cross + " " + msg
}
