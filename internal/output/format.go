// Package output provides terminal output utilities for the twothumbs CLI.
package output

import "strings"

// Format specifies the output format.
type Format string

const (
	// FormatText outputs aligned key/value lines.
	FormatText Format = "text"

	// FormatTable outputs a bordered table.
	FormatTable Format = "table"

	// FormatJSON outputs indented JSON.
	FormatJSON Format = "json"

	// FormatYAML outputs YAML.
	FormatYAML Format = "yaml"

	// FormatTOML outputs TOML.
	FormatTOML Format = "toml"

	// FormatMarkdown outputs markdown, rendered with glamour on a terminal.
	FormatMarkdown Format = "markdown"
)

// String returns the string representation of the output format.
func (f Format) String() string {
	return string(f)
}

// Valid checks if the output format is valid.
func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatYAML, FormatTOML, FormatMarkdown:
		return true
	default:
		return false
	}
}

// Structured reports whether the format is a machine-readable encoding.
func (f Format) Structured() bool {
	return f == FormatJSON || f == FormatYAML || f == FormatTOML
}

// ParseFormat parses a string into a Format. The second return value is
// false when the string names no known format; the input is returned as-is.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, true
	case "table":
		return FormatTable, true
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	case "toml":
		return FormatTOML, true
	case "markdown", "md":
		return FormatMarkdown, true
	default:
		return Format(s), false
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"text", "table", "json", "yaml", "toml", "markdown"}
}
