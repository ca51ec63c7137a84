package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twothumbs/twothumbs"
	"github.com/twothumbs/twothumbs/internal/output"
)

// NewAboutCmd creates the about command.
func NewAboutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Show package metadata",
		Long: `Show every package identity constant: title, summary, URI, version,
author, email, license and copyright.

Examples:
  # Aligned key/value output
  twothumbs about

  # Machine-readable output
  twothumbs about -o json`,
		Args: cobra.NoArgs,
		RunE: runAbout,
	}
}

func runAbout(cmd *cobra.Command, _ []string) error {
	m := twothumbs.Get()
	fields := m.Fields()

	rows := make([]output.KeyValue, len(fields))
	for i, f := range fields {
		rows[i] = output.KeyValue{Key: f.Key, Value: f.Value}
	}

	return render(cmd, view{
		rows:       rows,
		structured: m,
		markdown:   aboutMarkdown(fields),
	})
}

func aboutMarkdown(fields []twothumbs.Field) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", twothumbs.Title, twothumbs.Summary)
	b.WriteString("| Field | Value |\n|-------|-------|\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "| %s | %s |\n", f.Key, f.Value)
	}
	return b.String()
}
