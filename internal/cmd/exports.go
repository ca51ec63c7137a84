package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/twothumbs/twothumbs"
	"github.com/twothumbs/twothumbs/internal/output"
)

// exportList wraps the export names for formats that need a top-level table.
type exportList struct {
	Exports []string `toml:"exports"`
}

// NewExportsCmd creates the exports command.
func NewExportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exports",
		Short: "List the public metadata names",
		Long: `List the names of the public metadata constants in declaration order.

Examples:
  twothumbs exports
  twothumbs exports -o yaml`,
		Args: cobra.NoArgs,
		RunE: runExports,
	}
}

func runExports(cmd *cobra.Command, _ []string) error {
	names := twothumbs.Exports()

	rows := make([]output.KeyValue, 0, len(names))
	var md strings.Builder
	for _, name := range names {
		f, _ := twothumbs.Get().Lookup(name)
		rows = append(rows, output.KeyValue{Key: name, Value: f.Key})
		md.WriteString("- `" + name + "`\n")
	}

	var structured any = names
	if GetOutputFormat() == output.FormatTOML {
		structured = exportList{Exports: names}
	}

	return render(cmd, view{
		rows:       rows,
		headers:    [2]string{"NAME", "KEY"},
		text:       strings.Join(names, "\n") + "\n",
		structured: structured,
		markdown:   md.String(),
	})
}
