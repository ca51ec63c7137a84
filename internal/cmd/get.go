package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twothumbs/twothumbs"
	"github.com/twothumbs/twothumbs/internal/about"
	oerrors "github.com/twothumbs/twothumbs/internal/errors"
	"github.com/twothumbs/twothumbs/internal/output"
)

// NewGetCmd creates the get command.
func NewGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Print a single metadata value",
		Long: `Print the value of one metadata constant.

The name may be the exported identifier (Version) or its key (version);
matching ignores case. Text output is the bare value, suitable for scripts.

Examples:
  twothumbs get version
  twothumbs get License -o json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFieldNames,
		RunE:              runGet,
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	field, ok := twothumbs.Get().Lookup(args[0])
	if !ok {
		return &oerrors.DetailError{
			Type:    "not found",
			Message: fmt.Sprintf("no metadata constant named %q", args[0]),
			Field:   args[0],
			Hint:    "Use one of: " + strings.Join(about.Names(), ", "),
			Cause:   oerrors.ErrNotFound,
		}
	}

	return render(cmd, view{
		rows:       []output.KeyValue{{Key: field.Key, Value: field.Value}},
		text:       field.Value + "\n",
		structured: map[string]string{field.Key: field.Value},
	})
}

func completeFieldNames(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	fields := twothumbs.Get().Fields()
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}
