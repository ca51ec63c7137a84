package cmd

import (
	"github.com/spf13/cobra"

	"github.com/twothumbs/twothumbs/internal/output"
	"github.com/twothumbs/twothumbs/internal/version"
)

var versionShort bool

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show the package version together with build details.

Displays:
  - Package version from the metadata source
  - Git commit and build date
  - Go version and platform`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}

	cmd.Flags().BoolVar(&versionShort, "short", false, "Print a single line")

	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := version.Get()

	text := info.String() + "\n"
	if versionShort {
		text = info.Short() + "\n"
	}

	return render(cmd, view{
		rows: []output.KeyValue{
			{Key: "version", Value: info.Version},
			{Key: "commit", Value: info.GitCommit},
			{Key: "built", Value: info.BuildDate},
			{Key: "go", Value: info.GoVersion},
			{Key: "platform", Value: info.Platform},
		},
		text:       text,
		structured: info,
	})
}
