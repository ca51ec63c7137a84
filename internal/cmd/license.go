package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twothumbs/twothumbs"
	"github.com/twothumbs/twothumbs/internal/about"
	"github.com/twothumbs/twothumbs/internal/output"
)

type licenseInfo struct {
	License   string `json:"license" yaml:"license" toml:"license"`
	Copyright string `json:"copyright" yaml:"copyright" toml:"copyright"`
	Notice    string `json:"notice" yaml:"notice" toml:"notice"`
}

// NewLicenseCmd creates the license command.
func NewLicenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "license",
		Short: "Show license and copyright",
		Long: `Show the license identifier, copyright line and license notice.

Use -o markdown on a terminal for a rendered notice.`,
		Args: cobra.NoArgs,
		RunE: runLicense,
	}
}

func runLicense(cmd *cobra.Command, _ []string) error {
	info := licenseInfo{
		License:   twothumbs.License,
		Copyright: twothumbs.Copyright,
		Notice:    about.Notice,
	}

	return render(cmd, view{
		rows: []output.KeyValue{
			{Key: "license", Value: info.License},
			{Key: "copyright", Value: info.Copyright},
		},
		text:       fmt.Sprintf("%s\nCopyright %s\n\n%s\n", info.License, info.Copyright, info.Notice),
		structured: info,
		markdown:   fmt.Sprintf("# %s\n\nCopyright %s\n\n%s\n", info.License, info.Copyright, info.Notice),
	})
}
