package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/twothumbs/twothumbs/internal/config"
	oerrors "github.com/twothumbs/twothumbs/internal/errors"
	"github.com/twothumbs/twothumbs/internal/output"
)

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write a default configuration file.

The file is written to the resolved config path:
  --config flag > TWOTHUMBS_CONFIG env > ~/.twothumbs/config.yaml

Examples:
  # Initialize configuration
  twothumbs config init

  # Overwrite existing configuration
  twothumbs config init --force`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := config.ExpandPath(GetConfigPath())
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}

	exists, err := config.FileExists(path)
	if err != nil {
		return oerrors.NewFileError("could not inspect configuration file", path, err)
	}
	if exists && !configInitForce {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	data, err := config.DefaultTemplate()
	if err != nil {
		return err
	}

	// Directory 0700, file 0600.
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return oerrors.NewFileError("could not create configuration directory", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return oerrors.NewFileError("could not write configuration file", path, err)
	}

	output.Info("configuration written", "path", path, "force", configInitForce)

	w := cmd.OutOrStdout()
	styled := output.IsTerminal(w)
	fmt.Fprintln(w, output.FormatCheckmark("Configuration initialized at "+path, styled))
	fmt.Fprintln(w, "Validate with: twothumbs config vet")
	return nil
}
