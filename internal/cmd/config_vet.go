package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twothumbs/twothumbs/internal/config"
	oerrors "github.com/twothumbs/twothumbs/internal/errors"
	"github.com/twothumbs/twothumbs/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the twothumbs CLI configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML with only known keys
  3. Values satisfy the configuration schema

The config path is resolved using precedence:
  --config flag > TWOTHUMBS_CONFIG env > ~/.twothumbs/config.yaml

Examples:
  # Validate default configuration
  twothumbs config vet

  # Validate custom config path
  twothumbs config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, _ []string) error {
	path, err := config.ExpandPath(GetConfigPath())
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}

	output.Debug("validating config", "path", path, "source", configPath.Source)

	exists, err := config.FileExists(path)
	if err != nil {
		return oerrors.NewFileError("could not inspect configuration file", path, err)
	}
	if !exists {
		return oerrors.NewNotFoundError("configuration file not found", path,
			"Run 'twothumbs config init' to create default configuration")
	}

	validator, err := config.NewValidator()
	if err != nil {
		return err
	}

	if err := validator.ValidateFile(path); err != nil {
		return err
	}

	cfg, err := config.NewLoader().Load(path)
	if err != nil {
		return oerrors.NewValidationError("configuration could not be parsed", path, "", err.Error())
	}
	if err := validator.Validate(cfg); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	styled := output.IsTerminal(w)
	fmt.Fprintln(w, output.FormatCheckmark("Configuration is valid: "+path, styled))
	return nil
}
