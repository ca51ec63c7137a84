// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twothumbs/twothumbs"
	"github.com/twothumbs/twothumbs/internal/config"
	oerrors "github.com/twothumbs/twothumbs/internal/errors"
	"github.com/twothumbs/twothumbs/internal/output"
)

var (
	// Global flags
	configFlag     string
	outputFlag     string
	envFileFlag    string
	verboseFlag    bool
	timestampsFlag bool

	// Resolved during PersistentPreRunE
	loadedConfig   *config.Config
	configPath     config.ResolvedValue
	resolvedOutput output.Format
)

// NewRootCmd creates the root command for the twothumbs CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "twothumbs",
		Short: "Two Thumbs Up package metadata",
		Long: fmt.Sprintf(`%s %s

%s

Inspect and validate the package identity metadata shipped with this build.`,
			twothumbs.Title, twothumbs.Version, twothumbs.Summary),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: TWOTHUMBS_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "",
		"Output format: "+strings.Join(output.ValidFormats(), ", ")+" (env: TWOTHUMBS_OUTPUT)")
	rootCmd.PersistentFlags().StringVar(&envFileFlag, "env-file", "", "Load environment variables from a dotenv file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewAboutCmd())
	rootCmd.AddCommand(NewGetCmd())
	rootCmd.AddCommand(NewExportsCmd())
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewLicenseCmd())
	rootCmd.AddCommand(NewVetCmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	if envFileFlag != "" {
		if err := config.LoadEnvFile(envFileFlag); err != nil {
			return err
		}
	}

	resolvedPath, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}
	configPath = resolvedPath

	// Commands that don't need config must keep working with a broken file.
	// The failure is logged once logging is configured.
	cfg, loadErr := config.NewLoader().Load(configPath.Value)
	if loadErr != nil {
		cfg = nil
	}
	loadedConfig = cfg

	outputValue := config.ResolveOutput(outputFlag, loadedConfig)
	format, ok := output.ParseFormat(outputValue.Value)
	if !ok {
		return &oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("unknown output format %q", outputValue.Value),
			Field:   "output",
			Context: map[string]string{"source": string(outputValue.Source)},
			Hint:    "Use one of: " + strings.Join(output.ValidFormats(), ", "),
			Cause:   oerrors.ErrValidation,
		}
	}
	resolvedOutput = format

	logCfg := output.LogConfig{Verbose: verboseFlag, Writer: cmd.ErrOrStderr()}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if loadedConfig != nil {
		logCfg.Timestamps = loadedConfig.Log.Timestamps
	}
	if loadedConfig != nil {
		logCfg.Level = loadedConfig.Log.Level
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring unreadable config, using defaults",
			"path", configPath.Value, "error", loadErr,
			"hint", "run 'twothumbs config vet'")
	}

	if verboseFlag {
		config.LogResolvedValues(configPath, outputValue)
	}

	return nil
}

// GetConfig returns the loaded configuration with defaults applied.
func GetConfig() *config.Config {
	return loadedConfig.WithDefaults()
}

// GetConfigPath returns the resolved config path value.
func GetConfigPath() string {
	if configPath.Value != "" {
		return configPath.Value
	}
	return configFlag
}

// GetOutputFormat returns the resolved output format.
func GetOutputFormat() output.Format {
	if resolvedOutput == "" {
		return output.FormatText
	}
	return resolvedOutput
}
