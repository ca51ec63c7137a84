package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	oerrors "github.com/twothumbs/twothumbs/internal/errors"
)

// Environment variable prefix for twothumbs configuration.
const envPrefix = "TWOTHUMBS"

// Loader handles loading and merging configuration from file and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	// Bind each key explicitly. Output is left out on purpose: ResolveOutput
	// reads TWOTHUMBS_OUTPUT itself so it can record where the value came from.
	for _, key := range []string{"log.timestamps", "log.level", "markdown.width"} {
		_ = v.BindEnv(key, envName(key))
	}

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, the default config file path is used.
// A missing file is not an error. Environment variables take precedence
// over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// envName maps a config key to its environment variable, e.g.
// log.level -> TWOTHUMBS_LOG_LEVEL.
func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// FileExists checks if the config file exists.
func FileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// LoadEnvFile loads KEY=VALUE pairs from a dotenv file into the process
// environment. Variables already set are left untouched.
func LoadEnvFile(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding env file path: %w", err)
	}

	if _, err := os.Stat(expanded); err != nil {
		if os.IsNotExist(err) {
			return oerrors.NewNotFoundError("env file not found", expanded,
				"Check the --env-file path")
		}
		return fmt.Errorf("checking env file: %w", err)
	}

	if err := godotenv.Load(expanded); err != nil {
		return fmt.Errorf("loading env file %s: %w", expanded, err)
	}
	return nil
}
