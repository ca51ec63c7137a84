package config

import (
	"os"
	"path/filepath"
)

// Environment variables read directly by the CLI.
const (
	EnvConfig = "TWOTHUMBS_CONFIG"
	EnvOutput = "TWOTHUMBS_OUTPUT"
)

// Paths contains standard filesystem paths for twothumbs.
type Paths struct {
	// ConfigFile is the path to the config file (~/.twothumbs/config.yaml).
	ConfigFile string

	// HomeDir is the twothumbs home directory (~/.twothumbs).
	HomeDir string
}

// DefaultPaths returns the default paths for twothumbs.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".twothumbs")

	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// GetConfigFile returns the config file path.
// If TWOTHUMBS_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}
