package config

import (
	"os"

	"github.com/twothumbs/twothumbs/internal/output"
)

// Source indicates where a configuration value came from.
type Source string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag Source = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv Source = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig Source = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault Source = "default"
)

// ResolvedValue is a configuration value together with its origin.
type ResolvedValue struct {
	// Key is the configuration key, e.g. "output".
	Key string
	// Value is the winning value.
	Value string
	// Source indicates where Value came from.
	Source Source
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[Source]string
}

// Candidates lists a value from each source. Empty strings mean unset.
type Candidates struct {
	Flag    string
	Env     string
	Config  string
	Default string
}

// Resolve picks the first set value in order flag > env > config > default
// and records every lower-precedence value it shadows.
func Resolve(key string, c Candidates) ResolvedValue {
	result := ResolvedValue{
		Key:      key,
		Shadowed: make(map[Source]string),
	}

	ordered := []struct {
		source Source
		value  string
	}{
		{SourceFlag, c.Flag},
		{SourceEnv, c.Env},
		{SourceConfig, c.Config},
		{SourceDefault, c.Default},
	}

	for _, candidate := range ordered {
		if candidate.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = candidate.value
			result.Source = candidate.source
			continue
		}
		result.Shadowed[candidate.source] = candidate.value
	}

	return result
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) TWOTHUMBS_CONFIG env, (3) ~/.twothumbs/config.yaml
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{Key: "config"}, err
	}

	return Resolve("config", Candidates{
		Flag:    flagValue,
		Env:     os.Getenv(EnvConfig),
		Default: paths.ConfigFile,
	}), nil
}

// ResolveOutput resolves the output format using precedence:
// (1) --output flag, (2) TWOTHUMBS_OUTPUT env, (3) config.output, (4) text
func ResolveOutput(flagValue string, cfg *Config) ResolvedValue {
	var configValue string
	if cfg != nil {
		configValue = cfg.Output
	}

	return Resolve("output", Candidates{
		Flag:    flagValue,
		Env:     os.Getenv(EnvOutput),
		Config:  configValue,
		Default: DefaultOutput,
	})
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values ...ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
