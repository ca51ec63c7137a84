// Package config provides configuration loading and management for the
// twothumbs CLI. Configuration only affects presentation; metadata values
// are fixed at build time.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps.
	// Env: TWOTHUMBS_LOG_TIMESTAMPS
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`

	// Level is the minimum log level: debug, info, warn or error.
	// Env: TWOTHUMBS_LOG_LEVEL, Default: info
	Level string `json:"level,omitempty" yaml:"level,omitempty" mapstructure:"level"`
}

// MarkdownConfig contains markdown rendering settings.
type MarkdownConfig struct {
	// Width is the word wrap width. Zero uses the terminal width.
	// Env: TWOTHUMBS_MARKDOWN_WIDTH
	Width int `json:"width,omitempty" yaml:"width,omitempty" mapstructure:"width"`
}

// Config represents the twothumbs CLI configuration.
// Loaded from ~/.twothumbs/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// Output is the default output format.
	// Env: TWOTHUMBS_OUTPUT, Default: text
	Output string `json:"output,omitempty" yaml:"output,omitempty" mapstructure:"output"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty" mapstructure:"log"`

	// Markdown contains markdown rendering settings.
	Markdown MarkdownConfig `json:"markdown,omitempty" yaml:"markdown,omitempty" mapstructure:"markdown"`
}

// Defaults.
const (
	DefaultOutput   = "text"
	DefaultLogLevel = "info"

	// FallbackMarkdownWidth is used when the terminal width is unknown.
	FallbackMarkdownWidth = 80
)

// DefaultConfig returns a Config with all default values populated.
// Used by `twothumbs config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Output: DefaultOutput,
		Log: LogConfig{
			Timestamps: &timestamps,
			Level:      DefaultLogLevel,
		},
	}
}

// WithDefaults returns a copy of c with unset fields filled from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	defaults := DefaultConfig()
	if c == nil {
		return defaults
	}

	out := *c
	if out.Output == "" {
		out.Output = defaults.Output
	}
	if out.Log.Timestamps == nil {
		out.Log.Timestamps = defaults.Log.Timestamps
	}
	if out.Log.Level == "" {
		out.Log.Level = defaults.Log.Level
	}
	return &out
}
