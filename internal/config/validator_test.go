package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/twothumbs/twothumbs/internal/errors"
	"github.com/twothumbs/twothumbs/internal/output"
)

func TestValidator_Validate(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	off := false

	tests := []struct {
		name      string
		cfg       *Config
		wantField string
	}{
		{name: "nil config", cfg: nil},
		{name: "empty config", cfg: &Config{}},
		{name: "default config", cfg: DefaultConfig()},
		{
			name: "all fields set",
			cfg: &Config{
				Output:   "toml",
				Log:      LogConfig{Timestamps: &off, Level: "debug"},
				Markdown: MarkdownConfig{Width: 120},
			},
		},
		{name: "unknown output", cfg: &Config{Output: "xml"}, wantField: "output"},
		{name: "unknown level", cfg: &Config{Log: LogConfig{Level: "verbose"}}, wantField: "log.level"},
		{name: "negative width", cfg: &Config{Markdown: MarkdownConfig{Width: -1}}, wantField: "markdown.width"},
		{name: "width too large", cfg: &Config{Markdown: MarkdownConfig{Width: 1000}}, wantField: "markdown.width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.cfg)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.NotEmpty(t, verrs)
			assert.Contains(t, verrs[0].Field, tt.wantField)
		})
	}
}

func TestValidator_AcceptsEveryOutputFormat(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	for _, f := range output.ValidFormats() {
		assert.NoError(t, v.Validate(&Config{Output: f}), f)
	}
}

func TestValidator_AcceptsEveryLogLevel(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	for _, l := range output.ValidLogLevels() {
		assert.NoError(t, v.Validate(&Config{Log: LogConfig{Level: l}}), l)
	}
}

func TestValidator_ValidateFile(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	t.Run("valid file", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "output: json\nlog:\n  timestamps: true\n  level: warn\n")
		assert.NoError(t, v.ValidateFile(path))
	})

	t.Run("default template", func(t *testing.T) {
		data, err := DefaultTemplate()
		require.NoError(t, err)
		path := writeFile(t, "config.yaml", string(data))
		assert.NoError(t, v.ValidateFile(path))
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "\n")
		assert.NoError(t, v.ValidateFile(path))
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "colour: red\n")
		err := v.ValidateFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
		assert.Contains(t, err.Error(), "colour")
	})

	t.Run("wrong type", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "log:\n  timestamps: sometimes\n")
		err := v.ValidateFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.timestamps")
	})

	t.Run("missing file", func(t *testing.T) {
		err := v.ValidateFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestFieldPath(t *testing.T) {
	assert.Equal(t, "output", fieldPath([]string{"#Config", "output"}))
	assert.Equal(t, "log.level", fieldPath([]string{"log", "level"}))
	assert.Equal(t, "config", fieldPath(nil))
}

func TestValidationErrors_Error(t *testing.T) {
	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())

	errs := ValidationErrors{{Field: "output", Message: "bad"}}
	assert.Contains(t, errs.Error(), "config validation failed")
	assert.Contains(t, errs.Error(), "output: bad")
}
