package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

// captureLog points the logger at a buffer and returns the buffer.
func captureLog(t *testing.T, cfg LogConfig) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	setupLogging(&buf, cfg)
	t.Cleanup(func() { SetupLogging(LogConfig{}) })
	return &buf
}

func TestSetupLogging_TimestampDefaultOn(t *testing.T) {
	buf := captureLog(t, LogConfig{})
	logger.Info("test")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()))
}

func TestSetupLogging_TimestampExplicitlyDisabled(t *testing.T) {
	buf := captureLog(t, LogConfig{Timestamps: BoolPtr(false)})
	logger.Info("hello")
	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.NotRegexp(t, `^\d{1,2}:\d{2}:\d{2}`, strings.TrimSpace(out),
		"output should not start with a timestamp")
}

func TestSetupLogging_VerboseForcesTimestampsOn(t *testing.T) {
	buf := captureLog(t, LogConfig{Verbose: true, Timestamps: BoolPtr(false)})
	logger.Debug("verbose-msg")
	out := buf.String()
	assert.Contains(t, out, "verbose-msg", "debug message should appear in verbose mode")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(out))
}

func TestSetupLogging_Levels(t *testing.T) {
	tests := []struct {
		name string
		cfg  LogConfig
		want log.Level
	}{
		{"default info", LogConfig{}, log.InfoLevel},
		{"verbose debug", LogConfig{Verbose: true}, log.DebugLevel},
		{"explicit warn", LogConfig{Level: "warn"}, log.WarnLevel},
		{"explicit uppercase error", LogConfig{Level: "ERROR"}, log.ErrorLevel},
		{"verbose overrides level", LogConfig{Verbose: true, Level: "error"}, log.DebugLevel},
		{"unknown level falls back to info", LogConfig{Level: "chatty"}, log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureLog(t, tt.cfg)
			assert.Equal(t, tt.want, Logger().GetLevel())
		})
	}
}

func TestHelpersRespectLevel(t *testing.T) {
	buf := captureLog(t, LogConfig{Level: "warn", Timestamps: BoolPtr(false)})

	Debug("debug-line")
	Info("info-line")
	Warn("warn-line", "key", "value")
	Logger().Error("error-line")

	out := buf.String()
	assert.NotContains(t, out, "debug-line")
	assert.NotContains(t, out, "info-line")
	assert.Contains(t, out, "warn-line")
	assert.Contains(t, out, "key=value")
	assert.Contains(t, out, "error-line")
}

func TestBoolPtr(t *testing.T) {
	assert.True(t, *BoolPtr(true))
	assert.False(t, *BoolPtr(false))
}
