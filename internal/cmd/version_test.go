package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twothumbs/twothumbs/internal/version"
)

func TestNewVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup("short"))
}

func TestVersion(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		isolate(t)
		out, err := execute(t, "version")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "twothumbs:\n"))
		assert.Contains(t, out, "Version:  1.0.3")
		assert.Contains(t, out, "Platform:")
	})

	t.Run("short", func(t *testing.T) {
		isolate(t)
		out, err := execute(t, "version", "--short")
		require.NoError(t, err)
		assert.Equal(t, version.Get().Short()+"\n", out)
		assert.Equal(t, 1, strings.Count(out, "\n"))
	})

	t.Run("json", func(t *testing.T) {
		isolate(t)
		out, err := execute(t, "version", "-o", "json")
		require.NoError(t, err)

		var got version.Info
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "1.0.3", got.Version)
		assert.NotEmpty(t, got.GoVersion)
	})

	t.Run("table", func(t *testing.T) {
		isolate(t)
		out, err := execute(t, "version", "-o", "table")
		require.NoError(t, err)
		assert.Contains(t, out, "platform")
	})
}
