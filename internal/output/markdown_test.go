package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# twothumbs\n\nSentiment classifier.\n", 60)

	require.NoError(t, err)
	assert.Contains(t, out, "twothumbs")
	assert.Contains(t, out, "Sentiment classifier.")
}

func TestRenderMarkdown_Wraps(t *testing.T) {
	long := "word word word word word word word word word word word word word word word word\n"

	out, err := RenderMarkdown(long, 30)

	require.NoError(t, err)
	assert.Greater(t, strings.Count(strings.TrimSpace(out), "\n"), 0)
}
