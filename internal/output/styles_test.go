package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatKeyValues_Aligned(t *testing.T) {
	out := FormatKeyValues([]KeyValue{
		{Key: "title", Value: "twothumbs"},
		{Key: "copyright", Value: "(c) 2022"},
	}, false)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "title:      twothumbs", lines[0])
	assert.Equal(t, "copyright:  (c) 2022", lines[1])
}

func TestFormatKeyValues_Empty(t *testing.T) {
	assert.Empty(t, FormatKeyValues(nil, false))
}

func TestFormatKeyValues_StyledKeepsContent(t *testing.T) {
	out := FormatKeyValues([]KeyValue{{Key: "version", Value: "1.0.3"}}, true)
	assert.Contains(t, out, "version:")
	assert.Contains(t, out, "1.0.3")
}

func TestStyles(t *testing.T) {
	assert.Equal(t, ColorCyan, StyleNoun.GetForeground())
	assert.True(t, StyleTitle.GetBold())
	assert.True(t, StyleDim.GetFaint())
}

func TestFormatCheckmarkAndCross(t *testing.T) {
	assert.Equal(t, "✔ metadata is valid", FormatCheckmark("metadata is valid", false))
	assert.Equal(t, "✘ version", FormatCross("version", false))
	assert.Contains(t, FormatCheckmark("ok", true), "ok")
	assert.Contains(t, FormatCross("bad", true), "bad")
}
