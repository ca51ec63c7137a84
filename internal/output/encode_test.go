package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Version string `json:"version" yaml:"version" toml:"version"`
}

func TestWriteStructured(t *testing.T) {
	in := sample{Name: "twothumbs", Version: "1.0.3"}

	tests := []struct {
		format Format
		decode func([]byte, any) error
	}{
		{FormatJSON, json.Unmarshal},
		{FormatYAML, yaml.Unmarshal},
		{FormatTOML, toml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteStructured(&buf, tt.format, in))

			var out sample
			require.NoError(t, tt.decode(buf.Bytes(), &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestWriteStructured_JSONIndented(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStructured(&buf, FormatJSON, sample{Name: "a", Version: "b"}))
	assert.Equal(t, "{\n  \"name\": \"a\",\n  \"version\": \"b\"\n}\n", buf.String())
}

func TestWriteStructured_RejectsPresentationFormats(t *testing.T) {
	for _, f := range []Format{FormatText, FormatTable, FormatMarkdown} {
		err := WriteStructured(&bytes.Buffer{}, f, sample{})
		assert.Error(t, err, f.String())
	}
}
