package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

const templateHeader = `# twothumbs CLI configuration.
#
# Precedence for every value: flag > environment > this file > default.
# Validate with: twothumbs config vet
`

// DefaultTemplate returns the YAML written by `twothumbs config init`.
func DefaultTemplate() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(templateHeader)

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(DefaultConfig()); err != nil {
		return nil, fmt.Errorf("encoding default config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encoding default config: %w", err)
	}

	return buf.Bytes(), nil
}
