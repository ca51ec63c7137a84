package config

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"

	oerrors "github.com/twothumbs/twothumbs/internal/errors"
)

//go:embed schema/config.cue
var schemaFS embed.FS

const schemaDefinition = "#Config"

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Unwrap returns ErrValidation so callers can match with errors.Is.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schemaData, err := schemaFS.ReadFile("schema/config.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	compiled := ctx.CompileBytes(schemaData, cue.Filename("config.cue"))
	if compiled.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", compiled.Err())
	}

	return &Validator{
		ctx:    ctx,
		schema: compiled.LookupPath(cue.ParsePath(schemaDefinition)),
	}, nil
}

// Validate validates a loaded configuration.
func (v *Validator) Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}
	return v.check(v.ctx.Encode(cfg))
}

// ValidateFile validates the raw YAML file at path. Unlike Validate it also
// rejects keys the schema does not know about, which viper silently drops.
func (v *Validator) ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	file, err := cueyaml.Extract(path, data)
	if err != nil {
		return oerrors.NewValidationError(err.Error(), path, "", "The config file must be valid YAML")
	}

	value := v.ctx.BuildFile(file)
	if value.Err() != nil {
		return oerrors.NewValidationError(value.Err().Error(), path, "", "The config file must be valid YAML")
	}

	return v.check(value)
}

func (v *Validator) check(value cue.Value) error {
	if value.Err() != nil {
		return fmt.Errorf("encoding config: %w", value.Err())
	}

	err := v.schema.Unify(value).Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var errs ValidationErrors
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		errs = append(errs, ValidationError{
			Field:   fieldPath(e.Path()),
			Message: fmt.Sprintf(format, args...),
		})
	}
	if len(errs) == 0 {
		errs = append(errs, ValidationError{Field: "config", Message: err.Error()})
	}
	return errs
}

// fieldPath joins a CUE error path, dropping the schema definition label.
func fieldPath(path []string) string {
	if len(path) > 0 && path[0] == schemaDefinition {
		path = path[1:]
	}
	if len(path) == 0 {
		return "config"
	}
	return strings.Join(path, ".")
}
