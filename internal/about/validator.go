package about

import (
	"embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	oerrors "github.com/twothumbs/twothumbs/internal/errors"
)

//go:embed schema/metadata.cue
var schemaFS embed.FS

// schemaDefinition is the CUE definition metadata records are checked against.
const schemaDefinition = "#Metadata"

// ValidationError describes one metadata key that violates the schema.
type ValidationError struct {
	Field   string
	Value   string
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
	sb.WriteString("metadata validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Unwrap returns ErrValidation so callers can match with errors.Is.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// Validator validates metadata against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	data, err := schemaFS.ReadFile("schema/metadata.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}
	return newValidator(data)
}

func newValidator(schemaData []byte) (*Validator, error) {
	ctx := cuecontext.New()

	compiled := ctx.CompileBytes(schemaData, cue.Filename("metadata.cue"))
	if compiled.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", compiled.Err())
	}

	schema := compiled.LookupPath(cue.ParsePath(schemaDefinition))
	if !schema.Exists() {
		return nil, fmt.Errorf("schema does not define %s", schemaDefinition)
	}

	return &Validator{
		ctx:    ctx,
		schema: schema,
	}, nil
}

// Validate checks each metadata field against its schema constraint.
// Failures are reported in field order.
func (v *Validator) Validate(m Metadata) error {
	var errs ValidationErrors

	for _, f := range m.Fields() {
		constraint := v.schema.LookupPath(cue.ParsePath(f.Key))
		if !constraint.Exists() {
			errs = append(errs, ValidationError{
				Field:   f.Key,
				Value:   f.Value,
				Message: "no schema constraint defined",
			})
			continue
		}

		unified := constraint.Unify(v.ctx.Encode(f.Value))
		if err := unified.Validate(cue.Concrete(true)); err != nil {
			errs = append(errs, ValidationError{
				Field:   f.Key,
				Value:   f.Value,
				Message: firstMessage(err),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// firstMessage returns the first CUE error without its path prefix.
func firstMessage(err error) string {
	list := cueerrors.Errors(err)
	if len(list) == 0 {
		return err.Error()
	}
	format, args := list[0].Msg()
	return fmt.Sprintf(format, args...)
}
