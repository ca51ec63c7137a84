package about

import (
	"errors"
	"fmt"

	oerrors "github.com/twothumbs/twothumbs/internal/errors"
)

// MissingConstantError reports a declared public name the metadata source
// cannot satisfy.
type MissingConstantError struct {
	// Name is the exported identifier involved.
	Name string

	// Reason describes what is wrong with it.
	Reason string
}

// Error implements the error interface.
func (e *MissingConstantError) Error() string {
	return fmt.Sprintf("%s: %s: %s", oerrors.ErrMissingConstant, e.Name, e.Reason)
}

// Unwrap returns ErrMissingConstant so callers can match with errors.Is.
func (e *MissingConstantError) Unwrap() error {
	return oerrors.ErrMissingConstant
}

// Check verifies that names is exactly the set of metadata constants: every
// name resolves to a non-empty value, nothing is listed twice, and no
// constant is left out. All problems are returned joined.
func Check(names []string) error {
	return checkFields(Fields(), names)
}

func checkFields(fields []Field, names []string) error {
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}

	var errs []error
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			errs = append(errs, &MissingConstantError{Name: name, Reason: "declared more than once"})
			continue
		}
		seen[name] = true

		f, ok := byName[name]
		switch {
		case !ok:
			errs = append(errs, &MissingConstantError{Name: name, Reason: "not defined by metadata source"})
		case f.Value == "":
			errs = append(errs, &MissingConstantError{Name: name, Reason: "defined but empty"})
		}
	}

	for _, f := range fields {
		if !seen[f.Name] {
			errs = append(errs, &MissingConstantError{Name: f.Name, Reason: "defined but not declared public"})
		}
	}

	return errors.Join(errs...)
}
