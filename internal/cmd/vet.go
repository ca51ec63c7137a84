package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/twothumbs/twothumbs"
	"github.com/twothumbs/twothumbs/internal/about"
	oerrors "github.com/twothumbs/twothumbs/internal/errors"
	"github.com/twothumbs/twothumbs/internal/output"
)

type vetResult struct {
	Field   string `json:"field" yaml:"field" toml:"field"`
	Valid   bool   `json:"valid" yaml:"valid" toml:"valid"`
	Message string `json:"message,omitempty" yaml:"message,omitempty" toml:"message,omitempty"`
}

type vetReport struct {
	Results []vetResult `json:"results" yaml:"results" toml:"results"`
}

// NewVetCmd creates the vet command.
func NewVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate package metadata",
		Long: `Validate the package metadata.

Checks performed:
  1. Every exported name resolves to a non-empty constant, and every
     constant is exported exactly once
  2. Each value satisfies its schema constraint (semver version, SPDX-style
     license, well-formed URI and email)

Exit codes:
  0  all checks passed
  2  a value violates the schema
  7  a metadata constant is missing`,
		Args: cobra.NoArgs,
		RunE: runVet,
	}
}

func runVet(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	styled := output.IsTerminal(w)

	if err := about.Check(twothumbs.Exports()); err != nil {
		output.Debug("export check failed", "error", err)
		return oerrors.NewExitError(err, oerrors.ExitMissingConstant)
	}

	validator, err := about.NewValidator()
	if err != nil {
		return fmt.Errorf("loading metadata schema: %w", err)
	}

	m := twothumbs.Get()
	verr := validator.Validate(m)

	var failures about.ValidationErrors
	if verr != nil && !errors.As(verr, &failures) {
		return verr
	}

	failed := make(map[string]string, len(failures))
	for _, f := range failures {
		failed[f.Field] = f.Message
	}

	results := make([]vetResult, 0, len(m.Fields()))
	for _, f := range m.Fields() {
		msg, bad := failed[f.Key]
		results = append(results, vetResult{Field: f.Key, Valid: !bad, Message: msg})
	}

	if format := GetOutputFormat(); format.Structured() {
		if err := output.WriteStructured(w, format, vetReport{Results: results}); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			line := output.FormatCheckmark(r.Field, styled)
			if !r.Valid {
				line = output.FormatCross(r.Field+": "+r.Message, styled)
			}
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return err
			}
		}
	}

	if len(failures) > 0 {
		return oerrors.NewExitError(failures, oerrors.ExitValidationError)
	}

	output.Debug("metadata valid", "fields", len(m.Fields()))
	return nil
}
