// Package main is the entry point for the twothumbs CLI.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/twothumbs/twothumbs/internal/cmd"
	oerrors "github.com/twothumbs/twothumbs/internal/errors"
	"github.com/twothumbs/twothumbs/internal/version"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	// fang prints the error; only the exit code is left to us.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Get().Short()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
