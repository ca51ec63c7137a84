package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/twothumbs/twothumbs/internal/config"
	"github.com/twothumbs/twothumbs/internal/output"
)

// view is everything a command can render, one representation per format
// family. Empty representations fall back to rows.
type view struct {
	// rows back the text and table formats.
	rows []output.KeyValue

	// headers are the table column titles.
	headers [2]string

	// text replaces the key/value rendering of the text format when set.
	text string

	// structured is encoded for json, yaml and toml.
	structured any

	// markdown is printed raw, or rendered with glamour on a terminal.
	markdown string
}

// render writes v to the command's stdout in the resolved output format.
func render(cmd *cobra.Command, v view) error {
	w := cmd.OutOrStdout()
	styled := output.IsTerminal(w)
	format := GetOutputFormat()

	switch {
	case format.Structured():
		return output.WriteStructured(w, format, v.structured)
	case format == output.FormatTable:
		headers := v.headers
		if headers[0] == "" {
			headers = [2]string{"FIELD", "VALUE"}
		}
		_, err := fmt.Fprintln(w, output.RenderKeyValueTable(headers[0], headers[1], v.rows, styled))
		return err
	case format == output.FormatMarkdown && v.markdown != "":
		return writeMarkdown(w, v.markdown, styled)
	}

	if v.text != "" {
		_, err := io.WriteString(w, v.text)
		return err
	}
	_, err := io.WriteString(w, output.FormatKeyValues(v.rows, styled))
	return err
}

func writeMarkdown(w io.Writer, md string, styled bool) error {
	if !styled {
		_, err := io.WriteString(w, md)
		return err
	}

	width := GetConfig().Markdown.Width
	if width == 0 {
		width = output.TerminalWidth(w, config.FallbackMarkdownWidth)
	}

	rendered, err := output.RenderMarkdown(md, width)
	if err != nil {
		output.Debug("markdown rendering failed, printing raw", "error", err)
		_, err = io.WriteString(w, md)
		return err
	}
	_, err = io.WriteString(w, rendered)
	return err
}
