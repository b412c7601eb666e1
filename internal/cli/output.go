// Package cli provides the command-line interface for Prism.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jmylchreest/prism/internal/colour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// writeJSON renders a result struct as indented JSON on the command's
// output stream.
func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

// swatchesEnabled reports whether human output may include truecolor
// swatches: colour must not be suppressed (--no-color, NO_COLOR,
// TERM=dumb) and the output must be a terminal. JSON output never
// carries escape codes.
func swatchesEnabled(cmd *cobra.Command) bool {
	if flagJSON || flagNoColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// swatch returns a preview block for a colour followed by a space, or
// an empty string when swatches are disabled.
func swatch(cmd *cobra.Command, c colour.Colour) string {
	if !swatchesEnabled(cmd) {
		return ""
	}
	return colour.ColourPreview(c, 4) + " "
}

// parseColourArg parses a positional colour argument, wrapping the
// error with the argument's role for a usable message.
func parseColourArg(role, text string) (colour.Colour, error) {
	c, err := colour.Parse(text)
	if err != nil {
		return colour.Colour{}, fmt.Errorf("invalid %s colour: %w", role, err)
	}
	return c, nil
}
