// Package cli provides the command-line interface for Prism.
package cli

import (
	"fmt"

	"github.com/jmylchreest/prism/internal/colour"
	"github.com/spf13/cobra"
)

// Scheme command flags
var schemeType string

// newSchemeCmd represents the scheme command.
func newSchemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheme <colour>",
		Short: "Generate a colour harmony from a base colour",
		Long: `Generate a colour harmony from a base colour.

Hue-based schemes (complementary, analogous, triadic, tetradic,
split-complementary) rotate the base around the colour wheel at its
own saturation and lightness; monochrome keeps the hue and varies the
lightness instead. The base colour is always the first entry.

Examples:
  prism scheme "#ff0000"
  prism scheme steelblue --type triadic
  prism scheme "hsl(200, 60%, 50%)" --type monochrome --json`,
		Args: cobra.ExactArgs(1),
		RunE: runScheme,
	}

	cmd.Flags().StringVarP(&schemeType, "type", "t", "complementary", "harmony type (complementary, analogous, triadic, tetradic, split-complementary, monochrome)")
	return cmd
}

// schemeResult is the JSON envelope for the scheme command.
type schemeResult struct {
	Input   string   `json:"input"`
	Scheme  string   `json:"scheme"`
	Colours []string `json:"colours"`
}

// runScheme executes the scheme command.
func runScheme(cmd *cobra.Command, args []string) error {
	base, err := parseColourArg("base", args[0])
	if err != nil {
		return err
	}

	scheme, err := colour.ParseScheme(schemeType)
	if err != nil {
		return fmt.Errorf("invalid --type: %w", err)
	}
	colours, err := colour.Harmonies(base, scheme)
	if err != nil {
		return err
	}

	logger.Debug("generated scheme", "base", base.Hex(), "scheme", string(scheme), "colours", len(colours))

	if flagJSON {
		hexes := make([]string, len(colours))
		for i, c := range colours {
			hexes[i] = c.Hex()
		}
		return writeJSON(cmd, schemeResult{
			Input:   base.Hex(),
			Scheme:  string(scheme),
			Colours: hexes,
		})
	}

	out := cmd.OutOrStdout()
	for _, c := range colours {
		fmt.Fprintf(out, "%s%s\n", swatch(cmd, c), c.Hex())
	}
	return nil
}
