// Package cli provides the command-line interface for Prism.
package cli

import (
	"fmt"

	"github.com/jmylchreest/prism/internal/colour"
	"github.com/spf13/cobra"
)

var (
	// Convert command flags
	convertTo   *formatValue
	convertFrom *formatValue
	convertOver string
)

// newConvertCmd represents the convert command.
func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <colour>",
		Short: "Convert a colour between encodings",
		Long: `Convert a colour to another encoding.

The input form is auto-detected by default; use --from to require a
specific encoding, which also rejects anything else. Translucent
"rgba(...)" input is composited over the --over background before
conversion.

Examples:
  # Hex to rgb
  prism convert "#ff0000" --to rgb

  # Auto-detected named colour to hsl
  prism convert steelblue --to hsl

  # Strict parsing: only accept rgb input
  prism convert "rgb(255, 0, 0)" --from rgb --to hsv

  # Composite a translucent colour over white, then convert
  prism convert "rgba(255, 0, 0, 0.5)" --over "#ffffff"

  # All encodings at once
  prism convert "#336699" --json`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}

	convertTo = newFormatValue(colour.FormatHex, false)
	convertFrom = newFormatValue(colour.FormatHex, true)
	cmd.Flags().VarP(convertTo, "to", "t", "output format (hex, rgb, hsl, hsv)")
	cmd.Flags().VarP(convertFrom, "from", "f", "input format (auto, hex, rgb, hsl, hsv)")
	cmd.Flags().StringVar(&convertOver, "over", "", "background colour to composite translucent input over")
	return cmd
}

// convertResult is the JSON envelope for the convert command, with
// the colour rendered in every encoding.
type convertResult struct {
	Input  string     `json:"input"`
	Result string     `json:"result"`
	Hex    string     `json:"hex"`
	RGB    colour.RGB `json:"rgb"`
	HSL    colour.HSL `json:"hsl"`
	HSV    colour.HSV `json:"hsv"`
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]

	c, err := parseConvertInput(input, convertFrom, convertOver)
	if err != nil {
		return err
	}

	logger.Debug("converted colour", "input", input, "hex", c.Hex(), "to", convertTo.String())

	if flagJSON {
		return writeJSON(cmd, convertResult{
			Input:  input,
			Result: convertTo.format.Render(c),
			Hex:    c.Hex(),
			RGB:    c.RGB(),
			HSL:    c.HSL(),
			HSV:    c.HSV(),
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", swatch(cmd, c), convertTo.format.Render(c))
	return nil
}

// parseConvertInput parses the colour argument, honouring an explicit
// input format and optional alpha compositing.
func parseConvertInput(input string, from *formatValue, over string) (colour.Colour, error) {
	if !from.auto {
		return from.format.Parse(input)
	}

	ac, err := colour.ParseAlpha(input)
	if err != nil {
		return colour.Colour{}, err
	}

	if over != "" {
		bg, err := colour.Parse(over)
		if err != nil {
			return colour.Colour{}, fmt.Errorf("invalid --over colour: %w", err)
		}
		return ac.Over(bg), nil
	}
	if ac.Alpha < 1 {
		return colour.Colour{}, fmt.Errorf("%q is translucent; pass --over to composite it onto a background", input)
	}
	return ac.Colour, nil
}
