// Package cli provides the command-line interface for Prism.
package cli

import (
	"fmt"

	"github.com/jmylchreest/prism/internal/colour"
	"github.com/spf13/cobra"
)

// newContrastCmd represents the contrast command.
func newContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Compute the WCAG contrast ratio of a colour pair",
		Long: `Compute the WCAG contrast ratio between a foreground and a
background colour, and report which conformance levels the pair
meets.

Examples:
  # Black text on white
  prism contrast "#000000" "#ffffff"

  # Any colour forms can be mixed
  prism contrast "rgb(119, 119, 119)" white

  # Machine-readable report
  prism contrast "#777777" "#ffffff" --json`,
		Args: cobra.ExactArgs(2),
		RunE: runContrast,
	}
}

// contrastResult is the JSON envelope for the contrast command.
type contrastResult struct {
	Foreground string            `json:"foreground"`
	Background string            `json:"background"`
	Ratio      float64           `json:"ratio"`
	Luminance  luminancePair     `json:"luminance"`
	Compliance colour.Compliance `json:"compliance"`
}

type luminancePair struct {
	Foreground float64 `json:"foreground"`
	Background float64 `json:"background"`
}

// runContrast executes the contrast command.
func runContrast(cmd *cobra.Command, args []string) error {
	fg, err := parseColourArg("foreground", args[0])
	if err != nil {
		return err
	}
	bg, err := parseColourArg("background", args[1])
	if err != nil {
		return err
	}

	ratio := colour.ContrastRatio(fg, bg)
	logger.Debug("computed contrast", "foreground", fg.Hex(), "background", bg.Hex(), "ratio", ratio)

	if flagJSON {
		return writeJSON(cmd, contrastResult{
			Foreground: fg.Hex(),
			Background: bg.Hex(),
			Ratio:      ratio,
			Luminance: luminancePair{
				Foreground: colour.Luminance(fg),
				Background: colour.Luminance(bg),
			},
			Compliance: colour.ComplianceFor(ratio),
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s%s on %s%s\n", swatch(cmd, fg), fg.Hex(), swatch(cmd, bg), bg.Hex())
	fmt.Fprintf(out, "contrast ratio: %.2f:1\n\n", ratio)

	table := NewTable([]string{"LEVEL", "REQUIRED", "RESULT"})
	for _, level := range colour.Levels() {
		result := "fail"
		if ratio >= level.MinRatio() {
			result = "pass"
		}
		table.AddRow([]string{string(level), fmt.Sprintf("%.1f:1", level.MinRatio()), result})
	}
	fmt.Fprint(out, table.Render())
	return nil
}
