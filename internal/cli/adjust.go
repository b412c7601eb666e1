// Package cli provides the command-line interface for Prism.
package cli

import (
	"fmt"

	"github.com/jmylchreest/prism/internal/colour"
	"github.com/spf13/cobra"
)

var (
	// Adjust command flags
	adjustTarget string
	adjustApply  string
)

// newAdjustCmd represents the adjust command.
func newAdjustCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adjust <foreground> <background>",
		Short: "Adjust a colour pair to reach a contrast target",
		Long: `Find the smallest perceptual adjustment that makes a colour pair
meet a contrast target. Hue and chroma are preserved as far as the
sRGB gamut allows; only luminance moves.

The target can be a ratio ("4.5") or a WCAG level name (AA, AAA,
AA-large, AAA-large). By default the foreground is adjusted; --apply
selects the background instead, or auto to move whichever side needs
the smaller change.

An unreachable target is an error, reported with the best ratio that
is actually achievable.

Examples:
  # Darken grey text until it meets AA on white
  prism adjust "#777777" "#ffffff" --target 4.5

  # Same target by level name, adjusting the background
  prism adjust "#777777" "#ffffff" --target AA --apply bg

  # Let prism choose the cheaper side to move
  prism adjust "#888888" "#777777" --target AAA --apply auto`,
		Args: cobra.ExactArgs(2),
		RunE: runAdjust,
	}

	cmd.Flags().StringVarP(&adjustTarget, "target", "t", "AA", "contrast target: a ratio or a WCAG level name")
	cmd.Flags().StringVar(&adjustApply, "apply", "fg", "which side to adjust (fg, bg, auto)")
	return cmd
}

// adjustResult is the JSON envelope for the adjust command.
type adjustResult struct {
	Foreground string            `json:"foreground"`
	Background string            `json:"background"`
	Target     float64           `json:"target"`
	Ratio      float64           `json:"ratio"`
	Compliance colour.Compliance `json:"compliance"`
}

// runAdjust executes the adjust command.
func runAdjust(cmd *cobra.Command, args []string) error {
	fg, err := parseColourArg("foreground", args[0])
	if err != nil {
		return err
	}
	bg, err := parseColourArg("background", args[1])
	if err != nil {
		return err
	}

	target, err := colour.ParseTarget(adjustTarget)
	if err != nil {
		return fmt.Errorf("invalid --target: %w", err)
	}
	mode, err := colour.ParseAdjustMode(adjustApply)
	if err != nil {
		return fmt.Errorf("invalid --apply: %w", err)
	}

	newFg, newBg, err := colour.AdjustPair(fg, bg, target, mode)
	if err != nil {
		return err
	}

	ratio := colour.ContrastRatio(newFg, newBg)
	logger.Debug("adjusted pair",
		"foreground", newFg.Hex(), "background", newBg.Hex(),
		"target", target, "ratio", ratio, "mode", mode.String())

	if flagJSON {
		return writeJSON(cmd, adjustResult{
			Foreground: newFg.Hex(),
			Background: newBg.Hex(),
			Target:     target,
			Ratio:      ratio,
			Compliance: colour.ComplianceFor(ratio),
		})
	}

	out := cmd.OutOrStdout()
	if newFg != fg {
		fmt.Fprintf(out, "foreground: %s%s -> %s%s\n", swatch(cmd, fg), fg.Hex(), swatch(cmd, newFg), newFg.Hex())
	} else {
		fmt.Fprintf(out, "foreground: %s%s (unchanged)\n", swatch(cmd, fg), fg.Hex())
	}
	if newBg != bg {
		fmt.Fprintf(out, "background: %s%s -> %s%s\n", swatch(cmd, bg), bg.Hex(), swatch(cmd, newBg), newBg.Hex())
	} else {
		fmt.Fprintf(out, "background: %s%s (unchanged)\n", swatch(cmd, bg), bg.Hex())
	}
	fmt.Fprintf(out, "contrast ratio: %.2f:1 (target %.2f:1)\n", ratio, target)
	return nil
}
