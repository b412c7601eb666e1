// Package cli provides the command-line interface for Prism.
package cli

import (
	"fmt"

	"github.com/jmylchreest/prism/internal/colour"
	"github.com/spf13/cobra"
)

// newANSICmd represents the ansi command.
func newANSICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ansi <colour>",
		Short: "Map a colour onto the terminal palettes",
		Long: `Map a colour onto the 16-colour and 256-colour terminal palettes.

The 16-colour match is the perceptually nearest base colour
(CIEDE2000); the 256-colour index quantises onto the xterm 6x6x6
cube, with greys taking the dedicated grey ramp.

Examples:
  prism ansi "#ff8800"
  prism ansi steelblue --json`,
		Args: cobra.ExactArgs(1),
		RunE: runANSI,
	}
}

// ansiResult is the JSON envelope for the ansi command.
type ansiResult struct {
	Input   string      `json:"input"`
	Hex     string      `json:"hex"`
	ANSI16  ansi16Match `json:"ansi16"`
	ANSI256 ansiMatch   `json:"ansi256"`
}

type ansi16Match struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Hex   string `json:"hex"`
}

type ansiMatch struct {
	Index int    `json:"index"`
	Hex   string `json:"hex"`
}

// runANSI executes the ansi command.
func runANSI(cmd *cobra.Command, args []string) error {
	c, err := parseColourArg("input", args[0])
	if err != nil {
		return err
	}

	base := colour.ClosestANSI16(c)
	index256 := colour.ANSI256Index(c)
	c256, err := colour.ANSI256Colour(index256)
	if err != nil {
		return err
	}

	logger.Debug("mapped colour", "hex", c.Hex(), "ansi16", base.Index, "ansi256", index256)

	if flagJSON {
		return writeJSON(cmd, ansiResult{
			Input:   args[0],
			Hex:     c.Hex(),
			ANSI16:  ansi16Match{Index: base.Index, Name: base.Name, Hex: base.Colour.Hex()},
			ANSI256: ansiMatch{Index: index256, Hex: c256.Hex()},
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "input:   %s%s\n", swatch(cmd, c), c.Hex())
	fmt.Fprintf(out, "ansi16:  %s%d (%s, %s)\n", swatch(cmd, base.Colour), base.Index, base.Name, base.Colour.Hex())
	fmt.Fprintf(out, "ansi256: %s%d (%s)\n", swatch(cmd, c256), index256, c256.Hex())
	return nil
}
