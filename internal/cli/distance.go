// Package cli provides the command-line interface for Prism.
package cli

import (
	"fmt"

	"github.com/jmylchreest/prism/internal/colour"
	"github.com/spf13/cobra"
)

// Distance command flags
var distanceMethod string

// newDistanceCmd represents the distance command.
func newDistanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distance <colour> <colour>",
		Short: "Measure the perceptual distance between two colours",
		Long: `Measure how different two colours look.

Methods: ciede2000 (default, most accurate), cie94, cie76 (plain Lab
distance) and hcl (distance in the luminance-aligned space the adjust
command uses).

Examples:
  prism distance "#ff0000" "#fe0101"
  prism distance steelblue navy --method cie76`,
		Args: cobra.ExactArgs(2),
		RunE: runDistance,
	}

	cmd.Flags().StringVarP(&distanceMethod, "method", "m", "ciede2000", "distance formula (ciede2000, cie94, cie76, hcl)")
	return cmd
}

// distanceResult is the JSON envelope for the distance command.
type distanceResult struct {
	A        string  `json:"a"`
	B        string  `json:"b"`
	Method   string  `json:"method"`
	Distance float64 `json:"distance"`
}

// runDistance executes the distance command.
func runDistance(cmd *cobra.Command, args []string) error {
	a, err := parseColourArg("first", args[0])
	if err != nil {
		return err
	}
	b, err := parseColourArg("second", args[1])
	if err != nil {
		return err
	}

	method, err := colour.ParseDistanceMethod(distanceMethod)
	if err != nil {
		return fmt.Errorf("invalid --method: %w", err)
	}
	d, err := colour.Distance(a, b, method)
	if err != nil {
		return err
	}

	logger.Debug("measured distance", "a", a.Hex(), "b", b.Hex(), "method", string(method), "distance", d)

	if flagJSON {
		return writeJSON(cmd, distanceResult{
			A:        a.Hex(),
			B:        b.Hex(),
			Method:   string(method),
			Distance: d,
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s%s to %s%s: %.6f (%s)\n",
		swatch(cmd, a), a.Hex(), swatch(cmd, b), b.Hex(), d, method)
	return nil
}
