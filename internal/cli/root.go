// Package cli provides the command-line interface for Prism.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/prism/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagVerbose bool
	flagQuiet   bool
	flagNoColor bool
	flagJSON    bool

	// logger carries CLI diagnostics on stderr. The colour package
	// itself never logs.
	logger hclog.Logger = hclog.NewNullLogger()
)

// NewRootCmd constructs the prism root command with all subcommands
// and global flags attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prism",
		Short: "Colour conversion and WCAG contrast calculations",
		Long: `Prism converts colours between encodings (hex, rgb, hsl, hsv) and
computes WCAG relative luminance and contrast ratios, including the
minimal adjustment a colour needs to reach a target contrast.

All commands accept colours in any supported form: "#1a2b3c", bare
hex digits, "rgb(26, 43, 60)", "hsl(210, 40%, 17%)", "hsv(210, 57%,
24%)" or a CSS colour name such as "steelblue".`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colour swatches in output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output results as JSON")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newContrastCmd())
	rootCmd.AddCommand(newAdjustCmd())
	rootCmd.AddCommand(newDistanceCmd())
	rootCmd.AddCommand(newSchemeCmd())
	rootCmd.AddCommand(newANSICmd())

	return rootCmd
}

// Execute builds the root command and runs it.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the CLI logger: --quiet turns logging off,
// --verbose selects debug, otherwise PRISM_LOG chooses the level and
// warnings are the default.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Warn
	if env := os.Getenv("PRISM_LOG"); env != "" {
		if parsed := hclog.LevelFromString(env); parsed != hclog.NoLevel {
			level = parsed
		}
	}
	if flagVerbose {
		level = hclog.Debug
	}
	if flagQuiet {
		level = hclog.Off
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "prism",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
}

// newVersionCmd represents the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
