package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pyapi/internal/extract"
	"pyapi/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "pyapi",
	Short: "Extract the API shape of Python modules",
	Long:  `pyapi scans Python sources and prints def/class signatures with their docstrings, without importing the code`,
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("debug", false, "show lexical diagnostics and full error detail")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to collect per file")

	// a failed run reports the failure, not the flag reference
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		if debug, _ := rootCmd.PersistentFlags().GetBool("debug"); debug {
			var perr *extract.PositionedError
			if errors.As(err, &perr) {
				fmt.Fprintf(os.Stderr, "%s at bytes %d..%d\n", perr.Code, perr.Span.Start, perr.Span.End)
			}
		}
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the persistent --color flag against the stream.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
