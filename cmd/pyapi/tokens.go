package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pyapi/internal/diagfmt"
	"pyapi/internal/driver"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] file.py",
	Short: "Dump the token stream of one Python file",
	Long:  `Tokens lexes a single file and prints every token, for debugging the extraction pipeline`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokens(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	result, err := driver.Tokenize(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:    useColor(cmd, os.Stderr),
			PathMode: diagfmt.PathModeRelative,
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
