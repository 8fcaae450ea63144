package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pyapi/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop the extraction result cache",
	Long:  `Clean removes every cached extraction result from the pyapi cache directory`,
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, _ []string) error {
	cache, err := driver.OpenDiskCache("pyapi")
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to drop cache: %w", err)
	}
	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet {
		fmt.Fprintln(os.Stdout, "cache cleared")
	}
	return nil
}
