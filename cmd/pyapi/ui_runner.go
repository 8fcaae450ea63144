package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pyapi/internal/driver"
	"pyapi/internal/extractpipeline"
	"pyapi/internal/ui"
)

type extractOutcome struct {
	results []driver.FileResult
	err     error
}

// runPipeline dispatches between the plain driver and the interactive
// progress view.
func runPipeline(cmd *cobra.Command, files []string, opts driver.Options) ([]driver.FileResult, error) {
	withUI, _ := cmd.Flags().GetBool("ui")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if withUI && !quiet && isTerminal(os.Stdout) {
		return runExtractWithUI(cmd.Context(), "extracting", files, opts)
	}
	return driver.ExtractFiles(cmd.Context(), files, opts)
}

func runExtractWithUI(ctx context.Context, title string, files []string, opts driver.Options) ([]driver.FileResult, error) {
	events := make(chan extractpipeline.Event, 256)
	outcomeCh := make(chan extractOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = extractpipeline.ChannelSink{Ch: events}
		results, err := driver.ExtractFiles(ctx, files, optsCopy)
		outcomeCh <- extractOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
