package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"pyapi/internal/config"
	"pyapi/internal/diagfmt"
	"pyapi/internal/driver"
	"pyapi/internal/extract"
	"pyapi/internal/observ"
)

var extractCmd = &cobra.Command{
	Use:   "extract [flags] path...",
	Short: "Print def/class signatures from Python files",
	Long: `Extract scans the given files (directories are walked for *.py) and
prints every definition header, with its docstring when one directly
follows. Visibility defaults to public: names without a leading
underscore.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().Bool("public", false, "keep only names without a leading underscore (default)")
	extractCmd.Flags().Bool("private", false, "keep only names with a leading underscore")
	extractCmd.Flags().Bool("all", false, "keep every definition")
	extractCmd.MarkFlagsMutuallyExclusive("public", "private", "all")

	extractCmd.Flags().Bool("docstrings", true, "attach docstrings to signatures")
	extractCmd.Flags().Bool("no-docstrings", false, "print bare signatures")
	extractCmd.MarkFlagsMutuallyExclusive("docstrings", "no-docstrings")

	extractCmd.Flags().Int("jobs", 0, "parallel workers (0 = number of CPUs)")
	extractCmd.Flags().StringArray("exclude", nil, "glob pattern to skip (repeatable)")
	extractCmd.Flags().Bool("ui", false, "show interactive progress for large batches")
	extractCmd.Flags().Bool("timings", false, "print phase timings to stderr")
	extractCmd.Flags().Bool("no-cache", false, "bypass the result cache")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, _, err := config.Discover(".")
	if err != nil {
		return err
	}

	opts, err := buildOptions(cmd, cfg)
	if err != nil {
		return err
	}

	timer := observ.NewTimer()

	phase := timer.Begin("expand")
	files, err := driver.ExpandPaths(args, opts)
	timer.End(phase, fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no Python files found in %s", strings.Join(args, ", "))
	}

	phase = timer.Begin("extract")
	results, err := runPipeline(cmd, files, opts)
	timer.End(phase, "")
	if err != nil {
		return err
	}

	phase = timer.Begin("output")
	printResults(cmd, results)
	timer.End(phase, "")

	if timings, _ := cmd.Flags().GetBool("timings"); timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}

// buildOptions merges config defaults with command-line flags. Flags win.
func buildOptions(cmd *cobra.Command, cfg *config.Config) (driver.Options, error) {
	visibility, err := config.ParseVisibility(cfg.Defaults.Visibility, extract.Public)
	if err != nil {
		return driver.Options{}, err
	}
	if set, _ := cmd.Flags().GetBool("private"); set {
		visibility = extract.Private
	}
	if set, _ := cmd.Flags().GetBool("all"); set {
		visibility = extract.All
	}
	if set, _ := cmd.Flags().GetBool("public"); set {
		visibility = extract.Public
	}

	docstrings := cfg.DocstringsOr(true)
	if cmd.Flags().Changed("docstrings") {
		docstrings, _ = cmd.Flags().GetBool("docstrings")
	}
	if set, _ := cmd.Flags().GetBool("no-docstrings"); set {
		docstrings = false
	}

	excludes, err := cfg.CompileExcludes()
	if err != nil {
		return driver.Options{}, err
	}
	patterns, _ := cmd.Flags().GetStringArray("exclude")
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return driver.Options{}, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		excludes = append(excludes, g)
	}

	jobs := cfg.Run.Jobs
	if cmd.Flags().Changed("jobs") {
		jobs, _ = cmd.Flags().GetInt("jobs")
	}

	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	opts := driver.Options{
		Visibility:     visibility,
		Docstrings:     docstrings,
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Exclude:        excludes,
	}

	noCache, _ := cmd.Flags().GetBool("no-cache")
	if !noCache && cfg.CacheOr(true) {
		// cache failures only cost speed, never correctness
		if cache, err := driver.OpenDiskCache("pyapi"); err == nil {
			opts.Cache = cache
		}
	}
	return opts, nil
}

// formatResults builds the extraction report: a "# path" header per
// file, then its definitions, everything joined with blank lines.
func formatResults(results []driver.FileResult) string {
	var entries []string
	for _, res := range results {
		entries = append(entries, "# "+res.Path)
		entries = append(entries, res.Definitions...)
	}
	return strings.Join(entries, "\n\n")
}

func printResults(cmd *cobra.Command, results []driver.FileResult) {
	fmt.Println(formatResults(results))

	if debug, _ := cmd.Root().PersistentFlags().GetBool("debug"); debug {
		printDiagnostics(cmd, results)
	}
}

func printDiagnostics(cmd *cobra.Command, results []driver.FileResult) {
	for _, res := range results {
		if res.Bag == nil || res.Bag.Len() == 0 || res.FileSet == nil {
			continue
		}
		res.Bag.Sort()
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
			Color:    useColor(cmd, os.Stderr),
			PathMode: diagfmt.PathModeRelative,
		})
	}
}
