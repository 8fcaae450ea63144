package driver

import (
	"fmt"

	"github.com/gobwas/glob"

	"pyapi/internal/diag"
	"pyapi/internal/extract"
	"pyapi/internal/extractpipeline"
	"pyapi/internal/source"
)

// Options configures an extraction run.
type Options struct {
	Visibility extract.Visibility
	Docstrings bool
	// MaxDiagnostics bounds the lexical diagnostics collected per file.
	MaxDiagnostics int
	// Jobs limits parallelism in ExtractFiles; 0 means GOMAXPROCS.
	Jobs int
	// Exclude drops matching paths when directories are expanded.
	Exclude []glob.Glob
	// Cache holds rendered results keyed by content and options; nil
	// disables caching.
	Cache *DiskCache
	// Sink receives progress events; nil discards them.
	Sink extractpipeline.ProgressSink
	// Timings accumulates per-stage durations when non-nil.
	Timings *extractpipeline.Timings
}

func (o Options) sink() extractpipeline.ProgressSink {
	if o.Sink == nil {
		return extractpipeline.NopSink{}
	}
	return o.Sink
}

// FileResult is the outcome for one input file.
type FileResult struct {
	Path string
	// Definitions are the rendered headers, in source order.
	Definitions []string
	Bag         *diag.Bag
	// FileSet resolves the Bag's spans. Nil on cache hits, which carry
	// no diagnostics.
	FileSet *source.FileSet
}

// Extract runs the full pipeline for one file on disk: load, tokenize,
// scan, filter, render. The first failure aborts the file.
func Extract(path string, opts Options) (*FileResult, error) {
	if opts.Cache != nil {
		if res, ok, err := opts.Cache.lookupFile(path, opts); err == nil && ok {
			return res, nil
		}
	}

	tr, err := Tokenize(path, opts.MaxDiagnostics)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", diag.IOLoadFileError.ID(), err)
	}
	res, err := extractTokens(tr, opts)
	if err != nil {
		return nil, err
	}
	if opts.Cache != nil {
		// a write failure only loses the cache entry
		_ = opts.Cache.storeFile(path, opts, res)
	}
	return res, nil
}

// ExtractSource runs the pipeline on in-memory content. No caching.
func ExtractSource(name string, content []byte, opts Options) (*FileResult, error) {
	return extractTokens(TokenizeSource(name, content, opts.MaxDiagnostics), opts)
}

func extractTokens(tr *TokenizeResult, opts Options) (*FileResult, error) {
	defs, err := extract.Scan(tr.Tokens, extract.Options{Docstrings: opts.Docstrings})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tr.File.Path, err)
	}
	kept, err := extract.Filter(defs, opts.Visibility)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tr.File.Path, err)
	}
	return &FileResult{
		Path:        tr.File.Path,
		Definitions: extract.RenderAll(tr.File, kept),
		Bag:         tr.Bag,
		FileSet:     tr.FileSet,
	}, nil
}
