package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"

	"pyapi/internal/extractpipeline"
)

// listPyFiles returns every *.py file under dir, sorted for deterministic
// output order.
func listPyFiles(dir string, exclude []glob.Glob) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if excluded(path, exclude) {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".py") && !excluded(path, exclude) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ExpandPaths turns a mix of files and directories into a flat file list.
// Directories are walked for *.py, sorted; explicit files are kept as
// given. Exclude globs match slash-separated paths.
func ExpandPaths(paths []string, opts Options) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			files, err := listPyFiles(p, opts.Exclude)
			if err != nil {
				return nil, err
			}
			out = append(out, files...)
			continue
		}
		if !excluded(p, opts.Exclude) {
			out = append(out, p)
		}
	}
	return out, nil
}

func excluded(path string, exclude []glob.Glob) bool {
	slashed := filepath.ToSlash(path)
	for _, g := range exclude {
		if g.Match(slashed) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}

// ExtractFiles processes the given files in parallel. Results keep the
// input order; the first failed file aborts the run and its error is
// returned. Each file is independent, so the result slice is addressed
// by index and needs no locking.
func ExtractFiles(ctx context.Context, files []string, opts Options) ([]FileResult, error) {
	if len(files) == 0 {
		return nil, nil
	}

	sink := opts.sink()
	for _, path := range files {
		sink.OnEvent(extractpipeline.Event{
			File:   path,
			Stage:  extractpipeline.StageLoad,
			Status: extractpipeline.StatusQueued,
		})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(files))
	elapsed := make([]time.Duration, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			sink.OnEvent(extractpipeline.Event{
				File:   path,
				Stage:  extractpipeline.StageExtract,
				Status: extractpipeline.StatusWorking,
			})

			started := time.Now()
			res, err := Extract(path, opts)
			elapsed[i] = time.Since(started)

			if err != nil {
				sink.OnEvent(extractpipeline.Event{
					File:    path,
					Stage:   extractpipeline.StageExtract,
					Status:  extractpipeline.StatusError,
					Err:     err,
					Elapsed: elapsed[i],
				})
				return err
			}

			results[i] = *res
			sink.OnEvent(extractpipeline.Event{
				File:    path,
				Stage:   extractpipeline.StageRender,
				Status:  extractpipeline.StatusDone,
				Elapsed: elapsed[i],
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Timings != nil {
		for _, d := range elapsed {
			opts.Timings.Add(extractpipeline.StageExtract, d)
		}
	}
	return results, nil
}
