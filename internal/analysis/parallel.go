package analysis

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"shaderlint/internal/source"
)

// shaderExts are the stage extensions the directory walk picks up.
var shaderExts = []string{".vert", ".frag", ".comp"}

// ListShaderFiles returns every shader file under dir, sorted so batch
// output stays deterministic.
func ListShaderFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range shaderExts {
			if strings.HasSuffix(path, ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// FileResult pairs one file with its analysis outcome. Err is non-nil
// only for I/O failures; analysis itself never fails.
type FileResult struct {
	Path   string
	Result *Result
	Err    error
}

// AnalyzeDir analyzes every shader file under dir, running up to jobs
// files in parallel (jobs <= 0 means GOMAXPROCS). Results come back in
// the same sorted order as ListShaderFiles regardless of scheduling.
func AnalyzeDir(ctx context.Context, dir string, jobs int, opts Options) ([]FileResult, error) {
	files, err := ListShaderFiles(dir)
	if err != nil {
		return nil, err
	}
	return AnalyzePaths(ctx, files, jobs, opts)
}

// AnalyzePaths analyzes the given files in parallel, preserving input
// order in the result slice.
func AnalyzePaths(ctx context.Context, files []string, jobs int, opts Options) ([]FileResult, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(files), 1)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			// each goroutine owns its FileSet; nothing crosses the
			// file boundary
			set := source.NewFileSet()
			id, loadErr := set.Load(path)
			if loadErr != nil {
				results[i] = FileResult{Path: path, Err: loadErr}
				return nil
			}
			res, analyzeErr := AnalyzeLoaded(set, id, opts)
			results[i] = FileResult{Path: path, Result: res, Err: analyzeErr}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
