package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"shaderlint/internal/analysis"
	"shaderlint/internal/config"
	"shaderlint/internal/diag"
	"shaderlint/internal/diagfmt"
	"shaderlint/internal/source"
	"shaderlint/internal/ui"
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags] path...",
	Short: "Lint shader files or directories",
	Long:  `Lint analyzes shader files (.vert, .frag, .comp) and reports style violations and optimization suggestions`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	lintCmd.Flags().String("config", "", "path to shaderlint.toml (default: discover upward)")
	lintCmd.Flags().Int("jobs", 0, "parallel workers (0 = all CPUs)")
	lintCmd.Flags().Bool("no-cache", false, "bypass the result cache")
	lintCmd.Flags().Bool("progress", false, "show interactive progress (tty only)")
}

func runLint(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	configPath, _ := cmd.Flags().GetString("config")
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	showProgress, _ := cmd.Flags().GetBool("progress")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	cfg, err := loadConfig(configPath, args[0])
	if err != nil {
		return err
	}

	maxDiags := maxDiagnostics(cmd)
	if cfg.MaxDiagnostics > 0 {
		maxDiags = cfg.MaxDiagnostics
	}
	if cfg.Jobs > 0 && jobs == 0 {
		jobs = cfg.Jobs
	}

	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !quiet {
			fmt.Fprintln(os.Stderr, "no shader files found")
		}
		return nil
	}

	var cache *analysis.DiskCache
	if !noCache {
		// a broken cache never blocks linting
		cache, _ = analysis.OpenDiskCache("shaderlint")
	}
	fingerprint := cfg.Fingerprint()

	opts := analysis.Options{
		MaxDiagnostics: maxDiags,
		Rules:          cfg.SelectRules(),
	}

	cached := make(map[string]*analysis.Result)
	pending := files
	if cache != nil {
		pending = pending[:0:0]
		for _, path := range files {
			if res, ok := tryCache(cache, path, fingerprint); ok {
				cached[path] = res
				continue
			}
			pending = append(pending, path)
		}
	}

	var events chan ui.Event
	var progDone chan struct{}
	if showProgress && isTerminal(os.Stderr) {
		events = make(chan ui.Event, len(files))
		progDone = make(chan struct{})
		model := ui.NewProgressModel("linting shaders", files, events)
		go func() {
			defer close(progDone)
			_, _ = tea.NewProgram(model, tea.WithOutput(os.Stderr)).Run()
		}()
	}

	computed, err := analysis.AnalyzePaths(cmd.Context(), pending, jobs, opts)

	results := make([]analysis.FileResult, 0, len(files))
	byPath := make(map[string]analysis.FileResult, len(computed))
	for _, r := range computed {
		byPath[r.Path] = r
	}
	for _, path := range files {
		if res, ok := cached[path]; ok {
			results = append(results, analysis.FileResult{Path: path, Result: res})
			continue
		}
		if r, ok := byPath[path]; ok {
			results = append(results, r)
		}
	}
	if events != nil {
		for _, r := range results {
			ev := ui.Event{File: r.Path, Status: ui.StatusClean}
			switch {
			case r.Err != nil:
				ev.Status = ui.StatusError
			case r.Result != nil && len(r.Result.Diagnostics) > 0:
				ev.Status = ui.StatusIssues
				ev.Issues = len(r.Result.Diagnostics)
			}
			events <- ev
		}
		close(events)
		<-progDone
	}
	if err != nil {
		return err
	}

	errorCount := 0
	warnCount := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			errorCount++
			continue
		}
		res := r.Result
		cfg.ApplySeverity(res.Diagnostics)
		storeCache(cache, res, fingerprint)
		for i := range res.Diagnostics {
			switch res.Diagnostics[i].Severity {
			case diag.SevError:
				errorCount++
			case diag.SevWarning:
				warnCount++
			}
		}
		if err := emit(cmd, format, res); err != nil {
			return err
		}
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "%d files, %d errors, %d warnings\n", len(files), errorCount, warnCount)
	}
	if errorCount > 0 {
		return fmt.Errorf("lint found %d error(s)", errorCount)
	}
	return nil
}

func loadConfig(explicit, firstArg string) (*config.Config, error) {
	if explicit != "" {
		return config.Load(explicit)
	}
	dir := firstArg
	if info, err := os.Stat(firstArg); err != nil || !info.IsDir() {
		dir = "."
	}
	return config.Discover(dir)
}

// collectFiles expands directory arguments into shader files and keeps
// explicit file arguments as-is.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			found, walkErr := analysis.ListShaderFiles(arg)
			if walkErr != nil {
				return nil, walkErr
			}
			files = append(files, found...)
			continue
		}
		files = append(files, arg)
	}
	return files, nil
}

func emit(cmd *cobra.Command, format string, res *analysis.Result) error {
	switch format {
	case "pretty":
		diagfmt.Pretty(os.Stdout, res.Diagnostics, res.Set, diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stdout),
			ShowNotes:  true,
			ShowFixes:  true,
			ShowSource: true,
		})
		return nil
	case "json":
		return diagfmt.JSON(os.Stdout, res.Diagnostics, res.Set, diagfmt.JSONOpts{
			IncludeNotes: true,
			IncludeFixes: true,
		})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// tryCache loads a file and returns its cached result when both the
// content hash and the configuration fingerprint match a stored
// payload.
func tryCache(cache *analysis.DiskCache, path, fingerprint string) (*analysis.Result, bool) {
	set := source.NewFileSet()
	id, err := set.Load(path)
	if err != nil {
		return nil, false
	}
	var payload analysis.CachePayload
	hit, err := cache.Get(set.Get(id).Hash, fingerprint, &payload)
	if err != nil || !hit {
		return nil, false
	}
	return &analysis.Result{
		Path:        path,
		FileID:      id,
		Set:         set,
		Diagnostics: payload.Diagnostics,
	}, true
}

func storeCache(cache *analysis.DiskCache, res *analysis.Result, fingerprint string) {
	if cache == nil {
		return
	}
	_ = cache.Put(res.Set.Get(res.FileID).Hash, analysis.PayloadFor(res, fingerprint))
}
