// Package analysis wires the pipeline together: lex, parse, classify
// symbols, run rules, and aggregate diagnostics in the documented
// order. Analysis of one file is pure and synchronous; callers own any
// parallelism across files.
package analysis

import (
	"errors"
	"sort"

	"shaderlint/internal/ast"
	"shaderlint/internal/diag"
	"shaderlint/internal/parser"
	"shaderlint/internal/rules"
	"shaderlint/internal/source"
	"shaderlint/internal/symbols"
)

// ErrNilSource is the only caller-visible failure: the input contract
// requires real source text, even if empty.
var ErrNilSource = errors.New("analysis: source text is nil")

// DefaultMaxDiagnostics bounds a single file's output when the caller
// does not say otherwise.
const DefaultMaxDiagnostics = 256

// Options configures one analysis run.
type Options struct {
	// MaxDiagnostics caps the total per file; 0 means DefaultMaxDiagnostics.
	MaxDiagnostics int
	// Rules overrides the registry; nil means all registered rules.
	Rules []rules.Rule
}

// Result is the outcome for one file. Diagnostics are ordered: parse
// diagnostics in source order first, then rule diagnostics in source
// order with rule-registration order breaking span ties.
type Result struct {
	Path        string
	FileID      source.FileID
	Set         *source.FileSet
	AST         *ast.File
	Diagnostics []diag.Diagnostic
	Symbols     *symbols.Table
}

// Analyze runs the full pipeline over one source text. The path is
// used only for stage inference, the filename rule, and reporting; the
// file is never read from disk here.
func Analyze(path string, src []byte, opts Options) (*Result, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	set := source.NewFileSet()
	id := set.AddVirtual(path, normalize(src))
	return analyzeLoaded(set, id, opts)
}

// AnalyzeLoaded analyzes a file already registered in a FileSet.
func AnalyzeLoaded(set *source.FileSet, id source.FileID, opts Options) (*Result, error) {
	return analyzeLoaded(set, id, opts)
}

func analyzeLoaded(set *source.FileSet, id source.FileID, opts Options) (*Result, error) {
	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = DefaultMaxDiagnostics
	}
	file := set.Get(id)

	parseBag := diag.NewBag(maxDiags)
	astFile := parser.ParseFile(file, parser.Options{
		MaxErrors: uint(maxDiags),
		Reporter:  diag.BagReporter{Bag: parseBag},
	})

	table := symbols.Classify(astFile)

	ruleSet := opts.Rules
	if ruleSet == nil {
		ruleSet = rules.All()
	}
	ruleDiags := rules.Run(&rules.Context{
		File:    file,
		AST:     astFile,
		Symbols: table,
	}, ruleSet)

	// parse diagnostics come out in source order already; rule
	// diagnostics run grouped by rule, so re-sort by span. The stable
	// sort keeps registration order for same-span diagnostics.
	sort.SliceStable(ruleDiags, func(i, j int) bool {
		a, b := ruleDiags[i].Primary, ruleDiags[j].Primary
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.End < b.End
	})

	out := diag.NewBag(maxDiags)
	for _, d := range parseBag.Items() {
		out.Add(d)
	}
	for _, d := range ruleDiags {
		out.Add(d)
	}

	return &Result{
		Path:        file.Path,
		FileID:      id,
		Set:         set,
		AST:         astFile,
		Diagnostics: out.Items(),
		Symbols:     table,
	}, nil
}

// HasErrors reports whether any diagnostic is an error.
func (r *Result) HasErrors() bool {
	for i := range r.Diagnostics {
		if r.Diagnostics[i].Severity >= diag.SevError {
			return true
		}
	}
	return false
}

// normalize applies the same BOM/CRLF cleanup Load performs, so virtual
// and disk inputs behave identically.
func normalize(src []byte) []byte {
	src, _ = source.RemoveBOM(src)
	src, _ = source.NormalizeCRLF(src)
	return src
}
