package rules

import (
	"fmt"

	"shaderlint/internal/ast"
	"shaderlint/internal/diag"
	"shaderlint/internal/source"
	"shaderlint/internal/symbols"
)

// Context is the annotated input every rule receives: the parsed file,
// the raw source for fix text, and the symbol classification.
type Context struct {
	File    *source.File
	AST     *ast.File
	Symbols *symbols.Table
}

// Rule is one independent check. Check must be pure: no state survives
// between calls, diagnostics are the only output.
type Rule interface {
	Code() diag.Code
	Name() string
	Check(ctx *Context) []diag.Diagnostic
}

// registry is the fixed, ordered rule set, built once at process start
// and never mutated. Running order is registration order.
var registry = []Rule{
	versionDirectiveRule{},
	identCaseRule{},
	outParamSuffixRule{},
	declOrderRule{},
	fileNameRule{},
	divByConstantRule{},
	manualLerpRule{},
	vectorSumAsDotRule{},
	swizzleRule{},
	dynamicLoopRule{},
	uvMutationRule{},
}

// All returns the full registry. Callers must not modify the slice.
func All() []Rule {
	return registry
}

// Filter returns the rules for which keep is true, preserving
// registration order. This is the seam the config layer uses to
// enable/disable rules.
func Filter(rules []Rule, keep func(Rule) bool) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Run executes the rules in order. A rule that panics is converted into
// a single internal-error diagnostic; the remaining rules still run.
func Run(ctx *Context, rules []Rule) []diag.Diagnostic {
	out := make([]diag.Diagnostic, 0, 16)
	for _, r := range rules {
		out = append(out, runOne(ctx, r)...)
	}
	return out
}

func runOne(ctx *Context, r Rule) (diags []diag.Diagnostic) {
	defer func() {
		if rec := recover(); rec != nil {
			diags = []diag.Diagnostic{diag.NewError(
				diag.InternalRuleError,
				ctx.AST.Span,
				fmt.Sprintf("rule %s failed internally: %v", r.Name(), rec),
			)}
		}
	}()
	return r.Check(ctx)
}

// eachFn visits every function that has a body.
func eachFn(f *ast.File, fn func(*ast.FnDecl)) {
	for _, decl := range f.Decls {
		if fd, ok := decl.(*ast.FnDecl); ok && fd.Body != nil {
			fn(fd)
		}
	}
}
