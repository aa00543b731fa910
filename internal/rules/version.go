package rules

import (
	"strings"

	"shaderlint/internal/diag"
)

// versionDirectiveRule forbids #version anywhere in the file. The build
// system injects the version header itself, so a hard-coded directive
// breaks the pipeline: this is the one style rule that is an error.
type versionDirectiveRule struct{}

func (versionDirectiveRule) Code() diag.Code { return diag.StyleVersionDirective }
func (versionDirectiveRule) Name() string    { return diag.StyleVersionDirective.ID() }

func (versionDirectiveRule) Check(ctx *Context) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, dir := range ctx.AST.Directives {
		body := strings.TrimLeft(strings.TrimPrefix(dir.Text, "#"), " \t")
		if !strings.HasPrefix(body, "version") {
			continue
		}
		d := diag.NewError(
			diag.StyleVersionDirective,
			dir.Span,
			"#version directives are forbidden; the build system injects the version header",
		).WithFix("remove the #version directive", diag.FixEdit{Span: dir.Span, NewText: ""})
		out = append(out, d)
	}
	return out
}
