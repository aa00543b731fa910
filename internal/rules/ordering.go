package rules

import (
	"fmt"

	"shaderlint/internal/ast"
	"shaderlint/internal/diag"
)

// declOrderRule enforces the canonical top-level order: stage inputs,
// stage outputs, input attachments, samplers, push-constant block,
// other uniform blocks. A declaration is flagged when some later
// declaration belongs to an earlier category; each offending
// declaration is flagged once, not once per section.
type declOrderRule struct{}

func (declOrderRule) Code() diag.Code { return diag.StyleDeclOrder }
func (declOrderRule) Name() string    { return diag.StyleDeclOrder.ID() }

var categoryNames = [...]string{
	"stage inputs",
	"stage outputs",
	"input attachments",
	"texture samplers",
	"push constants",
	"uniform blocks",
}

// declCategory ranks interface declarations; -1 means the declaration
// does not participate in the ordering convention.
func declCategory(d ast.Decl) int {
	switch decl := d.(type) {
	case *ast.StageIO:
		if decl.Dir == ast.DirIn {
			return 0
		}
		return 1
	case *ast.InputAttachment:
		return 2
	case *ast.Sampler:
		return 3
	case *ast.UniformBlock:
		if decl.PushConstant {
			return 4
		}
		return 5
	default:
		return -1
	}
}

func (declOrderRule) Check(ctx *Context) []diag.Diagnostic {
	decls := make([]ast.Decl, 0, len(ctx.AST.Decls))
	cats := make([]int, 0, len(ctx.AST.Decls))
	for _, d := range ctx.AST.Decls {
		if cat := declCategory(d); cat >= 0 {
			decls = append(decls, d)
			cats = append(cats, cat)
		}
	}

	// minAfter[i] is the smallest category appearing after position i
	minAfter := make([]int, len(cats))
	running := len(categoryNames)
	for i := len(cats) - 1; i >= 0; i-- {
		minAfter[i] = running
		if cats[i] < running {
			running = cats[i]
		}
	}

	var out []diag.Diagnostic
	for i := range decls {
		if cats[i] <= minAfter[i] {
			continue
		}
		out = append(out, diag.NewWarning(
			diag.StyleDeclOrder,
			decls[i].Span(),
			fmt.Sprintf("declaration out of canonical order: %s must come before %s",
				categoryNames[minAfter[i]], categoryNames[cats[i]]),
		))
	}
	return out
}
