package rules

import (
	"fmt"
	"strconv"

	"shaderlint/internal/ast"
	"shaderlint/internal/diag"
)

// divByConstantRule suggests multiplying by the reciprocal wherever an
// expression divides by a numeric literal. GPUs multiply much faster
// than they divide.
type divByConstantRule struct{}

func (divByConstantRule) Code() diag.Code { return diag.OptDivByConstant }
func (divByConstantRule) Name() string    { return diag.OptDivByConstant.ID() }

func (divByConstantRule) Check(ctx *Context) []diag.Diagnostic {
	var out []diag.Diagnostic
	eachFn(ctx.AST, func(fn *ast.FnDecl) {
		ast.WalkExprs(fn.Body, func(e ast.Expr) bool {
			bin, ok := e.(*ast.BinaryExpr)
			if !ok || bin.Op != ast.OpDiv {
				return true
			}
			value, isLit := litValue(bin.Y)
			if !isLit || value == 0 {
				return true
			}
			recip := strconv.FormatFloat(1/value, 'g', -1, 64)
			if !hasDotOrExp(recip) {
				recip += ".0"
			}
			numeratorText := ctx.File.Text(bin.X.Span())
			d := diag.NewInfo(
				diag.OptDivByConstant,
				bin.Span(),
				fmt.Sprintf("division by constant %s; multiply by the reciprocal instead", ctx.File.Text(bin.Y.Span())),
			).WithFix(
				fmt.Sprintf("rewrite as %s * %s", numeratorText, recip),
				diag.FixEdit{Span: bin.Span(), NewText: numeratorText + " * " + recip},
			)
			out = append(out, d)
			return true
		})
	})
	return out
}

func hasDotOrExp(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == 'e' || s[i] == 'E' {
			return true
		}
	}
	return false
}
