package rules

import (
	"fmt"

	"shaderlint/internal/ast"
	"shaderlint/internal/diag"
	"shaderlint/internal/symbols"
)

// dynamicLoopRule flags for/while loops whose iteration bound is not
// statically known: the comparison limit is neither a literal nor a
// const-qualified name. Drivers unroll fixed-bound loops; dynamic
// bounds force real branching.
type dynamicLoopRule struct{}

func (dynamicLoopRule) Code() diag.Code { return diag.OptDynamicLoop }
func (dynamicLoopRule) Name() string    { return diag.OptDynamicLoop.ID() }

func (dynamicLoopRule) Check(ctx *Context) []diag.Diagnostic {
	var out []diag.Diagnostic
	eachFn(ctx.AST, func(fn *ast.FnDecl) {
		ast.WalkStmts(fn.Body, func(s ast.Stmt) bool {
			var cond ast.Expr
			switch st := s.(type) {
			case *ast.ForStmt:
				cond = st.Cond
			case *ast.WhileStmt:
				cond = st.Cond
			default:
				return true
			}
			bound, isCmp := comparisonBound(cond)
			if !isCmp {
				return true
			}
			if isStaticBound(ctx, fn.Name.Name, bound) {
				return true
			}
			out = append(out, diag.NewInfo(
				diag.OptDynamicLoop,
				bound.Span(),
				fmt.Sprintf("loop bound %q is not a compile-time constant", ctx.File.Text(bound.Span())),
			))
			return true
		})
	})
	return out
}

// comparisonBound extracts the limit side of a loop condition written
// as an ordering comparison.
func comparisonBound(cond ast.Expr) (ast.Expr, bool) {
	bin, ok := ast.Unparen(cond).(*ast.BinaryExpr)
	if !ok {
		return nil, false
	}
	switch bin.Op {
	case ast.OpLt, ast.OpLtEq:
		return bin.Y, true
	case ast.OpGt, ast.OpGtEq:
		return bin.X, true
	default:
		return nil, false
	}
}

// isStaticBound reports whether the bound is a literal or resolves to a
// const-qualified declaration. Unknown names count as dynamic.
func isStaticBound(ctx *Context, fnName string, bound ast.Expr) bool {
	switch x := ast.Unparen(bound).(type) {
	case *ast.LitExpr:
		return true
	case *ast.IdentExpr:
		sym, ok := ctx.Symbols.Lookup(fnName, x.Name)
		if !ok {
			return false
		}
		return sym.Const || sym.Role == symbols.RoleGlobalConst
	default:
		return false
	}
}
