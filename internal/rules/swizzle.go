package rules

import (
	"fmt"
	"strings"

	"shaderlint/internal/ast"
	"shaderlint/internal/diag"
	"shaderlint/internal/token"
)

// swizzleRule detects vector constructors that only shuffle components
// of a single vector, like vec3(v.z, v.y, v.x), and suggests the
// equivalent swizzle v.zyx.
type swizzleRule struct{}

func (swizzleRule) Code() diag.Code { return diag.OptSwizzle }
func (swizzleRule) Name() string    { return diag.OptSwizzle.ID() }

func (swizzleRule) Check(ctx *Context) []diag.Diagnostic {
	var out []diag.Diagnostic
	eachFn(ctx.AST, func(fn *ast.FnDecl) {
		ast.WalkExprs(fn.Body, func(e ast.Expr) bool {
			call, ok := e.(*ast.CallExpr)
			if !ok {
				return true
			}
			arity := token.VectorArity(call.Callee)
			if arity == 0 || len(call.Args) != arity {
				return true
			}
			base, comps, matched := matchShuffle(call)
			if !matched {
				return true
			}
			fix := ctx.File.Text(base.Span()) + "." + comps
			d := diag.NewInfo(
				diag.OptSwizzle,
				call.Span(),
				fmt.Sprintf("%s constructor only shuffles components; use a swizzle", call.Callee),
			).WithFix(
				"rewrite as "+fix,
				diag.FixEdit{Span: call.Span(), NewText: fix},
			)
			out = append(out, d)
			return false
		})
	})
	return out
}

// matchShuffle checks that every constructor argument is a
// single-component swizzle of one common base and collects the
// component letters in argument order.
func matchShuffle(call *ast.CallExpr) (base ast.Expr, comps string, ok bool) {
	var baseKey string
	var b strings.Builder
	for _, arg := range call.Args {
		mem, isMem := ast.Unparen(arg).(*ast.MemberExpr)
		if !isMem || !mem.IsSwizzle() || len(mem.Name) != 1 {
			return nil, "", false
		}
		if containsOpaque(mem.X) {
			return nil, "", false
		}
		key := canonKey(mem.X)
		if base == nil {
			base, baseKey = mem.X, key
		} else if key != baseKey {
			return nil, "", false
		}
		b.WriteString(mem.Name)
	}
	comps = b.String()
	// mixed naming sets (v.x, v.g) do not form a legal swizzle
	if !(&ast.MemberExpr{Name: comps}).IsSwizzle() {
		return nil, "", false
	}
	return base, comps, true
}
