package rules

import (
	"fmt"

	"shaderlint/internal/ast"
	"shaderlint/internal/diag"
)

// vectorSumAsDotRule detects component sums written out by hand, such
// as v.x + v.y + v.z, and suggests dot(v, vecN(1.0)). Only chains of
// three or four distinct components over the same base are flagged,
// and only the outermost addition of a chain.
type vectorSumAsDotRule struct{}

func (vectorSumAsDotRule) Code() diag.Code { return diag.OptVectorSumAsDot }
func (vectorSumAsDotRule) Name() string    { return diag.OptVectorSumAsDot.ID() }

func (vectorSumAsDotRule) Check(ctx *Context) []diag.Diagnostic {
	var out []diag.Diagnostic
	eachFn(ctx.AST, func(fn *ast.FnDecl) {
		ast.WalkExprs(fn.Body, func(e ast.Expr) bool {
			bin, ok := e.(*ast.BinaryExpr)
			if !ok || bin.Op != ast.OpAdd {
				return true
			}
			base, n, matched := matchComponentSum(bin)
			if !matched {
				return true
			}
			baseText := ctx.File.Text(base.Span())
			fix := fmt.Sprintf("dot(%s, vec%d(1.0))", baseText, n)
			d := diag.NewInfo(
				diag.OptVectorSumAsDot,
				bin.Span(),
				fmt.Sprintf("component sum over %q; use a dot product with an all-ones vector", baseText),
			).WithFix(
				"rewrite as "+fix,
				diag.FixEdit{Span: bin.Span(), NewText: fix},
			)
			out = append(out, d)
			// suppress the inner additions of the same chain
			return false
		})
	})
	return out
}

// matchComponentSum checks that every operand of the addition chain is
// a distinct single-component swizzle of one common base.
func matchComponentSum(add *ast.BinaryExpr) (base ast.Expr, n int, ok bool) {
	operands := flattenCommutative(ast.OpAdd, add)
	if len(operands) < 3 || len(operands) > 4 {
		return nil, 0, false
	}
	var baseKey string
	seen := make(map[int]bool, 4)
	for _, op := range operands {
		mem, isMem := ast.Unparen(op).(*ast.MemberExpr)
		if !isMem || !mem.IsSwizzle() || len(mem.Name) != 1 {
			return nil, 0, false
		}
		if containsOpaque(mem.X) {
			return nil, 0, false
		}
		key := canonKey(mem.X)
		if base == nil {
			base, baseKey = mem.X, key
		} else if key != baseKey {
			return nil, 0, false
		}
		idx := componentIndex(mem.Name[0])
		if idx < 0 || seen[idx] {
			return nil, 0, false
		}
		seen[idx] = true
	}
	return base, len(operands), true
}

// componentIndex maps a component letter to its position, merging the
// xyzw, rgba, and stpq naming sets.
func componentIndex(c byte) int {
	switch c {
	case 'x', 'r', 's':
		return 0
	case 'y', 'g', 't':
		return 1
	case 'z', 'b', 'p':
		return 2
	case 'w', 'a', 'q':
		return 3
	default:
		return -1
	}
}
