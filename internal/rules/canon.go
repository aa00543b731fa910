package rules

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"shaderlint/internal/ast"
)

// Canonical-form expression keys. Two expressions get the same key iff
// they are structurally equal up to commutative/associative reordering
// of + and * (and the other commutative operators), so operand order
// cannot defeat pattern detection. Opaque subtrees produce keys unique
// to their source location and therefore never compare equal.

func canonKey(e ast.Expr) string {
	e = ast.Unparen(e)
	switch x := e.(type) {
	case *ast.IdentExpr:
		return "id:" + x.Name

	case *ast.LitExpr:
		if x.Kind == ast.LitBool {
			return "lit:" + x.Text
		}
		return "lit:" + strconv.FormatFloat(x.Value, 'g', -1, 64)

	case *ast.BinaryExpr:
		if x.Op.Commutative() {
			operands := flattenCommutative(x.Op, x)
			keys := make([]string, 0, len(operands))
			for _, op := range operands {
				keys = append(keys, canonKey(op))
			}
			sort.Strings(keys)
			return x.Op.String() + "(" + strings.Join(keys, ",") + ")"
		}
		return x.Op.String() + "(" + canonKey(x.X) + "," + canonKey(x.Y) + ")"

	case *ast.UnaryExpr:
		return fmt.Sprintf("un%d(%s)", x.Op, canonKey(x.X))

	case *ast.AssignExpr:
		return fmt.Sprintf("as%d(%s,%s)", x.Op, canonKey(x.LHS), canonKey(x.RHS))

	case *ast.CallExpr:
		keys := make([]string, 0, len(x.Args))
		for _, a := range x.Args {
			keys = append(keys, canonKey(a))
		}
		return "call:" + x.Callee + "(" + strings.Join(keys, ",") + ")"

	case *ast.MemberExpr:
		return "mem(" + canonKey(x.X) + "," + x.Name + ")"

	case *ast.IndexExpr:
		return "idx(" + canonKey(x.X) + "," + canonKey(x.Index) + ")"

	case *ast.TernaryExpr:
		return "tern(" + canonKey(x.Cond) + "," + canonKey(x.Then) + "," + canonKey(x.Else) + ")"

	default:
		// BadExpr and anything unforeseen: unique, never matches
		sp := e.Span()
		return fmt.Sprintf("opaque@%d-%d", sp.Start, sp.End)
	}
}

// exprEqual reports structural equality up to commutative reordering.
// Opaque subtrees never compare equal (false negatives are the
// required bias).
func exprEqual(a, b ast.Expr) bool {
	if containsOpaque(a) || containsOpaque(b) {
		return false
	}
	return canonKey(a) == canonKey(b)
}

func containsOpaque(e ast.Expr) bool {
	if e == nil {
		return true
	}
	found := false
	var walk func(ast.Expr)
	walk = func(e ast.Expr) {
		if found || e == nil {
			return
		}
		switch x := ast.Unparen(e).(type) {
		case *ast.BadExpr:
			found = true
		case *ast.BinaryExpr:
			walk(x.X)
			walk(x.Y)
		case *ast.UnaryExpr:
			walk(x.X)
		case *ast.AssignExpr:
			walk(x.LHS)
			walk(x.RHS)
		case *ast.CallExpr:
			for _, a := range x.Args {
				walk(a)
			}
		case *ast.MemberExpr:
			walk(x.X)
		case *ast.IndexExpr:
			walk(x.X)
			walk(x.Index)
		case *ast.TernaryExpr:
			walk(x.Cond)
			walk(x.Then)
			walk(x.Else)
		}
	}
	walk(e)
	return found
}

// flattenCommutative collects the operand chain of nested applications
// of the same commutative operator: a + (b + c) -> [a, b, c].
func flattenCommutative(op ast.BinOp, e ast.Expr) []ast.Expr {
	e = ast.Unparen(e)
	if bin, ok := e.(*ast.BinaryExpr); ok && bin.Op == op {
		out := flattenCommutative(op, bin.X)
		return append(out, flattenCommutative(op, bin.Y)...)
	}
	return []ast.Expr{e}
}

// litValue returns the numeric value when e is a numeric literal.
func litValue(e ast.Expr) (float64, bool) {
	lit, ok := ast.Unparen(e).(*ast.LitExpr)
	if !ok || lit.Kind == ast.LitBool {
		return 0, false
	}
	return lit.Value, true
}

// asMul returns the two factors when e is a multiplication.
func asMul(e ast.Expr) (x, y ast.Expr, ok bool) {
	bin, isBin := ast.Unparen(e).(*ast.BinaryExpr)
	if !isBin || bin.Op != ast.OpMul {
		return nil, nil, false
	}
	return bin.X, bin.Y, true
}

// asSub returns the operands when e is a subtraction.
func asSub(e ast.Expr) (x, y ast.Expr, ok bool) {
	bin, isBin := ast.Unparen(e).(*ast.BinaryExpr)
	if !isBin || bin.Op != ast.OpSub {
		return nil, nil, false
	}
	return bin.X, bin.Y, true
}
