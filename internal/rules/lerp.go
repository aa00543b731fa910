package rules

import (
	"fmt"

	"shaderlint/internal/ast"
	"shaderlint/internal/diag"
)

// manualLerpRule detects hand-written linear interpolation and suggests
// the mix() built-in, which maps to fused hardware ops. Two algebraic
// shapes are matched, each up to commutative reordering:
//
//	x * (1 - t) + y * t
//	x + (y - x) * t
type manualLerpRule struct{}

func (manualLerpRule) Code() diag.Code { return diag.OptManualLerp }
func (manualLerpRule) Name() string    { return diag.OptManualLerp.ID() }

func (manualLerpRule) Check(ctx *Context) []diag.Diagnostic {
	var out []diag.Diagnostic
	eachFn(ctx.AST, func(fn *ast.FnDecl) {
		ast.WalkExprs(fn.Body, func(e ast.Expr) bool {
			bin, ok := e.(*ast.BinaryExpr)
			if !ok || bin.Op != ast.OpAdd {
				return true
			}
			x, y, t, matched := matchLerp(bin)
			if !matched {
				return true
			}
			fix := fmt.Sprintf("mix(%s, %s, %s)",
				ctx.File.Text(x.Span()), ctx.File.Text(y.Span()), ctx.File.Text(t.Span()))
			d := diag.NewInfo(
				diag.OptManualLerp,
				bin.Span(),
				"manual linear interpolation; use the mix() built-in",
			).WithFix(
				"rewrite as "+fix,
				diag.FixEdit{Span: bin.Span(), NewText: fix},
			)
			out = append(out, d)
			// the whole expression matched; no need to flag subterms
			return false
		})
	})
	return out
}

// matchLerp recognizes both lerp shapes on an addition node.
func matchLerp(add *ast.BinaryExpr) (x, y, t ast.Expr, ok bool) {
	if x, y, t, ok = matchWeightedLerp(add.X, add.Y); ok {
		return x, y, t, true
	}
	if x, y, t, ok = matchWeightedLerp(add.Y, add.X); ok {
		return x, y, t, true
	}
	if x, y, t, ok = matchOffsetLerp(add.X, add.Y); ok {
		return x, y, t, true
	}
	if x, y, t, ok = matchOffsetLerp(add.Y, add.X); ok {
		return x, y, t, true
	}
	return nil, nil, nil, false
}

// matchWeightedLerp matches left = x * (1 - t), right = y * t.
func matchWeightedLerp(left, right ast.Expr) (x, y, t ast.Expr, ok bool) {
	la, lb, isMul := asMul(left)
	if !isMul {
		return nil, nil, nil, false
	}
	ra, rb, isMul := asMul(right)
	if !isMul {
		return nil, nil, nil, false
	}
	// try both commutative orders on each side
	for _, l := range [][2]ast.Expr{{la, lb}, {lb, la}} {
		lx, lw := l[0], l[1]
		tCand, isOneMinus := matchOneMinus(lw)
		if !isOneMinus {
			continue
		}
		for _, r := range [][2]ast.Expr{{ra, rb}, {rb, ra}} {
			ry, rt := r[0], r[1]
			if exprEqual(rt, tCand) && !containsOpaque(lx) && !containsOpaque(ry) {
				return lx, ry, rt, true
			}
		}
	}
	return nil, nil, nil, false
}

// matchOffsetLerp matches left = x, right = (y - x) * t.
func matchOffsetLerp(left, right ast.Expr) (x, y, t ast.Expr, ok bool) {
	ra, rb, isMul := asMul(right)
	if !isMul {
		return nil, nil, nil, false
	}
	for _, r := range [][2]ast.Expr{{ra, rb}, {rb, ra}} {
		diffE, tCand := r[0], r[1]
		dy, dx, isSub := asSub(diffE)
		if !isSub {
			continue
		}
		if exprEqual(dx, left) && !containsOpaque(dy) && !containsOpaque(tCand) {
			return left, dy, tCand, true
		}
	}
	return nil, nil, nil, false
}

// matchOneMinus matches (1 - t) and returns t.
func matchOneMinus(e ast.Expr) (ast.Expr, bool) {
	a, b, isSub := asSub(e)
	if !isSub {
		return nil, false
	}
	if v, isLit := litValue(a); isLit && v == 1 {
		return b, true
	}
	return nil, false
}
