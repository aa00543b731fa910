package parser

import (
	"shaderlint/internal/ast"
	"shaderlint/internal/token"
)

// Binary operator precedence; higher binds tighter. Matches the
// C-family grammar GLSL uses.
const (
	precLogicalOr      = 1  // ||
	precLogicalAnd     = 2  // &&
	precBitwiseOr      = 3  // |
	precBitwiseXor     = 4  // ^
	precBitwiseAnd     = 5  // &
	precEquality       = 6  // == !=
	precComparison     = 7  // < <= > >=
	precShift          = 8  // << >>
	precAdditive       = 9  // + -
	precMultiplicative = 10 // * / %
)

// binaryPrec returns the precedence of kind as a binary operator, or -1.
func binaryPrec(kind token.Kind) int {
	switch kind {
	case token.OrOr:
		return precLogicalOr
	case token.AndAnd:
		return precLogicalAnd
	case token.Pipe:
		return precBitwiseOr
	case token.Caret:
		return precBitwiseXor
	case token.Amp:
		return precBitwiseAnd
	case token.EqEq, token.BangEq:
		return precEquality
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison
	case token.Shl, token.Shr:
		return precShift
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative
	default:
		return -1
	}
}

func binaryOp(kind token.Kind) ast.BinOp {
	switch kind {
	case token.Plus:
		return ast.OpAdd
	case token.Minus:
		return ast.OpSub
	case token.Star:
		return ast.OpMul
	case token.Slash:
		return ast.OpDiv
	case token.Percent:
		return ast.OpMod
	case token.EqEq:
		return ast.OpEq
	case token.BangEq:
		return ast.OpNotEq
	case token.Lt:
		return ast.OpLt
	case token.LtEq:
		return ast.OpLtEq
	case token.Gt:
		return ast.OpGt
	case token.GtEq:
		return ast.OpGtEq
	case token.AndAnd:
		return ast.OpAnd
	case token.OrOr:
		return ast.OpOr
	case token.Amp:
		return ast.OpBitAnd
	case token.Pipe:
		return ast.OpBitOr
	case token.Caret:
		return ast.OpBitXor
	case token.Shl:
		return ast.OpShl
	case token.Shr:
		return ast.OpShr
	default:
		return ast.OpAdd
	}
}

// assignOp returns the assignment operator for kind, if any.
func assignOp(kind token.Kind) (ast.AssignOp, bool) {
	switch kind {
	case token.Assign:
		return ast.AssignEq, true
	case token.PlusAssign:
		return ast.AssignAdd, true
	case token.MinusAssign:
		return ast.AssignSub, true
	case token.StarAssign:
		return ast.AssignMul, true
	case token.SlashAssign:
		return ast.AssignDiv, true
	case token.PercentAssign:
		return ast.AssignMod, true
	default:
		return ast.AssignEq, false
	}
}
