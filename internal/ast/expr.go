package ast

import (
	"shaderlint/internal/source"
)

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// BinOp enumerates binary operators.
type BinOp uint8

const (
	OpAdd    BinOp = iota // +
	OpSub                 // -
	OpMul                 // *
	OpDiv                 // /
	OpMod                 // %
	OpEq                  // ==
	OpNotEq               // !=
	OpLt                  // <
	OpLtEq                // <=
	OpGt                  // >
	OpGtEq                // >=
	OpAnd                 // &&
	OpOr                  // ||
	OpBitAnd              // &
	OpBitOr               // |
	OpBitXor              // ^
	OpShl                 // <<
	OpShr                 // >>
)

var binOpNames = [...]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
	OpEq: "==", OpNotEq: "!=", OpLt: "<", OpLtEq: "<=", OpGt: ">", OpGtEq: ">=",
	OpAnd: "&&", OpOr: "||", OpBitAnd: "&", OpBitOr: "|", OpBitXor: "^",
	OpShl: "<<", OpShr: ">>",
}

func (op BinOp) String() string {
	if int(op) < len(binOpNames) {
		return binOpNames[op]
	}
	return "?"
}

// Commutative reports whether operand order is irrelevant.
// Used by canonical-form normalization in pattern rules.
func (op BinOp) Commutative() bool {
	switch op {
	case OpAdd, OpMul, OpEq, OpNotEq, OpAnd, OpOr, OpBitAnd, OpBitOr, OpBitXor:
		return true
	default:
		return false
	}
}

// UnOp enumerates unary operators.
type UnOp uint8

const (
	OpNeg    UnOp = iota // -
	OpNot                // !
	OpBitNot             // ~
	OpInc                // ++
	OpDec                // --
)

// AssignOp enumerates assignment operators.
type AssignOp uint8

const (
	AssignEq  AssignOp = iota // =
	AssignAdd                 // +=
	AssignSub                 // -=
	AssignMul                 // *=
	AssignDiv                 // /=
	AssignMod                 // %=
)

// LitKind classifies literals.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitUint
	LitFloat
	LitBool
)

// IdentExpr references a name.
type IdentExpr struct {
	ExprSpan source.Span
	Name     string
}

// LitExpr is a numeric or boolean literal. Value holds the numeric value
// for pattern rules (0 for bool literals).
type LitExpr struct {
	ExprSpan source.Span
	Kind     LitKind
	Text     string
	Value    float64
}

// BinaryExpr is X op Y.
type BinaryExpr struct {
	ExprSpan source.Span
	Op       BinOp
	X, Y     Expr
}

// UnaryExpr is op X (or X op for postfix ++/--).
type UnaryExpr struct {
	ExprSpan source.Span
	Op       UnOp
	Postfix  bool
	X        Expr
}

// AssignExpr is LHS op RHS.
type AssignExpr struct {
	ExprSpan source.Span
	Op       AssignOp
	LHS, RHS Expr
}

// CallExpr is callee(args...). Constructor calls (vec3(...)) look the
// same as function calls, which is exactly what the swizzle rule wants.
type CallExpr struct {
	ExprSpan source.Span
	Callee   string
	Args     []Expr
}

// MemberExpr is X.Name; swizzles are member accesses whose Name consists
// of component letters only.
type MemberExpr struct {
	ExprSpan source.Span
	X        Expr
	Name     string
}

// IsSwizzle reports whether the member access selects vector components
// (xyzw, rgba, or stpq sets, up to 4 characters).
func (m *MemberExpr) IsSwizzle() bool {
	if len(m.Name) == 0 || len(m.Name) > 4 {
		return false
	}
	var xyzw, rgba, stpq bool
	for i := 0; i < len(m.Name); i++ {
		switch m.Name[i] {
		case 'x', 'y', 'z', 'w':
			xyzw = true
		case 'r', 'g', 'b', 'a':
			rgba = true
		case 's', 't', 'p', 'q':
			stpq = true
		default:
			return false
		}
	}
	// components must come from one naming set
	n := 0
	for _, set := range []bool{xyzw, rgba, stpq} {
		if set {
			n++
		}
	}
	return n == 1
}

// IndexExpr is X[Index].
type IndexExpr struct {
	ExprSpan source.Span
	X        Expr
	Index    Expr
}

// TernaryExpr is Cond ? Then : Else.
type TernaryExpr struct {
	ExprSpan source.Span
	Cond     Expr
	Then     Expr
	Else     Expr
}

// ParenExpr is (X). Kept so fixes can reproduce the original text.
type ParenExpr struct {
	ExprSpan source.Span
	X        Expr
}

// BadExpr marks an expression the parser could not understand.
// Pattern rules treat it as unknown and never match against it.
type BadExpr struct {
	ExprSpan source.Span
}

func (e *IdentExpr) Span() source.Span   { return e.ExprSpan }
func (e *LitExpr) Span() source.Span     { return e.ExprSpan }
func (e *BinaryExpr) Span() source.Span  { return e.ExprSpan }
func (e *UnaryExpr) Span() source.Span   { return e.ExprSpan }
func (e *AssignExpr) Span() source.Span  { return e.ExprSpan }
func (e *CallExpr) Span() source.Span    { return e.ExprSpan }
func (e *MemberExpr) Span() source.Span  { return e.ExprSpan }
func (e *IndexExpr) Span() source.Span   { return e.ExprSpan }
func (e *TernaryExpr) Span() source.Span { return e.ExprSpan }
func (e *ParenExpr) Span() source.Span   { return e.ExprSpan }
func (e *BadExpr) Span() source.Span     { return e.ExprSpan }

func (*IdentExpr) exprNode()   {}
func (*LitExpr) exprNode()     {}
func (*BinaryExpr) exprNode()  {}
func (*UnaryExpr) exprNode()   {}
func (*AssignExpr) exprNode()  {}
func (*CallExpr) exprNode()    {}
func (*MemberExpr) exprNode()  {}
func (*IndexExpr) exprNode()   {}
func (*TernaryExpr) exprNode() {}
func (*ParenExpr) exprNode()   {}
func (*BadExpr) exprNode()     {}
