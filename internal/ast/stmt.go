package ast

import (
	"shaderlint/internal/source"
)

// Stmt is a statement inside a function body.
type Stmt interface {
	Node
	stmtNode()
}

// BlockStmt is a `{ ... }` statement list.
type BlockStmt struct {
	StmtSpan source.Span
	Stmts    []Stmt
}

// DeclStmt is a local variable declaration.
type DeclStmt struct {
	StmtSpan source.Span
	Const    bool
	Type     TypeRef
	Name     Ident
	Init     Expr // may be nil
}

// ExprStmt wraps an expression (including assignments) used as a statement.
type ExprStmt struct {
	StmtSpan source.Span
	X        Expr
}

// IfStmt is if/else. Else may be nil, a BlockStmt, or another IfStmt.
type IfStmt struct {
	StmtSpan source.Span
	Cond     Expr
	Then     Stmt
	Else     Stmt
}

// ForStmt keeps the three header slots separate so the loop-bound rule
// can look at Cond in isolation.
type ForStmt struct {
	StmtSpan source.Span
	Init     Stmt // may be nil
	Cond     Expr // may be nil
	Post     Expr // may be nil
	Body     Stmt
}

// WhileStmt is a while loop.
type WhileStmt struct {
	StmtSpan source.Span
	Cond     Expr
	Body     Stmt
}

// ReturnStmt returns from a function; X may be nil.
type ReturnStmt struct {
	StmtSpan source.Span
	X        Expr
}

// BranchStmt is break, continue, or discard.
type BranchStmt struct {
	StmtSpan source.Span
	Keyword  string
}

// BadStmt marks a statement the parser could not understand. Rules skip
// it; it never blocks parsing of the remaining statements.
type BadStmt struct {
	StmtSpan source.Span
}

func (s *BlockStmt) Span() source.Span  { return s.StmtSpan }
func (s *DeclStmt) Span() source.Span   { return s.StmtSpan }
func (s *ExprStmt) Span() source.Span   { return s.StmtSpan }
func (s *IfStmt) Span() source.Span     { return s.StmtSpan }
func (s *ForStmt) Span() source.Span    { return s.StmtSpan }
func (s *WhileStmt) Span() source.Span  { return s.StmtSpan }
func (s *ReturnStmt) Span() source.Span { return s.StmtSpan }
func (s *BranchStmt) Span() source.Span { return s.StmtSpan }
func (s *BadStmt) Span() source.Span    { return s.StmtSpan }

func (*BlockStmt) stmtNode()  {}
func (*DeclStmt) stmtNode()   {}
func (*ExprStmt) stmtNode()   {}
func (*IfStmt) stmtNode()     {}
func (*ForStmt) stmtNode()    {}
func (*WhileStmt) stmtNode()  {}
func (*ReturnStmt) stmtNode() {}
func (*BranchStmt) stmtNode() {}
func (*BadStmt) stmtNode()    {}
