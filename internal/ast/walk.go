package ast

// WalkExprs calls fn for every expression in the statement subtree,
// parents before children. fn returning false prunes the subtree.
func WalkExprs(s Stmt, fn func(Expr) bool) {
	switch st := s.(type) {
	case *BlockStmt:
		for _, inner := range st.Stmts {
			WalkExprs(inner, fn)
		}
	case *DeclStmt:
		walkExpr(st.Init, fn)
	case *ExprStmt:
		walkExpr(st.X, fn)
	case *IfStmt:
		walkExpr(st.Cond, fn)
		WalkExprs(st.Then, fn)
		if st.Else != nil {
			WalkExprs(st.Else, fn)
		}
	case *ForStmt:
		if st.Init != nil {
			WalkExprs(st.Init, fn)
		}
		walkExpr(st.Cond, fn)
		walkExpr(st.Post, fn)
		WalkExprs(st.Body, fn)
	case *WhileStmt:
		walkExpr(st.Cond, fn)
		WalkExprs(st.Body, fn)
	case *ReturnStmt:
		walkExpr(st.X, fn)
	}
}

func walkExpr(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	switch x := e.(type) {
	case *BinaryExpr:
		walkExpr(x.X, fn)
		walkExpr(x.Y, fn)
	case *UnaryExpr:
		walkExpr(x.X, fn)
	case *AssignExpr:
		walkExpr(x.LHS, fn)
		walkExpr(x.RHS, fn)
	case *CallExpr:
		for _, a := range x.Args {
			walkExpr(a, fn)
		}
	case *MemberExpr:
		walkExpr(x.X, fn)
	case *IndexExpr:
		walkExpr(x.X, fn)
		walkExpr(x.Index, fn)
	case *TernaryExpr:
		walkExpr(x.Cond, fn)
		walkExpr(x.Then, fn)
		walkExpr(x.Else, fn)
	case *ParenExpr:
		walkExpr(x.X, fn)
	}
}

// WalkStmts calls fn for every statement in the subtree, parents first.
// fn returning false prunes the subtree.
func WalkStmts(s Stmt, fn func(Stmt) bool) {
	if s == nil || !fn(s) {
		return
	}
	switch st := s.(type) {
	case *BlockStmt:
		for _, inner := range st.Stmts {
			WalkStmts(inner, fn)
		}
	case *IfStmt:
		WalkStmts(st.Then, fn)
		if st.Else != nil {
			WalkStmts(st.Else, fn)
		}
	case *ForStmt:
		if st.Init != nil {
			WalkStmts(st.Init, fn)
		}
		WalkStmts(st.Body, fn)
	case *WhileStmt:
		WalkStmts(st.Body, fn)
	}
}

// Unparen strips nested ParenExpr wrappers.
func Unparen(e Expr) Expr {
	for {
		p, ok := e.(*ParenExpr)
		if !ok {
			return e
		}
		e = p.X
	}
}
