package parser

import (
	"shaderlint/internal/ast"
	"shaderlint/internal/diag"
	"shaderlint/internal/token"
)

// parseBlock parses `{ stmt* }`. A statement that fails to parse is
// replaced by a BadStmt after resynchronizing at the next ';' or '}';
// the rest of the block still parses.
func (p *Parser) parseBlock() (*ast.BlockStmt, bool) {
	lbrace, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")
	if !ok {
		return nil, false
	}
	stmts := make([]ast.Stmt, 0, 8)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, ok := p.parseStmt()
		if !ok {
			stmts = append(stmts, p.resyncStmt())
			continue
		}
		stmts = append(stmts, stmt)
	}
	rbrace, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close block")
	if !ok {
		return &ast.BlockStmt{StmtSpan: lbrace.Span.Cover(p.lastSpan), Stmts: stmts}, true
	}
	return &ast.BlockStmt{StmtSpan: lbrace.Span.Cover(rbrace.Span), Stmts: stmts}, true
}

func (p *Parser) parseStmt() (ast.Stmt, bool) {
	switch p.peek().Kind {
	case token.LBrace:
		blk, ok := p.parseBlock()
		return blk, ok
	case token.KwIf:
		return p.parseIf()
	case token.KwFor:
		return p.parseFor()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwBreak, token.KwContinue, token.KwDiscard:
		tok := p.advance()
		semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after '"+tok.Text+"'")
		if !ok {
			return nil, false
		}
		return &ast.BranchStmt{StmtSpan: tok.Span.Cover(semi.Span), Keyword: tok.Text}, true
	case token.KwConst:
		return p.parseDeclStmt()
	case token.KwDo:
		// do/while is rare; keep it as one opaque statement
		return p.parseOpaqueDoWhile()
	case token.Ident:
		if p.looksLikeDeclStmt() {
			return p.parseDeclStmt()
		}
		return p.parseExprStmt()
	case token.Semicolon:
		semi := p.advance() // empty statement
		return &ast.BlockStmt{StmtSpan: semi.Span}, true
	default:
		return p.parseExprStmt()
	}
}

// looksLikeDeclStmt distinguishes `vec3 x ...` from `x = ...` with one
// extra token of lookahead: a declaration is a type name followed by an
// identifier.
func (p *Parser) looksLikeDeclStmt() bool {
	next := p.peekAt(1)
	if next.Kind != token.Ident {
		return false
	}
	if token.IsTypeName(p.peek().Text) {
		return true
	}
	// user struct type: `LightData light = ...`
	after := p.peekAt(2)
	return after.Kind == token.Assign || after.Kind == token.Semicolon || after.Kind == token.LBracket
}

func (p *Parser) parseDeclStmt() (ast.Stmt, bool) {
	start := p.peek().Span
	isConst := p.eat(token.KwConst)

	typ, ok := p.parseTypeRef()
	if !ok {
		return nil, false
	}
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	p.skipArraySuffix()

	var init ast.Expr
	if p.eat(token.Assign) {
		init = p.parseExpr()
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after declaration")
	if !ok {
		return nil, false
	}
	return &ast.DeclStmt{
		StmtSpan: start.Cover(semi.Span),
		Const:    isConst,
		Type:     typ,
		Name:     name,
		Init:     init,
	}, true
}

func (p *Parser) parseExprStmt() (ast.Stmt, bool) {
	start := p.peek().Span
	x := p.parseExpr()
	if _, isBad := x.(*ast.BadExpr); isBad {
		return nil, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after expression")
	if !ok {
		return nil, false
	}
	return &ast.ExprStmt{StmtSpan: start.Cover(semi.Span), X: x}, true
}

func (p *Parser) parseIf() (ast.Stmt, bool) {
	ifTok := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'if'"); !ok {
		return nil, false
	}
	cond := p.parseExpr()
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' after condition"); !ok {
		return nil, false
	}
	then, ok := p.parseStmt()
	if !ok {
		return nil, false
	}
	var elseStmt ast.Stmt
	if p.eat(token.KwElse) {
		elseStmt, ok = p.parseStmt()
		if !ok {
			return nil, false
		}
	}
	end := then.Span()
	if elseStmt != nil {
		end = elseStmt.Span()
	}
	return &ast.IfStmt{
		StmtSpan: ifTok.Span.Cover(end),
		Cond:     cond,
		Then:     then,
		Else:     elseStmt,
	}, true
}

// parseFor keeps init/cond/post separate so the dynamic-loop-bound rule
// can inspect the condition on its own.
func (p *Parser) parseFor() (ast.Stmt, bool) {
	forTok := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynForBadHeader, "expected '(' after 'for'"); !ok {
		return nil, false
	}

	var initStmt ast.Stmt
	if !p.eat(token.Semicolon) {
		var ok bool
		if p.at(token.KwConst) || (p.at(token.Ident) && p.looksLikeDeclStmt()) {
			initStmt, ok = p.parseDeclStmt()
		} else {
			initStmt, ok = p.parseExprStmt()
		}
		if !ok {
			return nil, false
		}
	}

	var cond ast.Expr
	if !p.at(token.Semicolon) {
		cond = p.parseExpr()
	}
	if _, ok := p.expect(token.Semicolon, diag.SynForBadHeader, "expected ';' after loop condition"); !ok {
		return nil, false
	}

	var post ast.Expr
	if !p.at(token.RParen) {
		post = p.parseExpr()
	}
	if _, ok := p.expect(token.RParen, diag.SynForBadHeader, "expected ')' to close loop header"); !ok {
		return nil, false
	}

	body, ok := p.parseStmt()
	if !ok {
		return nil, false
	}
	return &ast.ForStmt{
		StmtSpan: forTok.Span.Cover(body.Span()),
		Init:     initStmt,
		Cond:     cond,
		Post:     post,
		Body:     body,
	}, true
}

func (p *Parser) parseWhile() (ast.Stmt, bool) {
	whileTok := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'while'"); !ok {
		return nil, false
	}
	cond := p.parseExpr()
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' after condition"); !ok {
		return nil, false
	}
	body, ok := p.parseStmt()
	if !ok {
		return nil, false
	}
	return &ast.WhileStmt{
		StmtSpan: whileTok.Span.Cover(body.Span()),
		Cond:     cond,
		Body:     body,
	}, true
}

func (p *Parser) parseReturn() (ast.Stmt, bool) {
	retTok := p.advance()
	var x ast.Expr
	if !p.at(token.Semicolon) {
		x = p.parseExpr()
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after return")
	if !ok {
		return nil, false
	}
	return &ast.ReturnStmt{StmtSpan: retTok.Span.Cover(semi.Span), X: x}, true
}

// parseOpaqueDoWhile consumes `do stmt while (expr);` into a BadStmt.
// Rules treat it as unknown, which is the required bias.
func (p *Parser) parseOpaqueDoWhile() (ast.Stmt, bool) {
	start := p.advance().Span // do
	body, ok := p.parseStmt()
	if !ok {
		return nil, false
	}
	_ = body
	if _, ok := p.expect(token.KwWhile, diag.SynUnexpectedToken, "expected 'while' after do body"); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'while'"); !ok {
		return nil, false
	}
	p.parseExpr()
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'"); !ok {
		return nil, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';'")
	if !ok {
		return nil, false
	}
	return &ast.BadStmt{StmtSpan: start.Cover(semi.Span)}, true
}

// resyncStmt skips to the next statement boundary and yields a BadStmt
// covering the skipped region.
func (p *Parser) resyncStmt() ast.Stmt {
	start := p.peek().Span
	depth := 0
	for !p.at(token.EOF) {
		switch p.peek().Kind {
		case token.Semicolon:
			if depth == 0 {
				end := p.advance().Span
				return &ast.BadStmt{StmtSpan: start.Cover(end)}
			}
			p.advance()
		case token.LBrace:
			depth++
			p.advance()
		case token.RBrace:
			if depth == 0 {
				sp := start.Cover(p.lastSpan)
				if sp.Empty() {
					sp.End = sp.Start + 1
				}
				return &ast.BadStmt{StmtSpan: sp}
			}
			depth--
			p.advance()
		default:
			p.advance()
		}
	}
	sp := start.Cover(p.lastSpan)
	if sp.Empty() {
		sp.End = sp.Start + 1
	}
	return &ast.BadStmt{StmtSpan: sp}
}
