package parser

import (
	"strconv"
	"strings"

	"shaderlint/internal/ast"
	"shaderlint/internal/diag"
	"shaderlint/internal/token"
)

// parseExpr parses a full expression, assignments included.
// Malformed input yields a BadExpr; the caller decides whether to
// resynchronize.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseAssign()
}

// parseAssign handles the right-associative assignment operators above
// the ternary level.
func (p *Parser) parseAssign() ast.Expr {
	lhs := p.parseTernary()
	op, ok := assignOp(p.peek().Kind)
	if !ok {
		return lhs
	}
	p.advance()
	rhs := p.parseAssign()
	return &ast.AssignExpr{
		ExprSpan: lhs.Span().Cover(rhs.Span()),
		Op:       op,
		LHS:      lhs,
		RHS:      rhs,
	}
}

func (p *Parser) parseTernary() ast.Expr {
	cond := p.parseBinary(0)
	if !p.at(token.Question) {
		return cond
	}
	p.advance()
	then := p.parseAssign()
	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' in conditional expression"); !ok {
		return &ast.BadExpr{ExprSpan: cond.Span().Cover(then.Span())}
	}
	elseE := p.parseAssign()
	return &ast.TernaryExpr{
		ExprSpan: cond.Span().Cover(elseE.Span()),
		Cond:     cond,
		Then:     then,
		Else:     elseE,
	}
}

// parseBinary is standard precedence climbing.
func (p *Parser) parseBinary(minPrec int) ast.Expr {
	lhs := p.parseUnary()
	for {
		prec := binaryPrec(p.peek().Kind)
		if prec < 0 || prec < minPrec {
			return lhs
		}
		opTok := p.advance()
		rhs := p.parseBinary(prec + 1)
		lhs = &ast.BinaryExpr{
			ExprSpan: lhs.Span().Cover(rhs.Span()),
			Op:       binaryOp(opTok.Kind),
			X:        lhs,
			Y:        rhs,
		}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	tok := p.peek()
	var op ast.UnOp
	switch tok.Kind {
	case token.Minus:
		op = ast.OpNeg
	case token.Bang:
		op = ast.OpNot
	case token.Tilde:
		op = ast.OpBitNot
	case token.PlusPlus:
		op = ast.OpInc
	case token.MinusMinus:
		op = ast.OpDec
	case token.Plus:
		// unary plus is a no-op; drop it
		p.advance()
		return p.parseUnary()
	default:
		return p.parsePostfix()
	}
	p.advance()
	x := p.parseUnary()
	return &ast.UnaryExpr{
		ExprSpan: tok.Span.Cover(x.Span()),
		Op:       op,
		X:        x,
	}
}

// parsePostfix handles member access (swizzles bind tightest), indexing,
// and postfix increment/decrement.
func (p *Parser) parsePostfix() ast.Expr {
	x := p.parsePrimary()
	for {
		switch p.peek().Kind {
		case token.Dot:
			p.advance()
			name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected member name after '.'")
			if !ok {
				return &ast.BadExpr{ExprSpan: x.Span()}
			}
			x = &ast.MemberExpr{
				ExprSpan: x.Span().Cover(name.Span),
				X:        x,
				Name:     name.Text,
			}
		case token.LBracket:
			p.advance()
			idx := p.parseExpr()
			rb, ok := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']' after index")
			if !ok {
				return &ast.BadExpr{ExprSpan: x.Span()}
			}
			x = &ast.IndexExpr{
				ExprSpan: x.Span().Cover(rb.Span),
				X:        x,
				Index:    idx,
			}
		case token.PlusPlus, token.MinusMinus:
			opTok := p.advance()
			op := ast.OpInc
			if opTok.Kind == token.MinusMinus {
				op = ast.OpDec
			}
			x = &ast.UnaryExpr{
				ExprSpan: x.Span().Cover(opTok.Span),
				Op:       op,
				Postfix:  true,
				X:        x,
			}
		default:
			return x
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit, token.UintLit, token.FloatLit:
		p.advance()
		return litFromToken(tok)

	case token.KwTrue, token.KwFalse:
		p.advance()
		return &ast.LitExpr{
			ExprSpan: tok.Span,
			Kind:     ast.LitBool,
			Text:     tok.Text,
		}

	case token.Ident:
		p.advance()
		if p.at(token.LParen) {
			return p.parseCall(tok)
		}
		return &ast.IdentExpr{ExprSpan: tok.Span, Name: tok.Text}

	case token.LParen:
		p.advance()
		inner := p.parseExpr()
		rp, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'")
		if !ok {
			return &ast.BadExpr{ExprSpan: tok.Span.Cover(inner.Span())}
		}
		return &ast.ParenExpr{ExprSpan: tok.Span.Cover(rp.Span), X: inner}

	default:
		p.err(diag.SynExpectExpression, "expected expression, found "+tok.Kind.String())
		sp := tok.Span
		if sp.Empty() {
			sp.End = sp.Start + 1
		}
		return &ast.BadExpr{ExprSpan: sp}
	}
}

// parseCall parses `(args...)` with the callee already consumed.
// Constructors (vec3(...)) and built-ins (texture(...)) look identical
// here.
func (p *Parser) parseCall(callee token.Token) ast.Expr {
	p.advance() // '('
	args := make([]ast.Expr, 0, 4)
	if !p.at(token.RParen) {
		for {
			args = append(args, p.parseAssign())
			if p.eat(token.Comma) {
				continue
			}
			break
		}
	}
	rp, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close call")
	if !ok {
		return &ast.BadExpr{ExprSpan: callee.Span.Cover(p.lastSpan)}
	}
	return &ast.CallExpr{
		ExprSpan: callee.Span.Cover(rp.Span),
		Callee:   callee.Text,
		Args:     args,
	}
}

func litFromToken(tok token.Token) *ast.LitExpr {
	kind := ast.LitInt
	switch tok.Kind {
	case token.UintLit:
		kind = ast.LitUint
	case token.FloatLit:
		kind = ast.LitFloat
	}
	text := strings.TrimRight(tok.Text, "uUfFlL")
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		value = 0
	}
	return &ast.LitExpr{
		ExprSpan: tok.Span,
		Kind:     kind,
		Text:     tok.Text,
		Value:    value,
	}
}
