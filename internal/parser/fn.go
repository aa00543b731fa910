package parser

import (
	"shaderlint/internal/ast"
	"shaderlint/internal/diag"
	"shaderlint/internal/token"
)

// parseFnDecl parses `type name(params) { body }` or a prototype ending
// in ';'.
func (p *Parser) parseFnDecl() (ast.Decl, bool) {
	retType, ok := p.parseTypeRef()
	if !ok {
		return nil, false
	}
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after function name"); !ok {
		return nil, false
	}

	params, ok := p.parseParams()
	if !ok {
		return nil, false
	}

	if semi := p.peek(); semi.Kind == token.Semicolon {
		p.advance()
		return &ast.FnDecl{
			DeclSpan: retType.TypeSpan.Cover(semi.Span),
			RetType:  retType,
			Name:     name,
			Params:   params,
		}, true
	}

	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	return &ast.FnDecl{
		DeclSpan: retType.TypeSpan.Cover(body.StmtSpan),
		RetType:  retType,
		Name:     name,
		Params:   params,
		Body:     body,
	}, true
}

// parseParams parses the parameter list up to and including ')'.
func (p *Parser) parseParams() ([]ast.Param, bool) {
	params := make([]ast.Param, 0, 4)

	if p.eat(token.RParen) {
		return params, true
	}
	// `(void)` parameter list
	if p.at(token.Ident) && p.peek().Text == "void" && p.peekAt(1).Kind == token.RParen {
		p.advance()
		p.advance()
		return params, true
	}

	for {
		param, ok := p.parseParam()
		if !ok {
			return params, false
		}
		params = append(params, param)
		if p.eat(token.Comma) {
			continue
		}
		break
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close parameter list"); !ok {
		return params, false
	}
	return params, true
}

// parseParam parses `[const] [in|out|inout] type name [array]`.
func (p *Parser) parseParam() (ast.Param, bool) {
	start := p.peek().Span
	var qual ast.ParamQual

	for {
		switch p.peek().Kind {
		case token.KwConst:
			qual |= ast.ParamConst
			p.advance()
			continue
		case token.KwIn:
			qual |= ast.ParamIn
			p.advance()
			continue
		case token.KwOut:
			qual |= ast.ParamOut
			p.advance()
			continue
		case token.KwInout:
			qual |= ast.ParamIn | ast.ParamOut
			p.advance()
			continue
		}
		break
	}
	if qual&(ast.ParamIn|ast.ParamOut) == 0 {
		qual |= ast.ParamIn // parameters default to `in`
	}

	typ, ok := p.parseTypeRef()
	if !ok {
		return ast.Param{}, false
	}
	name, ok := p.parseIdent()
	if !ok {
		return ast.Param{}, false
	}
	p.skipArraySuffix()

	return ast.Param{
		ParamSpan: start.Cover(name.NameSpan),
		Qual:      qual,
		Type:      typ,
		Name:      name,
	}, true
}
