package parser

import (
	"shaderlint/internal/ast"
	"shaderlint/internal/diag"
	"shaderlint/internal/source"
	"shaderlint/internal/token"
)

// parseLayoutDecl parses any declaration introduced by layout(...):
// stage IO, samplers, input attachments, uniform and push-constant
// blocks, and bare `layout(...) in;` lines (compute local size).
func (p *Parser) parseLayoutDecl() (ast.Decl, bool) {
	ll, ok := p.parseLayout()
	if !ok {
		p.err(diag.SynBadLayout, "malformed layout qualifier")
		return nil, false
	}

	switch p.peek().Kind {
	case token.KwIn, token.KwOut, token.KwFlat, token.KwNoperspective, token.KwSmooth:
		// `layout(local_size_x = 8) in;` has no declared name
		if p.peekAt(1).Kind == token.Semicolon {
			p.advance()
			p.advance()
			return nil, true
		}
		return p.parseStageIO(ll)
	case token.KwUniform, token.KwBuffer, token.KwReadonly, token.KwWriteonly:
		return p.parseUniformDecl(ll)
	default:
		p.err(diag.SynUnexpectedToken, "expected in/out/uniform after layout qualifier")
		return nil, false
	}
}

// parseStageIO parses `[layout(...)] [flat|smooth|noperspective] in|out type name;`.
func (p *Parser) parseStageIO(ll layoutList) (ast.Decl, bool) {
	start := p.peek().Span
	if !ll.span.Empty() {
		start = ll.span
	}

	// optional interpolation qualifier before the direction
	for {
		switch p.peek().Kind {
		case token.KwFlat, token.KwNoperspective, token.KwSmooth:
			p.advance()
			continue
		}
		break
	}

	var dir ast.Direction
	switch p.peek().Kind {
	case token.KwIn:
		dir = ast.DirIn
	case token.KwOut:
		dir = ast.DirOut
	default:
		p.err(diag.SynUnexpectedToken, "expected 'in' or 'out'")
		return nil, false
	}
	p.advance()

	typ, ok := p.parseTypeRef()
	if !ok {
		return nil, false
	}
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	p.skipArraySuffix()

	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after stage interface declaration")
	if !ok {
		return nil, false
	}

	return &ast.StageIO{
		DeclSpan: start.Cover(semi.Span),
		Dir:      dir,
		Location: ll.location,
		Type:     typ,
		Name:     name,
	}, true
}

// parseUniformDecl parses the `uniform ...` forms: opaque samplers,
// subpass inputs, and uniform/push-constant blocks.
func (p *Parser) parseUniformDecl(ll layoutList) (ast.Decl, bool) {
	start := p.peek().Span
	if !ll.span.Empty() {
		start = ll.span
	}

	// memory qualifiers on buffer blocks
	for p.at(token.KwReadonly) || p.at(token.KwWriteonly) {
		p.advance()
	}
	if !p.eat(token.KwUniform) && !p.eat(token.KwBuffer) {
		p.err(diag.SynUnexpectedToken, "expected 'uniform'")
		return nil, false
	}

	tok := p.peek()
	if tok.Kind != token.Ident {
		p.err(diag.SynExpectType, "expected type or block name after 'uniform'")
		return nil, false
	}

	switch {
	case token.IsSubpassInputType(tok.Text):
		typ, _ := p.parseTypeRef()
		name, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after input attachment declaration")
		if !ok {
			return nil, false
		}
		return &ast.InputAttachment{
			DeclSpan: start.Cover(semi.Span),
			Index:    ll.index,
			Set:      ll.set,
			Binding:  ll.binding,
			Type:     typ,
			Name:     name,
		}, true

	case token.IsSamplerType(tok.Text):
		typ, _ := p.parseTypeRef()
		name, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		p.skipArraySuffix()
		semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after sampler declaration")
		if !ok {
			return nil, false
		}
		return &ast.Sampler{
			DeclSpan: start.Cover(semi.Span),
			Set:      ll.set,
			Binding:  ll.binding,
			Type:     typ,
			Name:     name,
		}, true

	case p.peekAt(1).Kind == token.LBrace:
		return p.parseUniformBlock(start, ll)

	default:
		// plain non-block uniform: `uniform mat4 mvp;`
		typ, ok := p.parseTypeRef()
		if !ok {
			return nil, false
		}
		name, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		p.skipArraySuffix()
		semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after uniform declaration")
		if !ok {
			return nil, false
		}
		return &ast.UniformBlock{
			DeclSpan:     start.Cover(semi.Span),
			Set:          ll.set,
			Binding:      ll.binding,
			PushConstant: ll.pushConstant,
			TypeName:     name,
			Fields:       []ast.Field{{FieldSpan: typ.TypeSpan.Cover(name.NameSpan), Type: typ, Name: name}},
		}, true
	}
}

// parseUniformBlock parses `uniform Name { fields } [instance];` with
// the layout list already consumed.
func (p *Parser) parseUniformBlock(start source.Span, ll layoutList) (ast.Decl, bool) {
	typeName, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open block body"); !ok {
		return nil, false
	}
	fields, ok := p.parseFieldList()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close block body"); !ok {
		return nil, false
	}

	var instance *ast.Ident
	if p.at(token.Ident) {
		id := p.advance()
		instance = &ast.Ident{NameSpan: id.Span, Name: id.Text}
		p.skipArraySuffix()
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after block declaration")
	if !ok {
		return nil, false
	}
	return &ast.UniformBlock{
		DeclSpan:     start.Cover(semi.Span),
		Set:          ll.set,
		Binding:      ll.binding,
		PushConstant: ll.pushConstant,
		TypeName:     typeName,
		Fields:       fields,
		Instance:     instance,
	}, true
}

// parseStructDecl parses `struct Name { fields };`.
func (p *Parser) parseStructDecl() (ast.Decl, bool) {
	structTok := p.advance() // struct
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open struct body"); !ok {
		return nil, false
	}
	fields, ok := p.parseFieldList()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close struct body"); !ok {
		return nil, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after struct declaration")
	if !ok {
		return nil, false
	}
	return &ast.StructDecl{
		DeclSpan: structTok.Span.Cover(semi.Span),
		Name:     name,
		Fields:   fields,
	}, true
}

// parseFieldList parses `type name; ...` members up to the closing brace.
func (p *Parser) parseFieldList() ([]ast.Field, bool) {
	fields := make([]ast.Field, 0, 4)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		typ, ok := p.parseTypeRef()
		if !ok {
			return fields, false
		}
		name, ok := p.parseIdent()
		if !ok {
			return fields, false
		}
		p.skipArraySuffix()
		semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after field")
		if !ok {
			return fields, false
		}
		fields = append(fields, ast.Field{
			FieldSpan: typ.TypeSpan.Cover(semi.Span),
			Type:      typ,
			Name:      name,
		})
	}
	return fields, true
}

// parseGlobalVar parses a top-level `[const] type name [= init];`.
func (p *Parser) parseGlobalVar(isConst bool) (ast.Decl, bool) {
	start := p.peek().Span
	if isConst {
		p.advance() // const
	}
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
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after variable declaration")
	if !ok {
		return nil, false
	}
	return &ast.VarDecl{
		DeclSpan: start.Cover(semi.Span),
		Const:    isConst,
		Type:     typ,
		Name:     name,
		Init:     init,
	}, true
}

// parseFnOrGlobal disambiguates `type name (` (function) from
// `type name ...;` (global variable) with two tokens of lookahead.
func (p *Parser) parseFnOrGlobal() (ast.Decl, bool) {
	if p.peekAt(1).Kind == token.Ident && p.peekAt(2).Kind == token.LParen {
		return p.parseFnDecl()
	}
	return p.parseGlobalVar(false)
}

// parseTypeRef accepts a built-in or user type name.
func (p *Parser) parseTypeRef() (ast.TypeRef, bool) {
	tok := p.peek()
	if tok.Kind != token.Ident {
		p.err(diag.SynExpectType, "expected type name")
		return ast.TypeRef{}, false
	}
	p.advance()
	return ast.TypeRef{TypeSpan: tok.Span, Name: tok.Text}, true
}

func (p *Parser) parseIdent() (ast.Ident, bool) {
	tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier")
	if !ok {
		return ast.Ident{}, false
	}
	return ast.Ident{NameSpan: tok.Span, Name: tok.Text}, true
}

// skipArraySuffix consumes `[...]` after a declarator. Sizes are
// irrelevant to the rules.
func (p *Parser) skipArraySuffix() {
	for p.at(token.LBracket) {
		depth := 0
		for !p.at(token.EOF) {
			switch p.peek().Kind {
			case token.LBracket:
				depth++
			case token.RBracket:
				depth--
			}
			p.advance()
			if depth == 0 {
				break
			}
		}
	}
}
