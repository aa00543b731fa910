package parser

import (
	"shaderlint/internal/ast"
	"shaderlint/internal/diag"
	"shaderlint/internal/lexer"
	"shaderlint/internal/source"
	"shaderlint/internal/token"
)

// Options configures a single parse.
type Options struct {
	// MaxErrors bounds the number of reported parse errors; 0 means no limit.
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is spent.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser holds per-file parsing state. The whole token stream is
// buffered up front so layout-qualifier parsing can backtrack.
type Parser struct {
	toks     []token.Token
	pos      int
	file     *source.File
	opts     Options
	lastSpan source.Span
}

// ParseFile is the entry point for parsing one shader file.
func ParseFile(file *source.File, opts Options) *ast.File {
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	return Parse(file, lx.Tokens(), opts)
}

// Parse consumes an already-lexed token stream (EOF-terminated).
func Parse(file *source.File, toks []token.Token, opts Options) *ast.File {
	out := &ast.File{
		Stage: ast.StageForPath(file.Path),
	}

	// directives are opaque whole lines and may appear anywhere, even
	// mid-function; peel them off the stream so the grammar never sees
	// them and their position cannot affect recording
	kept := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.Kind == token.Directive {
			out.Directives = append(out.Directives, ast.Directive{Span: t.Span, Text: t.Text})
			continue
		}
		kept = append(kept, t)
	}

	p := Parser{
		toks:     kept,
		file:     file,
		opts:     opts,
		lastSpan: source.Span{File: file.ID},
	}

	startSpan := p.peek().Span
	for !p.at(token.EOF) {
		decl, ok := p.parseDecl()
		if !ok {
			bad := p.resyncTop()
			out.Decls = append(out.Decls, bad)
			continue
		}
		if decl != nil {
			out.Decls = append(out.Decls, decl)
		}
	}
	out.Span = startSpan.Cover(p.peek().Span)
	if out.Span.Empty() {
		out.Span.End = out.Span.Start + 1
	}
	return out
}

// parseDecl dispatches on the first token of a top-level construct.
// A nil decl with ok=true means the construct was consumed but carries
// nothing rules care about (precision statements, bare layout lines).
func (p *Parser) parseDecl() (ast.Decl, bool) {
	switch p.peek().Kind {
	case token.KwLayout:
		return p.parseLayoutDecl()
	case token.KwIn, token.KwOut, token.KwFlat, token.KwNoperspective, token.KwSmooth:
		return p.parseStageIO(emptyLayout())
	case token.KwUniform:
		return p.parseUniformDecl(emptyLayout())
	case token.KwConst:
		return p.parseGlobalVar(true)
	case token.KwStruct:
		return p.parseStructDecl()
	case token.KwPrecision:
		return p.parsePrecision()
	case token.Ident:
		return p.parseFnOrGlobal()
	default:
		p.err(diag.SynUnexpectedTopLevel, "unexpected token at top level: "+p.peek().Kind.String())
		return nil, false
	}
}

// parsePrecision consumes `precision <qualifier> <type>;` without
// producing a declaration.
func (p *Parser) parsePrecision() (ast.Decl, bool) {
	p.advance() // precision
	for !p.at(token.Semicolon) && !p.at(token.EOF) {
		p.advance()
	}
	_, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after precision statement")
	return nil, ok
}

// resyncTop skips ahead to the next top-level declaration boundary:
// the next ';' or the matching '}' at depth 0. The skipped region
// becomes a BadDecl so the file still accounts for it.
func (p *Parser) resyncTop() *ast.BadDecl {
	start := p.peek().Span
	depth := 0
	for !p.at(token.EOF) {
		switch p.peek().Kind {
		case token.Semicolon:
			if depth == 0 {
				end := p.advance().Span
				return &ast.BadDecl{DeclSpan: start.Cover(end)}
			}
			p.advance()
		case token.LBrace:
			depth++
			p.advance()
		case token.RBrace:
			p.advance()
			if depth > 0 {
				depth--
			}
			if depth == 0 {
				return &ast.BadDecl{DeclSpan: start.Cover(p.lastSpan)}
			}
		default:
			p.advance()
		}
	}
	sp := start.Cover(p.lastSpan)
	if sp.Empty() {
		sp.End = sp.Start + 1
	}
	return &ast.BadDecl{DeclSpan: sp}
}
