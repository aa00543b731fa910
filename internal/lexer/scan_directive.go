package lexer

import (
	"shaderlint/internal/token"
)

// scanDirective consumes a '#' line (#version, #define, #extension, ...)
// as one opaque Directive token. Line continuations via trailing '\' are
// honored. No macro expansion happens here or anywhere else.
func (lx *Lexer) scanDirective() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			break
		}
		if b == '\\' {
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '\n' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				continue
			}
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Directive,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
