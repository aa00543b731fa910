package lexer

import (
	"shaderlint/internal/diag"
	"shaderlint/internal/token"
)

// Supported forms: 0, 123, 0x1F, 017, 1.0, .5, 1., 1e-3, 1.0e+10, plus
// GLSL suffixes u/U (uint) and f/F/lf/LF (float). Suffixes stay inside
// Token.Text; Kind reflects the literal class.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	// leading dot: ".digits"
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexBadNumber, sp, "expected digit after '.'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.finishNumber(start, kind)
	}

	// hex
	if lx.cursor.Peek() == '0' {
		if _, b1, ok := lx.cursor.Peek2(); ok && (b1 == 'x' || b1 == 'X') {
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !isHex(lx.cursor.Peek()) {
				sp := lx.cursor.SpanFrom(start)
				lx.report(diag.LexBadNumber, sp, "expected hex digit after '0x'")
				return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return lx.finishNumber(start, kind)
		}
	}

	// decimal integer part
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// fractional part
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	return lx.finishNumber(start, kind)
}

// finishNumber handles the exponent and the GLSL literal suffixes.
func (lx *Lexer) finishNumber(start Mark, kind token.Kind) token.Token {
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		// only an exponent when followed by [+-]?digit
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			kind = token.FloatLit
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		} else {
			lx.cursor.Reset(mark)
		}
	}

	switch b := lx.cursor.Peek(); b {
	case 'u', 'U':
		if kind == token.IntLit {
			kind = token.UintLit
		}
		lx.cursor.Bump()
	case 'f', 'F':
		kind = token.FloatLit
		lx.cursor.Bump()
	case 'l', 'L':
		// lf / LF double suffix
		if _, b1, ok := lx.cursor.Peek2(); ok && (b1 == 'f' || b1 == 'F') {
			kind = token.FloatLit
			lx.cursor.Bump()
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
