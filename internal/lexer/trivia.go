package lexer

import (
	"shaderlint/internal/diag"
	"shaderlint/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before a significant token.
// - runs of ' ' and '\t' coalesce into one TriviaSpace
// - runs of '\n' coalesce into one TriviaNewline
// - //... up to \n      -> TriviaLineComment
// - /* ... */           -> TriviaBlockComment (unterminated: report, cut at EOF)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\r' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' && b2 != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '/' {
			if lx.scanCommentIntoHold() {
				continue
			}
		}

		break
	}
}

// scanCommentIntoHold consumes //... or /*...*/ into hold.
// Returns false when the '/' starts an operator instead.
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	_, b1, ok := lx.cursor.Peek2()
	if !ok || (b1 != '/' && b1 != '*') {
		return false
	}
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '/' or '*'

	if b1 == '/' {
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.hold = append(lx.hold, token.Trivia{
			Kind: token.TriviaLineComment,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		})
		return true
	}

	closed := false
	for !lx.cursor.EOF() {
		if lx.cursor.Eat('*') {
			if lx.cursor.Eat('/') {
				closed = true
				break
			}
			continue
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	if !closed {
		lx.report(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	}
	lx.hold = append(lx.hold, token.Trivia{
		Kind: token.TriviaBlockComment,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
	return true
}
