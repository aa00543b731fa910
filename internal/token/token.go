package token

import (
	"shaderlint/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric or boolean literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, UintLit, FloatLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsQualifier reports whether the token is a storage, direction, or
// interpolation qualifier.
func (t Token) IsQualifier() bool {
	switch t.Kind {
	case KwIn, KwOut, KwInout, KwUniform, KwConst, KwFlat, KwNoperspective,
		KwSmooth, KwBuffer, KwShared, KwReadonly, KwWriteonly:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwIn, KwOut, KwInout, KwUniform, KwConst, KwLayout, KwStruct,
		KwReturn, KwIf, KwElse, KwFor, KwWhile, KwDo, KwBreak, KwContinue,
		KwDiscard, KwFlat, KwNoperspective, KwSmooth, KwBuffer, KwShared,
		KwReadonly, KwWriteonly, KwPrecision, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
