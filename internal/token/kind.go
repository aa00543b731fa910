package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Directive represents a whole preprocessor-style line (#version, #define, ...).
	// Directives are opaque: the lexer records the full line text and never
	// expands them.
	Directive

	// KwIn represents the 'in' qualifier.
	KwIn // in
	// KwOut represents the 'out' qualifier.
	KwOut // out
	// KwInout represents the 'inout' qualifier.
	KwInout // inout
	// KwUniform represents the 'uniform' qualifier.
	KwUniform // uniform
	// KwConst represents the 'const' qualifier.
	KwConst // const
	// KwLayout represents the 'layout' keyword.
	KwLayout // layout
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwDiscard represents the 'discard' keyword.
	KwDiscard // discard
	// KwFlat represents the 'flat' interpolation qualifier.
	KwFlat // flat
	// KwNoperspective represents the 'noperspective' interpolation qualifier.
	KwNoperspective // noperspective
	// KwSmooth represents the 'smooth' interpolation qualifier.
	KwSmooth // smooth
	// KwBuffer represents the 'buffer' storage qualifier.
	KwBuffer // buffer
	// KwShared represents the 'shared' storage qualifier.
	KwShared // shared
	// KwReadonly represents the 'readonly' memory qualifier.
	KwReadonly // readonly
	// KwWriteonly represents the 'writeonly' memory qualifier.
	KwWriteonly // writeonly
	// KwPrecision represents the 'precision' keyword.
	KwPrecision // precision
	// KwTrue represents the 'true' literal keyword.
	KwTrue // true
	// KwFalse represents the 'false' literal keyword.
	KwFalse // false

	// IntLit represents the integer literal token.
	IntLit
	// UintLit represents the unsigned integer literal token (suffix u/U).
	UintLit
	// FloatLit represents the float literal token (optional suffix f/F/lf/LF).
	FloatLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assign operator token.
	Assign // =
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// PercentAssign represents the percent assign operator token.
	PercentAssign // %=
	// PlusPlus represents the increment operator token.
	PlusPlus // ++
	// MinusMinus represents the decrement operator token.
	MinusMinus // --
	// EqEq represents the equality operator token.
	EqEq // ==
	// Bang represents the logical not operator token.
	Bang // !
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// Shl represents the shift-left operator token.
	Shl // <<
	// Shr represents the shift-right operator token.
	Shr // >>
	// Amp represents the bitwise and operator token.
	Amp // &
	// Pipe represents the bitwise or operator token.
	Pipe // |
	// Caret represents the bitwise xor operator token.
	Caret // ^
	// Tilde represents the bitwise not operator token.
	Tilde // ~
	// AndAnd represents the logical and operator token.
	AndAnd // &&
	// OrOr represents the logical or operator token.
	OrOr // ||
	// Question represents the question mark token.
	Question // ?
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]

	kindCount
)

var kindNames = [...]string{
	Invalid:         "Invalid",
	EOF:             "EOF",
	Ident:           "Ident",
	Directive:       "Directive",
	KwIn:            "in",
	KwOut:           "out",
	KwInout:         "inout",
	KwUniform:       "uniform",
	KwConst:         "const",
	KwLayout:        "layout",
	KwStruct:        "struct",
	KwReturn:        "return",
	KwIf:            "if",
	KwElse:          "else",
	KwFor:           "for",
	KwWhile:         "while",
	KwDo:            "do",
	KwBreak:         "break",
	KwContinue:      "continue",
	KwDiscard:       "discard",
	KwFlat:          "flat",
	KwNoperspective: "noperspective",
	KwSmooth:        "smooth",
	KwBuffer:        "buffer",
	KwShared:        "shared",
	KwReadonly:      "readonly",
	KwWriteonly:     "writeonly",
	KwPrecision:     "precision",
	KwTrue:          "true",
	KwFalse:         "false",
	IntLit:          "IntLit",
	UintLit:         "UintLit",
	FloatLit:        "FloatLit",
	Plus:            "+",
	Minus:           "-",
	Star:            "*",
	Slash:           "/",
	Percent:         "%",
	Assign:          "=",
	PlusAssign:      "+=",
	MinusAssign:     "-=",
	StarAssign:      "*=",
	SlashAssign:     "/=",
	PercentAssign:   "%=",
	PlusPlus:        "++",
	MinusMinus:      "--",
	EqEq:            "==",
	Bang:            "!",
	BangEq:          "!=",
	Lt:              "<",
	LtEq:            "<=",
	Gt:              ">",
	GtEq:            ">=",
	Shl:             "<<",
	Shr:             ">>",
	Amp:             "&",
	Pipe:            "|",
	Caret:           "^",
	Tilde:           "~",
	AndAnd:          "&&",
	OrOr:            "||",
	Question:        "?",
	Colon:           ":",
	Semicolon:       ";",
	Comma:           ",",
	Dot:             ".",
	LParen:          "(",
	RParen:          ")",
	LBrace:          "{",
	RBrace:          "}",
	LBracket:        "[",
	RBracket:        "]",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
