package diag

import (
	"fmt"
)

// Code identifies a diagnostic category. The numeric space is split by
// phase: 1xxx lexer, 2xxx parser, 3xxx style rules, 4xxx optimization
// rules, 5xxx internal.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedBlockComment Code = 1002
	LexBadNumber                Code = 1003

	// Syntactic
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnexpectedTopLevel Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectType         Code = 2004
	SynExpectSemicolon    Code = 2005
	SynExpectExpression   Code = 2006
	SynUnclosedDelimiter  Code = 2007
	SynBadLayout          Code = 2008
	SynForBadHeader       Code = 2009

	// Style rules
	StyleInfo             Code = 3000
	StyleVersionDirective Code = 3001
	StyleIdentCase        Code = 3002
	StyleOutParamSuffix   Code = 3003
	StyleDeclOrder        Code = 3004
	StyleFileName         Code = 3005

	// Optimization rules
	OptInfo           Code = 4000
	OptDivByConstant  Code = 4001
	OptManualLerp     Code = 4002
	OptVectorSumAsDot Code = 4003
	OptSwizzle        Code = 4004
	OptDynamicLoop    Code = 4005
	OptUVMutation     Code = 4006

	// Internal
	InternalRuleError Code = 5001
)

var codeIDs = map[Code]string{
	UnknownCode:                 "unknown",
	LexInfo:                     "lex-info",
	LexUnknownChar:              "lex-unknown-char",
	LexUnterminatedBlockComment: "lex-unterminated-block-comment",
	LexBadNumber:                "lex-bad-number",
	SynInfo:                     "syn-info",
	SynUnexpectedToken:          "syn-unexpected-token",
	SynUnexpectedTopLevel:       "syn-unexpected-top-level",
	SynExpectIdentifier:         "syn-expect-identifier",
	SynExpectType:               "syn-expect-type",
	SynExpectSemicolon:          "syn-expect-semicolon",
	SynExpectExpression:         "syn-expect-expression",
	SynUnclosedDelimiter:        "syn-unclosed-delimiter",
	SynBadLayout:                "syn-bad-layout",
	SynForBadHeader:             "syn-for-bad-header",
	StyleInfo:                   "style-info",
	StyleVersionDirective:       "no-version-directive",
	StyleIdentCase:              "ident-case",
	StyleOutParamSuffix:         "out-param-suffix",
	StyleDeclOrder:              "decl-order",
	StyleFileName:               "file-name",
	OptInfo:                     "opt-info",
	OptDivByConstant:            "div-by-constant",
	OptManualLerp:               "manual-lerp",
	OptVectorSumAsDot:           "vector-sum-as-dot",
	OptSwizzle:                  "swizzle-opportunity",
	OptDynamicLoop:              "dynamic-loop-bound",
	OptUVMutation:               "uv-mutation",
	InternalRuleError:           "internal-rule-error",
}

// ID returns the stable string identifier used in reports and configs.
func (c Code) ID() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	return fmt.Sprintf("code-%04d", uint16(c))
}

func (c Code) String() string {
	return fmt.Sprintf("SL%04d", uint16(c))
}

// CodeByID resolves a stable string identifier back to its Code.
func CodeByID(id string) (Code, bool) {
	for c, s := range codeIDs {
		if s == id {
			return c, true
		}
	}
	return UnknownCode, false
}

// IsParsePhase reports whether the code belongs to the lexer or parser
// phase rather than to a rule.
func (c Code) IsParsePhase() bool {
	return c >= 1000 && c < 3000
}
