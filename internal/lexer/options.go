package lexer

import (
	"shaderlint/internal/diag"
	"shaderlint/internal/source"
)

// Options configures a Lexer instance.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil: errors are then
	// dropped but scanning still continues.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}
