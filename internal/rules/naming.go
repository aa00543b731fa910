package rules

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"shaderlint/internal/diag"
	"shaderlint/internal/symbols"
)

var titleCaser = cases.Title(language.English, cases.NoLower)

// identCaseRule enforces lower_snake_case for variables, uniforms, and
// functions, and UpperCamelCase for struct type names.
type identCaseRule struct{}

func (identCaseRule) Code() diag.Code { return diag.StyleIdentCase }
func (identCaseRule) Name() string    { return diag.StyleIdentCase.ID() }

func (identCaseRule) Check(ctx *Context) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, sym := range ctx.Symbols.All() {
		if sym.Name == "" {
			continue
		}
		if sym.Role == symbols.RoleStructType {
			if sym.Case == symbols.CaseUpperCamel {
				continue
			}
			suggestion := toUpperCamel(sym.Name)
			d := diag.NewWarning(
				diag.StyleIdentCase,
				sym.Span,
				fmt.Sprintf("struct type %q should be UpperCamelCase", sym.Name),
			).WithFix(
				fmt.Sprintf("rename to %q", suggestion),
				diag.FixEdit{Span: sym.Span, NewText: suggestion},
			)
			out = append(out, d)
			continue
		}

		if sym.Case == symbols.CaseLowerSnake {
			continue
		}
		suggestion := toSnake(sym.Name)
		d := diag.NewWarning(
			diag.StyleIdentCase,
			sym.Span,
			fmt.Sprintf("%s %q should be lower_snake_case", sym.Role, sym.Name),
		).WithFix(
			fmt.Sprintf("rename to %q", suggestion),
			diag.FixEdit{Span: sym.Span, NewText: suggestion},
		)
		out = append(out, d)
	}
	return out
}

// toSnake converts camelCase or UpperCamelCase to lower_snake_case.
func toSnake(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	prevLower := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteByte(c - 'A' + 'a')
			prevLower = false
			continue
		}
		b.WriteByte(c)
		prevLower = c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
	}
	return b.String()
}

// toUpperCamel converts lower_snake_case (or mixed forms) to
// UpperCamelCase.
func toUpperCamel(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	b.Grow(len(name))
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(titleCaser.String(part))
	}
	return b.String()
}

// outParamSuffixRule requires out/inout parameter names to end in _out.
type outParamSuffixRule struct{}

func (outParamSuffixRule) Code() diag.Code { return diag.StyleOutParamSuffix }
func (outParamSuffixRule) Name() string    { return diag.StyleOutParamSuffix.ID() }

func (outParamSuffixRule) Check(ctx *Context) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, sym := range ctx.Symbols.All() {
		if sym.Role != symbols.RoleOutParam {
			continue
		}
		if strings.HasSuffix(sym.Name, "_out") {
			continue
		}
		suggestion := sym.Name + "_out"
		d := diag.NewWarning(
			diag.StyleOutParamSuffix,
			sym.Span,
			fmt.Sprintf("output parameter %q should end in _out", sym.Name),
		).WithFix(
			fmt.Sprintf("rename to %q", suggestion),
			diag.FixEdit{Span: sym.Span, NewText: suggestion},
		)
		out = append(out, d)
	}
	return out
}
