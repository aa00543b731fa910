package rules

import (
	"fmt"
	"path"
	"strings"

	"shaderlint/internal/diag"
	"shaderlint/internal/source"
)

// fileNameRule checks the file identifier the caller passed in:
// snake_case stem and a stage extension (.vert/.frag/.comp). The file
// is never opened here; only the identifier is inspected.
type fileNameRule struct{}

func (fileNameRule) Code() diag.Code { return diag.StyleFileName }
func (fileNameRule) Name() string    { return diag.StyleFileName.ID() }

var stageExtensions = map[string]bool{
	".vert": true,
	".frag": true,
	".comp": true,
}

func (fileNameRule) Check(ctx *Context) []diag.Diagnostic {
	base := path.Base(ctx.File.Path)
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	sp := source.Span{File: ctx.File.ID, Start: 0, End: 1}

	var out []diag.Diagnostic
	if !stageExtensions[ext] {
		out = append(out, diag.NewWarning(
			diag.StyleFileName,
			sp,
			fmt.Sprintf("file extension %q should be .vert, .frag, or .comp", ext),
		))
	}
	if !isSnakeCaseName(stem) {
		out = append(out, diag.NewWarning(
			diag.StyleFileName,
			sp,
			fmt.Sprintf("file name %q should be snake_case", stem),
		))
	}
	return out
}

func isSnakeCaseName(stem string) bool {
	if stem == "" {
		return false
	}
	for i := 0; i < len(stem); i++ {
		c := stem[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	first := stem[0]
	return first >= 'a' && first <= 'z'
}
