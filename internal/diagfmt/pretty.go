package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"shaderlint/internal/diag"
	"shaderlint/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	posColor  = color.New(color.Bold)
	noteColor = color.New(color.FgBlue)
)

// Pretty renders diagnostics for a terminal:
//
//	<path>:<line>:<col>: <SEV> <code-id>: <message>
//	  <source line>
//	  ^~~~~
//
// followed by notes and fix suggestions when enabled.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	for i := range diags {
		printOne(w, &diags[i], fs, opts)
	}
}

func printOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, _ := fs.Resolve(d.Primary)
	file := fs.Get(d.Primary.File)

	pos := fmt.Sprintf("%s:%d:%d:", displayPath(file.Path, opts.PathMode), start.Line, start.Col)
	sev := d.Severity.String()
	if opts.Color {
		pos = posColor.Sprint(pos)
		sev = severityColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s %s %s: %s\n", pos, sev, d.Code.ID(), d.Message)

	if opts.ShowSource {
		printSourceLine(w, file, fs, d.Primary, opts)
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			nStart, _ := fs.Resolve(n.Span)
			nFile := fs.Get(n.Span.File)
			label := "note:"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
				label, displayPath(nFile.Path, opts.PathMode), nStart.Line, nStart.Col, n.Msg)
		}
	}
	if opts.ShowFixes {
		for _, f := range d.Fixes {
			fmt.Fprintf(w, "  fix: %s\n", f.Title)
		}
	}
}

// printSourceLine prints the first line the span covers with a caret
// underline aligned by display width (tabs and wide runes included).
func printSourceLine(w io.Writer, file *source.File, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	start, end := fs.Resolve(sp)
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	startCol := int(start.Col)
	endCol := int(end.Col)
	if end.Line != start.Line || endCol <= startCol {
		endCol = startCol + 1
	}

	pad := displayWidth(line, startCol-1)
	width := displayWidth(line[min(startCol-1, len(line)):], endCol-startCol)
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = posColor.Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}

// displayWidth measures the on-screen width of the first n bytes.
func displayWidth(s string, n int) int {
	if n > len(s) {
		n = len(s)
	}
	if n <= 0 {
		return 0
	}
	width := 0
	for _, r := range s[:n] {
		if r == '\t' {
			width += 4
			continue
		}
		width += runewidth.RuneWidth(r)
	}
	return width
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

func displayPath(p string, mode PathMode) string {
	if mode == PathModeBasename {
		return filepath.Base(p)
	}
	return p
}
