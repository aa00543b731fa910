package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"shaderlint/internal/diag"
	"shaderlint/internal/diagfmt"
	"shaderlint/internal/source"
)

func sampleDiags(t *testing.T) ([]diag.Diagnostic, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("shaders/scale.frag", []byte("float half_v = value / 2.0;\n"))

	d := diag.NewInfo(
		diag.OptDivByConstant,
		source.Span{File: id, Start: 15, End: 26},
		"division by constant 2.0; multiply by the reciprocal instead",
	).WithFix("rewrite as value * 0.5",
		diag.FixEdit{Span: source.Span{File: id, Start: 15, End: 26}, NewText: "value * 0.5"},
	).WithNote(source.Span{File: id, Start: 6, End: 12}, "declared here")
	return []diag.Diagnostic{d}, fs
}

func TestPretty(t *testing.T) {
	diags, fs := sampleDiags(t)
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, diags, fs, diagfmt.PrettyOpts{
		ShowNotes:  true,
		ShowFixes:  true,
		ShowSource: true,
	})
	out := buf.String()

	for _, want := range []string{
		"shaders/scale.frag:1:16:",
		"INFO div-by-constant:",
		"float half_v = value / 2.0;",
		"^~~~~~~~~~",
		"note:",
		"fix: rewrite as value * 0.5",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrettyBasenameMode(t *testing.T) {
	diags, fs := sampleDiags(t)
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, diags, fs, diagfmt.PrettyOpts{PathMode: diagfmt.PathModeBasename})
	out := buf.String()
	if strings.Contains(out, "shaders/") {
		t.Errorf("basename mode leaked the directory:\n%s", out)
	}
	if !strings.Contains(out, "scale.frag:1:16:") {
		t.Errorf("output = %s", out)
	}
}

func TestJSONRoundTrips(t *testing.T) {
	diags, fs := sampleDiags(t)
	var buf bytes.Buffer
	err := diagfmt.JSON(&buf, diags, fs, diagfmt.JSONOpts{
		IncludeNotes: true,
		IncludeFixes: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Code != "div-by-constant" || d.Severity != "INFO" {
		t.Errorf("code = %s, severity = %s", d.Code, d.Severity)
	}
	if d.Location.StartByte != 15 || d.Location.StartLine != 1 || d.Location.StartCol != 16 {
		t.Errorf("location = %+v", d.Location)
	}
	if len(d.Notes) != 1 || len(d.Fixes) != 1 {
		t.Errorf("notes = %d, fixes = %d", len(d.Notes), len(d.Fixes))
	}
	if d.Fixes[0].Edits[0].NewText != "value * 0.5" {
		t.Errorf("fix edit = %+v", d.Fixes[0].Edits[0])
	}
}

func TestJSONMax(t *testing.T) {
	diags, fs := sampleDiags(t)
	diags = append(diags, diags[0])
	out := diagfmt.BuildDiagnosticsOutput(diags, fs, diagfmt.JSONOpts{Max: 1})
	if out.Count != 1 {
		t.Errorf("count = %d, want 1", out.Count)
	}
}

func TestJSONOmitsDisabledSections(t *testing.T) {
	diags, fs := sampleDiags(t)
	out := diagfmt.BuildDiagnosticsOutput(diags, fs, diagfmt.JSONOpts{})
	if len(out.Diagnostics[0].Notes) != 0 || len(out.Diagnostics[0].Fixes) != 0 {
		t.Errorf("notes/fixes present despite being disabled: %+v", out.Diagnostics[0])
	}
}
