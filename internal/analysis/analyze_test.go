package analysis_test

import (
	"reflect"
	"testing"

	"shaderlint/internal/analysis"
	"shaderlint/internal/diag"
)

const sampleShader = `#version 450

layout(location = 0) out vec4 out_color;
layout(location = 0) in vec2 frag_uv;
layout(set = 0, binding = 0) uniform sampler2D albedo_map;

void main() {
    float halfIntensity = frag_uv.x / 2.0;
    out_color = texture(albedo_map, frag_uv)
}
`

func TestAnalyzeNilSource(t *testing.T) {
	_, err := analysis.Analyze("test.frag", nil, analysis.Options{})
	if err != analysis.ErrNilSource {
		t.Fatalf("err = %v, want ErrNilSource", err)
	}
	// empty source is valid input
	res, err := analysis.Analyze("test.frag", []byte{}, analysis.Options{})
	if err != nil {
		t.Fatalf("empty source: %v", err)
	}
	if res == nil {
		t.Fatal("empty source: nil result")
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	first, err := analysis.Analyze("test.frag", []byte(sampleShader), analysis.Options{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := analysis.Analyze("test.frag", []byte(sampleShader), analysis.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first.Diagnostics, second.Diagnostics) {
		t.Errorf("two runs disagree:\n%v\n%v", first.Diagnostics, second.Diagnostics)
	}
}

func TestParseDiagnosticsComeFirst(t *testing.T) {
	res, err := analysis.Analyze("test.frag", []byte(sampleShader), analysis.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Diagnostics) < 2 {
		t.Fatalf("diagnostics = %v, want parse and rule findings", res.Diagnostics)
	}
	seenRule := false
	for _, d := range res.Diagnostics {
		if !d.Code.IsParsePhase() {
			seenRule = true
			continue
		}
		if seenRule {
			t.Fatalf("parse diagnostic %s after rule diagnostics", d.Code)
		}
	}
	if !seenRule {
		t.Fatal("no rule diagnostics at all")
	}
}

func TestRuleDiagnosticsSortedBySpan(t *testing.T) {
	res, err := analysis.Analyze("test.frag", []byte(sampleShader), analysis.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var prev uint32
	inRules := false
	for _, d := range res.Diagnostics {
		if d.Code.IsParsePhase() {
			continue
		}
		if inRules && d.Primary.Start < prev {
			t.Fatalf("rule diagnostic at %d after one at %d", d.Primary.Start, prev)
		}
		prev = d.Primary.Start
		inRules = true
	}
}

func TestAnalyzeFindsExpectedCodes(t *testing.T) {
	res, err := analysis.Analyze("test.frag", []byte(sampleShader), analysis.Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := map[diag.Code]bool{
		diag.StyleVersionDirective: false, // #version present
		diag.StyleDeclOrder:        false, // output before input
		diag.StyleIdentCase:        false, // halfIntensity
	}
	for _, d := range res.Diagnostics {
		if _, tracked := want[d.Code]; tracked {
			want[d.Code] = true
		}
	}
	for code, seen := range want {
		if !seen {
			t.Errorf("missing %s (%s)", code, code.ID())
		}
	}
	if !res.HasErrors() {
		t.Error("HasErrors = false, want true (version directive is an error)")
	}
}

func TestMaxDiagnosticsCap(t *testing.T) {
	res, err := analysis.Analyze("test.frag", []byte(sampleShader), analysis.Options{MaxDiagnostics: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Diagnostics) != 1 {
		t.Errorf("diagnostics = %d, want 1", len(res.Diagnostics))
	}
}

func TestAnalyzeNormalizesInput(t *testing.T) {
	crlf := "layout(location = 0) in vec2 frag_uv;\r\nvoid main() {}\r\n"
	plain := "layout(location = 0) in vec2 frag_uv;\nvoid main() {}\n"

	a, err := analysis.Analyze("test.frag", []byte("\xef\xbb\xbf"+crlf), analysis.Options{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := analysis.Analyze("test.frag", []byte(plain), analysis.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Diagnostics, b.Diagnostics) {
		t.Errorf("BOM/CRLF input diverges:\n%v\n%v", a.Diagnostics, b.Diagnostics)
	}
}
