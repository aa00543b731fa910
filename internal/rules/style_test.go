package rules_test

import (
	"strings"
	"testing"

	"shaderlint/internal/ast"
	"shaderlint/internal/diag"
)

func TestVersionDirectiveForbidden(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{"at top", "#version 450\nvoid main() {}\n", 1},
		{"in the middle", "void main() {}\n#version 450\n", 1},
		{"inside a function body", "void main() {\n#version 450\n}\n", 1},
		{"other directive", "#extension GL_EXT_foo : enable\nvoid main() {}\n", 0},
		{"no directive", "void main() {}\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := byCode(lintSource(t, "test.frag", tt.src), diag.StyleVersionDirective)
			if len(diags) != tt.want {
				t.Fatalf("diagnostics = %d, want %d", len(diags), tt.want)
			}
			if tt.want == 1 && diags[0].Severity != diag.SevError {
				t.Errorf("severity = %v, want error", diags[0].Severity)
			}
		})
	}
}

func TestIdentCase(t *testing.T) {
	diags := byCode(lintSource(t, "test.frag", `
struct lightData {
    vec3 position;
};

struct LightInfo {
    vec3 position;
};

void main() {
    float mixedCase = 1.0;
    float fine_name = 2.0;
}
`), diag.StyleIdentCase)
	if len(diags) != 2 {
		t.Fatalf("diagnostics = %d, want 2: %v", len(diags), diags)
	}

	var structDiag, localDiag *diag.Diagnostic
	for i := range diags {
		if strings.Contains(diags[i].Message, "lightData") {
			structDiag = &diags[i]
		}
		if strings.Contains(diags[i].Message, "mixedCase") {
			localDiag = &diags[i]
		}
	}
	if structDiag == nil {
		t.Fatal("no diagnostic for struct lightData")
	}
	if !strings.Contains(structDiag.Message, "UpperCamelCase") {
		t.Errorf("struct message = %q", structDiag.Message)
	}
	if len(structDiag.Fixes) != 1 || structDiag.Fixes[0].Edits[0].NewText != "LightData" {
		t.Errorf("struct fix = %v, want rename to LightData", structDiag.Fixes)
	}

	if localDiag == nil {
		t.Fatal("no diagnostic for local mixedCase")
	}
	if len(localDiag.Fixes) != 1 || localDiag.Fixes[0].Edits[0].NewText != "mixed_case" {
		t.Errorf("local fix = %v, want rename to mixed_case", localDiag.Fixes)
	}
}

func TestOutParamSuffix(t *testing.T) {
	diags := byCode(lintSource(t, "test.frag", `
void shade(in vec3 normal, inout vec3 specular, out vec3 color_out) {
    specular = normal;
    color_out = specular;
}
`), diag.StyleOutParamSuffix)
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %d, want 1: %v", len(diags), diags)
	}
	if !strings.Contains(diags[0].Message, "specular") {
		t.Errorf("message = %q, want mention of specular", diags[0].Message)
	}
	if len(diags[0].Fixes) != 1 || diags[0].Fixes[0].Edits[0].NewText != "specular_out" {
		t.Errorf("fix = %v, want rename to specular_out", diags[0].Fixes)
	}
}

func TestDeclOrder(t *testing.T) {
	t.Run("output before input", func(t *testing.T) {
		diags := byCode(lintSource(t, "test.frag", `
layout(location = 0) out vec4 out_color;
layout(location = 0) in vec2 frag_uv;
void main() {}
`), diag.StyleDeclOrder)
		if len(diags) != 1 {
			t.Fatalf("diagnostics = %d, want 1: %v", len(diags), diags)
		}
		// the misplaced declaration is the output, not the input
		if !strings.Contains(diags[0].Message, "stage inputs") {
			t.Errorf("message = %q", diags[0].Message)
		}
	})

	t.Run("canonical order is clean", func(t *testing.T) {
		diags := byCode(lintSource(t, "test.frag", `
layout(location = 0) in vec2 frag_uv;
layout(location = 0) out vec4 out_color;
layout(input_attachment_index = 0, set = 1, binding = 0) uniform subpassInput depth_input;
layout(set = 0, binding = 0) uniform sampler2D albedo_map;
layout(push_constant) uniform PushData { float exposure; };
layout(set = 0, binding = 1) uniform SceneData { mat4 view_proj; } scene;
void main() {}
`), diag.StyleDeclOrder)
		if len(diags) != 0 {
			t.Errorf("diagnostics = %v, want none", diags)
		}
	})

	t.Run("each offender flagged once", func(t *testing.T) {
		diags := byCode(lintSource(t, "test.frag", `
layout(set = 0, binding = 0) uniform sampler2D albedo_map;
layout(set = 0, binding = 1) uniform sampler2D normal_map;
layout(location = 0) in vec2 frag_uv;
void main() {}
`), diag.StyleDeclOrder)
		if len(diags) != 2 {
			t.Errorf("diagnostics = %d, want 2 (one per misplaced sampler)", len(diags))
		}
	})
}

func TestFileName(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"shadow_map.frag", 0},
		{"skinning.vert", 0},
		{"cull.comp", 0},
		{"ShadowMap.frag", 1},  // bad stem
		{"shadow_map.glsl", 1}, // bad extension
		{"ShadowMap.glsl", 2},  // both
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			diags := byCode(lintSource(t, tt.path, "void main() {}\n"), diag.StyleFileName)
			if len(diags) != tt.want {
				t.Errorf("diagnostics = %d, want %d: %v", len(diags), tt.want, diags)
			}
		})
	}
}

func TestFileNameUsesIdentifierOnly(t *testing.T) {
	// the rule must judge the identifier as given, including directories
	diags := byCode(lintSource(t, "shaders/deferred/lighting_pass.frag", "void main() {}\n"), diag.StyleFileName)
	if len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none", diags)
	}
	if ast.StageForPath("shaders/deferred/lighting_pass.frag") != ast.StageFragment {
		t.Error("stage inference lost on nested path")
	}
}
