package parser_test

import (
	"testing"

	"shaderlint/internal/ast"
	"shaderlint/internal/diag"
	"shaderlint/internal/parser"
	"shaderlint/internal/source"
)

func parseSource(t *testing.T, path, src string) (*ast.File, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual(path, []byte(src))
	bag := diag.NewBag(256)
	file := parser.ParseFile(fs.Get(id), parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	return file, bag
}

const fragmentSource = `#version 450

layout(location = 0) in vec2 frag_uv;
layout(location = 0) out vec4 out_color;

layout(set = 0, binding = 1) uniform sampler2D albedo_map;
layout(input_attachment_index = 0, set = 1, binding = 0) uniform subpassInput depth_input;

layout(set = 0, binding = 0) uniform SceneData {
    mat4 view_proj;
    vec4 ambient;
} scene;

layout(push_constant) uniform PushData {
    float exposure;
};

struct LightInfo {
    vec3 position;
    float intensity;
};

const float gamma = 2.2;

vec3 tonemap(vec3 color, float strength) {
    return color * strength;
}

void main() {
    out_color = vec4(tonemap(vec3(1.0), gamma), 1.0);
}
`

func TestParseFragmentShader(t *testing.T) {
	file, bag := parseSource(t, "shader.frag", fragmentSource)

	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if file.Stage != ast.StageFragment {
		t.Errorf("stage = %s, want fragment", file.Stage)
	}
	if len(file.Directives) != 1 || file.Directives[0].Text != "#version 450" {
		t.Errorf("directives = %v, want one #version 450", file.Directives)
	}
	if len(file.Decls) != 10 {
		t.Fatalf("decl count = %d, want 10", len(file.Decls))
	}

	in, ok := file.Decls[0].(*ast.StageIO)
	if !ok || in.Dir != ast.DirIn {
		t.Fatalf("decl 0 = %T, want input StageIO", file.Decls[0])
	}
	if in.Location != 0 || in.Type.Name != "vec2" || in.Name.Name != "frag_uv" {
		t.Errorf("input = loc %d %s %s", in.Location, in.Type.Name, in.Name.Name)
	}

	out, ok := file.Decls[1].(*ast.StageIO)
	if !ok || out.Dir != ast.DirOut {
		t.Fatalf("decl 1 = %T, want output StageIO", file.Decls[1])
	}

	smp, ok := file.Decls[2].(*ast.Sampler)
	if !ok {
		t.Fatalf("decl 2 = %T, want Sampler", file.Decls[2])
	}
	if smp.Set != 0 || smp.Binding != 1 || smp.Name.Name != "albedo_map" {
		t.Errorf("sampler = set %d binding %d %s", smp.Set, smp.Binding, smp.Name.Name)
	}

	att, ok := file.Decls[3].(*ast.InputAttachment)
	if !ok {
		t.Fatalf("decl 3 = %T, want InputAttachment", file.Decls[3])
	}
	if att.Index != 0 || att.Set != 1 || att.Binding != 0 {
		t.Errorf("attachment = index %d set %d binding %d", att.Index, att.Set, att.Binding)
	}

	ub, ok := file.Decls[4].(*ast.UniformBlock)
	if !ok {
		t.Fatalf("decl 4 = %T, want UniformBlock", file.Decls[4])
	}
	if ub.PushConstant {
		t.Error("SceneData flagged as push constant")
	}
	if ub.TypeName.Name != "SceneData" || len(ub.Fields) != 2 {
		t.Errorf("block = %s with %d fields", ub.TypeName.Name, len(ub.Fields))
	}
	if ub.Instance == nil || ub.Instance.Name != "scene" {
		t.Errorf("block instance = %v, want scene", ub.Instance)
	}

	pc, ok := file.Decls[5].(*ast.UniformBlock)
	if !ok || !pc.PushConstant {
		t.Fatalf("decl 5 = %T, want push-constant block", file.Decls[5])
	}
	if pc.Instance != nil {
		t.Errorf("push block instance = %v, want none", pc.Instance)
	}

	st, ok := file.Decls[6].(*ast.StructDecl)
	if !ok {
		t.Fatalf("decl 6 = %T, want StructDecl", file.Decls[6])
	}
	if st.Name.Name != "LightInfo" || len(st.Fields) != 2 {
		t.Errorf("struct = %s with %d fields", st.Name.Name, len(st.Fields))
	}
	if st.Fields[0].Name.Name != "position" || st.Fields[0].Type.Name != "vec3" {
		t.Errorf("struct field 0 = %s %s", st.Fields[0].Type.Name, st.Fields[0].Name.Name)
	}

	cv, ok := file.Decls[7].(*ast.VarDecl)
	if !ok || !cv.Const {
		t.Fatalf("decl 7 = %T, want const VarDecl", file.Decls[7])
	}
	if cv.Name.Name != "gamma" || cv.Init == nil {
		t.Errorf("const = %s init %v", cv.Name.Name, cv.Init)
	}

	fn, ok := file.Decls[8].(*ast.FnDecl)
	if !ok {
		t.Fatalf("decl 8 = %T, want FnDecl", file.Decls[8])
	}
	if fn.Name.Name != "tonemap" || len(fn.Params) != 2 {
		t.Errorf("decl 8 = %s with %d params", fn.Name.Name, len(fn.Params))
	}

	mainFn, ok := file.Decls[9].(*ast.FnDecl)
	if !ok || mainFn.Name.Name != "main" {
		t.Fatalf("decl 9 = %T, want fn main", file.Decls[9])
	}
}

func TestDirectivesRecordedAnywhere(t *testing.T) {
	file, bag := parseSource(t, "shader.frag", `
layout(location = 0) in vec2 frag_uv;
void main() {
#version 450
    float local_x = frag_uv.x;
}
#define LATE 1
`)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(file.Directives) != 2 {
		t.Fatalf("directives = %v, want 2", file.Directives)
	}
	if file.Directives[0].Text != "#version 450" {
		t.Errorf("directive 0 = %q", file.Directives[0].Text)
	}
	// the surrounding function still parses normally
	var fn *ast.FnDecl
	for _, d := range file.Decls {
		if f, ok := d.(*ast.FnDecl); ok {
			fn = f
		}
	}
	if fn == nil || len(fn.Body.Stmts) != 1 {
		t.Errorf("function body lost around the directive: %v", fn)
	}
}

func TestParseFunctionParams(t *testing.T) {
	file, bag := parseSource(t, "shader.frag", `
void shade(in vec3 normal, out vec3 result, inout float depth, const float bias) {
    result = normal * bias;
}
`)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	fn, ok := file.Decls[0].(*ast.FnDecl)
	if !ok {
		t.Fatalf("decl = %T, want FnDecl", file.Decls[0])
	}
	if len(fn.Params) != 4 {
		t.Fatalf("param count = %d, want 4", len(fn.Params))
	}
	if fn.Params[0].Qual.IsOut() {
		t.Error("in param reported as out")
	}
	if !fn.Params[1].Qual.IsOut() || fn.Params[1].Qual.IsInout() {
		t.Error("out param misclassified")
	}
	if !fn.Params[2].Qual.IsInout() {
		t.Error("inout param not recognized")
	}
	if fn.Params[3].Qual&ast.ParamConst == 0 {
		t.Error("const param qualifier lost")
	}
	if fn.Body == nil || len(fn.Body.Stmts) != 1 {
		t.Errorf("body = %v", fn.Body)
	}
}

func TestParseVoidParamList(t *testing.T) {
	file, bag := parseSource(t, "shader.vert", "void main(void) {}\n")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	fn := file.Decls[0].(*ast.FnDecl)
	if len(fn.Params) != 0 {
		t.Errorf("param count = %d, want 0", len(fn.Params))
	}
}

func TestParsePrototype(t *testing.T) {
	file, bag := parseSource(t, "shader.frag", "vec3 shade(vec3 normal);\n")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	fn := file.Decls[0].(*ast.FnDecl)
	if fn.Body != nil {
		t.Error("prototype has a body")
	}
}

func TestStageInferenceFromPath(t *testing.T) {
	tests := []struct {
		path string
		want ast.Stage
	}{
		{"a.vert", ast.StageVertex},
		{"a.frag", ast.StageFragment},
		{"a.comp", ast.StageCompute},
		{"a.glsl", ast.StageUnknown},
	}
	for _, tt := range tests {
		file, _ := parseSource(t, tt.path, "void main() {}\n")
		if file.Stage != tt.want {
			t.Errorf("%s: stage = %s, want %s", tt.path, file.Stage, tt.want)
		}
	}
}

func TestParseRecoversFromGarbage(t *testing.T) {
	file, bag := parseSource(t, "shader.frag", `
layout(location = 0) in vec2 frag_uv;
%%% this is not a shader %%%;
void main() {}
`)
	if bag.Len() == 0 {
		t.Fatal("expected at least one parse diagnostic")
	}
	hasBad := false
	hasFn := false
	for _, d := range file.Decls {
		switch d.(type) {
		case *ast.BadDecl:
			hasBad = true
		case *ast.FnDecl:
			hasFn = true
		}
	}
	if !hasBad {
		t.Error("expected a BadDecl for the skipped region")
	}
	if !hasFn {
		t.Error("parser did not recover to parse main")
	}
}

func TestParseNeverLoopsOnTruncatedInput(t *testing.T) {
	inputs := []string{
		"layout(",
		"void main() {",
		"uniform Block {",
		"struct S { vec3",
		"const float x =",
	}
	for _, src := range inputs {
		file, _ := parseSource(t, "shader.frag", src)
		if file == nil {
			t.Errorf("%q: nil file", src)
		}
	}
}

func TestMissingSemicolonReported(t *testing.T) {
	_, bag := parseSource(t, "shader.frag", "const float gamma = 2.2\nvoid main() {}\n")
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynExpectSemicolon {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics = %v, want SynExpectSemicolon", bag.Items())
	}
}
