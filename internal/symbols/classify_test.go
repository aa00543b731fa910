package symbols_test

import (
	"testing"

	"shaderlint/internal/diag"
	"shaderlint/internal/parser"
	"shaderlint/internal/source"
	"shaderlint/internal/symbols"
)

func classifySource(t *testing.T, src string) *symbols.Table {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.frag", []byte(src))
	bag := diag.NewBag(64)
	file := parser.ParseFile(fs.Get(id), parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.Len() != 0 {
		t.Fatalf("unexpected parse diagnostics: %v", bag.Items())
	}
	return symbols.Classify(file)
}

func TestClassifyRoles(t *testing.T) {
	table := classifySource(t, `
layout(location = 0) in vec2 frag_uv;
layout(location = 0) out vec4 out_color;
layout(set = 0, binding = 0) uniform sampler2D albedo_map;
layout(input_attachment_index = 0, set = 1, binding = 0) uniform subpassInput depth_input;

layout(set = 0, binding = 1) uniform SceneData {
    mat4 view_proj;
} scene;

layout(push_constant) uniform PushData {
    float exposure;
};

struct LightInfo {
    vec3 position;
};

const float gamma = 2.2;

void shade(vec3 normal, out vec3 result, inout float depth) {
    float local_bias = 0.5;
    result = normal * local_bias;
}
`)

	fileScope := []struct {
		name string
		role symbols.Role
	}{
		{"frag_uv", symbols.RoleStageInput},
		{"out_color", symbols.RoleStageOutput},
		{"albedo_map", symbols.RoleSampler},
		{"depth_input", symbols.RoleInputAttachment},
		{"view_proj", symbols.RoleUniformField},
		{"scene", symbols.RoleUniformField},
		{"exposure", symbols.RolePushConstantField},
		{"LightInfo", symbols.RoleStructType},
		{"position", symbols.RoleStructField},
		{"gamma", symbols.RoleGlobalConst},
		{"shade", symbols.RoleFunction},
	}
	for _, tt := range fileScope {
		sym, ok := table.Lookup("", tt.name)
		if !ok {
			t.Errorf("%s: not classified", tt.name)
			continue
		}
		if sym.Role != tt.role {
			t.Errorf("%s: role = %s, want %s", tt.name, sym.Role, tt.role)
		}
	}

	locals := []struct {
		name string
		role symbols.Role
	}{
		{"normal", symbols.RoleParam},
		{"result", symbols.RoleOutParam},
		{"depth", symbols.RoleOutParam}, // inout counts as written
		{"local_bias", symbols.RoleLocal},
	}
	for _, tt := range locals {
		sym, ok := table.Lookup("shade", tt.name)
		if !ok {
			t.Errorf("shade/%s: not classified", tt.name)
			continue
		}
		if sym.Role != tt.role {
			t.Errorf("shade/%s: role = %s, want %s", tt.name, sym.Role, tt.role)
		}
	}
}

func TestLookupFallsBackToFileScope(t *testing.T) {
	table := classifySource(t, `
const float gamma = 2.2;
void main() {
    float local_x = gamma;
}
`)
	sym, ok := table.Lookup("main", "gamma")
	if !ok {
		t.Fatal("gamma not visible inside main")
	}
	if sym.Role != symbols.RoleGlobalConst || !sym.Const {
		t.Errorf("gamma = %s const=%v", sym.Role, sym.Const)
	}
	if _, ok := table.Lookup("other", "local_x"); ok {
		t.Error("local of main leaked into another function scope")
	}
}

func TestConstFlag(t *testing.T) {
	table := classifySource(t, `
void main() {
    const int steps = 4;
    int count = 8;
}
`)
	steps, _ := table.Lookup("main", "steps")
	if !steps.Const {
		t.Error("const local not flagged Const")
	}
	count, _ := table.Lookup("main", "count")
	if count.Const {
		t.Error("mutable local flagged Const")
	}
}

func TestClassifyCase(t *testing.T) {
	tests := []struct {
		name string
		want symbols.CaseStyle
	}{
		{"frag_uv", symbols.CaseLowerSnake},
		{"color", symbols.CaseLowerSnake},
		{"x2", symbols.CaseLowerSnake},
		{"LightInfo", symbols.CaseUpperCamel},
		{"V", symbols.CaseUpperCamel},
		{"Light_Info", symbols.CaseOther},
		{"mixedCase", symbols.CaseOther},
		{"_private", symbols.CaseLowerSnake},
		{"", symbols.CaseOther},
	}
	for _, tt := range tests {
		if got := symbols.ClassifyCase(tt.name); got != tt.want {
			t.Errorf("ClassifyCase(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
