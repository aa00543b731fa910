package token

var keywords = map[string]Kind{
	"in":            KwIn,
	"out":           KwOut,
	"inout":         KwInout,
	"uniform":       KwUniform,
	"const":         KwConst,
	"layout":        KwLayout,
	"struct":        KwStruct,
	"return":        KwReturn,
	"if":            KwIf,
	"else":          KwElse,
	"for":           KwFor,
	"while":         KwWhile,
	"do":            KwDo,
	"break":         KwBreak,
	"continue":      KwContinue,
	"discard":       KwDiscard,
	"flat":          KwFlat,
	"noperspective": KwNoperspective,
	"smooth":        KwSmooth,
	"buffer":        KwBuffer,
	"shared":        KwShared,
	"readonly":      KwReadonly,
	"writeonly":     KwWriteonly,
	"precision":     KwPrecision,
	"true":          KwTrue,
	"false":         KwFalse,
}

// LookupKeyword returns the keyword kind for ident, if any.
// Keywords are case-sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// typeNames lists the built-in type names the parser recognizes in
// declaration position. They stay Ident at the token level since GLSL
// allows user-defined type names in the same positions.
var typeNames = map[string]struct{}{
	"void": {}, "float": {}, "double": {}, "int": {}, "uint": {}, "bool": {},
	"vec2": {}, "vec3": {}, "vec4": {},
	"ivec2": {}, "ivec3": {}, "ivec4": {},
	"uvec2": {}, "uvec3": {}, "uvec4": {},
	"bvec2": {}, "bvec3": {}, "bvec4": {},
	"mat2": {}, "mat3": {}, "mat4": {},
	"mat2x2": {}, "mat3x3": {}, "mat4x4": {},
	"mat2x3": {}, "mat2x4": {}, "mat3x2": {}, "mat3x4": {}, "mat4x2": {}, "mat4x3": {},
	"sampler1D": {}, "sampler2D": {}, "sampler3D": {}, "samplerCube": {},
	"sampler2DArray": {}, "sampler2DShadow": {}, "samplerCubeArray": {},
	"isampler2D": {}, "usampler2D": {},
	"image2D": {}, "image3D": {}, "imageCube": {},
	"subpassInput": {}, "subpassInputMS": {},
	"atomic_uint": {},
}

// IsTypeName reports whether ident is a built-in GLSL type name.
func IsTypeName(ident string) bool {
	_, ok := typeNames[ident]
	return ok
}

// IsSamplerType reports whether ident names an opaque sampler type.
func IsSamplerType(ident string) bool {
	switch ident {
	case "sampler1D", "sampler2D", "sampler3D", "samplerCube",
		"sampler2DArray", "sampler2DShadow", "samplerCubeArray",
		"isampler2D", "usampler2D":
		return true
	default:
		return false
	}
}

// IsSubpassInputType reports whether ident names an input attachment type.
func IsSubpassInputType(ident string) bool {
	return ident == "subpassInput" || ident == "subpassInputMS"
}

// VectorArity returns the component count for vector type names
// (vec2/ivec3/...), or 0 when ident is not a vector type.
func VectorArity(ident string) int {
	if len(ident) < 4 {
		return 0
	}
	base := ident
	switch base[0] {
	case 'i', 'u', 'b':
		base = base[1:]
	}
	if len(base) != 4 || base[:3] != "vec" {
		return 0
	}
	switch base[3] {
	case '2':
		return 2
	case '3':
		return 3
	case '4':
		return 4
	}
	return 0
}
