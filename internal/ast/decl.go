package ast

import (
	"shaderlint/internal/source"
)

// Decl is a top-level declaration.
type Decl interface {
	Node
	declNode()
}

// Direction distinguishes stage inputs from stage outputs.
type Direction uint8

const (
	DirIn Direction = iota
	DirOut
)

func (d Direction) String() string {
	if d == DirOut {
		return "out"
	}
	return "in"
}

// StageIO is a stage input or output: layout(location = N) in/out type name;
type StageIO struct {
	DeclSpan source.Span
	Dir      Direction
	Location int // -1 when the layout omitted it
	Type     TypeRef
	Name     Ident
}

// InputAttachment is a subpass input:
// layout(input_attachment_index = I, set = S, binding = B) uniform subpassInput name;
type InputAttachment struct {
	DeclSpan source.Span
	Index    int
	Set      int
	Binding  int
	Type     TypeRef
	Name     Ident
}

// Sampler is a combined texture sampler:
// layout(set = S, binding = B) uniform sampler2D name;
type Sampler struct {
	DeclSpan source.Span
	Set      int
	Binding  int
	Type     TypeRef
	Name     Ident
}

// Field is one member of a block or struct.
type Field struct {
	FieldSpan source.Span
	Type      TypeRef
	Name      Ident
}

func (f Field) Span() source.Span { return f.FieldSpan }

// UniformBlock is a uniform or push-constant block:
// layout(push_constant) uniform BlockName { ... } instance;
type UniformBlock struct {
	DeclSpan     source.Span
	Set          int // -1 when absent
	Binding      int // -1 when absent
	PushConstant bool
	TypeName     Ident
	Fields       []Field
	Instance     *Ident // optional instance name
}

// StructDecl is a plain struct type declaration.
type StructDecl struct {
	DeclSpan source.Span
	Name     Ident
	Fields   []Field
}

// ParamQual is a bitset of parameter qualifiers.
type ParamQual uint8

const (
	ParamIn ParamQual = 1 << iota
	ParamOut
	ParamConst
)

// IsOut reports whether the parameter is written by the callee
// (out or inout).
func (q ParamQual) IsOut() bool { return q&ParamOut != 0 }

// IsInout reports whether the parameter is both read and written.
func (q ParamQual) IsInout() bool { return q&(ParamIn|ParamOut) == ParamIn|ParamOut }

// Param is one function parameter.
type Param struct {
	ParamSpan source.Span
	Qual      ParamQual
	Type      TypeRef
	Name      Ident
}

func (p Param) Span() source.Span { return p.ParamSpan }

// FnDecl is a function definition (or prototype when Body is nil).
type FnDecl struct {
	DeclSpan source.Span
	RetType  TypeRef
	Name     Ident
	Params   []Param
	Body     *BlockStmt
}

// VarDecl is a top-level variable, usually a const.
type VarDecl struct {
	DeclSpan source.Span
	Const    bool
	Type     TypeRef
	Name     Ident
	Init     Expr // may be nil
}

// BadDecl marks a top-level region the parser skipped after an error.
type BadDecl struct {
	DeclSpan source.Span
}

func (d *StageIO) Span() source.Span         { return d.DeclSpan }
func (d *InputAttachment) Span() source.Span { return d.DeclSpan }
func (d *Sampler) Span() source.Span         { return d.DeclSpan }
func (d *UniformBlock) Span() source.Span    { return d.DeclSpan }
func (d *StructDecl) Span() source.Span      { return d.DeclSpan }
func (d *FnDecl) Span() source.Span          { return d.DeclSpan }
func (d *VarDecl) Span() source.Span         { return d.DeclSpan }
func (d *BadDecl) Span() source.Span         { return d.DeclSpan }

func (*StageIO) declNode()         {}
func (*InputAttachment) declNode() {}
func (*Sampler) declNode()         {}
func (*UniformBlock) declNode()    {}
func (*StructDecl) declNode()      {}
func (*FnDecl) declNode()          {}
func (*VarDecl) declNode()         {}
func (*BadDecl) declNode()         {}
