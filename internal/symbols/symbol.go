package symbols

import (
	"shaderlint/internal/source"
)

// Role tags what a declared name is, as the naming and ordering rules
// need it.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleStageInput
	RoleStageOutput
	RoleInputAttachment
	RoleSampler
	RoleUniformField
	RolePushConstantField
	RoleStructType
	RoleStructField
	RoleFunction
	RoleParam
	RoleOutParam
	RoleGlobalConst
	RoleGlobalVar
	RoleLocal
)

func (r Role) String() string {
	switch r {
	case RoleStageInput:
		return "stage input"
	case RoleStageOutput:
		return "stage output"
	case RoleInputAttachment:
		return "input attachment"
	case RoleSampler:
		return "sampler"
	case RoleUniformField:
		return "uniform field"
	case RolePushConstantField:
		return "push constant field"
	case RoleStructType:
		return "struct type"
	case RoleStructField:
		return "struct field"
	case RoleFunction:
		return "function"
	case RoleParam:
		return "parameter"
	case RoleOutParam:
		return "output parameter"
	case RoleGlobalConst:
		return "global constant"
	case RoleGlobalVar:
		return "global variable"
	case RoleLocal:
		return "local variable"
	default:
		return "unknown"
	}
}

// CaseStyle classifies how an identifier is written.
type CaseStyle uint8

const (
	CaseOther CaseStyle = iota
	CaseLowerSnake
	CaseUpperCamel
)

// Symbol is one classified declaration.
type Symbol struct {
	Name     string
	Role     Role
	Case     CaseStyle
	TypeName string
	Span     source.Span
	Const    bool
}

// Table maps declared names to symbols. Function-local names are scoped
// by function; Lookup falls back from local to file scope.
type Table struct {
	file   map[string]Symbol
	locals map[string]map[string]Symbol // fn name -> locals
	order  []Symbol
}

func NewTable() *Table {
	return &Table{
		file:   make(map[string]Symbol),
		locals: make(map[string]map[string]Symbol),
	}
}

func (t *Table) addFile(sym Symbol) {
	if _, exists := t.file[sym.Name]; !exists {
		t.file[sym.Name] = sym
	}
	t.order = append(t.order, sym)
}

func (t *Table) addLocal(fn string, sym Symbol) {
	m := t.locals[fn]
	if m == nil {
		m = make(map[string]Symbol)
		t.locals[fn] = m
	}
	if _, exists := m[sym.Name]; !exists {
		m[sym.Name] = sym
	}
	t.order = append(t.order, sym)
}

// Lookup resolves name inside fn (empty fn means file scope only).
func (t *Table) Lookup(fn, name string) (Symbol, bool) {
	if fn != "" {
		if m := t.locals[fn]; m != nil {
			if sym, ok := m[name]; ok {
				return sym, true
			}
		}
	}
	sym, ok := t.file[name]
	return sym, ok
}

// All returns every classified symbol in declaration order.
func (t *Table) All() []Symbol {
	return t.order
}

// ClassifyCase determines the case style of an identifier.
func ClassifyCase(name string) CaseStyle {
	if name == "" {
		return CaseOther
	}
	hasUpper, hasUnderscore := false, false
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c == '_':
			hasUnderscore = true
		}
	}
	first := name[0]
	switch {
	case !hasUpper:
		return CaseLowerSnake
	case first >= 'A' && first <= 'Z' && !hasUnderscore:
		return CaseUpperCamel
	default:
		return CaseOther
	}
}
