package ast

import (
	"shaderlint/internal/source"
)

// Stage is the shader pipeline phase a file belongs to.
type Stage uint8

const (
	StageUnknown Stage = iota
	StageVertex
	StageFragment
	StageCompute
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageCompute:
		return "compute"
	default:
		return "unknown"
	}
}

// StageForPath infers the stage from the file extension.
func StageForPath(path string) Stage {
	switch {
	case hasSuffix(path, ".vert"):
		return StageVertex
	case hasSuffix(path, ".frag"):
		return StageFragment
	case hasSuffix(path, ".comp"):
		return StageCompute
	default:
		return StageUnknown
	}
}

func hasSuffix(s, suf string) bool {
	return len(s) >= len(suf) && s[len(s)-len(suf):] == suf
}

// Directive is an opaque preprocessor-style line kept for rules that
// inspect directive text (e.g. the version-directive rule).
type Directive struct {
	Span source.Span
	Text string
}

// File is the parse result for one shader source file. Decls preserve
// source order exactly: the declaration-order rule depends on it.
type File struct {
	Span       source.Span
	Stage      Stage
	Decls      []Decl
	Directives []Directive
}

// Node is anything with a source location.
type Node interface {
	Span() source.Span
}

// Ident is a declared or referenced name.
type Ident struct {
	NameSpan source.Span
	Name     string
}

func (id Ident) Span() source.Span { return id.NameSpan }

// TypeRef is a (possibly qualified) type usage. Only the name matters
// to the linter; full type checking is out of scope.
type TypeRef struct {
	TypeSpan source.Span
	Name     string
}

func (t TypeRef) Span() source.Span { return t.TypeSpan }
