// Package ast defines the syntax tree for the GLSL subset the linter
// understands: top-level declarations (stage IO, samplers, uniform
// blocks, structs, functions), statements, and expressions.
//
// Every node carries a non-empty source span. Regions the parser could
// not understand become Bad* nodes that rules treat as opaque.
package ast
