// Package token defines the lexical vocabulary of the GLSL subset the
// linter understands: token kinds, keyword and built-in type lookup
// tables, and trivia (whitespace and comments) preserved alongside
// significant tokens.
package token
