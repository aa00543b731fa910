package diag

import (
	"shaderlint/internal/source"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit is a single text replacement.
type FixEdit struct {
	Span    source.Span
	NewText string
}

// Fix is a suggested rewrite a caller may apply verbatim.
type Fix struct {
	Title string
	Edits []FixEdit
}

// Diagnostic is one finding: a parse error, a style violation, or an
// optimization suggestion.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}
