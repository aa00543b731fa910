// Package diagfmt renders diagnostics for humans (pretty) and tools
// (JSON). Both renderers expect an already-ordered diagnostic slice;
// they never reorder.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeFull prints the path as registered in the FileSet.
	PathModeFull PathMode = iota
	// PathModeBasename prints only the last path component.
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
	ShowFixes bool
	// ShowSource prints the offending line with a caret underline.
	ShowSource bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	PathMode PathMode
	// Max truncates the output; 0 means everything.
	Max          int
	IncludeNotes bool
	IncludeFixes bool
}
