package diagfmt

import (
	"fmt"
	"io"

	"shaderlint/internal/ast"
	"shaderlint/internal/source"
)

// FormatASTPretty prints a one-line summary per top-level declaration,
// in source order.
func FormatASTPretty(w io.Writer, file *ast.File, fs *source.FileSet) error {
	fmt.Fprintf(w, "stage: %s\n", file.Stage)
	for _, dir := range file.Directives {
		start, _ := fs.Resolve(dir.Span)
		fmt.Fprintf(w, "%4d: directive %q\n", start.Line, dir.Text)
	}
	for _, decl := range file.Decls {
		start, _ := fs.Resolve(decl.Span())
		fmt.Fprintf(w, "%4d: %s\n", start.Line, declSummary(decl))
	}
	return nil
}

func declSummary(d ast.Decl) string {
	switch decl := d.(type) {
	case *ast.StageIO:
		return fmt.Sprintf("stage %s %s %s (location=%d)",
			decl.Dir, decl.Type.Name, decl.Name.Name, decl.Location)
	case *ast.InputAttachment:
		return fmt.Sprintf("input attachment %s %s (index=%d set=%d binding=%d)",
			decl.Type.Name, decl.Name.Name, decl.Index, decl.Set, decl.Binding)
	case *ast.Sampler:
		return fmt.Sprintf("sampler %s %s (set=%d binding=%d)",
			decl.Type.Name, decl.Name.Name, decl.Set, decl.Binding)
	case *ast.UniformBlock:
		kind := "uniform block"
		if decl.PushConstant {
			kind = "push constant block"
		}
		return fmt.Sprintf("%s %s (%d fields)", kind, decl.TypeName.Name, len(decl.Fields))
	case *ast.StructDecl:
		return fmt.Sprintf("struct %s (%d fields)", decl.Name.Name, len(decl.Fields))
	case *ast.FnDecl:
		body := "prototype"
		if decl.Body != nil {
			body = fmt.Sprintf("%d statements", len(decl.Body.Stmts))
		}
		return fmt.Sprintf("fn %s %s(%d params) %s",
			decl.RetType.Name, decl.Name.Name, len(decl.Params), body)
	case *ast.VarDecl:
		kind := "var"
		if decl.Const {
			kind = "const"
		}
		return fmt.Sprintf("%s %s %s", kind, decl.Type.Name, decl.Name.Name)
	case *ast.BadDecl:
		return "bad declaration (skipped after parse error)"
	default:
		return "unknown declaration"
	}
}
