package symbols

import (
	"shaderlint/internal/ast"
)

// Classify walks the declarations once and tags every declared name
// with its role. The walk is read-only: the AST is never mutated, the
// result is a side table.
func Classify(file *ast.File) *Table {
	t := NewTable()

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.StageIO:
			role := RoleStageInput
			if d.Dir == ast.DirOut {
				role = RoleStageOutput
			}
			t.addFile(Symbol{
				Name:     d.Name.Name,
				Role:     role,
				Case:     ClassifyCase(d.Name.Name),
				TypeName: d.Type.Name,
				Span:     d.Name.NameSpan,
			})

		case *ast.InputAttachment:
			t.addFile(Symbol{
				Name:     d.Name.Name,
				Role:     RoleInputAttachment,
				Case:     ClassifyCase(d.Name.Name),
				TypeName: d.Type.Name,
				Span:     d.Name.NameSpan,
			})

		case *ast.Sampler:
			t.addFile(Symbol{
				Name:     d.Name.Name,
				Role:     RoleSampler,
				Case:     ClassifyCase(d.Name.Name),
				TypeName: d.Type.Name,
				Span:     d.Name.NameSpan,
			})

		case *ast.UniformBlock:
			fieldRole := RoleUniformField
			if d.PushConstant {
				fieldRole = RolePushConstantField
			}
			for _, f := range d.Fields {
				t.addFile(Symbol{
					Name:     f.Name.Name,
					Role:     fieldRole,
					Case:     ClassifyCase(f.Name.Name),
					TypeName: f.Type.Name,
					Span:     f.Name.NameSpan,
				})
			}
			if d.Instance != nil {
				t.addFile(Symbol{
					Name: d.Instance.Name,
					Role: fieldRole,
					Case: ClassifyCase(d.Instance.Name),
					Span: d.Instance.NameSpan,
				})
			}

		case *ast.StructDecl:
			t.addFile(Symbol{
				Name: d.Name.Name,
				Role: RoleStructType,
				Case: ClassifyCase(d.Name.Name),
				Span: d.Name.NameSpan,
			})
			for _, f := range d.Fields {
				t.addFile(Symbol{
					Name:     f.Name.Name,
					Role:     RoleStructField,
					Case:     ClassifyCase(f.Name.Name),
					TypeName: f.Type.Name,
					Span:     f.Name.NameSpan,
				})
			}

		case *ast.VarDecl:
			role := RoleGlobalVar
			if d.Const {
				role = RoleGlobalConst
			}
			t.addFile(Symbol{
				Name:     d.Name.Name,
				Role:     role,
				Case:     ClassifyCase(d.Name.Name),
				TypeName: d.Type.Name,
				Span:     d.Name.NameSpan,
				Const:    d.Const,
			})

		case *ast.FnDecl:
			t.addFile(Symbol{
				Name:     d.Name.Name,
				Role:     RoleFunction,
				Case:     ClassifyCase(d.Name.Name),
				TypeName: d.RetType.Name,
				Span:     d.Name.NameSpan,
			})
			classifyFnLocals(t, d)
		}
	}

	return t
}

func classifyFnLocals(t *Table, fn *ast.FnDecl) {
	for _, param := range fn.Params {
		role := RoleParam
		if param.Qual.IsOut() {
			role = RoleOutParam
		}
		t.addLocal(fn.Name.Name, Symbol{
			Name:     param.Name.Name,
			Role:     role,
			Case:     ClassifyCase(param.Name.Name),
			TypeName: param.Type.Name,
			Span:     param.Name.NameSpan,
			Const:    param.Qual&ast.ParamConst != 0,
		})
	}
	if fn.Body == nil {
		return
	}
	ast.WalkStmts(fn.Body, func(s ast.Stmt) bool {
		if ds, ok := s.(*ast.DeclStmt); ok {
			t.addLocal(fn.Name.Name, Symbol{
				Name:     ds.Name.Name,
				Role:     RoleLocal,
				Case:     ClassifyCase(ds.Name.Name),
				TypeName: ds.Type.Name,
				Span:     ds.Name.NameSpan,
				Const:    ds.Const,
			})
		}
		return true
	})
}
