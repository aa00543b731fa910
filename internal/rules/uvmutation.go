package rules

import (
	"fmt"
	"strings"

	"shaderlint/internal/ast"
	"shaderlint/internal/diag"
	"shaderlint/internal/source"
)

// uvMutationRule warns when fragment code overwrites a texture
// coordinate and then samples with it. The mutated coordinate defeats
// the hardware's ability to prefetch, turning the lookup dynamic.
type uvMutationRule struct{}

func (uvMutationRule) Code() diag.Code { return diag.OptUVMutation }
func (uvMutationRule) Name() string    { return diag.OptUVMutation.ID() }

var textureSampleFns = map[string]bool{
	"texture":     true,
	"textureLod":  true,
	"textureProj": true,
	"textureGrad": true,
	"texelFetch":  true,
}

func (uvMutationRule) Check(ctx *Context) []diag.Diagnostic {
	if ctx.AST.Stage != ast.StageFragment {
		return nil
	}
	var out []diag.Diagnostic
	eachFn(ctx.AST, func(fn *ast.FnDecl) {
		mutated := make(map[string]source.Span)
		ast.WalkExprs(fn.Body, func(e ast.Expr) bool {
			switch x := e.(type) {
			case *ast.AssignExpr:
				if name, ok := assignTargetName(x.LHS); ok && isUVName(ctx, fn.Name.Name, name) {
					if _, seen := mutated[name]; !seen {
						mutated[name] = x.Span()
					}
				}
			case *ast.CallExpr:
				if !textureSampleFns[x.Callee] {
					return true
				}
				for _, arg := range x.Args {
					name, ok := exprMentions(arg, mutated)
					if !ok {
						continue
					}
					d := diag.NewWarning(
						diag.OptUVMutation,
						x.Span(),
						fmt.Sprintf("texture lookup uses coordinate %q mutated earlier; dynamic lookups are costly", name),
					).WithNote(mutated[name], fmt.Sprintf("%q is written here", name))
					out = append(out, d)
					delete(mutated, name)
					break
				}
			}
			return true
		})
	})
	return out
}

// assignTargetName resolves the root identifier of an assignment target,
// looking through member and index accesses (uv.x = ... mutates uv).
func assignTargetName(lhs ast.Expr) (string, bool) {
	for {
		switch x := ast.Unparen(lhs).(type) {
		case *ast.IdentExpr:
			return x.Name, true
		case *ast.MemberExpr:
			lhs = x.X
		case *ast.IndexExpr:
			lhs = x.X
		default:
			return "", false
		}
	}
}

// exprMentions reports whether the expression references any mutated
// coordinate, returning the first name found.
func exprMentions(e ast.Expr, names map[string]source.Span) (string, bool) {
	found := ""
	fakeStmt := &ast.ExprStmt{X: e}
	ast.WalkExprs(fakeStmt, func(inner ast.Expr) bool {
		if found != "" {
			return false
		}
		if id, ok := inner.(*ast.IdentExpr); ok {
			if _, hit := names[id.Name]; hit {
				found = id.Name
				return false
			}
		}
		return true
	})
	return found, found != ""
}

// isUVName applies the texture-coordinate heuristic: the name mentions
// uv or texcoord, or a vec2 whose name ends in _coord.
func isUVName(ctx *Context, fnName, name string) bool {
	lower := strings.ToLower(name)
	if strings.Contains(lower, "uv") || strings.Contains(lower, "texcoord") {
		return true
	}
	if sym, ok := ctx.Symbols.Lookup(fnName, name); ok {
		return sym.TypeName == "vec2" && strings.HasSuffix(lower, "_coord")
	}
	return false
}
