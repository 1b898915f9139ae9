package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/types"

	"github.com/dave/jennifer/jen"
)

// typeCode converts a declared field type into jennifer code, qualifying
// package selectors so the generated file imports what it uses.
func typeCode(expr string, imports map[string]string) (jen.Code, error) {
	x, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, fmt.Errorf("parse type %q: %w", expr, err)
	}
	return exprCode(x, imports), nil
}

func exprCode(x ast.Expr, imports map[string]string) *jen.Statement {
	switch x := x.(type) {
	case *ast.Ident:
		return jen.Id(x.Name)
	case *ast.SelectorExpr:
		if id, ok := x.X.(*ast.Ident); ok {
			if path, ok := imports[id.Name]; ok {
				return jen.Qual(path, x.Sel.Name)
			}
		}
	case *ast.ParenExpr:
		return jen.Parens(exprCode(x.X, imports))
	case *ast.StarExpr:
		return jen.Op("*").Add(exprCode(x.X, imports))
	case *ast.ArrayType:
		if x.Len == nil {
			return jen.Index().Add(exprCode(x.Elt, imports))
		}
		return jen.Index(jen.Op(types.ExprString(x.Len))).Add(exprCode(x.Elt, imports))
	case *ast.MapType:
		return jen.Map(exprCode(x.Key, imports)).Add(exprCode(x.Value, imports))
	case *ast.IndexExpr:
		return exprCode(x.X, imports).Types(exprCode(x.Index, imports))
	case *ast.IndexListExpr:
		args := make([]jen.Code, len(x.Indices))
		for i, ix := range x.Indices {
			args[i] = exprCode(ix, imports)
		}
		return exprCode(x.X, imports).Types(args...)
	}
	return jen.Op(types.ExprString(x))
}

// copyMode reports how a carrier copies a field of the declared type. clone
// names the package whose Clone function copies slices and maps one level
// deep; shared reports a pointer whose target stays shared with the record.
// Named slice and map types are copied by assignment.
func copyMode(expr string) (clone string, shared bool) {
	x, err := parser.ParseExpr(expr)
	if err != nil {
		return "", false
	}
	for {
		p, ok := x.(*ast.ParenExpr)
		if !ok {
			break
		}
		x = p.X
	}
	switch x := x.(type) {
	case *ast.ArrayType:
		if x.Len == nil {
			return "slices", false
		}
	case *ast.MapType:
		return "maps", false
	case *ast.StarExpr:
		return "", true
	}
	return "", false
}
