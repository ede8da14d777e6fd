package typechecker

import (
	"onec/compiler-go/pkg/ast"
	"onec/compiler-go/pkg/diagnostics"
)

// resolveTypeExpression turns an annotation into a Type. A nil annotation is
// the unit type.
func (c *Checker) resolveTypeExpression(expr ast.TypeExpression) ([]diagnostics.Diagnostic, Type) {
	switch t := expr.(type) {
	case nil:
		return nil, unitType
	case *ast.SimpleTypeExpression:
		if typ, ok := builtinTypes[t.Name.Name]; ok {
			return nil, typ
		}
		return []diagnostics.Diagnostic{errorAt(t, diagnostics.CodeUnknownType, "unknown type %s", t.Name.Name)}, UnknownType{}
	case *ast.TupleTypeExpression:
		diags, members := c.resolveTypeList(t.Members)
		return diags, TupleType{Members: members}
	case *ast.FunctionTypeExpression:
		diags, params := c.resolveTypeList(t.ParamTypes)
		retDiags, ret := c.resolveTypeExpression(t.ReturnType)
		return append(diags, retDiags...), FunctionType{Params: params, Return: ret}
	}
	return []diagnostics.Diagnostic{errorAt(expr, diagnostics.CodeUnknownType, "unsupported type expression %T", expr)}, UnknownType{}
}

func (c *Checker) resolveTypeList(exprs []ast.TypeExpression) ([]diagnostics.Diagnostic, []Type) {
	var diags []diagnostics.Diagnostic
	types := make([]Type, 0, len(exprs))
	for _, expr := range exprs {
		exprDiags, typ := c.resolveTypeExpression(expr)
		diags = append(diags, exprDiags...)
		types = append(types, typ)
	}
	return diags, types
}
