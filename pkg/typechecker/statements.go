package typechecker

import (
	"onec/compiler-go/pkg/ast"
	"onec/compiler-go/pkg/diagnostics"
)

func (c *Checker) checkBlock(env *Environment, block *ast.Block) []diagnostics.Diagnostic {
	if block == nil {
		return nil
	}
	env.Push()
	defer env.Pop()
	var diags []diagnostics.Diagnostic
	for _, stmt := range block.Body {
		diags = append(diags, c.checkStatement(env, stmt)...)
	}
	return diags
}

func (c *Checker) checkStatement(env *Environment, stmt ast.Statement) []diagnostics.Diagnostic {
	switch s := stmt.(type) {
	case *ast.Block:
		return c.checkBlock(env, s)
	case *ast.LetStatement:
		return c.checkLet(env, s)
	case *ast.ExpressionStatement:
		diags, _ := c.checkExpression(env, s.Expression)
		return diags
	case *ast.IfStatement:
		diags := c.checkCondition(env, s.Condition, "if")
		diags = append(diags, c.checkBlock(env, s.Then)...)
		if s.Else != nil {
			diags = append(diags, c.checkStatement(env, s.Else)...)
		}
		return diags
	case *ast.WhileLoop:
		diags := c.checkCondition(env, s.Condition, "while")
		return append(diags, c.checkBlock(env, s.Body)...)
	case *ast.ReturnStatement:
		return c.checkReturn(env, s)
	case nil:
		return nil
	}
	return []diagnostics.Diagnostic{errorAt(stmt, diagnostics.CodeTypeMismatch, "unsupported statement %T", stmt)}
}

// checkLet binds the variable after its initializer is checked, so the
// initializer sees any previous binding of the same name.
func (c *Checker) checkLet(env *Environment, stmt *ast.LetStatement) []diagnostics.Diagnostic {
	var (
		diags    []diagnostics.Diagnostic
		declared Type
	)
	if stmt.DeclaredType != nil {
		typeDiags, typ := c.resolveTypeExpression(stmt.DeclaredType)
		diags = append(diags, typeDiags...)
		declared = typ
	}
	if stmt.Initializer != nil {
		initDiags, initType := c.checkExpression(env, stmt.Initializer)
		diags = append(diags, initDiags...)
		if declared == nil {
			declared = defaultType(initType)
		}
		diags = append(diags, c.checkAssignable(stmt.Initializer, initType, declared, diagnostics.CodeTypeMismatch)...)
	}
	if declared == nil {
		declared = UnresolvedType{}
	}
	env.Define(stmt.Name.Name, declared)
	return diags
}

func (c *Checker) checkCondition(env *Environment, cond ast.Expression, keyword string) []diagnostics.Diagnostic {
	diags, typ := c.checkExpression(env, cond)
	if containsUnknown(typ) || isBoolType(typ) {
		return diags
	}
	return append(diags, errorAt(cond, diagnostics.CodeTypeMismatch, "%s condition must be boolean, found %s", keyword, typeName(typ)))
}

func (c *Checker) checkReturn(env *Environment, stmt *ast.ReturnStatement) []diagnostics.Diagnostic {
	expected, ok := c.expectedReturn()
	if !ok {
		return []diagnostics.Diagnostic{errorAt(stmt, diagnostics.CodeInvalidReturn, "return outside of a function")}
	}
	if stmt.Argument == nil {
		if containsUnknown(expected) || sameType(expected, unitType) {
			return nil
		}
		return []diagnostics.Diagnostic{errorAt(stmt, diagnostics.CodeInvalidReturn, "missing return value of type %s", typeName(expected))}
	}
	diags, typ := c.checkExpression(env, stmt.Argument)
	return append(diags, c.checkAssignable(stmt.Argument, typ, expected, diagnostics.CodeInvalidReturn)...)
}

// checkAssignable reports whether a value of type from may be stored where
// to is expected. Integer constants take on the target width when they fit.
func (c *Checker) checkAssignable(expr ast.Expression, from, to Type, code diagnostics.Code) []diagnostics.Diagnostic {
	if containsUnknown(from) || containsUnknown(to) {
		return nil
	}
	if untyped, ok := from.(UntypedIntegerType); ok {
		target, isInt := to.(IntegerType)
		if !isInt {
			return []diagnostics.Diagnostic{errorAt(expr, code, "mismatched types: expected %s, found integer constant", typeName(to))}
		}
		if untyped.Known && (untyped.Value < target.Min() || untyped.Value > target.Max()) {
			return []diagnostics.Diagnostic{errorAt(expr, diagnostics.CodeLiteralRange, "constant %s overflows %s", formatConstant(untyped.Value), target.Name())}
		}
		c.infer.set(expr, target)
		return nil
	}
	if !sameType(from, to) {
		return []diagnostics.Diagnostic{errorAt(expr, code, "mismatched types: expected %s, found %s", typeName(to), typeName(from))}
	}
	return nil
}
