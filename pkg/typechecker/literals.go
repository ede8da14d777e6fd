package typechecker

import (
	"math"
	"strconv"

	"onec/compiler-go/pkg/ast"
	"onec/compiler-go/pkg/diagnostics"
)

func (c *Checker) checkExpression(env *Environment, expr ast.Expression) ([]diagnostics.Diagnostic, Type) {
	var (
		diags []diagnostics.Diagnostic
		typ   Type
	)
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		diags, typ = c.checkNumberLiteral(e)
	case *ast.StringLiteral:
		typ = stringType
	case *ast.BooleanLiteral:
		typ = boolType
	case *ast.Identifier:
		diags, typ = c.checkIdentifier(env, e)
	case *ast.UnaryExpression:
		diags, typ = c.checkUnaryExpression(env, e)
	case *ast.BinaryExpression:
		diags, typ = c.checkBinaryExpression(env, e)
	case *ast.AssignmentExpression:
		diags, typ = c.checkAssignment(env, e)
	case *ast.FunctionCall:
		diags, typ = c.checkFunctionCall(env, e)
	case *ast.LambdaExpression:
		diags, typ = c.checkLambda(e)
	case nil:
		return nil, UnknownType{}
	default:
		return []diagnostics.Diagnostic{errorAt(expr, diagnostics.CodeTypeMismatch, "unsupported expression %T", expr)}, UnknownType{}
	}
	c.infer.set(expr, typ)
	return diags, typ
}

// checkNumberLiteral types a literal as an integer constant. There is no
// floating point type, so fractional literals are rejected outright.
func (c *Checker) checkNumberLiteral(lit *ast.NumberLiteral) ([]diagnostics.Diagnostic, Type) {
	if lit.Value != math.Trunc(lit.Value) || math.IsInf(lit.Value, 0) {
		raw := lit.Raw
		if raw == "" {
			raw = formatConstant(lit.Value)
		}
		return []diagnostics.Diagnostic{errorAt(lit, diagnostics.CodeLiteralRange, "literal %s is not an integer", raw)}, UnknownType{}
	}
	return nil, UntypedIntegerType{Value: lit.Value, Known: true}
}

func (c *Checker) checkIdentifier(env *Environment, id *ast.Identifier) ([]diagnostics.Diagnostic, Type) {
	typ, ok := env.Lookup(id.Name)
	if !ok {
		return []diagnostics.Diagnostic{errorAt(id, diagnostics.CodeUndefinedName, "undefined name %s", id.Name)}, UnknownType{}
	}
	if _, pending := typ.(UnresolvedType); pending {
		return []diagnostics.Diagnostic{errorAt(id, diagnostics.CodeTypeMismatch, "cannot infer type of %s", id.Name)}, UnknownType{}
	}
	return nil, typ
}

func (c *Checker) checkFunctionCall(env *Environment, call *ast.FunctionCall) ([]diagnostics.Diagnostic, Type) {
	diags, calleeType := c.checkExpression(env, call.Callee)
	argTypes := make([]Type, len(call.Arguments))
	for i, arg := range call.Arguments {
		argDiags, argType := c.checkExpression(env, arg)
		diags = append(diags, argDiags...)
		argTypes[i] = argType
	}
	if isUnknownType(calleeType) {
		return diags, UnknownType{}
	}

	fnType, ok := calleeType.(FunctionType)
	if !ok {
		return append(diags, errorAt(call.Callee, diagnostics.CodeNotCallable, "cannot call value of type %s", typeName(calleeType))), UnknownType{}
	}
	if len(call.Arguments) != len(fnType.Params) {
		diags = append(diags, errorAt(call, diagnostics.CodeArgumentCount, "expected %d arguments, found %d", len(fnType.Params), len(call.Arguments)))
		return diags, fnType.Return
	}
	for i, arg := range call.Arguments {
		diags = append(diags, c.checkAssignable(arg, argTypes[i], fnType.Params[i], diagnostics.CodeTypeMismatch)...)
	}
	return diags, fnType.Return
}

// checkLambda checks the body against the globals and the lambda's own
// parameters only; enclosing locals are not captured.
func (c *Checker) checkLambda(lambda *ast.LambdaExpression) ([]diagnostics.Diagnostic, Type) {
	diags, sig := c.functionSignature(lambda.Params, lambda.ReturnType)
	env := NewEnvironment(c.globals)
	for i, param := range lambda.Params {
		env.Define(param.Name.Name, sig.Params[i])
	}
	c.enterFunction(sig.Return)
	diags = append(diags, c.checkBlock(env, lambda.Body)...)
	c.leaveFunction()
	return diags, sig
}

func formatConstant(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
