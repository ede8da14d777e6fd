package typechecker

import (
	"math"

	"onec/compiler-go/pkg/ast"
	"onec/compiler-go/pkg/diagnostics"
)

func (c *Checker) checkUnaryExpression(env *Environment, expr *ast.UnaryExpression) ([]diagnostics.Diagnostic, Type) {
	diags, operandType := c.checkExpression(env, expr.Operand)
	if isUnknownType(operandType) {
		if expr.Operator == ast.UnaryOperatorNot {
			return diags, boolType
		}
		return diags, UnknownType{}
	}

	switch expr.Operator {
	case ast.UnaryOperatorNegate, ast.UnaryOperatorPlus:
		if untyped, ok := operandType.(UntypedIntegerType); ok {
			if expr.Operator == ast.UnaryOperatorNegate {
				untyped.Value = -untyped.Value
			}
			return diags, untyped
		}
		if _, ok := operandType.(IntegerType); ok {
			return diags, operandType
		}
		return append(diags, errorAt(expr, diagnostics.CodeInvalidOperands, "unary '%s' requires an integer operand, found %s", expr.Operator, typeName(operandType))), UnknownType{}
	case ast.UnaryOperatorNot:
		if !isBoolType(operandType) {
			diags = append(diags, errorAt(expr, diagnostics.CodeInvalidOperands, "unary '!' requires a boolean operand, found %s", typeName(operandType)))
		}
		return diags, boolType
	}
	return append(diags, errorAt(expr, diagnostics.CodeInvalidOperands, "unsupported unary operator %q", expr.Operator)), UnknownType{}
}

func (c *Checker) checkBinaryExpression(env *Environment, expr *ast.BinaryExpression) ([]diagnostics.Diagnostic, Type) {
	leftDiags, leftType := c.checkExpression(env, expr.Left)
	rightDiags, rightType := c.checkExpression(env, expr.Right)
	diags := append(leftDiags, rightDiags...)

	producesBool := false
	switch expr.Operator {
	case ast.BinaryOr, ast.BinaryAnd,
		ast.BinaryEqual, ast.BinaryNotEqual,
		ast.BinaryLess, ast.BinaryLessEqual, ast.BinaryGreater, ast.BinaryGreaterEqual:
		producesBool = true
	}
	if containsUnknown(leftType) || containsUnknown(rightType) {
		if producesBool {
			return diags, boolType
		}
		return diags, UnknownType{}
	}

	invalid := func() ([]diagnostics.Diagnostic, Type) {
		d := errorAt(expr, diagnostics.CodeInvalidOperands, "invalid operands for '%s': %s and %s", expr.Operator, typeName(leftType), typeName(rightType))
		if producesBool {
			return append(diags, d), boolType
		}
		return append(diags, d), UnknownType{}
	}

	switch expr.Operator {
	case ast.BinaryOr, ast.BinaryAnd:
		if !isBoolType(leftType) || !isBoolType(rightType) {
			return invalid()
		}
		return diags, boolType

	case ast.BinaryEqual, ast.BinaryNotEqual:
		unifyDiags, operand, ok := c.unifyOperands(expr, leftType, rightType)
		if !ok || !(isIntegerType(operand) || isStringType(operand) || isBoolType(operand)) {
			return invalid()
		}
		return append(diags, unifyDiags...), boolType

	case ast.BinaryLess, ast.BinaryLessEqual, ast.BinaryGreater, ast.BinaryGreaterEqual:
		unifyDiags, operand, ok := c.unifyOperands(expr, leftType, rightType)
		if !ok || !(isIntegerType(operand) || isStringType(operand)) {
			return invalid()
		}
		return append(diags, unifyDiags...), boolType
	}

	if expr.Operator == ast.BinaryAdd && isStringType(leftType) && isStringType(rightType) {
		return diags, stringType
	}
	unifyDiags, operand, ok := c.unifyOperands(expr, leftType, rightType)
	if !ok || !isIntegerType(operand) {
		return invalid()
	}
	diags = append(diags, unifyDiags...)
	if _, untyped := operand.(UntypedIntegerType); untyped {
		return diags, foldConstant(expr.Operator, leftType.(UntypedIntegerType), rightType.(UntypedIntegerType))
	}
	return diags, operand
}

// unifyOperands finds the common operand type. An integer constant takes the
// type of a sized integer on the other side.
func (c *Checker) unifyOperands(expr *ast.BinaryExpression, left, right Type) ([]diagnostics.Diagnostic, Type, bool) {
	leftUntyped, rightUntyped := isUntypedInteger(left), isUntypedInteger(right)
	switch {
	case leftUntyped && rightUntyped:
		return nil, UntypedIntegerType{}, true
	case leftUntyped:
		if _, ok := right.(IntegerType); ok {
			return c.checkAssignable(expr.Left, left, right, diagnostics.CodeInvalidOperands), right, true
		}
		return nil, nil, false
	case rightUntyped:
		if _, ok := left.(IntegerType); ok {
			return c.checkAssignable(expr.Right, right, left, diagnostics.CodeInvalidOperands), left, true
		}
		return nil, nil, false
	case sameType(left, right):
		return nil, left, true
	}
	return nil, nil, false
}

// maxExactConstant bounds constants that float64 holds exactly.
const maxExactConstant = 1 << 53

// foldConstant evaluates arithmetic on two integer constants so the result
// can still be range checked against its eventual type.
func foldConstant(op ast.BinaryOperator, left, right UntypedIntegerType) UntypedIntegerType {
	if !left.Known || !right.Known || math.Abs(left.Value) > maxExactConstant || math.Abs(right.Value) > maxExactConstant {
		return UntypedIntegerType{}
	}
	a, b := int64(left.Value), int64(right.Value)
	var v int64
	switch op {
	case ast.BinaryAdd:
		v = a + b
	case ast.BinarySubtract:
		v = a - b
	case ast.BinaryMultiply:
		v = a * b
	case ast.BinaryDivide, ast.BinaryModulo:
		if b == 0 {
			return UntypedIntegerType{}
		}
		if op == ast.BinaryDivide {
			v = a / b
		} else {
			v = a % b
		}
	case ast.BinaryBitOr:
		v = a | b
	case ast.BinaryBitXor:
		v = a ^ b
	case ast.BinaryBitAnd:
		v = a & b
	default:
		return UntypedIntegerType{}
	}
	return UntypedIntegerType{Value: float64(v), Known: true}
}

// checkAssignment requires the target to be bound already. A variable
// declared without type or initializer takes its type from the first
// assignment.
func (c *Checker) checkAssignment(env *Environment, expr *ast.AssignmentExpression) ([]diagnostics.Diagnostic, Type) {
	diags, valueType := c.checkExpression(env, expr.Value)
	name := expr.Target.Name
	targetType, ok := env.Lookup(name)
	if !ok {
		return append(diags, errorAt(expr.Target, diagnostics.CodeUndefinedName, "undefined name %s", name)), UnknownType{}
	}
	if _, pending := targetType.(UnresolvedType); pending {
		if containsUnknown(valueType) {
			return diags, UnknownType{}
		}
		targetType = defaultType(valueType)
		env.Assign(name, targetType)
	}
	c.infer.set(expr.Target, targetType)
	return append(diags, c.checkAssignable(expr.Value, valueType, targetType, diagnostics.CodeTypeMismatch)...), targetType
}
