package ast

// Identifier and literal helpers.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Num(value float64) *NumberLiteral {
	return NewNumberLiteral(value, "")
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

// Type expression helpers.

func Ty(name string) *SimpleTypeExpression {
	return NewSimpleTypeExpression(ID(name))
}

func Unit() *TupleTypeExpression {
	return NewTupleTypeExpression(nil)
}

func TupleTy(members ...TypeExpression) *TupleTypeExpression {
	return NewTupleTypeExpression(members)
}

func FnTy(params []TypeExpression, ret TypeExpression) *FunctionTypeExpression {
	return NewFunctionTypeExpression(params, ret)
}

// Expression helpers.

func Un(op UnaryOperator, operand Expression) *UnaryExpression {
	return NewUnaryExpression(op, operand)
}

func Bin(op BinaryOperator, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(op, left, right)
}

func Assign(target string, value Expression) *AssignmentExpression {
	return NewAssignmentExpression(ID(target), value)
}

func CallExpr(callee Expression, args ...Expression) *FunctionCall {
	return NewFunctionCall(callee, args)
}

func Call(name string, args ...Expression) *FunctionCall {
	return NewFunctionCall(ID(name), args)
}

func Lam(params []*FunctionParameter, ret TypeExpression, body ...Statement) *LambdaExpression {
	return NewLambdaExpression(params, ret, NewBlock(body))
}

// Statement helpers.

func Blk(body ...Statement) *Block {
	return NewBlock(body)
}

func Let(name string, declared TypeExpression, init Expression) *LetStatement {
	return NewLetStatement(ID(name), false, declared, init)
}

func LetMut(name string, declared TypeExpression, init Expression) *LetStatement {
	return NewLetStatement(ID(name), true, declared, init)
}

func Expr(expr Expression) *ExpressionStatement {
	return NewExpressionStatement(expr)
}

func If(cond Expression, then *Block, elseBranch Statement) *IfStatement {
	return NewIfStatement(cond, then, elseBranch)
}

func While(cond Expression, body *Block) *WhileLoop {
	return NewWhileLoop(cond, body)
}

func Ret(argument Expression) *ReturnStatement {
	return NewReturnStatement(argument)
}

// Definition helpers.

func Param(name string, typ TypeExpression) *FunctionParameter {
	return NewFunctionParameter(ID(name), typ)
}

func Fn(name string, params []*FunctionParameter, ret TypeExpression, body ...Statement) *FunctionDefinition {
	return NewFunctionDefinition(ID(name), params, ret, NewBlock(body))
}

func Prog(functions ...*FunctionDefinition) *Program {
	return NewProgram(functions)
}
