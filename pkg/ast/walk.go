package ast

// Inspect traverses the tree rooted at node in source order, calling fn for
// each node. Children are skipped when fn returns false.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	switch n := node.(type) {
	case *Program:
		for _, f := range n.Functions {
			Inspect(f, fn)
		}
	case *FunctionDefinition:
		Inspect(n.ID, fn)
		for _, p := range n.Params {
			Inspect(p, fn)
		}
		inspectType(n.ReturnType, fn)
		if n.Body != nil {
			Inspect(n.Body, fn)
		}
	case *FunctionParameter:
		Inspect(n.Name, fn)
		inspectType(n.ParamType, fn)
	case *Block:
		for _, stmt := range n.Body {
			Inspect(stmt, fn)
		}
	case *LetStatement:
		Inspect(n.Name, fn)
		inspectType(n.DeclaredType, fn)
		if n.Initializer != nil {
			Inspect(n.Initializer, fn)
		}
	case *ExpressionStatement:
		Inspect(n.Expression, fn)
	case *IfStatement:
		Inspect(n.Condition, fn)
		if n.Then != nil {
			Inspect(n.Then, fn)
		}
		if n.Else != nil {
			Inspect(n.Else, fn)
		}
	case *WhileLoop:
		Inspect(n.Condition, fn)
		if n.Body != nil {
			Inspect(n.Body, fn)
		}
	case *ReturnStatement:
		if n.Argument != nil {
			Inspect(n.Argument, fn)
		}
	case *UnaryExpression:
		Inspect(n.Operand, fn)
	case *BinaryExpression:
		Inspect(n.Left, fn)
		Inspect(n.Right, fn)
	case *AssignmentExpression:
		Inspect(n.Target, fn)
		Inspect(n.Value, fn)
	case *FunctionCall:
		Inspect(n.Callee, fn)
		for _, arg := range n.Arguments {
			Inspect(arg, fn)
		}
	case *LambdaExpression:
		for _, p := range n.Params {
			Inspect(p, fn)
		}
		inspectType(n.ReturnType, fn)
		if n.Body != nil {
			Inspect(n.Body, fn)
		}
	case *TupleTypeExpression:
		for _, m := range n.Members {
			inspectType(m, fn)
		}
	case *FunctionTypeExpression:
		for _, p := range n.ParamTypes {
			inspectType(p, fn)
		}
		inspectType(n.ReturnType, fn)
	case *SimpleTypeExpression:
		Inspect(n.Name, fn)
	}
}

func inspectType(typ TypeExpression, fn func(Node) bool) {
	if typ != nil {
		Inspect(typ, fn)
	}
}

// CountNodes returns the number of nodes reachable from node.
func CountNodes(node Node) int {
	count := 0
	Inspect(node, func(Node) bool {
		count++
		return true
	})
	return count
}
