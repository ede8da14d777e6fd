package ast

import "testing"

func TestSetSpanRecordsPosition(t *testing.T) {
	id := NewIdentifier("x")
	want := Span{Start: Position{Line: 2, Column: 5}, End: Position{Line: 2, Column: 6}}
	SetSpan(id, want)
	if got := id.Span(); got != want {
		t.Fatalf("span mismatch: got %+v, want %+v", got, want)
	}
	SetSpan(nil, want)
}

func TestConstructorsDefaultReturnTypeToUnit(t *testing.T) {
	fn := NewFunctionDefinition(ID("main"), nil, nil, Blk())
	unit, ok := fn.ReturnType.(*TupleTypeExpression)
	if !ok || len(unit.Members) != 0 {
		t.Fatalf("expected unit return type, got %#v", fn.ReturnType)
	}

	lam := NewLambdaExpression(nil, nil, Blk())
	if unit, ok := lam.ReturnType.(*TupleTypeExpression); !ok || len(unit.Members) != 0 {
		t.Fatalf("expected unit lambda return type, got %#v", lam.ReturnType)
	}

	fnTy := NewFunctionTypeExpression([]TypeExpression{Ty("i32")}, nil)
	if unit, ok := fnTy.ReturnType.(*TupleTypeExpression); !ok || len(unit.Members) != 0 {
		t.Fatalf("expected unit function type return, got %#v", fnTy.ReturnType)
	}
}

func TestNodeTypes(t *testing.T) {
	cases := []struct {
		node Node
		want NodeType
	}{
		{ID("a"), NodeIdentifier},
		{Num(1), NodeNumberLiteral},
		{Str("s"), NodeStringLiteral},
		{Bool(true), NodeBooleanLiteral},
		{Un(UnaryOperatorNot, ID("a")), NodeUnaryExpression},
		{Bin(BinaryAdd, ID("a"), ID("b")), NodeBinaryExpression},
		{Assign("a", ID("b")), NodeAssignmentExpression},
		{Call("f"), NodeFunctionCall},
		{Lam(nil, nil), NodeLambdaExpression},
		{Ty("i32"), NodeSimpleTypeExpression},
		{Unit(), NodeTupleTypeExpression},
		{FnTy(nil, nil), NodeFunctionTypeExpression},
		{Blk(), NodeBlock},
		{Let("a", nil, nil), NodeLetStatement},
		{Expr(ID("a")), NodeExpressionStatement},
		{If(Bool(true), Blk(), nil), NodeIfStatement},
		{While(Bool(true), Blk()), NodeWhileLoop},
		{Ret(nil), NodeReturnStatement},
		{Param("a", Ty("i32")), NodeFunctionParameter},
		{Fn("main", nil, nil), NodeFunctionDefinition},
		{Prog(), NodeProgram},
	}
	for _, tc := range cases {
		if got := tc.node.NodeType(); got != tc.want {
			t.Fatalf("NodeType() = %s, want %s", got, tc.want)
		}
	}
}

func TestLetMutSetsFlag(t *testing.T) {
	if Let("a", nil, nil).Mutable {
		t.Fatalf("Let should not be mutable")
	}
	if !LetMut("a", nil, nil).Mutable {
		t.Fatalf("LetMut should be mutable")
	}
}

func TestInspectVisitsInSourceOrder(t *testing.T) {
	program := Prog(Fn("main", nil, nil,
		Expr(Bin(BinaryAdd, ID("a"), Num(1))),
	))
	var order []NodeType
	Inspect(program, func(n Node) bool {
		order = append(order, n.NodeType())
		return true
	})
	want := []NodeType{
		NodeProgram, NodeFunctionDefinition, NodeIdentifier, NodeTupleTypeExpression,
		NodeBlock, NodeExpressionStatement, NodeBinaryExpression, NodeIdentifier, NodeNumberLiteral,
	}
	if len(order) != len(want) {
		t.Fatalf("visited %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("visit %d = %s, want %s", i, order[i], want[i])
		}
	}
	if got := CountNodes(program); got != len(want) {
		t.Fatalf("CountNodes = %d, want %d", got, len(want))
	}
}

func TestInspectSkipsChildren(t *testing.T) {
	program := Prog(Fn("a", nil, nil), Fn("b", nil, nil))
	visited := 0
	Inspect(program, func(n Node) bool {
		visited++
		_, isFn := n.(*FunctionDefinition)
		return !isFn
	})
	if visited != 3 {
		t.Fatalf("visited %d nodes, want 3", visited)
	}
}
