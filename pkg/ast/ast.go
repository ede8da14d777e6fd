package ast

type NodeType string

const (
	NodeIdentifier             NodeType = "Identifier"
	NodeNumberLiteral          NodeType = "NumberLiteral"
	NodeStringLiteral          NodeType = "StringLiteral"
	NodeBooleanLiteral         NodeType = "BooleanLiteral"
	NodeUnaryExpression        NodeType = "UnaryExpression"
	NodeBinaryExpression       NodeType = "BinaryExpression"
	NodeAssignmentExpression   NodeType = "AssignmentExpression"
	NodeFunctionCall           NodeType = "FunctionCall"
	NodeLambdaExpression       NodeType = "LambdaExpression"
	NodeSimpleTypeExpression   NodeType = "SimpleTypeExpression"
	NodeTupleTypeExpression    NodeType = "TupleTypeExpression"
	NodeFunctionTypeExpression NodeType = "FunctionTypeExpression"
	NodeBlock                  NodeType = "Block"
	NodeLetStatement           NodeType = "LetStatement"
	NodeExpressionStatement    NodeType = "ExpressionStatement"
	NodeIfStatement            NodeType = "IfStatement"
	NodeWhileLoop              NodeType = "WhileLoop"
	NodeReturnStatement        NodeType = "ReturnStatement"
	NodeFunctionParameter      NodeType = "FunctionParameter"
	NodeFunctionDefinition     NodeType = "FunctionDefinition"
	NodeProgram                NodeType = "Program"
)

type Node interface {
	NodeType() NodeType
	Span() Span
	isNode()
}

// Position is a 1-based line and column.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Span covers source text from Start up to, but not including, End.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

type nodeImpl struct {
	Type NodeType `json:"type"`
	span Span
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Span() Span         { return n.span }
func (nodeImpl) isNode()              {}
func (n *nodeImpl) setSpan(span Span) { n.span = span }

type spanSetter interface {
	setSpan(Span)
}

// SetSpan records the source span of node. Nil nodes are ignored.
func SetSpan(node Node, span Span) {
	if node == nil {
		return
	}
	if s, ok := node.(spanSetter); ok {
		s.setSpan(span)
	}
}

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type TypeExpression interface {
	Node
	typeExpressionNode()
}

type typeExpressionMarker struct{}

func (typeExpressionMarker) typeExpressionNode() {}

// Identifier

type Identifier struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Literals

// NumberLiteral holds every numeric literal as a float64; the checker decides
// which integer type it becomes.
type NumberLiteral struct {
	nodeImpl
	expressionMarker

	Value float64 `json:"value"`
	Raw   string  `json:"raw,omitempty"`
}

func NewNumberLiteral(value float64, raw string) *NumberLiteral {
	return &NumberLiteral{nodeImpl: newNodeImpl(NodeNumberLiteral), Value: value, Raw: raw}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

// Operators

type UnaryOperator string

const (
	UnaryOperatorNegate UnaryOperator = "-"
	UnaryOperatorPlus   UnaryOperator = "+"
	UnaryOperatorNot    UnaryOperator = "!"
)

type UnaryExpression struct {
	nodeImpl
	expressionMarker

	Operator UnaryOperator `json:"operator"`
	Operand  Expression    `json:"operand"`
}

func NewUnaryExpression(operator UnaryOperator, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand}
}

type BinaryOperator string

const (
	BinaryOr           BinaryOperator = "||"
	BinaryAnd          BinaryOperator = "&&"
	BinaryEqual        BinaryOperator = "=="
	BinaryNotEqual     BinaryOperator = "!="
	BinaryLess         BinaryOperator = "<"
	BinaryLessEqual    BinaryOperator = "<="
	BinaryGreater      BinaryOperator = ">"
	BinaryGreaterEqual BinaryOperator = ">="
	BinaryBitOr        BinaryOperator = "|"
	BinaryBitXor       BinaryOperator = "^"
	BinaryBitAnd       BinaryOperator = "&"
	BinaryAdd          BinaryOperator = "+"
	BinarySubtract     BinaryOperator = "-"
	BinaryMultiply     BinaryOperator = "*"
	BinaryDivide       BinaryOperator = "/"
	BinaryModulo       BinaryOperator = "%"
)

type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Operator BinaryOperator `json:"operator"`
	Left     Expression     `json:"left"`
	Right    Expression     `json:"right"`
}

func NewBinaryExpression(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

// AssignmentExpression is `target = value`; it associates to the right.
type AssignmentExpression struct {
	nodeImpl
	expressionMarker

	Target *Identifier `json:"target"`
	Value  Expression  `json:"value"`
}

func NewAssignmentExpression(target *Identifier, value Expression) *AssignmentExpression {
	return &AssignmentExpression{nodeImpl: newNodeImpl(NodeAssignmentExpression), Target: target, Value: value}
}

type FunctionCall struct {
	nodeImpl
	expressionMarker

	Callee    Expression   `json:"callee"`
	Arguments []Expression `json:"arguments"`
}

func NewFunctionCall(callee Expression, args []Expression) *FunctionCall {
	return &FunctionCall{nodeImpl: newNodeImpl(NodeFunctionCall), Callee: callee, Arguments: args}
}

type LambdaExpression struct {
	nodeImpl
	expressionMarker

	Params     []*FunctionParameter `json:"params"`
	ReturnType TypeExpression       `json:"returnType"`
	Body       *Block               `json:"body"`
}

func NewLambdaExpression(params []*FunctionParameter, returnType TypeExpression, body *Block) *LambdaExpression {
	if returnType == nil {
		returnType = NewTupleTypeExpression(nil)
	}
	return &LambdaExpression{nodeImpl: newNodeImpl(NodeLambdaExpression), Params: params, ReturnType: returnType, Body: body}
}

// Type expressions

type SimpleTypeExpression struct {
	nodeImpl
	typeExpressionMarker

	Name *Identifier `json:"name"`
}

func NewSimpleTypeExpression(name *Identifier) *SimpleTypeExpression {
	return &SimpleTypeExpression{nodeImpl: newNodeImpl(NodeSimpleTypeExpression), Name: name}
}

// TupleTypeExpression with no members is the unit type `()`.
type TupleTypeExpression struct {
	nodeImpl
	typeExpressionMarker

	Members []TypeExpression `json:"members"`
}

func NewTupleTypeExpression(members []TypeExpression) *TupleTypeExpression {
	return &TupleTypeExpression{nodeImpl: newNodeImpl(NodeTupleTypeExpression), Members: members}
}

type FunctionTypeExpression struct {
	nodeImpl
	typeExpressionMarker

	ParamTypes []TypeExpression `json:"paramTypes"`
	ReturnType TypeExpression   `json:"returnType"`
}

func NewFunctionTypeExpression(paramTypes []TypeExpression, returnType TypeExpression) *FunctionTypeExpression {
	if returnType == nil {
		returnType = NewTupleTypeExpression(nil)
	}
	return &FunctionTypeExpression{nodeImpl: newNodeImpl(NodeFunctionTypeExpression), ParamTypes: paramTypes, ReturnType: returnType}
}
