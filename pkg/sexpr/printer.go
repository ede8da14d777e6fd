// Package sexpr renders syntax trees in a canonical parenthesized form.
package sexpr

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"onec/compiler-go/pkg/ast"
)

// Program renders every function on its own newline-terminated line. An empty
// program renders as the empty string.
func Program(program *ast.Program) string {
	if program == nil {
		return ""
	}
	var pr printer
	for _, fn := range program.Functions {
		pr.function(fn)
		pr.WriteByte('\n')
	}
	return pr.String()
}

// Write renders program to w.
func Write(w io.Writer, program *ast.Program) error {
	_, err := io.WriteString(w, Program(program))
	return err
}

func Function(fn *ast.FunctionDefinition) string {
	var pr printer
	pr.function(fn)
	return pr.String()
}

// Statements renders stmts separated by single spaces.
func Statements(stmts []ast.Statement) string {
	var pr printer
	pr.statements(stmts)
	return pr.String()
}

func Statement(stmt ast.Statement) string {
	var pr printer
	pr.statement(stmt)
	return pr.String()
}

func Expression(expr ast.Expression) string {
	var pr printer
	pr.expression(expr)
	return pr.String()
}

// Type renders a type expression without the leading ':'.
func Type(typ ast.TypeExpression) string {
	var pr printer
	pr.typeExpr(typ)
	return pr.String()
}

// FormatNumber renders a literal value as a 6-digit mantissa scientific number.
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'e', 6, 64)
}

type printer struct {
	strings.Builder
}

func (pr *printer) function(fn *ast.FunctionDefinition) {
	pr.WriteString("(fn ")
	pr.WriteString(fn.ID.Name)
	pr.WriteByte(' ')
	pr.signature(fn.Params, fn.ReturnType, fn.Body)
	pr.WriteByte(')')
}

// signature writes `(p :T ...) :R body...` shared by functions and lambdas.
func (pr *printer) signature(params []*ast.FunctionParameter, ret ast.TypeExpression, body *ast.Block) {
	pr.WriteByte('(')
	for i, param := range params {
		if i > 0 {
			pr.WriteByte(' ')
		}
		pr.WriteString(param.Name.Name)
		pr.WriteString(" :")
		pr.typeExpr(param.ParamType)
	}
	pr.WriteString(") :")
	pr.typeExpr(ret)
	if body != nil && len(body.Body) > 0 {
		pr.WriteByte(' ')
		pr.statements(body.Body)
	}
}

func (pr *printer) statements(stmts []ast.Statement) {
	for i, stmt := range stmts {
		if i > 0 {
			pr.WriteByte(' ')
		}
		pr.statement(stmt)
	}
}

func (pr *printer) statement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		pr.expression(s.Expression)
	case *ast.LetStatement:
		if s.Mutable {
			pr.WriteString("(let-mut ")
		} else {
			pr.WriteString("(let ")
		}
		pr.WriteString(s.Name.Name)
		pr.WriteByte(' ')
		if s.DeclaredType != nil {
			pr.WriteByte(':')
			pr.typeExpr(s.DeclaredType)
			pr.WriteByte(' ')
		}
		if s.Initializer == nil {
			pr.WriteString("NULL")
		} else {
			pr.expression(s.Initializer)
		}
		pr.WriteByte(')')
	case *ast.Block:
		pr.WriteString("(block")
		for _, inner := range s.Body {
			pr.WriteByte(' ')
			pr.statement(inner)
		}
		pr.WriteByte(')')
	case *ast.IfStatement:
		pr.WriteString("(if ")
		pr.expression(s.Condition)
		pr.WriteByte(' ')
		pr.statement(s.Then)
		if s.Else != nil {
			pr.WriteByte(' ')
			pr.statement(s.Else)
		}
		pr.WriteByte(')')
	case *ast.WhileLoop:
		pr.WriteString("(while ")
		pr.expression(s.Condition)
		pr.WriteByte(' ')
		pr.statement(s.Body)
		pr.WriteByte(')')
	case *ast.ReturnStatement:
		pr.WriteString("(return")
		if s.Argument != nil {
			pr.WriteByte(' ')
			pr.expression(s.Argument)
		}
		pr.WriteByte(')')
	default:
		panic(fmt.Sprintf("sexpr: unsupported statement %T", stmt))
	}
}

func (pr *printer) expression(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Identifier:
		pr.WriteString(e.Name)
	case *ast.NumberLiteral:
		pr.WriteString(FormatNumber(e.Value))
	case *ast.StringLiteral:
		pr.WriteString("(str '")
		pr.WriteString(e.Value)
		pr.WriteString("')")
	case *ast.BooleanLiteral:
		pr.WriteString(strconv.FormatBool(e.Value))
	case *ast.UnaryExpression:
		pr.WriteByte('(')
		pr.WriteString(string(e.Operator))
		pr.WriteByte(' ')
		pr.expression(e.Operand)
		pr.WriteByte(')')
	case *ast.BinaryExpression:
		pr.WriteByte('(')
		pr.WriteString(string(e.Operator))
		pr.WriteByte(' ')
		pr.expression(e.Left)
		pr.WriteByte(' ')
		pr.expression(e.Right)
		pr.WriteByte(')')
	case *ast.AssignmentExpression:
		pr.WriteString("(= ")
		pr.WriteString(e.Target.Name)
		pr.WriteByte(' ')
		pr.expression(e.Value)
		pr.WriteByte(')')
	case *ast.FunctionCall:
		pr.WriteString("(call ")
		pr.expression(e.Callee)
		for _, arg := range e.Arguments {
			pr.WriteByte(' ')
			pr.expression(arg)
		}
		pr.WriteByte(')')
	case *ast.LambdaExpression:
		pr.WriteString("(fn ")
		pr.signature(e.Params, e.ReturnType, e.Body)
		pr.WriteByte(')')
	default:
		panic(fmt.Sprintf("sexpr: unsupported expression %T", expr))
	}
}

func (pr *printer) typeExpr(typ ast.TypeExpression) {
	switch t := typ.(type) {
	case *ast.SimpleTypeExpression:
		pr.WriteString(t.Name.Name)
	case *ast.TupleTypeExpression:
		pr.WriteByte('(')
		for i, member := range t.Members {
			if i > 0 {
				pr.WriteString(", ")
			}
			pr.typeExpr(member)
		}
		pr.WriteByte(')')
	case *ast.FunctionTypeExpression:
		pr.WriteString("(fn(")
		for i, param := range t.ParamTypes {
			if i > 0 {
				pr.WriteByte(' ')
			}
			pr.typeExpr(param)
		}
		pr.WriteString(") ")
		pr.typeExpr(t.ReturnType)
		pr.WriteByte(')')
	case nil:
		pr.WriteString("()")
	default:
		panic(fmt.Sprintf("sexpr: unsupported type expression %T", typ))
	}
}
