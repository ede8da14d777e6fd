package parser

import (
	"errors"
	"strconv"

	"onec/compiler-go/pkg/ast"
	"onec/compiler-go/pkg/diagnostics"
	"onec/compiler-go/pkg/lexer"
)

// binaryTiers lists the left-associative binary operators from loosest to
// tightest binding. Assignment sits below the first tier and unary operators
// above the last.
var binaryTiers = [][]lexer.Kind{
	{lexer.KindOr},
	{lexer.KindAnd},
	{lexer.KindEqual, lexer.KindNotEqual},
	{lexer.KindLess, lexer.KindLessEqual, lexer.KindGreater, lexer.KindGreaterEqual},
	{lexer.KindPipe},
	{lexer.KindCaret},
	{lexer.KindAmp},
	{lexer.KindPlus, lexer.KindMinus},
	{lexer.KindStar, lexer.KindSlash, lexer.KindPercent},
}

var binaryOperators = map[lexer.Kind]ast.BinaryOperator{
	lexer.KindOr:           ast.BinaryOr,
	lexer.KindAnd:          ast.BinaryAnd,
	lexer.KindEqual:        ast.BinaryEqual,
	lexer.KindNotEqual:     ast.BinaryNotEqual,
	lexer.KindLess:         ast.BinaryLess,
	lexer.KindLessEqual:    ast.BinaryLessEqual,
	lexer.KindGreater:      ast.BinaryGreater,
	lexer.KindGreaterEqual: ast.BinaryGreaterEqual,
	lexer.KindPipe:         ast.BinaryBitOr,
	lexer.KindCaret:        ast.BinaryBitXor,
	lexer.KindAmp:          ast.BinaryBitAnd,
	lexer.KindPlus:         ast.BinaryAdd,
	lexer.KindMinus:        ast.BinarySubtract,
	lexer.KindStar:         ast.BinaryMultiply,
	lexer.KindSlash:        ast.BinaryDivide,
	lexer.KindPercent:      ast.BinaryModulo,
}

var unaryOperators = map[lexer.Kind]ast.UnaryOperator{
	lexer.KindMinus: ast.UnaryOperatorNegate,
	lexer.KindPlus:  ast.UnaryOperatorPlus,
	lexer.KindBang:  ast.UnaryOperatorNot,
}

func (p *parser) parseExpression() ast.Expression {
	return p.parseAssignment()
}

// parseAssignment handles `=`, which is right-associative and only accepts
// an identifier on its left.
func (p *parser) parseAssignment() ast.Expression {
	left := p.parseBinary(0)
	if !p.check(lexer.KindAssign) {
		return left
	}
	eq := p.advance()
	target, ok := left.(*ast.Identifier)
	if !ok {
		p.fail(diagnostics.CodeInvalidAssignment, eq, "can only assign to identifiers")
	}
	value := p.parseAssignment()
	expr := ast.NewAssignmentExpression(target, value)
	spanBetween(expr, target, value)
	return expr
}

func (p *parser) parseBinary(tier int) ast.Expression {
	if tier == len(binaryTiers) {
		return p.parseUnary()
	}
	left := p.parseBinary(tier + 1)
	for p.match(binaryTiers[tier]...) {
		op := binaryOperators[p.previous().Kind]
		right := p.parseBinary(tier + 1)
		expr := ast.NewBinaryExpression(op, left, right)
		spanBetween(expr, left, right)
		left = expr
	}
	return left
}

func (p *parser) parseUnary() ast.Expression {
	if op, ok := unaryOperators[p.peek().Kind]; ok {
		start := p.advance()
		operand := p.parseUnary()
		expr := ast.NewUnaryExpression(op, operand)
		p.spanFrom(expr, start)
		return expr
	}
	return p.parseCall()
}

// parseCall parses postfix calls, so `a(b)(c)` nests left to right.
func (p *parser) parseCall() ast.Expression {
	expr := p.parsePrimary()
	for p.check(lexer.KindLParen) {
		p.advance()
		var args []ast.Expression
		for !p.check(lexer.KindRParen) && !p.isAtEnd() {
			args = append(args, p.parseExpression())
			if !p.match(lexer.KindComma) {
				break
			}
		}
		p.expect(lexer.KindRParen, "after call arguments")
		call := ast.NewFunctionCall(expr, args)
		ast.SetSpan(call, ast.Span{Start: expr.Span().Start, End: tokenEnd(p.previous())})
		expr = call
	}
	return expr
}

func (p *parser) parsePrimary() ast.Expression {
	tok := p.peek()
	switch tok.Kind {
	case lexer.KindIdentifier:
		p.advance()
		return p.identifier(tok)
	case lexer.KindNumber:
		p.advance()
		value, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			p.fail(diagnostics.CodeExpectedExpression, tok, "invalid number literal %s", tok.Lexeme)
		}
		lit := ast.NewNumberLiteral(value, tok.Lexeme)
		ast.SetSpan(lit, tokenSpan(tok))
		return lit
	case lexer.KindString:
		p.advance()
		return p.stringLiteral(tok)
	case lexer.KindTrue, lexer.KindFalse:
		p.advance()
		lit := ast.NewBooleanLiteral(tok.Kind == lexer.KindTrue)
		ast.SetSpan(lit, tokenSpan(tok))
		return lit
	case lexer.KindLParen:
		p.advance()
		inner := p.parseExpression()
		p.expect(lexer.KindRParen, "to close parenthesized expression")
		return inner
	case lexer.KindFn:
		return p.parseLambda()
	}
	p.fail(diagnostics.CodeExpectedExpression, p.offending(), "expected expression, found %s", describe(tok))
	return nil
}

func (p *parser) stringLiteral(tok lexer.Token) ast.Expression {
	value, err := lexer.Unescape(tok.Lexeme)
	if err != nil {
		var escErr *lexer.EscapeError
		at := tokenSpan(tok)
		if errors.As(err, &escErr) {
			at.Start.Column += escErr.Offset
			at.End.Column = at.Start.Column + len([]rune(escErr.Sequence))
		}
		d := diagnostics.NewError(err.Error()).WithCode(diagnostics.CodeInvalidEscape).WithSpan(at)
		p.diagnostics = append(p.diagnostics, *d)
		panic(bailout{})
	}
	lit := ast.NewStringLiteral(value)
	ast.SetSpan(lit, tokenSpan(tok))
	return lit
}

// parseLambda parses `fn(params) [-> R] { body }` in expression position.
func (p *parser) parseLambda() ast.Expression {
	start := p.advance() // fn
	params := p.parseParameterList()
	returnType := p.parseReturnType()
	body := p.parseBlock("to start lambda body")
	lambda := ast.NewLambdaExpression(params, returnType, body)
	p.spanFrom(lambda, start)
	return lambda
}
