package parser

import (
	"onec/compiler-go/pkg/ast"
	"onec/compiler-go/pkg/diagnostics"
	"onec/compiler-go/pkg/lexer"
)

// parseItem parses one top-level function. Anything else is reported once
// and skipped up to the next `fn`.
func (p *parser) parseItem() *ast.FunctionDefinition {
	if !p.check(lexer.KindFn) {
		p.report(diagnostics.CodeInvalidItem, p.peek(), "expected function declaration, found %s", describe(p.peek()))
		for !p.isAtEnd() && !p.check(lexer.KindFn) {
			p.advance()
		}
		return nil
	}
	return p.parseFunction()
}

func (p *parser) parseFunction() *ast.FunctionDefinition {
	start := p.advance() // fn
	nameTok := p.expect(lexer.KindIdentifier, "as function name")
	name := p.identifier(nameTok)

	params := p.parseParameterList()
	returnType := p.parseReturnType()
	body := p.parseBlock("to start function body")

	fn := ast.NewFunctionDefinition(name, params, returnType, body)
	p.spanFrom(fn, start)
	return fn
}

// parseParameterList parses `( name: T, ... )`; a trailing comma is allowed.
func (p *parser) parseParameterList() []*ast.FunctionParameter {
	p.expect(lexer.KindLParen, "before parameters")
	var params []*ast.FunctionParameter
	for !p.check(lexer.KindRParen) && !p.isAtEnd() {
		nameTok := p.expect(lexer.KindIdentifier, "as parameter name")
		p.expect(lexer.KindColon, "after parameter name")
		paramType := p.parseType()
		param := ast.NewFunctionParameter(p.identifier(nameTok), paramType)
		p.spanFrom(param, nameTok)
		params = append(params, param)
		if !p.match(lexer.KindComma) {
			break
		}
	}
	p.expect(lexer.KindRParen, "after parameters")
	return params
}

// parseReturnType parses an optional `-> T`, defaulting to unit.
func (p *parser) parseReturnType() ast.TypeExpression {
	if p.match(lexer.KindArrow) {
		return p.parseType()
	}
	return ast.NewTupleTypeExpression(nil)
}

func (p *parser) identifier(tok lexer.Token) *ast.Identifier {
	id := ast.NewIdentifier(tok.Lexeme)
	ast.SetSpan(id, tokenSpan(tok))
	return id
}
