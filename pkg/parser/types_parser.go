package parser

import (
	"onec/compiler-go/pkg/ast"
	"onec/compiler-go/pkg/diagnostics"
	"onec/compiler-go/pkg/lexer"
)

// parseType parses a type annotation:
//
//	name | ( T, ... ) | fn( T, ... ) [-> R]
//
// `(T)` is a one-element tuple, not a parenthesized T.
func (p *parser) parseType() ast.TypeExpression {
	start := p.peek()
	switch start.Kind {
	case lexer.KindIdentifier:
		p.advance()
		typ := ast.NewSimpleTypeExpression(p.identifier(start))
		p.spanFrom(typ, start)
		return typ
	case lexer.KindLParen:
		p.advance()
		members := p.parseTypeList("after tuple members")
		typ := ast.NewTupleTypeExpression(members)
		p.spanFrom(typ, start)
		return typ
	case lexer.KindFn:
		p.advance()
		p.expect(lexer.KindLParen, "after 'fn' in function type")
		params := p.parseTypeList("after function type parameters")
		returnType := p.parseReturnType()
		typ := ast.NewFunctionTypeExpression(params, returnType)
		p.spanFrom(typ, start)
		return typ
	}
	p.fail(diagnostics.CodeExpectedType, p.offending(), "expected a type, found %s", describe(start))
	return nil
}

// parseTypeList parses comma separated types up to and including `)`.
func (p *parser) parseTypeList(context string) []ast.TypeExpression {
	var types []ast.TypeExpression
	for !p.check(lexer.KindRParen) && !p.isAtEnd() {
		types = append(types, p.parseType())
		if !p.match(lexer.KindComma) {
			break
		}
	}
	p.expect(lexer.KindRParen, context)
	return types
}
