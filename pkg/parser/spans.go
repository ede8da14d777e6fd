package parser

import (
	"onec/compiler-go/pkg/ast"
	"onec/compiler-go/pkg/lexer"
)

func tokenStart(tok lexer.Token) ast.Position {
	return ast.Position{Line: tok.Line, Column: tok.Column}
}

func tokenEnd(tok lexer.Token) ast.Position {
	return ast.Position{Line: tok.Line, Column: tok.EndColumn()}
}

func tokenSpan(tok lexer.Token) ast.Span {
	return ast.Span{Start: tokenStart(tok), End: tokenEnd(tok)}
}

// spanFrom marks node as covering start through the last consumed token.
func (p *parser) spanFrom(node ast.Node, start lexer.Token) {
	ast.SetSpan(node, ast.Span{Start: tokenStart(start), End: tokenEnd(p.previous())})
}

// spanBetween covers the union of two already annotated nodes.
func spanBetween(node, first, last ast.Node) {
	ast.SetSpan(node, ast.Span{Start: first.Span().Start, End: last.Span().End})
}
