package parser

import (
	"onec/compiler-go/pkg/ast"
	"onec/compiler-go/pkg/lexer"
)

// parseBlock parses `{ stmt* }`. context names what the block belongs to.
func (p *parser) parseBlock(context string) *ast.Block {
	start := p.expect(lexer.KindLBrace, context)
	var body []ast.Statement
	for !p.check(lexer.KindRBrace) && !p.isAtEnd() {
		body = append(body, p.parseStatement())
	}
	p.expect(lexer.KindRBrace, "to close block")
	block := ast.NewBlock(body)
	p.spanFrom(block, start)
	return block
}

func (p *parser) parseStatement() ast.Statement {
	switch p.peek().Kind {
	case lexer.KindLet:
		return p.parseLet()
	case lexer.KindIf:
		return p.parseIf()
	case lexer.KindWhile:
		return p.parseWhile()
	case lexer.KindReturn:
		return p.parseReturn()
	case lexer.KindLBrace:
		return p.parseBlock("to start block")
	default:
		return p.parseExpressionStatement()
	}
}

// parseLet parses `let [mut] name [: T] [= expr];`.
func (p *parser) parseLet() ast.Statement {
	start := p.advance() // let
	mutable := p.match(lexer.KindMut)
	name := p.identifier(p.expect(lexer.KindIdentifier, "as variable name"))

	var declared ast.TypeExpression
	if p.match(lexer.KindColon) {
		declared = p.parseType()
	}
	var init ast.Expression
	if p.match(lexer.KindAssign) {
		init = p.parseExpression()
	}
	p.expect(lexer.KindSemicolon, "after variable declaration")

	stmt := ast.NewLetStatement(name, mutable, declared, init)
	p.spanFrom(stmt, start)
	return stmt
}

func (p *parser) parseIf() *ast.IfStatement {
	start := p.advance() // if
	cond := p.parseExpression()
	then := p.parseBlock("after if condition")

	var elseBranch ast.Statement
	if p.match(lexer.KindElse) {
		if p.check(lexer.KindIf) {
			elseBranch = p.parseIf()
		} else {
			elseBranch = p.parseBlock("or 'if' after else")
		}
	}

	stmt := ast.NewIfStatement(cond, then, elseBranch)
	p.spanFrom(stmt, start)
	return stmt
}

func (p *parser) parseWhile() ast.Statement {
	start := p.advance() // while
	cond := p.parseExpression()
	body := p.parseBlock("after while condition")
	stmt := ast.NewWhileLoop(cond, body)
	p.spanFrom(stmt, start)
	return stmt
}

func (p *parser) parseReturn() ast.Statement {
	start := p.advance() // return
	var arg ast.Expression
	if !p.check(lexer.KindSemicolon) {
		arg = p.parseExpression()
	}
	p.expect(lexer.KindSemicolon, "after return")
	stmt := ast.NewReturnStatement(arg)
	p.spanFrom(stmt, start)
	return stmt
}

func (p *parser) parseExpressionStatement() ast.Statement {
	start := p.peek()
	expr := p.parseExpression()
	p.expect(lexer.KindSemicolon, "after statement")
	stmt := ast.NewExpressionStatement(expr)
	p.spanFrom(stmt, start)
	return stmt
}
