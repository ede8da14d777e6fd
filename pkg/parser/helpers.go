package parser

import (
	"fmt"

	"onec/compiler-go/pkg/diagnostics"
	"onec/compiler-go/pkg/lexer"
)

func (p *parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *parser) previous() lexer.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().Kind == lexer.KindEOF
}

func (p *parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) check(kind lexer.Kind) bool {
	return p.peek().Kind == kind
}

func (p *parser) match(kinds ...lexer.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes a token of kind or stops the parse with what as context.
func (p *parser) expect(kind lexer.Kind, what string) lexer.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.fail(diagnostics.CodeExpectedToken, p.offending(), "expected %s %s, found %s", kind, what, describe(p.peek()))
	panic("unreachable")
}

// offending is the token to blame; at end of input that is the last real one.
func (p *parser) offending() lexer.Token {
	if p.isAtEnd() && p.current > 0 {
		return p.previous()
	}
	return p.peek()
}

// report records a diagnostic without stopping the parse.
func (p *parser) report(code diagnostics.Code, tok lexer.Token, format string, args ...any) {
	d := diagnostics.Errorf(format, args...).WithCode(code).WithSpan(tokenSpan(tok))
	p.diagnostics = append(p.diagnostics, *d)
}

// fail records a diagnostic and unwinds to ParseTokens.
func (p *parser) fail(code diagnostics.Code, tok lexer.Token, format string, args ...any) {
	p.report(code, tok, format, args...)
	panic(bailout{})
}

func describe(tok lexer.Token) string {
	switch tok.Kind {
	case lexer.KindEOF:
		return "end of input"
	case lexer.KindIdentifier, lexer.KindNumber, lexer.KindString:
		return fmt.Sprintf("%s %s", tok.Kind, tok.Lexeme)
	default:
		return tok.Kind.String()
	}
}
