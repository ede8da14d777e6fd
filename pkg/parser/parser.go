package parser

import (
	"errors"

	"onec/compiler-go/pkg/ast"
	"onec/compiler-go/pkg/diagnostics"
	"onec/compiler-go/pkg/lexer"
)

// bailout unwinds the parser after a fatal syntax error has been recorded.
type bailout struct{}

type parser struct {
	tokens      []lexer.Token
	current     int
	diagnostics []diagnostics.Diagnostic
}

// ParseProgram parses src into a Program. When any diagnostic is reported the
// program is nil: there is no partial result.
func ParseProgram(src string) (*ast.Program, []diagnostics.Diagnostic) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, []diagnostics.Diagnostic{LexDiagnostic(err)}
	}
	return ParseTokens(tokens)
}

// ParseTokens parses an already scanned token stream (without a trailing EOF
// token).
func ParseTokens(tokens []lexer.Token) (*ast.Program, []diagnostics.Diagnostic) {
	if diags := checkBraceBalance(tokens); len(diags) > 0 {
		return nil, diags
	}

	p := newParser(tokens)
	program := p.parseProgram()
	if len(p.diagnostics) > 0 {
		return nil, p.diagnostics
	}
	return program, nil
}

func newParser(tokens []lexer.Token) *parser {
	eof := lexer.Token{Kind: lexer.KindEOF, Line: 1, Column: 1}
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		eof.Line, eof.Column = last.Line, last.EndColumn()
	}
	all := make([]lexer.Token, 0, len(tokens)+1)
	all = append(all, tokens...)
	all = append(all, eof)
	return &parser{tokens: all}
}

func (p *parser) parseProgram() (program *ast.Program) {
	start := p.peek()
	var functions []*ast.FunctionDefinition
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			program = nil
		}
	}()

	for !p.isAtEnd() {
		if fn := p.parseItem(); fn != nil {
			functions = append(functions, fn)
		}
	}
	program = ast.NewProgram(functions)
	if len(functions) > 0 {
		p.spanFrom(program, start)
	}
	return program
}

// LexDiagnostic converts an error from lexer.Tokenize into a diagnostic.
func LexDiagnostic(err error) diagnostics.Diagnostic {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return lexErr.Diagnostic()
	}
	return *diagnostics.NewError(err.Error())
}
