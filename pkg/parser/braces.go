package parser

import (
	"onec/compiler-go/pkg/diagnostics"
	"onec/compiler-go/pkg/lexer"
)

// checkBraceBalance reports every stray `}` and every `{` left open.
func checkBraceBalance(tokens []lexer.Token) []diagnostics.Diagnostic {
	var (
		open  []lexer.Token
		diags []diagnostics.Diagnostic
	)
	for _, tok := range tokens {
		switch tok.Kind {
		case lexer.KindLBrace:
			open = append(open, tok)
		case lexer.KindRBrace:
			if len(open) > 0 {
				open = open[:len(open)-1]
				continue
			}
			d := diagnostics.NewError("unexpected closing delimiter '}'").
				WithCode(diagnostics.CodeUnexpectedDelimiter).
				WithSpan(tokenSpan(tok))
			diags = append(diags, *d)
		}
	}
	for _, tok := range open {
		d := diagnostics.NewError("unclosed delimiter '{'").
			WithCode(diagnostics.CodeUnclosedDelimiter).
			WithSpan(tokenSpan(tok))
		diags = append(diags, *d)
	}
	return diags
}
