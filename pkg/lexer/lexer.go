package lexer

import (
	"fmt"

	"onec/compiler-go/pkg/diagnostics"
)

// Error is a lexical error. The lexer skips past the offending text, so
// Next may be called again to keep scanning.
type Error struct {
	Code    diagnostics.Code
	Message string
	Lexeme  string
	Line    int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexer: %d:%d: %s", e.Line, e.Column, e.Message)
}

// Diagnostic converts e into a coded diagnostic at its position.
func (e *Error) Diagnostic() diagnostics.Diagnostic {
	d := diagnostics.NewError(e.Message).WithCode(e.Code).At(e.Line, e.Column)
	return *d
}

// Lexer turns source text into tokens on demand.
type Lexer struct {
	src    []rune
	pos    int
	line   int
	column int
}

// New returns a lexer positioned at the start of src.
func New(src string) *Lexer {
	l := &Lexer{}
	l.Reset(src)
	return l
}

// Reset restarts scanning over src.
func (l *Lexer) Reset(src string) {
	l.src = []rune(src)
	l.pos = 0
	l.line = 1
	l.column = 1
}

// Tokenize scans all of src. On error the tokens read so far are returned
// together with the error; the trailing EOF token is not included.
func Tokenize(src string) ([]Token, error) {
	l := New(src)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return tokens, err
		}
		if tok.Kind == KindEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token, or a token of KindEOF once input is exhausted.
func (l *Lexer) Next() (Token, error) {
	l.skipTrivia()

	line, column, start := l.line, l.column, l.pos
	if l.eof() {
		return Token{Kind: KindEOF, Line: line, Column: column}, nil
	}

	ch := l.advance()
	switch {
	case isIdentStart(ch):
		for !l.eof() && isIdentPart(l.peek()) {
			l.advance()
		}
		lexeme := string(l.src[start:l.pos])
		kind := KindIdentifier
		if kw, ok := keywords[lexeme]; ok {
			kind = kw
		}
		return Token{Kind: kind, Lexeme: lexeme, Line: line, Column: column}, nil
	case isDigit(ch):
		l.scanNumber()
		return l.token(KindNumber, start, line, column), nil
	case ch == '"':
		if err := l.scanString(); err != nil {
			err.Lexeme = string(l.src[start:l.pos])
			err.Line, err.Column = line, column
			return Token{}, err
		}
		return l.token(KindString, start, line, column), nil
	}

	kind, ok := l.operator(ch)
	if !ok {
		return Token{}, &Error{
			Code:    diagnostics.CodeUnexpectedCharacter,
			Message: fmt.Sprintf("unexpected character %q", ch),
			Lexeme:  string(ch),
			Line:    line,
			Column:  column,
		}
	}
	return l.token(kind, start, line, column), nil
}

func (l *Lexer) token(kind Kind, start, line, column int) Token {
	return Token{Kind: kind, Lexeme: string(l.src[start:l.pos]), Line: line, Column: column}
}

// operator matches punctuation greedily; ch has already been consumed.
func (l *Lexer) operator(ch rune) (Kind, bool) {
	two := func(next rune, double, single Kind) Kind {
		if l.match(next) {
			return double
		}
		return single
	}
	switch ch {
	case '+':
		return KindPlus, true
	case '-':
		return two('>', KindArrow, KindMinus), true
	case '*':
		return KindStar, true
	case '/':
		return KindSlash, true
	case '%':
		return KindPercent, true
	case '^':
		return KindCaret, true
	case '(':
		return KindLParen, true
	case ')':
		return KindRParen, true
	case '{':
		return KindLBrace, true
	case '}':
		return KindRBrace, true
	case ',':
		return KindComma, true
	case ':':
		return KindColon, true
	case ';':
		return KindSemicolon, true
	case '!':
		return two('=', KindNotEqual, KindBang), true
	case '=':
		return two('=', KindEqual, KindAssign), true
	case '<':
		return two('=', KindLessEqual, KindLess), true
	case '>':
		return two('=', KindGreaterEqual, KindGreater), true
	case '|':
		return two('|', KindOr, KindPipe), true
	case '&':
		return two('&', KindAnd, KindAmp), true
	}
	return 0, false
}

// scanNumber consumes digits with at most one fractional part.
func (l *Lexer) scanNumber() {
	for !l.eof() && isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		l.advance()
		for !l.eof() && isDigit(l.peek()) {
			l.advance()
		}
	}
}

// scanString consumes up to and including the closing quote. Escapes are
// only skipped here; Unescape decodes them.
func (l *Lexer) scanString() *Error {
	for !l.eof() {
		switch l.advance() {
		case '"':
			return nil
		case '\\':
			if !l.eof() {
				l.advance()
			}
		}
	}
	return &Error{Code: diagnostics.CodeUnterminatedString, Message: "unterminated string literal"}
}

func (l *Lexer) skipTrivia() {
	for !l.eof() {
		switch ch := l.peek(); {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '/' && l.peekAt(1) == '/':
			for !l.eof() && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) eof() bool { return l.pos >= len(l.src) }

func (l *Lexer) peek() rune { return l.peekAt(0) }

func (l *Lexer) peekAt(offset int) rune {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *Lexer) advance() rune {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) match(expected rune) bool {
	if l.eof() || l.peek() != expected {
		return false
	}
	l.advance()
	return true
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch rune) bool { return isIdentStart(ch) || isDigit(ch) }
