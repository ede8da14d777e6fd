package lexer

import "fmt"

// Kind identifies the lexical class of a token.
type Kind uint8

const (
	KindEOF Kind = iota
	KindIdentifier
	KindNumber
	KindString

	// Keywords.
	KindFn
	KindLet
	KindMut
	KindIf
	KindElse
	KindWhile
	KindReturn
	KindTrue
	KindFalse

	// Operators and punctuation.
	KindPlus         // +
	KindMinus        // -
	KindStar         // *
	KindSlash        // /
	KindPercent      // %
	KindBang         // !
	KindAssign       // =
	KindEqual        // ==
	KindNotEqual     // !=
	KindLess         // <
	KindLessEqual    // <=
	KindGreater      // >
	KindGreaterEqual // >=
	KindPipe         // |
	KindOr           // ||
	KindAmp          // &
	KindAnd          // &&
	KindCaret        // ^
	KindArrow        // ->
	KindLParen       // (
	KindRParen       // )
	KindLBrace       // {
	KindRBrace       // }
	KindComma        // ,
	KindColon        // :
	KindSemicolon    // ;
)

var kindNames = [...]string{
	KindEOF:          "end of input",
	KindIdentifier:   "identifier",
	KindNumber:       "number",
	KindString:       "string",
	KindFn:           "'fn'",
	KindLet:          "'let'",
	KindMut:          "'mut'",
	KindIf:           "'if'",
	KindElse:         "'else'",
	KindWhile:        "'while'",
	KindReturn:       "'return'",
	KindTrue:         "'true'",
	KindFalse:        "'false'",
	KindPlus:         "'+'",
	KindMinus:        "'-'",
	KindStar:         "'*'",
	KindSlash:        "'/'",
	KindPercent:      "'%'",
	KindBang:         "'!'",
	KindAssign:       "'='",
	KindEqual:        "'=='",
	KindNotEqual:     "'!='",
	KindLess:         "'<'",
	KindLessEqual:    "'<='",
	KindGreater:      "'>'",
	KindGreaterEqual: "'>='",
	KindPipe:         "'|'",
	KindOr:           "'||'",
	KindAmp:          "'&'",
	KindAnd:          "'&&'",
	KindCaret:        "'^'",
	KindArrow:        "'->'",
	KindLParen:       "'('",
	KindRParen:       "')'",
	KindLBrace:       "'{'",
	KindRBrace:       "'}'",
	KindComma:        "','",
	KindColon:        "':'",
	KindSemicolon:    "';'",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

var keywords = map[string]Kind{
	"fn":     KindFn,
	"let":    KindLet,
	"mut":    KindMut,
	"if":     KindIf,
	"else":   KindElse,
	"while":  KindWhile,
	"return": KindReturn,
	"true":   KindTrue,
	"false":  KindFalse,
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= KindFn && k <= KindFalse
}

// Token is one lexeme with its 1-based starting line and column.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %s", t.Line, t.Column, t.Lexeme)
}

// EndColumn is the column just past the token, assuming it sits on one line.
func (t Token) EndColumn() int {
	return t.Column + len([]rune(t.Lexeme))
}
