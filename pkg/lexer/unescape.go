package lexer

import (
	"fmt"
	"strconv"
	"strings"
)

// EscapeError reports an invalid escape sequence inside a string literal.
// Offset counts characters from the opening quote.
type EscapeError struct {
	Sequence string
	Offset   int
}

func (e *EscapeError) Error() string {
	return fmt.Sprintf("invalid escape sequence %q", e.Sequence)
}

var simpleEscapes = map[rune]rune{
	'a':  '\a',
	'b':  '\b',
	't':  '\t',
	'n':  '\n',
	'r':  '\r',
	'\\': '\\',
	'"':  '"',
}

// Unescape decodes a string token's lexeme, quotes included, into its value.
// Besides the single-character escapes it accepts `\<decimal>` and
// `\x<hex>` for character codes up to 255.
func Unescape(lexeme string) (string, error) {
	runes := []rune(lexeme)
	if len(runes) < 2 || runes[0] != '"' || runes[len(runes)-1] != '"' {
		return "", fmt.Errorf("lexer: %q is not a string literal", lexeme)
	}
	body := runes[1 : len(runes)-1]

	var b strings.Builder
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch != '\\' {
			b.WriteRune(ch)
			continue
		}
		start := i
		i++
		if i >= len(body) {
			return "", &EscapeError{Sequence: "\\", Offset: start + 1}
		}
		if r, ok := simpleEscapes[body[i]]; ok {
			b.WriteRune(r)
			continue
		}

		base, digits := 10, isDigit
		if body[i] == 'x' {
			base, digits = 16, isHexDigit
			i++
		}
		j := i
		for j < len(body) && digits(body[j]) {
			j++
		}
		seq := string(body[start:j])
		if j == i {
			if j < len(body) {
				seq = string(body[start : j+1])
			}
			return "", &EscapeError{Sequence: seq, Offset: start + 1}
		}
		value, err := strconv.ParseUint(string(body[i:j]), base, 16)
		if err != nil || value > 0xFF {
			return "", &EscapeError{Sequence: seq, Offset: start + 1}
		}
		b.WriteRune(rune(value))
		i = j - 1
	}
	return b.String(), nil
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
