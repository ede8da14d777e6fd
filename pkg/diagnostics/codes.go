package diagnostics

// Code is a stable machine-readable diagnostic identifier such as "E0506".
type Code string

const (
	CodeUnexpectedCharacter Code = "E0101"
	CodeUnterminatedString  Code = "E0102"

	CodeUnclosedDelimiter   Code = "E0201"
	CodeUnexpectedDelimiter Code = "E0202"
	CodeInvalidEscape       Code = "E0203"

	CodeExpectedToken      Code = "E0501"
	CodeExpectedExpression Code = "E0502"
	CodeExpectedType       Code = "E0503"
	CodeInvalidAssignment  Code = "E0504"
	CodeInvalidItem        Code = "E0506"

	CodeTypeMismatch      Code = "E0601"
	CodeUndefinedName     Code = "E0602"
	CodeUnknownType       Code = "E0603"
	CodeNotCallable       Code = "E0604"
	CodeArgumentCount     Code = "E0605"
	CodeInvalidOperands   Code = "E0606"
	CodeDuplicateFunction Code = "E0607"
	CodeLiteralRange      Code = "E0608"
	CodeInvalidReturn     Code = "E0609"
)

var descriptions = map[Code]string{
	CodeUnexpectedCharacter: "unexpected character",
	CodeUnterminatedString:  "unterminated string literal",
	CodeUnclosedDelimiter:   "unclosed delimiter",
	CodeUnexpectedDelimiter: "unexpected closing delimiter",
	CodeInvalidEscape:       "invalid escape sequence",
	CodeExpectedToken:       "expected token",
	CodeExpectedExpression:  "expected expression",
	CodeExpectedType:        "expected type",
	CodeInvalidAssignment:   "invalid assignment target",
	CodeInvalidItem:         "invalid top-level item",
	CodeTypeMismatch:        "mismatched types",
	CodeUndefinedName:       "undefined name",
	CodeUnknownType:         "unknown type",
	CodeNotCallable:         "value is not callable",
	CodeArgumentCount:       "wrong number of arguments",
	CodeInvalidOperands:     "invalid operands",
	CodeDuplicateFunction:   "duplicate function",
	CodeLiteralRange:        "literal does not fit type",
	CodeInvalidReturn:       "invalid return",
}

// Describe returns a short description of code, or "" when unknown.
func Describe(code Code) string {
	return descriptions[code]
}
