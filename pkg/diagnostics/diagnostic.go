package diagnostics

import (
	"fmt"

	"onec/compiler-go/pkg/ast"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Note
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	default:
		return "unknown"
	}
}

// Label points at a secondary location related to a diagnostic.
type Label struct {
	Span    ast.Span
	Message string
}

// Diagnostic is a problem found in the program being compiled.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Span     ast.Span
	Labels   []Label
}

// NewError creates an error diagnostic.
func NewError(message string) *Diagnostic {
	return &Diagnostic{Severity: Error, Message: message}
}

// Errorf creates an error diagnostic with a formatted message.
func Errorf(format string, args ...any) *Diagnostic {
	return NewError(fmt.Sprintf(format, args...))
}

// WithCode sets the diagnostic code.
func (d *Diagnostic) WithCode(code Code) *Diagnostic {
	d.Code = code
	return d
}

// WithSpan sets the primary location.
func (d *Diagnostic) WithSpan(span ast.Span) *Diagnostic {
	d.Span = span
	return d
}

// At sets the primary location to a single position.
func (d *Diagnostic) At(line, column int) *Diagnostic {
	pos := ast.Position{Line: line, Column: column}
	d.Span = ast.Span{Start: pos, End: pos}
	return d
}

// WithLabel attaches a secondary location.
func (d *Diagnostic) WithLabel(span ast.Span, message string) *Diagnostic {
	d.Labels = append(d.Labels, Label{Span: span, Message: message})
	return d
}

func (d Diagnostic) Error() string {
	if d.Code == "" {
		return d.Message
	}
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}

// HasErrors reports whether any diagnostic is an error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Codes returns the codes of diags in order.
func Codes(diags []Diagnostic) []Code {
	codes := make([]Code, 0, len(diags))
	for _, d := range diags {
		codes = append(codes, d.Code)
	}
	return codes
}
