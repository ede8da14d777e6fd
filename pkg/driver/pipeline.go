package driver

import (
	"fmt"
	"io"
	"log/slog"

	"onec/compiler-go/pkg/ast"
	"onec/compiler-go/pkg/diagnostics"
	"onec/compiler-go/pkg/lexer"
	"onec/compiler-go/pkg/parser"
	"onec/compiler-go/pkg/sexpr"
	"onec/compiler-go/pkg/typechecker"
)

// Exit codes shared by every mode.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Mode names one way of running the front end over a source.
type Mode string

const (
	ModeSExpr  Mode = "sexpr"
	ModeCheck  Mode = "check"
	ModeTokens Mode = "tokens"
	ModeErrors Mode = "errors"
)

// Options carries the output streams and rendering settings for a run.
type Options struct {
	Stdout    io.Writer
	Stderr    io.Writer
	Format    Format
	Color     ColorMode
	MaxErrors int
	Logger    *slog.Logger
}

// OptionsFromConfig fills rendering settings from cfg.
func OptionsFromConfig(cfg *Config, stdout, stderr io.Writer) Options {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return Options{
		Stdout:    stdout,
		Stderr:    stderr,
		Format:    cfg.Diagnostics.Format,
		Color:     cfg.Diagnostics.Color,
		MaxErrors: cfg.Diagnostics.MaxErrors,
	}
}

// NewLogger returns a text logger on w filtered at level.
func NewLogger(w io.Writer, level LogLevel) *slog.Logger {
	var lvl slog.Level
	switch level {
	case LogDebug:
		lvl = slog.LevelDebug
	case LogInfo:
		lvl = slog.LevelInfo
	case LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Run executes mode over src and returns the process exit code.
func Run(mode Mode, src *Source, opts Options) int {
	switch mode {
	case ModeSExpr:
		return RunSExpr(src, opts)
	case ModeCheck:
		return RunCheck(src, opts)
	case ModeTokens:
		return RunTokens(src, opts)
	case ModeErrors:
		return RunErrors(src, opts)
	}
	fmt.Fprintf(opts.Stderr, "unknown mode %q\n", mode)
	return ExitUsage
}

// RunSExpr prints the serialized program on success. On failure nothing is
// written to stdout.
func RunSExpr(src *Source, opts Options) int {
	program, ok := parseSource(src, opts)
	if !ok {
		return ExitFailure
	}
	if err := sexpr.Write(opts.Stdout, program); err != nil {
		fmt.Fprintf(opts.Stderr, "write output: %v\n", err)
		return ExitUsage
	}
	return ExitOK
}

// RunCheck parses and typechecks src.
func RunCheck(src *Source, opts Options) int {
	program, ok := parseSource(src, opts)
	if !ok {
		return ExitFailure
	}
	diags := checkProgram(program, opts)
	if len(diags) > 0 {
		report(src, diags, opts)
		return ExitFailure
	}
	return ExitOK
}

// RunTokens lists one `line:column lexeme` per token. Tokens before a lexical
// error are still printed.
func RunTokens(src *Source, opts Options) int {
	tokens, err := lexer.Tokenize(src.Text)
	for _, tok := range tokens {
		fmt.Fprintln(opts.Stdout, tok.String())
	}
	opts.logger().Debug("lexed source", "source", src.Name, "tokens", len(tokens))
	if err != nil {
		report(src, []diagnostics.Diagnostic{parser.LexDiagnostic(err)}, opts)
		return ExitFailure
	}
	return ExitOK
}

// RunErrors prints the code of every diagnostic from the first failing
// stage, one per line, on stdout.
func RunErrors(src *Source, opts Options) int {
	diags := collectDiagnostics(src, opts)
	if err := diagnostics.RenderCodes(opts.Stdout, diags); err != nil {
		fmt.Fprintf(opts.Stderr, "write output: %v\n", err)
		return ExitUsage
	}
	if len(diags) > 0 {
		return ExitFailure
	}
	return ExitOK
}

func collectDiagnostics(src *Source, opts Options) []diagnostics.Diagnostic {
	tokens, err := lexer.Tokenize(src.Text)
	if err != nil {
		return []diagnostics.Diagnostic{parser.LexDiagnostic(err)}
	}
	program, diags := parser.ParseTokens(tokens)
	if len(diags) > 0 {
		return diags
	}
	return checkProgram(program, opts)
}

func parseSource(src *Source, opts Options) (*ast.Program, bool) {
	log := opts.logger()
	log.Debug("parsing source", "source", src.Name, "bytes", len(src.Text))
	program, diags := parser.ParseProgram(src.Text)
	if len(diags) > 0 {
		log.Debug("parse failed", "source", src.Name, "diagnostics", len(diags))
		report(src, diags, opts)
		return nil, false
	}
	log.Debug("parsed program", "source", src.Name, "functions", len(program.Functions), "nodes", ast.CountNodes(program))
	return program, true
}

func checkProgram(program *ast.Program, opts Options) []diagnostics.Diagnostic {
	diags, err := typechecker.New().CheckProgram(program)
	if err != nil {
		return []diagnostics.Diagnostic{*diagnostics.NewError(err.Error())}
	}
	opts.logger().Debug("typechecked program", "functions", len(program.Functions), "diagnostics", len(diags))
	return diags
}

func report(src *Source, diags []diagnostics.Diagnostic, opts Options) {
	if opts.Stderr == nil || len(diags) == 0 {
		return
	}
	var err error
	if opts.Format == FormatCodes {
		err = diagnostics.RenderCodes(opts.Stderr, diags)
	} else {
		err = diagnostics.RenderHuman(opts.Stderr, src.Text, diags, diagnostics.RenderOptions{
			Path:      src.Name,
			Color:     diagnostics.ColorMode(opts.Color),
			MaxErrors: opts.MaxErrors,
		})
	}
	if err != nil {
		fmt.Fprintf(opts.Stderr, "render diagnostics: %v\n", err)
	}
}
