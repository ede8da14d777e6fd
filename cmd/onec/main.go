package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"onec/compiler-go/pkg/driver"
)

const cliToolVersion = "onec 0.1.0-dev"

type cliFlags struct {
	code    string
	rev     string
	config  string
	color   string
	format  string
	verbose bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	exitCode := driver.ExitOK
	root := newRootCommand(&exitCode)
	root.SetArgs(translateAliases(args))
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return driver.ExitUsage
	}
	return exitCode
}

// translateAliases rewrites -S/--s-expr into the sexpr subcommand.
func translateAliases(args []string) []string {
	out := make([]string, 0, len(args)+1)
	alias := false
	for _, arg := range args {
		if arg == "-S" || arg == "--s-expr" {
			alias = true
			continue
		}
		out = append(out, arg)
	}
	if alias {
		out = append([]string{string(driver.ModeSExpr)}, out...)
	}
	return out
}

func newRootCommand(exitCode *int) *cobra.Command {
	flags := &cliFlags{}
	root := &cobra.Command{
		Use:           "onec",
		Short:         "Front end for the onec language",
		Version:       cliToolVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetOut(cmd.ErrOrStderr())
			_ = cmd.Usage()
			*exitCode = driver.ExitUsage
			return nil
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&flags.code, "code", "", "program text to use instead of a file")
	pf.StringVar(&flags.rev, "rev", "", "read the file as of this git revision")
	pf.StringVar(&flags.config, "config", "", "config file (default: nearest onec.yml, onec.yaml or onec.toml)")
	pf.StringVar(&flags.color, "color", "", "diagnostic color: auto, always or never")
	pf.StringVar(&flags.format, "format", "", "diagnostic format: human or codes")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log pipeline stages to stderr")

	modes := []struct {
		mode  driver.Mode
		short string
	}{
		{driver.ModeSExpr, "Print the program as S-expressions"},
		{driver.ModeCheck, "Parse and typecheck the program"},
		{driver.ModeTokens, "List tokens as line:column lexeme"},
		{driver.ModeErrors, "List diagnostic codes, one per line"},
	}
	for _, m := range modes {
		mode := m.mode
		root.AddCommand(&cobra.Command{
			Use:   string(mode) + " [path]",
			Short: m.short,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				code, err := runMode(mode, flags, args)
				if err != nil {
					return err
				}
				*exitCode = code
				return nil
			},
		})
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the tool version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), cliToolVersion)
		},
	})
	return root
}

func runMode(mode driver.Mode, flags *cliFlags, args []string) (int, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return 0, err
	}
	cfg, err := driver.ResolveConfig(flags.config, cwd)
	if err != nil {
		return 0, err
	}
	if err := applyFlags(cfg, flags); err != nil {
		return 0, err
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	if flags.code == "" && (path == "" || path == "-") && isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "reading program from terminal; finish with Ctrl-D")
	}
	src, err := driver.LoadSource(driver.SourceOptions{
		Path:     path,
		Code:     flags.code,
		Revision: flags.rev,
		Stdin:    os.Stdin,
	})
	if err != nil {
		return 0, err
	}

	opts := driver.OptionsFromConfig(cfg, os.Stdout, os.Stderr)
	opts.Logger = newLogger(os.Stderr, cfg, flags.verbose)
	opts.Logger.Debug("loaded source", "source", src.Name, "bytes", len(src.Text), "config", cfg.Path)
	return driver.Run(mode, src, opts), nil
}

// applyFlags overrides config values with explicitly given flags.
func applyFlags(cfg *driver.Config, flags *cliFlags) error {
	if flags.color != "" {
		color := driver.ColorMode(flags.color)
		if !color.IsValid() {
			return fmt.Errorf("invalid --color %q (want auto, always or never)", flags.color)
		}
		cfg.Diagnostics.Color = color
	}
	if flags.format != "" {
		format := driver.Format(flags.format)
		if !format.IsValid() {
			return fmt.Errorf("invalid --format %q (want human or codes)", flags.format)
		}
		cfg.Diagnostics.Format = format
	}
	return nil
}

func newLogger(w io.Writer, cfg *driver.Config, verbose bool) *slog.Logger {
	level := cfg.Log.Level
	if verbose {
		level = driver.LogDebug
	}
	return driver.NewLogger(w, level)
}
