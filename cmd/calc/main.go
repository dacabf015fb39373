package main

import (
	"bufio"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zephyrtronium/calc"
)

type options struct {
	prompt   string
	verb     string
	logLevel string
	echo     bool
	noColor  bool
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `Calc evaluates infix arithmetic with + - * / ^, parentheses, unary minus,
and implicit multiplication like 5(3/2).

With arguments, each argument is evaluated and its value printed. Without
arguments, calc reads expressions line by line until EOF or "q"/"quit".
Put -- before expressions that begin with a minus sign, as in calc -- -5.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.prompt, "prompt", "calc> ", "prompt shown when reading from a terminal")
	f.StringVar(&opts.verb, "fmt", "%v", "result formatting verb")
	f.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, or error")
	f.BoolVar(&opts.echo, "echo", false, "print the postfix form of each expression")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	out := cmd.OutOrStdout()
	r := &repl{
		out:  out,
		verb: opts.verb,
		echo: opts.echo,
		opts: []calc.Option{calc.Logger(logger)},
	}
	r.paint(!opts.noColor && isTerminal(out))

	if len(args) > 0 {
		failed := 0
		for _, arg := range args {
			if !r.once(arg, cmd.ErrOrStderr()) {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d expressions failed", failed, len(args))
		}
		return nil
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		r.prompt = opts.prompt
	}
	logger.Debug("reading expressions", slog.Bool("interactive", r.prompt != ""))
	if err := r.run(bufio.NewScanner(in)); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// isTerminal reports whether a reader or writer is a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
