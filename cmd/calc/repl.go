package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/zephyrtronium/calc"
)

// repl evaluates expressions and prints their results.
type repl struct {
	out io.Writer
	// prompt is printed before reading each line. If it is empty, nothing is
	// printed, which is what we want for piped input.
	prompt string
	// verb is the fmt verb for results.
	verb string
	// echo prints the postfix form of each expression before its result.
	echo bool
	opts []calc.Option

	ok, bad *color.Color
}

// paint sets up the colors for result and error labels.
func (r *repl) paint(enable bool) {
	r.ok = color.New(color.FgGreen, color.Bold)
	r.bad = color.New(color.FgRed, color.Bold)
	if enable {
		r.ok.EnableColor()
		r.bad.EnableColor()
	} else {
		r.ok.DisableColor()
		r.bad.DisableColor()
	}
}

// run reads lines from sc until EOF or a quit command.
func (r *repl) run(sc *bufio.Scanner) error {
	for {
		if r.prompt != "" {
			fmt.Fprint(r.out, r.prompt)
		}
		if !sc.Scan() {
			if r.prompt != "" {
				// Leave the terminal on a fresh line after ^D.
				fmt.Fprintln(r.out)
			}
			return sc.Err()
		}
		line := strings.ToLower(strings.TrimSpace(sc.Text()))
		if line == "q" || line == "quit" {
			return nil
		}
		r.eval(line)
	}
}

// eval evaluates one line and prints the labeled result or error.
func (r *repl) eval(line string) {
	if r.echo {
		fmt.Fprintf(r.out, "Postfix: %s\n", calc.FormatTokens(calc.ToPostfix(calc.TokenizeString(line))))
	}
	v, err := calc.EvalString(line, r.opts...)
	if err != nil {
		r.bad.Fprint(r.out, "Error:")
		fmt.Fprintf(r.out, " %v\n", err)
		return
	}
	r.ok.Fprint(r.out, "Result:")
	fmt.Fprintf(r.out, " "+r.verb+"\n", v)
}

// once evaluates a command-line argument, printing the bare result to r.out
// or the error to errs. It returns false if evaluation failed.
func (r *repl) once(src string, errs io.Writer) bool {
	if r.echo {
		fmt.Fprintf(r.out, "%s : ", calc.FormatTokens(calc.ToPostfix(calc.TokenizeString(src))))
	}
	v, err := calc.EvalString(src, r.opts...)
	if err != nil {
		if r.echo {
			fmt.Fprintln(r.out)
		}
		r.bad.Fprint(errs, "Error:")
		fmt.Fprintf(errs, " %q: %v\n", src, err)
		return false
	}
	fmt.Fprintf(r.out, r.verb+"\n", v)
	return true
}
