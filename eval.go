package calc

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// Option is an option for evaluating expressions.
type Option interface {
	evalOption()
}

type logopt struct {
	log *slog.Logger
}

func (logopt) evalOption() {}

// Logger sets a logger which receives debug records describing the tokens and
// postfix sequence of each evaluated expression. By default, nothing is
// logged.
func Logger(log *slog.Logger) Option {
	return logopt{log}
}

type config struct {
	log *slog.Logger
}

func newConfig(opts []Option) config {
	cfg := config{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case logopt:
			if opt.log != nil {
				cfg.log = opt.log
			}
		default:
			panic("calc: unknown option type")
		}
	}
	return cfg
}

// Eval reads an expression from src and returns its value. If src yields no
// characters at all, the error is an *EmptyExpressionError. Errors describing
// invalid input are *NumberError, *BracketError, and *ExpressionError. A
// *StackError means the input had an operator without operands.
//
// Eval holds no state between calls; evaluating the same input always gives
// the same result.
func Eval(src io.RuneScanner, opts ...Option) (float64, error) {
	cfg := newConfig(opts)
	l := lexer{src: src}
	if err := l.run(); err != nil {
		return 0, err
	}
	if l.col == 0 {
		return 0, &EmptyExpressionError{}
	}
	cfg.log.Debug("tokenized", slog.String("tokens", FormatTokens(l.toks)))
	post := ToPostfix(l.toks)
	cfg.log.Debug("converted", slog.String("postfix", FormatTokens(post)))
	r, err := EvalPostfix(post)
	if err != nil {
		cfg.log.Debug("evaluation failed", slog.Any("err", err), slog.Bool("fault", IsFault(err)))
		return 0, err
	}
	return r, nil
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string, opts ...Option) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}

// EvalPostfix computes the value of a postfix token sequence, as produced by
// ToPostfix. Division by zero follows IEEE 754, giving an infinity or NaN.
// A close paren or any other token kind that ToPostfix never produces gives a
// *TokenError.
func EvalPostfix(toks []Token) (float64, error) {
	for _, tok := range toks {
		if tok.Kind == TokenOpen {
			return 0, &BracketError{Col: tok.Pos}
		}
	}
	var s stack
	for _, tok := range toks {
		switch tok.Kind {
		case TokenNum:
			v, err := parseNum(tok)
			if err != nil {
				return 0, err
			}
			s.push(v)
		case TokenNeg:
			v, err := s.pop(tok)
			if err != nil {
				return 0, err
			}
			s.push(-v)
		case TokenAdd, TokenSub, TokenMul, TokenDiv, TokenPow:
			r, err := s.pop(tok)
			if err != nil {
				return 0, err
			}
			l, err := s.pop(tok)
			if err != nil {
				return 0, err
			}
			s.push(apply(tok.Kind, l, r))
		default:
			return 0, &TokenError{Col: tok.Pos, Kind: tok.Kind}
		}
	}
	if len(s) != 1 {
		return 0, &ExpressionError{Len: len(s)}
	}
	return s[0], nil
}

func apply(op TokenKind, l, r float64) float64 {
	switch op {
	case TokenAdd:
		return l + r
	case TokenSub:
		return l - r
	case TokenMul:
		return l * r
	case TokenDiv:
		return l / r
	case TokenPow:
		return math.Pow(l, r)
	default:
		panic("calc: not a binary operator: " + op.String())
	}
}

// parseNum parses a number token. Literals too large for float64 become
// infinite rather than failing.
func parseNum(tok Token) (float64, error) {
	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, &NumberError{Col: tok.Pos, Text: tok.Text}
	}
	return v, nil
}

// stack is the value stack for evaluating postfix sequences.
type stack []float64

func (s *stack) push(v float64) {
	*s = append(*s, v)
}

// pop removes the top from the stack and returns it. op is the token which
// consumes the value, used for error reporting.
func (s *stack) pop(op Token) (float64, error) {
	if len(*s) == 0 {
		return 0, &StackError{Col: op.Pos, Op: op.Kind}
	}
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v, nil
}
