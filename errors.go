package calc

import (
	"errors"
	"strconv"
)

// EmptyExpressionError is an error indicating an input with no characters.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "empty expression"
}

// NumberError is an error indicating a numeric token that is not a valid
// number, e.g. one with two decimal points. It implements InputError.
type NumberError struct {
	// Col is the position of the token.
	Col int
	// Text is the token that failed to parse.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number: ("+err.Text+")")
}

func (err *NumberError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an open paren with no matching close
// paren. It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched open paren.
	Col int
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "unmatched parentheses")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// ExpressionError is an error indicating that an expression did not produce
// exactly one value, e.g. because it contains no numbers, or because two
// terms are adjacent with nothing to join them, as in "(2)3".
type ExpressionError struct {
	// Len is the number of values the expression produced.
	Len int
}

func (err *ExpressionError) Error() string {
	if err.Len <= 1 {
		return "invalid expression"
	}
	return "invalid expression (" + strconv.Itoa(err.Len) + " values)"
}

// StackError indicates that an operator had too few operands. This happens
// only for malformed operator sequences such as "5 +" or "*"; well-formed
// expressions never produce it. It implements InputError.
type StackError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator that was being applied.
	Op TokenKind
}

func (err *StackError) Error() string {
	return errpos(err.Col, "stack underflow applying "+err.Op.String())
}

func (err *StackError) Pos() int {
	return err.Col
}

// TokenError indicates a token which cannot appear in a postfix sequence, i.e.
// a close paren or the zero TokenKind. ToPostfix never produces one. It
// implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Kind is the token's kind.
	Kind TokenKind
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unexpected "+err.Kind.String()+" token in postfix sequence")
}

func (err *TokenError) Pos() int {
	return err.Col
}

// IsFault reports whether err is or wraps a *StackError or *TokenError, as
// opposed to one of the errors describing invalid input.
func IsFault(err error) bool {
	var s *StackError
	var t *TokenError
	return errors.As(err, &s) || errors.As(err, &t)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*StackError)(nil)
	_ InputError = (*TokenError)(nil)
)
