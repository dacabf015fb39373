package calc

import (
	"strconv"
	"strings"
)

// Token is a single lexical unit of an expression.
type Token struct {
	// Kind is the token's classification.
	Kind TokenKind
	// Text is the literal text of a TokenNum. It is empty for other kinds.
	Text string
	// Pos is the column, in runes starting from 1, of the source character
	// that produced the token.
	Pos int
}

func (t Token) String() string {
	if t.Kind == TokenNum {
		return t.Text
	}
	return t.Kind.String()
}

// TokenKind classifies a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNum is a numeric literal: digits and dots.
	TokenNum
	TokenAdd
	TokenSub
	TokenMul
	TokenDiv
	TokenPow
	// TokenOpen and TokenClose are parentheses.
	TokenOpen
	TokenClose
	// TokenNeg is unary negation. It never appears literally in the input;
	// the tokenizer synthesizes it from a minus sign in operand position.
	TokenNeg
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "none"
	case TokenNum:
		return "num"
	case TokenAdd:
		return "+"
	case TokenSub:
		return "-"
	case TokenMul:
		return "*"
	case TokenDiv:
		return "/"
	case TokenPow:
		return "^"
	case TokenOpen:
		return "("
	case TokenClose:
		return ")"
	case TokenNeg:
		return "neg"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// symbol gets the kind of an operator or parenthesis rune. The result is
// tokenNone for any other rune.
func symbol(r rune) TokenKind {
	switch r {
	case '+':
		return TokenAdd
	case '-':
		return TokenSub
	case '*':
		return TokenMul
	case '/':
		return TokenDiv
	case '^':
		return TokenPow
	case '(':
		return TokenOpen
	case ')':
		return TokenClose
	default:
		return tokenNone
	}
}

// isOp reports whether k is a binary operator, the negation marker, or a
// parenthesis.
func (k TokenKind) isOp() bool {
	return k >= TokenAdd && k <= TokenNeg
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates that two adjacent instances of the operator do not pop
	// each other, i.e. right-associativity.
	right bool
}

// op gets the operator info for a token kind. Parentheses and numbers have
// precedence 0.
func (k TokenKind) op() operator {
	switch k {
	case TokenAdd, TokenSub:
		return operator{1, false}
	case TokenMul, TokenDiv:
		return operator{2, false}
	case TokenPow:
		return operator{3, true}
	case TokenNeg:
		return operator{4, true}
	default:
		return operator{}
	}
}

// FormatTokens renders a token sequence separated by spaces.
func FormatTokens(toks []Token) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}
