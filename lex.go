package calc

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

type lexer struct {
	src io.RuneScanner
	// buf holds the token being built. It is either empty, a run of number
	// characters, or exactly one operator or parenthesis.
	buf strings.Builder
	// bufpos is the column of the first rune in buf.
	bufpos int
	// col is the number of runes read so far.
	col  int
	toks []Token
}

// Tokenize scans an expression into tokens. Runes other than digits, '.',
// operators, and parentheses are ignored. The only possible errors come from
// reading src.
func Tokenize(src io.RuneScanner) ([]Token, error) {
	l := lexer{src: src}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.toks, nil
}

// TokenizeString is a shortcut to tokenize a string.
func TokenizeString(src string) []Token {
	// Reading a strings.Reader never fails.
	toks, _ := Tokenize(strings.NewReader(src))
	return toks
}

func (l *lexer) run() error {
	for {
		r, _, err := l.src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("calc: reading expression at column %d: %w", l.col+1, err)
		}
		l.col++
		l.scan(r)
	}
	l.flush()
	return nil
}

// scan handles a single rune of input.
func (l *lexer) scan(r rune) {
	switch {
	case isNumRune(r):
		switch buf := l.buf.String(); {
		case isUnaryNeg(l.toks, buf):
			// -5 -> neg 5
			l.emitNeg()
		case buf != "" && !isNumText(buf):
			l.flush()
		}
		l.write(r)
	case symbol(r) != tokenNone:
		k := symbol(r)
		if k == TokenOpen {
			// 5(x) -> 5 * (x)
			// (x)(y) -> (x) * (y)
			if buf := l.buf.String(); isNumText(buf) || buf == ")" {
				l.flush()
				l.emit(Token{Kind: TokenMul, Pos: l.col})
			}
		}
		if shouldFlush(l.toks, l.buf.String()) {
			l.flush()
		}
		if k == TokenOpen || k == TokenSub {
			// -(x) -> neg (x)
			// --x -> neg -x
			if l.buf.String() == "-" {
				l.emitNeg()
			}
		}
		// A pending unary minus followed by any other operator is malformed.
		// Keep it as subtraction and let evaluation reject it.
		l.flush()
		l.write(r)
	default:
		// Ignore whitespace and anything else.
	}
}

func (l *lexer) write(r rune) {
	if l.buf.Len() == 0 {
		l.bufpos = l.col
	}
	l.buf.WriteRune(r)
}

func (l *lexer) emit(tok Token) {
	l.toks = append(l.toks, tok)
}

// emitNeg replaces the buffered minus sign with a negation marker.
func (l *lexer) emitNeg() {
	l.emit(Token{Kind: TokenNeg, Pos: l.bufpos})
	l.buf.Reset()
}

// flush emits the buffer as a token, if it is non-empty.
func (l *lexer) flush() {
	if l.buf.Len() == 0 {
		return
	}
	l.emit(classify(l.buf.String(), l.bufpos))
	l.buf.Reset()
}

// classify creates the token for a buffer's contents. A buffer which is not
// exactly one operator or parenthesis is a number.
func classify(buf string, pos int) Token {
	r, sz := utf8.DecodeRuneInString(buf)
	if sz == len(buf) {
		if k := symbol(r); k != tokenNone {
			return Token{Kind: k, Pos: pos}
		}
	}
	return Token{Kind: TokenNum, Text: buf, Pos: pos}
}

// isUnaryNeg reports whether buf is a minus sign that negates the operand
// following it rather than subtracting it from the previous operand, given
// the tokens emitted so far. That is the case at the start of the input and
// after any operator or open paren, but not after a number or close paren.
func isUnaryNeg(toks []Token, buf string) bool {
	if buf != "-" {
		return false
	}
	if len(toks) == 0 {
		return true
	}
	switch last := toks[len(toks)-1].Kind; last {
	case TokenClose:
		return false
	case TokenNeg:
		return true
	default:
		return last.isOp()
	}
}

// shouldFlush reports whether buf is complete and ready to emit when a new
// token begins. A pending unary minus stays buffered so that it can become a
// negation marker.
func shouldFlush(toks []Token, buf string) bool {
	if isUnaryNeg(toks, buf) {
		return false
	}
	return buf != ""
}

func isNumRune(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}

// isNumText reports whether buf is a non-empty run of number characters.
func isNumText(buf string) bool {
	if buf == "" {
		return false
	}
	for _, r := range buf {
		if !isNumRune(r) {
			return false
		}
	}
	return true
}
