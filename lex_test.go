package calc

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		// spaces
		{"empty", "", ""},
		{"spaces", " \t \r\n ", ""},
		{"ignored", "x = 3a", "3"},
		// numbers
		{"int", "9876543210", "9876543210"},
		{"joined", "1 2", "12"},
		{"decimal", "1.5", "1.5"},
		{"lead-dot", ".5", ".5"},
		{"trail-dot", "5.", "5."},
		{"two-dots", "1.2.3", "1.2.3"},
		{"op-dot", "+.", "+ ."},
		// binary operators
		{"add", "40 + 30", "40 + 30"},
		{"sub", "5-3", "5 - 3"},
		{"all", "1+2-3*4/5^6", "1 + 2 - 3 * 4 / 5 ^ 6"},
		{"sub-after-close", "(1)-2", "( 1 ) - 2"},
		// unary negation
		{"neg", "-5", "neg 5"},
		{"neg-neg", "--10", "neg neg 10"},
		{"neg4", "----10", "neg neg neg neg 10"},
		{"neg-paren", "-(10)", "neg ( 10 )"},
		{"neg-dot", "-.5", "neg .5"},
		{"sub-neg", "5--3", "5 - neg 3"},
		{"pow-neg", "2^-3", "2 ^ neg 3"},
		{"open-neg", "(-1)", "( neg 1 )"},
		{"mul-neg-paren", "2*-(1)", "2 * neg ( 1 )"},
		// implicit multiplication
		{"num-paren", "5(3/2)", "5 * ( 3 / 2 )"},
		{"num-space-paren", "5 (1)", "5 * ( 1 )"},
		{"paren-paren", "(1)(2)", "( 1 ) * ( 2 )"},
		{"close-open", "3)(", "3 ) * ("},
		// malformed
		{"minus-only", "-", "-"},
		{"trailing-sub", "5-", "5 -"},
		{"neg-op", "-+5", "- + 5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(strings.NewReader(c.src))
			require.NoError(t, err)
			assert.Equal(t, c.want, FormatTokens(toks))
			assert.Equal(t, toks, TokenizeString(c.src))
		})
	}
}

func TestTokenizePos(t *testing.T) {
	cases := []struct {
		src  string
		want []Token
	}{
		{
			"-(12)+3",
			[]Token{
				{Kind: TokenNeg, Pos: 1},
				{Kind: TokenOpen, Pos: 2},
				{Kind: TokenNum, Text: "12", Pos: 3},
				{Kind: TokenClose, Pos: 5},
				{Kind: TokenAdd, Pos: 6},
				{Kind: TokenNum, Text: "3", Pos: 7},
			},
		},
		{
			"2(3)",
			[]Token{
				{Kind: TokenNum, Text: "2", Pos: 1},
				{Kind: TokenMul, Pos: 2},
				{Kind: TokenOpen, Pos: 2},
				{Kind: TokenNum, Text: "3", Pos: 3},
				{Kind: TokenClose, Pos: 4},
			},
		},
		{
			"π - 1",
			[]Token{
				{Kind: TokenNeg, Pos: 3},
				{Kind: TokenNum, Text: "1", Pos: 5},
			},
		},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TokenizeString(c.src), "tokenizing %q", c.src)
	}
}

type errScanner struct {
	*strings.Reader
	after int
	err   error
}

func (s *errScanner) ReadRune() (rune, int, error) {
	if s.after == 0 {
		return 0, 0, s.err
	}
	s.after--
	return s.Reader.ReadRune()
}

func TestTokenizeReadError(t *testing.T) {
	bad := errors.New("bad read")
	src := &errScanner{Reader: strings.NewReader("1+2"), after: 2, err: bad}
	toks, err := Tokenize(src)
	require.ErrorIs(t, err, bad)
	assert.Contains(t, err.Error(), "column 3")
	assert.Nil(t, toks)

	// A negative count never fails.
	src = &errScanner{Reader: strings.NewReader("1+2"), after: -1, err: io.ErrUnexpectedEOF}
	toks, err = Tokenize(src)
	require.NoError(t, err)
	assert.Equal(t, "1 + 2", FormatTokens(toks))
}

func TestIsUnaryNeg(t *testing.T) {
	tok := func(k TokenKind) []Token { return []Token{{Kind: k}} }
	cases := []struct {
		name string
		toks []Token
		buf  string
		want bool
	}{
		{"start", nil, "-", true},
		{"start-plus", nil, "+", false},
		{"empty-buf", tok(TokenOpen), "", false},
		{"after-num", []Token{{Kind: TokenNum, Text: "1"}}, "-", false},
		{"after-close", tok(TokenClose), "-", false},
		{"after-neg", tok(TokenNeg), "-", true},
		{"after-open", tok(TokenOpen), "-", true},
		{"after-add", tok(TokenAdd), "-", true},
		{"after-sub", tok(TokenSub), "-", true},
		{"after-mul", tok(TokenMul), "-", true},
		{"after-div", tok(TokenDiv), "-", true},
		{"after-pow", tok(TokenPow), "-", true},
		{"num-buf", tok(TokenAdd), "-1", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, isUnaryNeg(c.toks, c.buf))
		})
	}
}

func TestShouldFlush(t *testing.T) {
	num := []Token{{Kind: TokenNum, Text: "1"}}
	assert.False(t, shouldFlush(nil, ""))
	assert.False(t, shouldFlush(nil, "-"))
	assert.False(t, shouldFlush([]Token{{Kind: TokenAdd}}, "-"))
	assert.True(t, shouldFlush(nil, "5"))
	assert.True(t, shouldFlush(nil, "("))
	assert.True(t, shouldFlush(num, "-"))
	assert.True(t, shouldFlush([]Token{{Kind: TokenClose}}, "-"))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Token{Kind: TokenPow, Pos: 3}, classify("^", 3))
	assert.Equal(t, Token{Kind: TokenClose, Pos: 1}, classify(")", 1))
	assert.Equal(t, Token{Kind: TokenNum, Text: "1.5", Pos: 2}, classify("1.5", 2))
	assert.Equal(t, Token{Kind: TokenNum, Text: ".", Pos: 4}, classify(".", 4))
}
