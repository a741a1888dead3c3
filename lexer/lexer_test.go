package lexer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenCase struct {
	tt   TokenType
	text string
}

func tokenCases(tokens []Token) []tokenCase {
	ret := make([]tokenCase, 0, len(tokens))
	for i := range tokens {
		ret = append(ret, tokenCase{tokens[i].Type(), tokens[i].Text()})
	}
	return ret
}

func TestScanner(t *testing.T) {
	testCases := []string{
		``,

		`1`,

		`+ 1 1 1 1`,

		`(+ 1 2 3)`,

		`(first (list 1 (+ 2 3) 9))`,

		`(foo
			a b
			(c d)
		)`,

		"(\r\n\tadd\r\n\t1 2)",
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i]))
		t.Logf("tokens: %v", tokens)

		assert.NotNil(t, tokens)
		assert.NoError(t, err)
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			``,
			[]TokenType{},
		},
		{
			"  \t\n ",
			[]TokenType{},
		},
		{
			`1`,
			[]TokenType{
				TokenInteger,
			},
		},
		{
			`(1)`,
			[]TokenType{
				TokenOpenList,
				TokenInteger,
				TokenCloseList,
			},
		},
		{
			`+
			1`,
			[]TokenType{
				TokenSymbol,
				TokenInteger,
			},
		},
		{
			`(first (list 1 (+ 2 3) 9))`,
			[]TokenType{
				TokenOpenList,
				TokenSymbol,
				TokenOpenList,
				TokenSymbol,
				TokenInteger,
				TokenOpenList,
				TokenSymbol,
				TokenInteger,
				TokenInteger,
				TokenCloseList,
				TokenInteger,
				TokenCloseList,
				TokenCloseList,
			},
		},
	}

	getTokenTypes := func(tokens []Token) []TokenType {
		tt := make([]TokenType, 0, len(tokens))
		for i := range tokens {
			tt = append(tt, tokens[i].tt)
		}
		return tt
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens))
	}
}

func TestTokenPayload(t *testing.T) {
	tokens, err := TokenizeString("(first (list 1 (+ 2 3) 9))")
	require.NoError(t, err)

	want := []tokenCase{
		{TokenOpenList, "("},
		{TokenSymbol, "first"},
		{TokenOpenList, "("},
		{TokenSymbol, "list"},
		{TokenInteger, "1"},
		{TokenOpenList, "("},
		{TokenSymbol, "+"},
		{TokenInteger, "2"},
		{TokenInteger, "3"},
		{TokenCloseList, ")"},
		{TokenInteger, "9"},
		{TokenCloseList, ")"},
		{TokenCloseList, ")"},
	}
	if diff := cmp.Diff(want, tokenCases(tokens), cmp.AllowUnexported(tokenCase{})); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, int64(1), tokens[4].Int())
	assert.Equal(t, int64(9), tokens[10].Int())
	assert.Equal(t, int64(0), tokens[1].Int())
}

func TestTokenizeSplitsAdjacentRuns(t *testing.T) {
	tokens, err := TokenizeString("(abc123+de)")
	require.NoError(t, err)

	want := []tokenCase{
		{TokenOpenList, "("},
		{TokenSymbol, "abc"},
		{TokenInteger, "123"},
		{TokenSymbol, "+"},
		{TokenSymbol, "de"},
		{TokenCloseList, ")"},
	}
	if diff := cmp.Diff(want, tokenCases(tokens), cmp.AllowUnexported(tokenCase{})); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeIsPure(t *testing.T) {
	in := "(first (list 1 (+ 2 3) 9))"

	a, err := TokenizeString(in)
	require.NoError(t, err)

	b, err := TokenizeString(in)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestIntegerLimits(t *testing.T) {
	{
		tokens, err := TokenizeString("9223372036854775807")
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, int64(9223372036854775807), tokens[0].Int())
	}

	{
		tokens, err := TokenizeString("(1 9223372036854775808)")
		assert.Nil(t, tokens)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIntegerOverflow))

		var lexErr *Error
		require.True(t, errors.As(err, &lexErr))
		assert.Equal(t, "9223372036854775808", lexErr.Text)
		assert.Equal(t, 1, lexErr.Line)
		assert.Equal(t, 4, lexErr.Col)
	}

	{
		_, err := TokenizeReader(strings.NewReader("99999999999999999999 ?"), Options{HaltOnUnrecognized: true})
		assert.True(t, errors.Is(err, ErrIntegerOverflow))
	}
}

func TestUnrecognizedCharacter(t *testing.T) {
	testCases := []struct {
		In   string
		Char string
		Pos  [2]int
	}{
		{`(- 1 2)`, "-", [2]int{1, 2}},
		{`(+ 1 2) "str"`, `"`, [2]int{1, 9}},
		{"(a\n  b.c)", ".", [2]int{2, 4}},
		{`(1.5)`, ".", [2]int{1, 3}},
		{`(λ x)`, "λ", [2]int{1, 2}},
		{"\ufeff(1)", "\ufeff", [2]int{1, 1}},
		{"(1 \ufeff)", "\ufeff", [2]int{1, 4}},
	}

	for i := range testCases {
		tokens, err := TokenizeString(testCases[i].In)
		assert.Nil(t, tokens)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnrecognizedCharacter))

		var lexErr *Error
		require.True(t, errors.As(err, &lexErr))
		assert.Equal(t, testCases[i].Char, lexErr.Text)
		assert.Equal(t, testCases[i].Pos, [2]int{lexErr.Line, lexErr.Col})
	}
}

func TestHaltOnUnrecognized(t *testing.T) {
	testCases := []struct {
		In  string
		Out []tokenCase
	}{
		{
			`(+ 1 2) - 3`,
			[]tokenCase{
				{TokenOpenList, "("},
				{TokenSymbol, "+"},
				{TokenInteger, "1"},
				{TokenInteger, "2"},
				{TokenCloseList, ")"},
			},
		},
		{
			`-1`,
			[]tokenCase{},
		},
		{
			"\ufeff(1)",
			[]tokenCase{},
		},
		{
			`(a b`,
			[]tokenCase{
				{TokenOpenList, "("},
				{TokenSymbol, "a"},
				{TokenSymbol, "b"},
			},
		},
	}

	for i := range testCases {
		tokens, err := TokenizeReader(strings.NewReader(testCases[i].In), Options{HaltOnUnrecognized: true})
		require.NoError(t, err)
		assert.Equal(t, testCases[i].Out, tokenCases(tokens))
	}
}

func TestColumnAndLines(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [][2]int
	}{
		{
			"",
			[][2]int{},
		},
		{
			"1",
			[][2]int{
				{1, 1},
			},
		},
		{
			"(a)",
			[][2]int{
				{1, 1}, {1, 2}, {1, 3},
			},
		},
		{
			"\n\n\nABCDF efgh\n",
			[][2]int{
				{4, 1}, {4, 7},
			},
		},
		{
			"1\n\n\t\t23456",
			[][2]int{
				{1, 1},
				{3, 3},
			},
		},
		{
			"(+\n  1\n  (x 22))",
			[][2]int{
				{1, 1}, {1, 2},
				{2, 3},
				{3, 3}, {3, 4}, {3, 6}, {3, 8}, {3, 9},
			},
		},
	}

	getTokenPositions := func(tokens []Token) [][2]int {
		ret := make([][2]int, 0, len(tokens))
		for i := range tokens {
			line, col := tokens[i].Pos()
			ret = append(ret, [2]int{line, col})
		}
		return ret
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Pos, getTokenPositions(tokens))
	}
}

func TestTokenEqual(t *testing.T) {
	a := NewIntegerToken(42, "42", 1, 1)
	b := NewIntegerToken(42, "42", 7, 3)
	c := NewToken(TokenSymbol, "42", 1, 1)

	assert.True(t, a.Equal(*b))
	assert.False(t, a.Equal(*c))
	assert.Equal(t, `(:integer "42" [1 1])`, a.String())
	assert.Equal(t, "invalid", TokenType(200).String())
}
