package lexer

import (
	"math"
	"strings"
	"testing"

	"github.com/gpoesia/loopye-sub000/errors"
	"github.com/gpoesia/loopye-sub000/internal/token"
	"github.com/stretchr/testify/require"
)

func TestNextToken(t *testing.T) {
	input := "2{ 3{R R} LLRL}"
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.INT, "2"},
		{token.LBRACE, "{"},
		{token.INT, "3"},
		{token.LBRACE, "{"},
		{token.ACTION, "R"},
		{token.ACTION, "R"},
		{token.RBRACE, "}"},
		{token.ACTION, "L"},
		{token.ACTION, "L"},
		{token.ACTION, "R"},
		{token.ACTION, "L"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - Literal wrong, expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "if wall { A } else { B } while hole{C} iffy elsewhere while_x x1_Y"
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.IF, "if"},
		{token.IDENT, "wall"},
		{token.LBRACE, "{"},
		{token.ACTION, "A"},
		{token.RBRACE, "}"},
		{token.ELSE, "else"},
		{token.LBRACE, "{"},
		{token.ACTION, "B"},
		{token.RBRACE, "}"},
		{token.WHILE, "while"},
		{token.IDENT, "hole"},
		{token.LBRACE, "{"},
		{token.ACTION, "C"},
		{token.RBRACE, "}"},
		{token.IDENT, "iffy"},
		{token.IDENT, "elsewhere"},
		{token.IDENT, "while_x"},
		{token.IDENT, "x1_Y"},
		{token.EOF, ""},
	}
	stream, err := Tokenize(input)
	require.NoError(t, err)
	require.Len(t, stream.Tokens(), len(tests))
	for i, tt := range tests {
		tok := stream.Tokens()[i]
		require.Equal(t, tt.expectedType, tok.Type, "tests[%d]", i)
		require.Equal(t, tt.expectedLiteral, tok.Literal, "tests[%d]", i)
	}
}

func TestKeywordFollowedByPunctuation(t *testing.T) {
	stream, err := Tokenize("if{")
	require.NoError(t, err)
	require.Equal(t, token.IF, stream.Tokens()[0].Type)
	require.Equal(t, token.LBRACE, stream.Tokens()[1].Type)
}

func TestShortForms(t *testing.T) {
	stream, err := Tokenize("A B sensor?{ C } ENQ(sensor){ D } ENQ E")
	require.NoError(t, err)
	var types []token.Type
	for _, tok := range stream.Tokens() {
		types = append(types, tok.Type)
	}
	require.Equal(t, []token.Type{
		token.ACTION, token.ACTION,
		token.IDENT, token.QUESTION, token.LBRACE, token.ACTION, token.RBRACE,
		token.WHILE, token.LPAREN, token.IDENT, token.RPAREN, token.LBRACE, token.ACTION, token.RBRACE,
		token.ACTION, token.ACTION, token.ACTION, token.ACTION,
		token.EOF,
	}, types)
	require.Equal(t, "ENQ", stream.Tokens()[7].Literal)
}

func TestLoopAliasAcrossWhitespace(t *testing.T) {
	stream, err := Tokenize("ENQ\n  (s){A}")
	require.NoError(t, err)
	require.Equal(t, token.WHILE, stream.Tokens()[0].Type)
	require.Equal(t, token.NewRange(token.Position{}, token.Position{Column: 3}), stream.Tokens()[0].Range)
}

func TestIntegerValues(t *testing.T) {
	stream, err := Tokenize("0 7 20 1234")
	require.NoError(t, err)
	var values []int
	for _, tok := range stream.Tokens() {
		if tok.Type == token.INT {
			values = append(values, tok.Value)
		}
	}
	require.Equal(t, []int{0, 7, 20, 1234}, values)
}

func TestIntegerValuesSaturate(t *testing.T) {
	for _, input := range []string{
		"9223372036854775808",
		"18446744073709551621",
		"000000000000000000000000000000000000000001000000000000000000000",
	} {
		stream, err := Tokenize(input)
		require.NoError(t, err)
		tok := stream.Tokens()[0]
		require.Equal(t, token.INT, tok.Type)
		require.Equal(t, input, tok.Literal)
		require.Equal(t, math.MaxInt, tok.Value, input)
	}

	stream, err := Tokenize("0000000000000000000000007")
	require.NoError(t, err)
	require.Equal(t, 7, stream.Tokens()[0].Value)
}

func TestPositions(t *testing.T) {
	input := "12{\n  obstacle\n}"
	stream, err := Tokenize(input)
	require.NoError(t, err)
	toks := stream.Tokens()
	require.Len(t, toks, 5)

	require.Equal(t, token.NewRange(token.Position{Line: 0, Column: 0}, token.Position{Line: 0, Column: 2}), toks[0].Range)
	require.Equal(t, token.NewRange(token.Position{Line: 0, Column: 2}, token.Position{Line: 0, Column: 3}), toks[1].Range)
	require.Equal(t, token.NewRange(token.Position{Line: 1, Column: 2}, token.Position{Line: 1, Column: 10}), toks[2].Range)
	require.Equal(t, token.NewRange(token.Position{Line: 2, Column: 0}, token.Position{Line: 2, Column: 1}), toks[3].Range)

	// EOF sits at the final position
	require.Equal(t, token.EOF, toks[4].Type)
	require.Equal(t, token.Position{Line: 2, Column: 1}, toks[4].Range.Begin)
}

func TestComments(t *testing.T) {
	stream, err := Tokenize("A # move forward { not code\nB")
	require.NoError(t, err)
	require.Len(t, stream.Tokens(), 3)
	require.Equal(t, "B", stream.Tokens()[1].Literal)
	require.Equal(t, 1, stream.Tokens()[1].Range.Begin.Line)
}

func TestEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \n\t", "# only a comment"} {
		stream, err := Tokenize(input)
		require.NoError(t, err)
		require.Len(t, stream.Tokens(), 1)
		require.True(t, stream.Ended())
	}
}

func TestLexicalErrors(t *testing.T) {
	tests := []struct {
		input string
		text  string
		begin token.Position
		width int
	}{
		{"A - B", "-", token.Position{Column: 2}, 1},
		{"A\n  @@", "@@", token.Position{Line: 1, Column: 2}, 2},
		{"A +++++++++++++", "++++++++++...", token.Position{Column: 2}, 10},
		{"A é", "é", token.Position{Column: 2}, 1},
	}
	for _, tt := range tests {
		_, err := Tokenize(tt.input)
		require.Error(t, err, tt.input)
		lexErr, ok := err.(*errors.Error)
		require.True(t, ok)
		require.Equal(t, errors.LexicalError, lexErr.Kind)
		require.Contains(t, lexErr.Message, tt.text)
		require.Equal(t, tt.begin, lexErr.Range.Begin)
		require.Equal(t, tt.begin.Advance(tt.width), lexErr.Range.End)
	}
}

func TestLexicalErrorLocale(t *testing.T) {
	_, err := Tokenize("$", WithLocale(errors.Portuguese))
	require.Error(t, err)
	require.Contains(t, err.Error(), "texto não reconhecido")
}

// Concatenating the literals of every token reproduces the source with
// whitespace removed.
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"2{ 3{R R} LLRL}",
		"A B sensor?{ C D E } else { F } G",
		"while (wall) { if hole { J } else { W } }",
		"A B ENQ(sensor){ C D E } F G",
	}
	for _, input := range inputs {
		stream, err := Tokenize(input)
		require.NoError(t, err)
		var b strings.Builder
		for _, tok := range stream.Tokens() {
			b.WriteString(tok.Literal)
		}
		stripped := strings.Join(strings.Fields(input), "")
		require.Equal(t, stripped, b.String())
	}
}
