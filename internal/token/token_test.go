package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupIdentifier(t *testing.T) {
	require.Equal(t, IF, LookupIdentifier("if"))
	require.Equal(t, ELSE, LookupIdentifier("else"))
	require.Equal(t, WHILE, LookupIdentifier("while"))
	require.Equal(t, IDENT, LookupIdentifier("iffy"))
	require.Equal(t, IDENT, LookupIdentifier("obstacle"))
}

func TestPositionHelpers(t *testing.T) {
	p := Position{Line: 2, Column: 4}
	require.Equal(t, 3, p.LineNumber())
	require.Equal(t, 5, p.ColumnNumber())
	require.Equal(t, Position{Line: 2, Column: 7}, p.Advance(3))
	require.True(t, p.Before(Position{Line: 2, Column: 5}))
	require.True(t, p.Before(Position{Line: 3, Column: 0}))
	require.False(t, p.Before(p))
	require.Equal(t, "3:5", p.String())
}

func TestRangeAtAndJoin(t *testing.T) {
	r := At(Position{Line: 0, Column: 3})
	require.Equal(t, Position{Line: 0, Column: 4}, r.End)

	other := NewRange(Position{Line: 1, Column: 0}, Position{Line: 1, Column: 2})
	joined := r.Join(other)
	require.Equal(t, Position{Line: 0, Column: 3}, joined.Begin)
	require.Equal(t, Position{Line: 1, Column: 2}, joined.End)
}

func TestStream(t *testing.T) {
	a := Token{Type: ACTION, Literal: "A", Range: At(Position{Column: 0})}
	b := Token{Type: ACTION, Literal: "B", Range: At(Position{Column: 2})}
	s := NewStream([]Token{a, b})

	require.Equal(t, 3, s.Len())
	require.Equal(t, EOF, s.Tokens()[2].Type)
	require.Equal(t, Position{Column: 3}, s.Tokens()[2].Range.Begin)

	require.False(t, s.Ended())
	require.Equal(t, a.Range, s.CurrentLocation())
	require.Equal(t, "B", s.Peek(1).Literal)
	require.Equal(t, EOF, s.Peek(10).Type)

	tok, err := s.Expect(ACTION)
	require.NoError(t, err)
	require.Equal(t, "A", tok.Literal)
	require.Equal(t, a.Range, s.CurrentLocation())
	require.Equal(t, b.Range, s.NextLocation())

	_, err = s.Expect(LBRACE)
	require.Error(t, err)
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, LBRACE, mismatch.Expected)
	require.Equal(t, "B", mismatch.Found.Literal)
	require.Equal(t, `expected "{", found B`, err.Error())

	s.Next()
	require.True(t, s.Ended())
	require.Equal(t, EOF, s.Next().Type)
	require.True(t, s.Ended())
}

func TestEmptyStream(t *testing.T) {
	s := NewStream(nil)
	require.Equal(t, 1, s.Len())
	require.True(t, s.Ended())
	require.Equal(t, Range{End: Position{Column: 1}}, s.CurrentLocation())
}
