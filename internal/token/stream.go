package token

import "fmt"

// MismatchError is returned by Stream.Expect when the next token does not
// have the expected type.
type MismatchError struct {
	Expected Type
	Found    Token
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("expected %s, found %s", Describe(e.Expected), e.Found)
}

// Stream is a cursor over an immutable list of tokens. The last token is
// always EOF.
type Stream struct {
	tokens []Token
	pos    int
}

// NewStream returns a stream over tokens. An EOF token is appended if the
// list does not already end with one.
func NewStream(tokens []Token) *Stream {
	if n := len(tokens); n == 0 || tokens[n-1].Type != EOF {
		var end Position
		if n > 0 {
			end = tokens[n-1].Range.End
		}
		tokens = append(tokens, Token{Type: EOF, Range: At(end)})
	}
	return &Stream{tokens: tokens}
}

// Tokens returns every token in the stream, including EOF.
func (s *Stream) Tokens() []Token {
	return s.tokens
}

// Len returns the number of tokens, including EOF.
func (s *Stream) Len() int {
	return len(s.tokens)
}

// Ended reports whether only the EOF token remains.
func (s *Stream) Ended() bool {
	return s.pos >= len(s.tokens)-1
}

// Peek returns the token n positions ahead of the cursor without consuming
// anything. Peeking past the end yields the EOF token.
func (s *Stream) Peek(n int) Token {
	i := s.pos + n
	if i >= len(s.tokens) {
		i = len(s.tokens) - 1
	}
	return s.tokens[i]
}

// PeekIs reports whether the next token has type t.
func (s *Stream) PeekIs(t Type) bool {
	return s.Peek(0).Type == t
}

// Next consumes and returns the next token. The EOF token is never consumed.
func (s *Stream) Next() Token {
	tok := s.Peek(0)
	if !s.Ended() {
		s.pos++
	}
	return tok
}

// Expect consumes the next token if it has type t.
func (s *Stream) Expect(t Type) (Token, error) {
	tok := s.Peek(0)
	if tok.Type != t {
		return tok, &MismatchError{Expected: t, Found: tok}
	}
	return s.Next(), nil
}

// CurrentLocation returns the location of the last consumed token, or the
// location of the first token when nothing was consumed yet.
func (s *Stream) CurrentLocation() Range {
	if s.pos == 0 {
		return s.tokens[0].Range
	}
	return s.tokens[s.pos-1].Range
}

// NextLocation returns the location of the next token.
func (s *Stream) NextLocation() Range {
	return s.Peek(0).Range
}
