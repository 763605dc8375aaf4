// Package lexer converts Robolang source text into a stream of tokens.
package lexer

import (
	"math"
	"strconv"
	"strings"

	"github.com/gpoesia/loopye-sub000/errors"
	"github.com/gpoesia/loopye-sub000/internal/token"
)

// maxErrorText is the number of characters of unrecognized text quoted in a
// lexical error.
const maxErrorText = 10

// Option is a configuration function for a Lexer.
type Option func(*Lexer)

// WithLocale sets the language of lexical error messages.
func WithLocale(locale errors.Locale) Option {
	return func(l *Lexer) {
		l.locale = locale
	}
}

// Lexer scans Robolang source one token at a time.
type Lexer struct {
	input  []rune
	pos    int
	line   int
	column int
	locale errors.Locale
}

// New returns a Lexer for the given input.
func New(input string, options ...Option) *Lexer {
	l := &Lexer{input: []rune(input), locale: errors.DefaultLocale}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// Tokenize lexes the whole input. The returned stream always ends with
// exactly one EOF token.
func Tokenize(input string, options ...Option) (*token.Stream, error) {
	l := New(input, options...)
	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return token.NewStream(tokens), nil
		}
	}
}

// Position returns the position of the cursor.
func (l *Lexer) Position() token.Position {
	return token.Position{Line: l.line, Column: l.column}
}

// Next returns the next token. Once the input is exhausted it keeps
// returning EOF tokens positioned at the end of the input.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespace()
	start := l.Position()
	if l.pos >= len(l.input) {
		return token.Token{Type: token.EOF, Range: token.At(start)}, nil
	}
	ch := l.input[l.pos]
	switch {
	case ch == '{':
		return l.punct(token.LBRACE), nil
	case ch == '}':
		return l.punct(token.RBRACE), nil
	case ch == '(':
		return l.punct(token.LPAREN), nil
	case ch == ')':
		return l.punct(token.RPAREN), nil
	case ch == '?':
		return l.punct(token.QUESTION), nil
	case isLower(ch):
		word := l.readWhile(isWordChar)
		return l.token(token.LookupIdentifier(word), word, start), nil
	case isUpper(ch):
		if l.atLoopAlias() {
			l.advance(len(token.LoopAlias))
			return l.token(token.WHILE, token.LoopAlias, start), nil
		}
		l.advance(1)
		return l.token(token.ACTION, string(ch), start), nil
	case isDigit(ch):
		digits := l.readWhile(isDigit)
		tok := l.token(token.INT, digits, start)
		tok.Value = parseCount(digits)
		return tok, nil
	default:
		return token.Token{}, l.unrecognized(start)
	}
}

func (l *Lexer) token(t token.Type, literal string, start token.Position) token.Token {
	return token.Token{
		Type:    t,
		Literal: literal,
		Range:   token.NewRange(start, l.Position()),
	}
}

func (l *Lexer) punct(t token.Type) token.Token {
	start := l.Position()
	l.advance(1)
	return l.token(t, string(t), start)
}

// advance moves the cursor n runes forward, tracking line and column.
func (l *Lexer) advance(n int) {
	for i := 0; i < n && l.pos < len(l.input); i++ {
		if l.input[l.pos] == '\n' {
			l.line++
			l.column = 0
		} else {
			l.column++
		}
		l.pos++
	}
}

func (l *Lexer) readWhile(pred func(rune) bool) string {
	start := l.pos
	for l.pos < len(l.input) && pred(l.input[l.pos]) {
		l.advance(1)
	}
	return string(l.input[start:l.pos])
}

// skipWhitespace skips whitespace and "#" comments, which run to the end
// of the line.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch ch := l.input[l.pos]; {
		case isSpace(ch):
			l.advance(1)
		case ch == '#':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.advance(1)
			}
		default:
			return
		}
	}
}

// atLoopAlias reports whether the cursor sits on "ENQ" followed, after
// optional whitespace, by "(".
func (l *Lexer) atLoopAlias() bool {
	end := l.pos + len(token.LoopAlias)
	if end > len(l.input) || string(l.input[l.pos:end]) != token.LoopAlias {
		return false
	}
	for i := end; i < len(l.input); i++ {
		if !isSpace(l.input[i]) {
			return l.input[i] == '('
		}
	}
	return false
}

func (l *Lexer) unrecognized(start token.Position) *errors.Error {
	var text strings.Builder
	n := 0
	for i := l.pos; i < len(l.input) && !isSpace(l.input[i]); i++ {
		if n == maxErrorText {
			text.WriteString("...")
			break
		}
		text.WriteRune(l.input[i])
		n++
	}
	rng := token.NewRange(start, start.Advance(n))
	return errors.Newf(l.locale, errors.LexicalError, rng, errors.MsgUnrecognizedText, text.String())
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isLower(ch rune) bool {
	return 'a' <= ch && ch <= 'z'
}

func isUpper(ch rune) bool {
	return 'A' <= ch && ch <= 'Z'
}

// parseCount converts a run of decimal digits, saturating at math.MaxInt so
// that oversized counts still exceed any trip-count ceiling.
func parseCount(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt
	}
	return n
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isWordChar(ch rune) bool {
	return isLower(ch) || isUpper(ch) || isDigit(ch) || ch == '_'
}
