// Package token defines the tokens produced when lexing Robolang source code.
package token

import "fmt"

// Type describes the type of a token as a string.
type Type string

// Position points to a particular location in an input string.
type Position struct {
	Line   int // 0-indexed line number
	Column int // 0-indexed column number
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Advance returns a new Position advanced by n columns.
// Note: This assumes the advance does not cross line boundaries.
func (p Position) Advance(n int) Position {
	return Position{Line: p.Line, Column: p.Column + n}
}

// Before reports whether p comes strictly before q in the input.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.LineNumber(), p.ColumnNumber())
}

// Range is the half-open interval [Begin, End) of source positions.
type Range struct {
	Begin Position
	End   Position
}

// NewRange returns the range [begin, end).
func NewRange(begin, end Position) Range {
	return Range{Begin: begin, End: end}
}

// At returns the one-column range starting at begin.
func At(begin Position) Range {
	return Range{Begin: begin, End: begin.Advance(1)}
}

// Join returns the smallest range covering both r and other.
func (r Range) Join(other Range) Range {
	out := r
	if other.Begin.Before(out.Begin) {
		out.Begin = other.Begin
	}
	if out.End.Before(other.End) {
		out.End = other.End
	}
	return out
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Begin, r.End)
}

// Token represents one token lexed from the input source code.
type Token struct {
	Type    Type
	Literal string // source text of the token
	Value   int    // parsed value of INT tokens
	Range   Range
}

func (t Token) String() string {
	if t.Type == EOF {
		return "end of file"
	}
	return t.Literal
}

// Token types
const (
	ACTION   Type = "ACTION"
	IDENT    Type = "IDENT"
	INT      Type = "INT"
	LBRACE   Type = "{"
	RBRACE   Type = "}"
	LPAREN   Type = "("
	RPAREN   Type = ")"
	QUESTION Type = "?"
	IF       Type = "IF"
	ELSE     Type = "ELSE"
	WHILE    Type = "WHILE"
	EOF      Type = "EOF"
)

// LoopAlias is the short uppercase form of the conditional-loop keyword. It
// only counts as a keyword when the next non-space character is "(".
const LoopAlias = "ENQ"

// Reserved keywords
var keywords = map[string]Type{
	"else":  ELSE,
	"if":    IF,
	"while": WHILE,
}

// LookupIdentifier used to determinate whether identifier is keyword nor not
func LookupIdentifier(identifier string) Type {
	if tok, ok := keywords[identifier]; ok {
		return tok
	}
	return IDENT
}

// Keywords returns the reserved lowercase words.
func Keywords() []string {
	return []string{"else", "if", "while"}
}

// Describe returns a human friendly name for a token type.
func Describe(t Type) string {
	switch t {
	case EOF:
		return "end of file"
	case IDENT:
		return "sensor name"
	case ACTION:
		return "action"
	case INT:
		return "number"
	case IF:
		return "if"
	case ELSE:
		return "else"
	case WHILE:
		return "while"
	default:
		return fmt.Sprintf("%q", string(t))
	}
}
