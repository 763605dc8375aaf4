package ast

import (
	"strconv"
	"strings"

	"github.com/gpoesia/loopye-sub000/internal/token"
)

// Program is a sequence of constructs. The root of every AST is a Program,
// and each Block wraps one.
type Program struct {
	Loc   token.Range
	Stmts []Node
}

func (p *Program) node() {}

func (p *Program) Type() NodeType        { return ProgramNode }
func (p *Program) Location() token.Range { return p.Loc }
func (p *Program) Children() []Node      { return p.Stmts }

func (p *Program) String() string {
	parts := make([]string, len(p.Stmts))
	for i, stmt := range p.Stmts {
		parts[i] = stmt.String()
	}
	return strings.Join(parts, " ")
}

// Block is a Program delimited by "{" and "}".
type Block struct {
	Loc  token.Range
	Body *Program
}

func (b *Block) node() {}

func (b *Block) Type() NodeType        { return BlockNode }
func (b *Block) Location() token.Range { return b.Loc }
func (b *Block) Children() []Node      { return []Node{b.Body} }

func (b *Block) String() string {
	if len(b.Body.Stmts) == 0 {
		return "{ }"
	}
	return "{ " + b.Body.String() + " }"
}

// Loop repeats its body a fixed number of times: "3 { A }".
type Loop struct {
	Loc       token.Range
	TripCount int
	Body      *Block
}

func (l *Loop) node() {}

func (l *Loop) Type() NodeType        { return LoopNode }
func (l *Loop) Location() token.Range { return l.Loc }
func (l *Loop) Children() []Node      { return []Node{l.Body} }

func (l *Loop) String() string {
	return strconv.Itoa(l.TripCount) + " " + l.Body.String()
}

// Conditional runs Then when the sensor Variable is truthy, and Else (which
// may be nil) otherwise.
type Conditional struct {
	Loc      token.Range
	Variable string
	Then     *Block
	Else     *Block
}

func (c *Conditional) node() {}

func (c *Conditional) Type() NodeType        { return ConditionalNode }
func (c *Conditional) Location() token.Range { return c.Loc }

func (c *Conditional) Children() []Node {
	if c.Else == nil {
		return []Node{c.Then}
	}
	return []Node{c.Then, c.Else}
}

func (c *Conditional) String() string {
	out := "if " + c.Variable + " " + c.Then.String()
	if c.Else != nil {
		out += " else " + c.Else.String()
	}
	return out
}

// ConditionalLoop repeats its body while the sensor Variable is truthy. The
// sensor is read again before every iteration.
type ConditionalLoop struct {
	Loc      token.Range
	Variable string
	Body     *Block
}

func (c *ConditionalLoop) node() {}

func (c *ConditionalLoop) Type() NodeType        { return ConditionalLoopNode }
func (c *ConditionalLoop) Location() token.Range { return c.Loc }
func (c *ConditionalLoop) Children() []Node      { return []Node{c.Body} }

func (c *ConditionalLoop) String() string {
	return "while " + c.Variable + " " + c.Body.String()
}

// Action is a single uppercase letter whose meaning is defined by the host.
type Action struct {
	Loc  token.Range
	Name string
}

func (a *Action) node() {}

func (a *Action) Type() NodeType        { return ActionNode }
func (a *Action) Location() token.Range { return a.Loc }
func (a *Action) Children() []Node      { return nil }
func (a *Action) String() string        { return a.Name }
