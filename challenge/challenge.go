// Package challenge describes the puzzles a learner solves with Robolang.
// Each challenge fixes the capability set programs are compiled against and
// may require solutions to use certain constructs.
package challenge

import (
	"fmt"

	robolang "github.com/gpoesia/loopye-sub000"
	"github.com/gpoesia/loopye-sub000/ast"
)

// Challenge is one puzzle.
type Challenge struct {
	ID      string
	Title   string
	Actions []string
	Sensors []string

	// Require maps node types to the minimum number of times a solution
	// must use them.
	Require map[ast.NodeType]int
}

// Requirement is a construct requirement a program did not meet.
type Requirement struct {
	Type  ast.NodeType
	Min   int
	Found int
}

func (r Requirement) String() string {
	return fmt.Sprintf("use at least %d %s (found %d)", r.Min, r.Type, r.Found)
}

// Compile compiles source against the challenge's capability set.
func (c *Challenge) Compile(source string, opts ...robolang.Option) (*robolang.Program, error) {
	return robolang.Compile(source, c.Actions, c.Sensors, opts...)
}

// Check returns the requirements program does not meet, ordered by node
// type. An empty result means the program uses every required construct.
func (c *Challenge) Check(program *robolang.Program) []Requirement {
	counts := program.NodeCounts()
	var unmet []Requirement
	for _, typ := range ast.NodeTypes() {
		want, ok := c.Require[typ]
		if !ok || counts[typ] >= want {
			continue
		}
		unmet = append(unmet, Requirement{Type: typ, Min: want, Found: counts[typ]})
	}
	return unmet
}
