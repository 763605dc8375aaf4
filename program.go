package robolang

import (
	"encoding/hex"
	"maps"

	"github.com/gpoesia/loopye-sub000/analysis"
	"github.com/gpoesia/loopye-sub000/ast"
	"github.com/gpoesia/loopye-sub000/parser"
	"github.com/zeebo/blake3"
)

// Program is a compiled Robolang program.
// It is immutable after creation and safe for concurrent use.
type Program struct {
	root        *ast.Program
	source      string
	ctx         *parser.Context
	counts      map[ast.NodeType]int
	maxTrips    int
	fingerprint string
}

func newProgram(root *ast.Program, source string, ctx *parser.Context) *Program {
	sum := blake3.Sum256([]byte(root.String()))
	return &Program{
		root:        root,
		source:      source,
		ctx:         ctx,
		counts:      analysis.CountNodeTypes(root),
		maxTrips:    analysis.MaxLoopTripCount(root),
		fingerprint: hex.EncodeToString(sum[:]),
	}
}

// Root returns the root of the syntax tree. Callers must not modify it.
func (p *Program) Root() *ast.Program {
	return p.root
}

// Source returns the source code that was compiled.
func (p *Program) Source() string {
	return p.source
}

// Actions returns the actions the program was compiled against.
func (p *Program) Actions() []string {
	return p.ctx.Actions()
}

// Sensors returns the sensors the program was compiled against.
func (p *Program) Sensors() []string {
	return p.ctx.Sensors()
}

// Fingerprint returns a hex digest of the program's canonical form. Sources
// that differ only in layout or comments share a fingerprint.
func (p *Program) Fingerprint() string {
	return p.fingerprint
}

// NodeCounts returns the number of nodes of each type in the program.
func (p *Program) NodeCounts() map[ast.NodeType]int {
	return maps.Clone(p.counts)
}

// MaxLoopTripCount returns the largest loop trip count, or 0 if the program
// has no loops.
func (p *Program) MaxLoopTripCount() int {
	return p.maxTrips
}

// String returns the program's canonical source.
func (p *Program) String() string {
	return p.root.String()
}
