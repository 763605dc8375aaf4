package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func block(stmts ...Node) *Block {
	return &Block{Body: &Program{Stmts: stmts}}
}

func action(name string) *Action {
	return &Action{Name: name}
}

// 2 { if wall { L } else { R } } while hole { J } F
func sampleProgram() *Program {
	return &Program{Stmts: []Node{
		&Loop{TripCount: 2, Body: block(
			&Conditional{Variable: "wall", Then: block(action("L")), Else: block(action("R"))},
		)},
		&ConditionalLoop{Variable: "hole", Body: block(action("J"))},
		action("F"),
	}}
}

func TestString(t *testing.T) {
	require.Equal(t, "2 { if wall { L } else { R } } while hole { J } F", sampleProgram().String())
	require.Equal(t, "{ }", block().String())
	require.Equal(t, "if s { A }", (&Conditional{Variable: "s", Then: block(action("A"))}).String())
	require.Equal(t, "", (&Program{}).String())
}

func TestChildren(t *testing.T) {
	cond := &Conditional{Variable: "s", Then: block(action("A"))}
	require.Len(t, cond.Children(), 1)
	cond.Else = block()
	require.Len(t, cond.Children(), 2)

	b := block(action("A"))
	require.Equal(t, []Node{b.Body}, b.Children())
	require.Nil(t, action("A").Children())
}

func TestNodeTypeNames(t *testing.T) {
	names := []string{}
	for _, typ := range NodeTypes() {
		names = append(names, typ.String())
		parsed, ok := ParseNodeType(typ.String())
		require.True(t, ok)
		require.Equal(t, typ, parsed)
	}
	require.Equal(t, []string{"Program", "Block", "Loop", "Conditional", "ConditionalLoop", "Action"}, names)
	require.Equal(t, "NodeType(42)", NodeType(42).String())
	parsed, ok := ParseNodeType("conditionalloop")
	require.True(t, ok)
	require.Equal(t, ConditionalLoopNode, parsed)
	_, ok = ParseNodeType("Function")
	require.False(t, ok)
}

func typesOf(nodes []Node) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, n.Type().String())
	}
	return out
}

func TestPreorder(t *testing.T) {
	var nodes []Node
	for n := range Preorder(sampleProgram()) {
		nodes = append(nodes, n)
	}
	require.Equal(t, []string{
		"Program",
		"Loop", "Block", "Program",
		"Conditional", "Block", "Program", "Action", "Block", "Program", "Action",
		"ConditionalLoop", "Block", "Program", "Action",
		"Action",
	}, typesOf(nodes))
}

func TestPostorder(t *testing.T) {
	var nodes []Node
	for n := range Postorder(sampleProgram()) {
		nodes = append(nodes, n)
	}
	require.Equal(t, []string{
		"Action", "Program", "Block", "Action", "Program", "Block", "Conditional",
		"Program", "Block", "Loop",
		"Action", "Program", "Block", "ConditionalLoop",
		"Action",
		"Program",
	}, typesOf(nodes))
}

func TestIteratorEarlyStop(t *testing.T) {
	count := 0
	for range Postorder(sampleProgram()) {
		count++
		if count == 3 {
			break
		}
	}
	require.Equal(t, 3, count)
}

func TestInspectSkipsChildren(t *testing.T) {
	var visited []string
	Inspect(sampleProgram(), func(n Node) bool {
		visited = append(visited, n.Type().String())
		return n.Type() != LoopNode
	})
	require.Equal(t, []string{
		"Program", "Loop",
		"ConditionalLoop", "Block", "Program", "Action",
		"Action",
	}, visited)
}
