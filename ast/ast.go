// Package ast defines the abstract syntax tree representation of Robolang
// code. The set of node types is closed: every node is one of Program, Block,
// Loop, Conditional, ConditionalLoop or Action.
package ast

import (
	"fmt"
	"strings"

	"github.com/gpoesia/loopye-sub000/internal/token"
)

// NodeType identifies the kind of a Node.
type NodeType int

const (
	ProgramNode NodeType = iota
	BlockNode
	LoopNode
	ConditionalNode
	ConditionalLoopNode
	ActionNode
)

var nodeTypeNames = [...]string{
	ProgramNode:         "Program",
	BlockNode:           "Block",
	LoopNode:            "Loop",
	ConditionalNode:     "Conditional",
	ConditionalLoopNode: "ConditionalLoop",
	ActionNode:          "Action",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
	return nodeTypeNames[t]
}

// ParseNodeType returns the NodeType with the given name, ignoring case.
func ParseNodeType(name string) (NodeType, bool) {
	for i, n := range nodeTypeNames {
		if strings.EqualFold(n, name) {
			return NodeType(i), true
		}
	}
	return 0, false
}

// NodeTypes returns every node type in declaration order.
func NodeTypes() []NodeType {
	types := make([]NodeType, len(nodeTypeNames))
	for i := range nodeTypeNames {
		types[i] = NodeType(i)
	}
	return types
}

// Node represents a portion of the syntax tree. All nodes have location
// information indicating where they appear in the source code.
type Node interface {
	// Type returns the kind of the node.
	Type() NodeType

	// Location returns the source range spanned by the node.
	Location() token.Range

	// Children returns the node's children in source order.
	Children() []Node

	// String returns the canonical source form of the node.
	String() string

	node()
}
