// Package analysis implements static checks over Robolang syntax trees.
package analysis

import (
	"math"

	"github.com/gpoesia/loopye-sub000/ast"
)

// CountNodeTypes returns how many nodes of each type appear in the tree
// rooted at root, including the Program and Block wrappers. Types that do
// not occur are absent from the map.
func CountNodeTypes(root ast.Node) map[ast.NodeType]int {
	counts := map[ast.NodeType]int{}
	for node := range ast.Postorder(root) {
		counts[node.Type()]++
	}
	return counts
}

// MaxLoopTripCount returns the largest trip count of any Loop in the tree,
// or 0 if the tree has no loops.
func MaxLoopTripCount(root ast.Node) int {
	maxTrips := 0
	for node := range ast.Postorder(root) {
		if loop, ok := node.(*ast.Loop); ok && loop.TripCount > maxTrips {
			maxTrips = loop.TripCount
		}
	}
	return maxTrips
}

// TransitionBound returns an upper bound on the number of interpreter
// transitions between two consecutive actions of the tree rooted at root.
// Conditional loops count as two passes over their body, so the bound does
// not hold for a conditional loop that keeps iterating without producing an
// action. Results saturate at math.MaxInt.
func TransitionBound(root ast.Node) int {
	switch node := root.(type) {
	case nil:
		return 0
	case *ast.Action:
		return 1
	case *ast.Loop:
		body := TransitionBound(node.Body)
		return addSat(addSat(node.TripCount, 1), mulSat(node.TripCount, body))
	case *ast.Conditional:
		branch := TransitionBound(node.Then)
		if node.Else != nil {
			branch = max(branch, TransitionBound(node.Else))
		}
		return addSat(1, branch)
	case *ast.ConditionalLoop:
		return addSat(2, mulSat(2, TransitionBound(node.Body)))
	default:
		children := node.Children()
		total := len(children) + 1
		for _, child := range children {
			total = addSat(total, TransitionBound(child))
		}
		return total
	}
}

func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func mulSat(a, b int) int {
	if a != 0 && b > math.MaxInt/a {
		return math.MaxInt
	}
	return a * b
}
