package vm

import "github.com/gpoesia/loopye-sub000/ast"

// Event describes one interpreter state transition.
type Event struct {
	// Node is the node on top of the stack being processed.
	Node ast.Node

	// Depth is the number of nodes on the stack, including Node.
	Depth int
}

// Observer is notified synchronously of every state transition. This enables
// tracers, coverage tools and step debuggers without changing the
// interpreter. Implementations should be fast.
type Observer interface {
	// OnTransition returns false to halt execution immediately.
	OnTransition(event Event) bool
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event) bool

func (f ObserverFunc) OnTransition(event Event) bool { return f(event) }

// NoOpObserver is an Observer that does nothing.
type NoOpObserver struct{}

func (NoOpObserver) OnTransition(Event) bool { return true }

var (
	_ Observer = NoOpObserver{}
	_ Observer = ObserverFunc(nil)
)
