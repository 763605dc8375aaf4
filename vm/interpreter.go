// Package vm runs Robolang syntax trees one action at a time.
//
// The Interpreter keeps its traversal state in explicit stacks rather than
// on the Go call stack, so execution can stop after any action and resume
// later from exactly that point. A host typically calls RunUntilNextAction
// once per game tick, updating sensor values in the scope in between.
package vm

import (
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/gpoesia/loopye-sub000/analysis"
	"github.com/gpoesia/loopye-sub000/ast"
	"github.com/gpoesia/loopye-sub000/errors"
	"github.com/gpoesia/loopye-sub000/internal/token"
	"github.com/gpoesia/loopye-sub000/scope"
	"github.com/rs/zerolog"
)

const (
	DefaultMaxTransitions = 1_000_000
	DefaultMaxActions     = 10_000
)

// Interpreter executes a program step by step. It is not safe for
// concurrent use, and the scope must only be changed between calls.
type Interpreter struct {
	program *ast.Program
	scope   *scope.Scope
	session string
	log     zerolog.Logger
	locale  errors.Locale

	// nodes is the path from the root to the node being visited. childIdx
	// holds the next child index of each open Program or Block, and
	// loopCounters the completed iterations of each open Loop, both in the
	// order their nodes appear in nodes.
	nodes        []ast.Node
	childIdx     []int
	loopCounters []int

	lastAction     *ast.Action
	pending        *ast.Action
	transitions    int
	maxTransitions int
	maxActions     int
	observer       Observer
}

// New returns an Interpreter positioned at the start of program.
func New(program *ast.Program, options ...Option) *Interpreter {
	in := &Interpreter{
		program:        program,
		session:        uuid.Must(uuid.NewV4()).String(),
		log:            zerolog.Nop(),
		locale:         errors.DefaultLocale,
		maxTransitions: -1,
		maxActions:     DefaultMaxActions,
	}
	for _, opt := range options {
		opt(in)
	}
	if in.maxTransitions < 0 {
		in.maxTransitions = DefaultMaxTransitions
		if program != nil {
			in.maxTransitions = max(in.maxTransitions, analysis.TransitionBound(program))
		}
	}
	if in.scope == nil {
		in.scope = scope.New(nil)
	}
	in.log = in.log.With().Str("session", in.session).Logger()
	in.Reset()
	return in
}

// Scope returns the scope sensor values are read from.
func (in *Interpreter) Scope() *scope.Scope {
	return in.scope
}

// Program returns the program being executed.
func (in *Interpreter) Program() *ast.Program {
	return in.program
}

// Session returns an identifier unique to this interpreter, attached to all
// of its log entries.
func (in *Interpreter) Session() string {
	return in.session
}

// Reset restarts execution from the beginning of the program. The scope is
// left untouched.
func (in *Interpreter) Reset() {
	in.nodes = in.nodes[:0]
	in.childIdx = in.childIdx[:0]
	in.loopCounters = in.loopCounters[:0]
	in.lastAction = nil
	in.pending = nil
	in.transitions = 0
	if in.program != nil {
		in.push(in.program)
	}
}

// Done reports whether the program has finished.
func (in *Interpreter) Done() bool {
	return len(in.nodes) == 0 && in.pending == nil
}

// Transitions returns the total number of state transitions made since the
// last Reset.
func (in *Interpreter) Transitions() int {
	return in.transitions
}

// CurrentLocation returns the source range of the most recently returned
// action. The second result is false if no action has run yet.
func (in *Interpreter) CurrentLocation() (token.Range, bool) {
	if in.lastAction == nil {
		return token.Range{}, false
	}
	return in.lastAction.Loc, true
}

// RunUntilNextAction advances execution until the next action and returns
// its name. It returns "" with a nil error once the program has finished.
//
// Reading a sensor that is not bound in the scope fails with a runtime
// *errors.Error. The interpreter stays at the failing conditional, so a
// later call retries it after the host has bound the sensor.
func (in *Interpreter) RunUntilNextAction() (string, error) {
	if action := in.pending; action != nil {
		in.pending = nil
		in.lastAction = action
		return action.Name, nil
	}
	budget := in.maxTransitions
	for steps := 0; len(in.nodes) > 0; steps++ {
		if budget > 0 && steps >= budget {
			return "", ErrNoProgress
		}
		node := in.nodes[len(in.nodes)-1]
		in.transitions++
		if in.log.GetLevel() <= zerolog.TraceLevel {
			in.log.Trace().
				Str("node", node.Type().String()).
				Int("depth", len(in.nodes)).
				Stringer("loc", node.Location()).
				Msg("transition")
		}
		if in.observer != nil && !in.observer.OnTransition(Event{Node: node, Depth: len(in.nodes)}) {
			return "", ErrHalted
		}
		switch node := node.(type) {
		case *ast.Program, *ast.Block:
			top := len(in.childIdx) - 1
			children := node.Children()
			if in.childIdx[top] == len(children) {
				in.pop()
				continue
			}
			next := children[in.childIdx[top]]
			in.childIdx[top]++
			in.push(next)
		case *ast.Loop:
			top := len(in.loopCounters) - 1
			if in.loopCounters[top] < node.TripCount {
				in.loopCounters[top]++
				in.push(node.Body)
			} else {
				in.pop()
			}
		case *ast.Conditional:
			value, err := in.lookup(node, node.Variable)
			if err != nil {
				return "", err
			}
			in.pop()
			if scope.Truthy(value) {
				in.push(node.Then)
			} else if node.Else != nil {
				in.push(node.Else)
			}
		case *ast.ConditionalLoop:
			value, err := in.lookup(node, node.Variable)
			if err != nil {
				return "", err
			}
			if scope.Truthy(value) {
				in.push(node.Body)
			} else {
				in.pop()
			}
		case *ast.Action:
			in.pop()
			in.lastAction = node
			in.log.Debug().
				Str("action", node.Name).
				Stringer("loc", node.Loc).
				Msg("action")
			return node.Name, nil
		default:
			return "", fmt.Errorf("vm: unexpected node type %T", node)
		}
	}
	return "", nil
}

// Run executes the program to completion and returns every action produced.
// Sensor values cannot change during Run, so it suits programs whose
// branching does not depend on the effect of their own actions. On error, the
// actions produced so far are returned along with it. When the action limit
// is reached, the action that would exceed it is kept for the next
// RunUntilNextAction call.
func (in *Interpreter) Run() ([]string, error) {
	var actions []string
	for {
		previous := in.lastAction
		action, err := in.RunUntilNextAction()
		if err != nil {
			return actions, err
		}
		if action == "" {
			return actions, nil
		}
		if in.maxActions > 0 && len(actions) >= in.maxActions {
			// Hand the action back to the next RunUntilNextAction call.
			in.pending, in.lastAction = in.lastAction, previous
			return actions, ErrActionLimit
		}
		actions = append(actions, action)
	}
}

func (in *Interpreter) lookup(node ast.Node, name string) (any, error) {
	value, ok := in.scope.Lookup(name)
	if ok {
		return value, nil
	}
	err := errors.Newf(in.locale, errors.UndeclaredVariable, node.Location(),
		errors.MsgUndeclaredVariable, name)
	err.Hint = in.locale.FormatSuggestions(errors.SuggestSimilar(name, in.scope.Names()))
	return nil, err
}

func (in *Interpreter) push(node ast.Node) {
	in.nodes = append(in.nodes, node)
	switch node.(type) {
	case *ast.Program, *ast.Block:
		in.childIdx = append(in.childIdx, 0)
	case *ast.Loop:
		in.loopCounters = append(in.loopCounters, 0)
	}
}

func (in *Interpreter) pop() {
	node := in.nodes[len(in.nodes)-1]
	in.nodes = in.nodes[:len(in.nodes)-1]
	switch node.(type) {
	case *ast.Program, *ast.Block:
		in.childIdx = in.childIdx[:len(in.childIdx)-1]
	case *ast.Loop:
		in.loopCounters = in.loopCounters[:len(in.loopCounters)-1]
	}
}
