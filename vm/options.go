package vm

import (
	"github.com/gpoesia/loopye-sub000/errors"
	"github.com/gpoesia/loopye-sub000/scope"
	"github.com/rs/zerolog"
)

// Option is a configuration function for an Interpreter.
type Option func(*Interpreter)

// WithScope sets the scope sensor values are read from. By default each
// Interpreter creates its own empty root scope.
func WithScope(s *scope.Scope) Option {
	return func(in *Interpreter) {
		in.scope = s
	}
}

// WithLogger sets the logger used for execution tracing. Actions are logged
// at debug level and every state transition at trace level.
func WithLogger(logger zerolog.Logger) Option {
	return func(in *Interpreter) {
		in.log = logger
	}
}

// WithMaxTransitions bounds the number of state transitions a single
// RunUntilNextAction call may make before giving up with ErrNoProgress.
// A value of 0 removes the bound. By default the bound is the larger of
// DefaultMaxTransitions and analysis.TransitionBound of the program, so
// programs made only of counted loops always reach their next action.
func WithMaxTransitions(n int) Option {
	return func(in *Interpreter) {
		in.maxTransitions = n
	}
}

// WithMaxActions bounds the number of actions Run collects before failing
// with ErrActionLimit. A value of 0 removes the bound. The default is
// DefaultMaxActions.
func WithMaxActions(n int) Option {
	return func(in *Interpreter) {
		in.maxActions = n
	}
}

// WithObserver sets an observer that is notified of every state transition.
// Returning false from the observer halts execution with ErrHalted.
func WithObserver(observer Observer) Option {
	return func(in *Interpreter) {
		in.observer = observer
	}
}

// WithLocale sets the language of runtime error messages.
func WithLocale(locale errors.Locale) Option {
	return func(in *Interpreter) {
		in.locale = locale
	}
}
