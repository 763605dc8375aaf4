package robolang

import (
	stderrors "errors"

	"github.com/gpoesia/loopye-sub000/errors"
	"github.com/gpoesia/loopye-sub000/internal/token"
	"github.com/gpoesia/loopye-sub000/scope"
	"github.com/gpoesia/loopye-sub000/vm"
)

// ErrNoProgram is returned when an interpreter is run before a program has
// been successfully parsed.
var ErrNoProgram = stderrors.New("no program loaded")

// Interpreter is the contract a game runner drives. Hosts parse the
// learner's code once, then call RunUntilNextAction once per tick,
// highlighting CurrentLocation as each action plays out.
type Interpreter interface {
	// Parse compiles code and prepares it for execution. The error is an
	// *errors.List describing every problem found.
	Parse(code string, actions, sensors []string) error

	// RunUntilNextAction returns the next action, or "" once the program
	// has finished.
	RunUntilNextAction() (string, error)

	// CurrentLocation returns the source range of the last action returned.
	CurrentLocation() (token.Range, bool)
}

// Robolang is the Interpreter for Robolang programs. Sensor values live in
// a global scope that persists across Parse calls for the lifetime of the
// Robolang. It is not safe for concurrent use.
type Robolang struct {
	cfg     *config
	global  *scope.Scope
	program *Program
	machine *vm.Interpreter
}

var _ Interpreter = (*Robolang)(nil)

// New returns a Robolang with no program loaded.
func New(opts ...Option) *Robolang {
	return &Robolang{
		cfg:    newConfig(opts...),
		global: scope.New(nil),
	}
}

// Parse compiles code against the given capability set. On success the
// program replaces any previously loaded one and execution starts from its
// beginning. On failure no program remains loaded.
func (r *Robolang) Parse(code string, actions, sensors []string) error {
	program, err := compile(code, actions, sensors, r.cfg)
	if err != nil {
		r.program, r.machine = nil, nil
		return err
	}
	r.Load(program)
	return nil
}

// Load prepares an already compiled program for execution.
func (r *Robolang) Load(program *Program) {
	opts := append(r.cfg.vmOpts(), vm.WithScope(r.global))
	r.program = program
	r.machine = vm.New(program.Root(), opts...)
}

// Program returns the loaded program, or nil.
func (r *Robolang) Program() *Program {
	return r.program
}

// GlobalScope returns the scope holding sensor values.
func (r *Robolang) GlobalScope() *scope.Scope {
	return r.global
}

// RunUntilNextAction advances the loaded program to its next action.
// Runtime errors are returned as *errors.Error.
func (r *Robolang) RunUntilNextAction() (string, error) {
	if r.machine == nil {
		return "", ErrNoProgram
	}
	action, err := r.machine.RunUntilNextAction()
	return action, r.withSource(err)
}

// Run drains the loaded program and returns every remaining action.
func (r *Robolang) Run() ([]string, error) {
	if r.machine == nil {
		return nil, ErrNoProgram
	}
	actions, err := r.machine.Run()
	return actions, r.withSource(err)
}

// Reset restarts the loaded program from its beginning.
func (r *Robolang) Reset() {
	if r.machine != nil {
		r.machine.Reset()
	}
}

// Done reports whether the loaded program has finished. It is true when no
// program is loaded.
func (r *Robolang) Done() bool {
	return r.machine == nil || r.machine.Done()
}

// CurrentLocation returns the source range of the last action returned.
func (r *Robolang) CurrentLocation() (token.Range, bool) {
	if r.machine == nil {
		return token.Range{}, false
	}
	return r.machine.CurrentLocation()
}

func (r *Robolang) withSource(err error) error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		e.WithSource(r.program.Source())
	}
	return err
}
