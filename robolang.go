// Package robolang compiles and runs Robolang, a small language for
// programming a game robot with single-letter actions, fixed-count loops and
// sensor-driven conditionals.
//
// A program is compiled against a capability set naming the actions and
// sensors the current challenge allows:
//
//	program, err := robolang.Compile("2 { F if wall { L } }", []string{"F", "L"}, []string{"wall"})
//
// Compiled programs are executed one action at a time by an interpreter whose
// sensor values the host updates between steps.
package robolang

import (
	"github.com/gpoesia/loopye-sub000/analysis"
	"github.com/gpoesia/loopye-sub000/errors"
	"github.com/gpoesia/loopye-sub000/parser"
)

// Compile parses source and checks it against the supported actions and
// sensors. On failure the error is an *errors.List and no program is
// returned. The returned Program is immutable and safe for concurrent use.
func Compile(source string, actions, sensors []string, opts ...Option) (*Program, error) {
	return compile(source, actions, sensors, newConfig(opts...))
}

func compile(source string, actions, sensors []string, cfg *config) (*Program, error) {
	ctx := parser.NewContext(actions, sensors)
	root, err := parser.Parse(source, ctx, cfg.parserOpts()...)
	if err != nil {
		return nil, err
	}
	if errs := analysis.Validate(root, cfg.validators()...); len(errs) > 0 {
		list := errors.NewList()
		for _, e := range errs {
			list.Add(e.WithSource(source))
		}
		return nil, list
	}
	return newProgram(root, source, ctx), nil
}
