package analysis

import (
	"github.com/gpoesia/loopye-sub000/ast"
	"github.com/gpoesia/loopye-sub000/errors"
)

// DefaultMaxTripCount is the largest trip count a Loop may have.
const DefaultMaxTripCount = 20

// Validator inspects an AST and returns semantic errors.
// Validators should not modify the AST.
type Validator interface {
	Validate(program *ast.Program) []*errors.Error
}

// ValidatorFunc is an adapter to use a function as a Validator.
type ValidatorFunc func(*ast.Program) []*errors.Error

// Validate implements the Validator interface.
func (f ValidatorFunc) Validate(p *ast.Program) []*errors.Error {
	return f(p)
}

// TripCountValidator rejects programs whose loops repeat more than Max times.
type TripCountValidator struct {
	Max    int
	Locale errors.Locale
}

// NewTripCountValidator returns a validator using DefaultMaxTripCount.
func NewTripCountValidator(locale errors.Locale) *TripCountValidator {
	return &TripCountValidator{Max: DefaultMaxTripCount, Locale: locale}
}

// Validate reports a single error at the first loop, in source order, whose
// trip count exceeds the limit.
func (v *TripCountValidator) Validate(program *ast.Program) []*errors.Error {
	if MaxLoopTripCount(program) <= v.Max {
		return nil
	}
	for node := range ast.Preorder(program) {
		loop, ok := node.(*ast.Loop)
		if !ok || loop.TripCount <= v.Max {
			continue
		}
		return []*errors.Error{errors.Newf(v.Locale, errors.LoopTooLong, loop.Loc,
			errors.MsgLoopTooLong, loop.TripCount, v.Max)}
	}
	return nil
}

// Validate runs validators in order and returns the errors of the first one
// that reports any.
func Validate(program *ast.Program, validators ...Validator) []*errors.Error {
	for _, v := range validators {
		if errs := v.Validate(program); len(errs) > 0 {
			return errs
		}
	}
	return nil
}
