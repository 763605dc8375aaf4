package vm

import "errors"

var (
	// ErrNoProgress is returned when RunUntilNextAction exceeds its transition
	// budget without producing an action, for example in a conditional loop
	// with an empty body whose sensor stays true.
	ErrNoProgress = errors.New("no action produced within the transition limit")

	// ErrActionLimit is returned when Run collects more actions than allowed.
	ErrActionLimit = errors.New("action limit exceeded")

	// ErrHalted is returned when an observer requests a halt.
	ErrHalted = errors.New("execution halted by observer")
)
