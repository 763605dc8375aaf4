package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/gpoesia/loopye-sub000/ast"
	"github.com/gpoesia/loopye-sub000/errors"
	"github.com/gpoesia/loopye-sub000/parser"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	letters := strings.Split("ABCDEFGHIJKLMNOPQRSTUVWXYZ", "")
	program, err := parser.Parse(input, parser.NewContext(letters, []string{"wall", "hole", "gem"}))
	require.NoError(t, err)
	return program
}

func TestCountNodeTypes(t *testing.T) {
	// 2 Loops, 1 ConditionalLoop, 3 Conditionals, 7 Actions
	program := parse(t, `
		2 {
			if wall { A } else { B }
			while hole { C 3 { D } }
		}
		if gem { E F }
		gem?{ G }
	`)
	counts := CountNodeTypes(program)
	require.Equal(t, 2, counts[ast.LoopNode])
	require.Equal(t, 1, counts[ast.ConditionalLoopNode])
	require.Equal(t, 3, counts[ast.ConditionalNode])
	require.Equal(t, 7, counts[ast.ActionNode])
	// one Block per loop body, per branch and per conditional loop body
	require.Equal(t, 7, counts[ast.BlockNode])
	// the root plus one per Block
	require.Equal(t, 8, counts[ast.ProgramNode])
}

func TestCountNodeTypesEmpty(t *testing.T) {
	counts := CountNodeTypes(parse(t, ""))
	require.Equal(t, map[ast.NodeType]int{ast.ProgramNode: 1}, counts)
}

func TestMaxLoopTripCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"A B", 0},
		{"3 { A }", 3},
		{"3 { 7 { A } } 5 { B }", 7},
		{"if wall { 12 { A } } else { 4 { B } }", 12},
		{"while hole { 0 { A } }", 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, MaxLoopTripCount(parse(t, tt.input)), tt.input)
	}
}

func TestTransitionBound(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"A", 3},
		{"A B", 5},
		{"1 { A }", 9},
		{"if wall { A } else { B C }", 10},
		{"while hole { A }", 14},
		{"99999999999999999999 { A }", math.MaxInt},
		{"9223372036854775807 { 2 { A } }", math.MaxInt},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, TransitionBound(parse(t, tt.input)), tt.input)
	}
}

func TestTripCountValidator(t *testing.T) {
	v := NewTripCountValidator(errors.English)
	require.Empty(t, v.Validate(parse(t, "20 { A }")))

	for _, input := range []string{
		"21 { A }",
		"A 2 { B 50 { C } }",
		"if wall { } else { while hole { 99 { A } } }",
	} {
		errs := v.Validate(parse(t, input))
		require.Len(t, errs, 1, input)
		require.Equal(t, errors.LoopTooLong, errs[0].Kind)
		require.Equal(t, errors.E2001, errs[0].Code())
	}
}

func TestTripCountValidatorReportsFirstLoop(t *testing.T) {
	program := parse(t, "A 30 { B } 40 { C }")
	errs := NewTripCountValidator(errors.English).Validate(program)
	require.Len(t, errs, 1)
	require.Equal(t, 2, errs[0].Range.Begin.Column)
	require.Equal(t, "loop repeats too many times (30, at most 20 allowed)", errs[0].Message)
}

func TestValidateRunsInOrder(t *testing.T) {
	program := parse(t, "25 { A }")
	calls := 0
	counting := ValidatorFunc(func(*ast.Program) []*errors.Error {
		calls++
		return nil
	})
	errs := Validate(program, counting, NewTripCountValidator(errors.Portuguese), counting)
	require.Len(t, errs, 1)
	require.Equal(t, 1, calls)
	require.Contains(t, errs[0].Message, "o laço repete vezes demais")

	require.Empty(t, Validate(program, &TripCountValidator{Max: 30}))
}
