package scope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetLookup(t *testing.T) {
	s := New(nil)
	_, ok := s.Lookup("wall")
	require.False(t, ok)

	s.Set("wall", true)
	value, ok := s.Lookup("wall")
	require.True(t, ok)
	require.Equal(t, true, value)

	s.Set("wall", false)
	value, ok = s.Lookup("wall")
	require.True(t, ok)
	require.Equal(t, false, value)
}

func TestLookupDelegatesToParent(t *testing.T) {
	parent := FromMap(map[string]any{"wall": true, "gem": 1})
	child := New(parent)
	child.Set("gem", 0)

	value, ok := child.Lookup("wall")
	require.True(t, ok)
	require.Equal(t, true, value)

	value, ok = child.Lookup("gem")
	require.True(t, ok)
	require.Equal(t, 0, value)

	value, _ = parent.Lookup("gem")
	require.Equal(t, 1, value)

	_, ok = child.Lookup("hole")
	require.False(t, ok)
	require.Same(t, parent, child.Parent())
}

func TestFromMapCopies(t *testing.T) {
	values := map[string]any{"wall": true}
	s := FromMap(values)
	values["wall"] = false
	value, _ := s.Lookup("wall")
	require.Equal(t, true, value)
}

func TestNames(t *testing.T) {
	parent := FromMap(map[string]any{"wall": true, "gem": 1})
	child := New(parent)
	child.Set("hole", false)
	child.Set("gem", 2)
	require.Equal(t, []string{"gem", "hole", "wall"}, child.Names())
	require.Empty(t, New(nil).Names())
}

type (
	sensorState bool
	label       string
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		value    any
		expected bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{0, false},
		{3, true},
		{int64(0), false},
		{0.0, false},
		{0.5, true},
		{"", false},
		{"yes", true},
		{[]int{}, true},
		{int32(0), false},
		{int8(-1), true},
		{uint(0), false},
		{uint64(9), true},
		{float32(0), false},
		{float32(0.25), true},
		{sensorState(false), false},
		{sensorState(true), true},
		{label(""), false},
		{label("x"), true},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, Truthy(tt.value), "%#v", tt.value)
	}
}
