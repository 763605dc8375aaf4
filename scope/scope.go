// Package scope holds the sensor values a running program reads.
package scope

import (
	"maps"
	"reflect"
	"slices"
)

// Scope is a chained name to value mapping. Lookups that miss locally are
// delegated to the parent, if any. A Scope is not safe for concurrent use.
type Scope struct {
	parent *Scope
	values map[string]any
}

// New returns an empty scope whose lookups fall back to parent, which may be
// nil.
func New(parent *Scope) *Scope {
	return &Scope{parent: parent, values: map[string]any{}}
}

// FromMap returns a root scope holding a copy of values.
func FromMap(values map[string]any) *Scope {
	s := New(nil)
	maps.Copy(s.values, values)
	return s
}

// Parent returns the enclosing scope or nil.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Set creates or overwrites the local binding for name.
func (s *Scope) Set(name string, value any) {
	s.values[name] = value
}

// Lookup returns the value bound to name in this scope or the nearest
// ancestor that has it. The second result is false if no scope in the chain
// binds the name.
func (s *Scope) Lookup(name string) (any, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if value, ok := cur.values[name]; ok {
			return value, true
		}
	}
	return nil, false
}

// Names returns the sorted names visible from this scope.
func (s *Scope) Names() []string {
	seen := map[string]struct{}{}
	for cur := s; cur != nil; cur = cur.parent {
		for name := range cur.values {
			seen[name] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Truthy reports whether a sensor value counts as true when tested by a
// conditional. False, nil, zero numbers of any numeric type and empty strings
// are falsy.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return !rv.IsZero()
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	default:
		return true
	}
}
