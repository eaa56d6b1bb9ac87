// Package scope provides the named-binding environment that pipeline
// definitions resolve output channels against.
package scope

import "sort"

// Scope is a mutable symbol table keyed by identifier. It is passed by
// reference into the param factories, so bindings registered by one
// declaration are visible to the next.
type Scope struct {
	bindings map[string]interface{}
}

func New() *Scope {
	return &Scope{bindings: make(map[string]interface{})}
}

// Lookup reports the value bound to name. A missing name is signaled
// through the second result, never as an error.
func (s *Scope) Lookup(name string) (interface{}, bool) {
	v, ok := s.bindings[name]
	return v, ok
}

// Bind registers v under name, replacing any previous binding.
func (s *Scope) Bind(name string, v interface{}) {
	s.bindings[name] = v
}

// Names returns the bound identifiers in sorted order.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.bindings))
	for name := range s.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
