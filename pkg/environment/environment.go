// Package environment implements the lexical scope chain described in
// spec.md section 4.2: an ordered chain of frames, looked up from the
// innermost outward. ExtendTop installs into the outermost frame,
// which in a script is the frame holding the built-ins.
package environment

import (
	"fmt"

	"github.com/leinonen/racket-lisp/pkg/values"
)

// Environment is a single frame in the scope chain. It satisfies
// values.Environment so a Procedure can capture one without values
// importing this package.
type Environment struct {
	bindings map[string]values.Value
	parent   *Environment
}

// New creates a new, empty frame with the given parent. A nil parent
// marks the outermost frame, the one ExtendTop installs into.
func New(parent *Environment) *Environment {
	return &Environment{bindings: make(map[string]values.Value), parent: parent}
}

// UnboundError reports that lookup failed to resolve name anywhere in
// the chain.
type UnboundError struct {
	Name string
}

func (e *UnboundError) Error() string {
	return fmt.Sprintf("unbound identifier: %s", e.Name)
}

// Lookup walks the chain from innermost outward.
func (env *Environment) Lookup(name string) (values.Value, error) {
	for e := env; e != nil; e = e.parent {
		if v, ok := e.bindings[name]; ok {
			return v, nil
		}
	}
	return nil, &UnboundError{Name: name}
}

// Set installs a binding in this exact frame, shadowing any outer
// binding of the same name.
func (env *Environment) Set(name string, v values.Value) {
	env.bindings[name] = v
}

// ExtendTop installs name at the outermost frame: the chain is walked
// to the frame with a nil parent, regardless of which frame
// Environment itself is. This resolves spec.md section 9's first open
// question: define always targets top level, never a call frame.
func (env *Environment) ExtendTop(name string, v values.Value) {
	top := env
	for top.parent != nil {
		top = top.parent
	}
	top.Set(name, v)
}

// ExtendLocal pushes a new frame atop env, binding params to args
// positionally. It is the frame a procedure activation evaluates its
// body in, layered atop the environment captured at definition time
// (the receiver here should be that captured environment, not the
// caller's).
func (env *Environment) ExtendLocal(params []string, args []values.Value) (values.Environment, error) {
	if len(params) != len(args) {
		return nil, fmt.Errorf("expected %d argument(s), got %d", len(params), len(args))
	}
	frame := New(env)
	for i, p := range params {
		frame.Set(p, args[i])
	}
	return frame, nil
}
