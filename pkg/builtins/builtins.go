// Package builtins wires the primitive library of spec.md section 4.4
// into a fresh pkg/environment frame: arithmetic, comparison, list
// primitives, and the true/false/pi constants.
package builtins

import (
	"math"

	"github.com/leinonen/racket-lisp/pkg/environment"
	"github.com/leinonen/racket-lisp/pkg/evaluator"
	"github.com/leinonen/racket-lisp/pkg/values"
)

// NewGlobalEnvironment builds the outermost frame: a fresh
// *environment.Environment with every primitive in the table below
// installed. Callers layer a child frame over it, but ExtendTop (and
// so every define) installs into this outermost frame, so user
// definitions live beside the primitives and a define of a
// primitive's name replaces it. Each call returns an independent
// frame.
func NewGlobalEnvironment() *environment.Environment {
	env := environment.New(nil)
	for _, p := range table() {
		env.Set(p.Name, p)
	}
	env.Set("true", &values.Primitive{Name: "true", Min: 0, Max: 0, Fn: constant(values.Boolean(true))})
	env.Set("false", &values.Primitive{Name: "false", Min: 0, Max: 0, Fn: constant(values.Boolean(false))})
	env.Set("pi", &values.Primitive{Name: "pi", Min: 0, Max: 0, Fn: constant(values.Number(math.Pi))})
	return env
}

func constant(v values.Value) func([]values.Value) (values.Value, error) {
	return func([]values.Value) (values.Value, error) { return v, nil }
}

func prim(name string, min, max int, fn func(args []values.Value) (values.Value, error)) *values.Primitive {
	return &values.Primitive{Name: name, Min: min, Max: max, Fn: fn}
}

func table() []*values.Primitive {
	return []*values.Primitive{
		prim("+", 0, -1, add),
		prim("-", 1, -1, subtract),
		prim("*", 0, -1, multiply),
		prim("/", 1, -1, divide),
		prim("modulo", 2, 2, modulo),
		prim("expt", 2, 2, expt),
		prim("log", 2, 2, logBase),
		prim("sqrt", 1, 1, sqrt),
		prim("floor", 1, 1, floorFn),
		prim("min", 1, -1, minFn),
		prim("max", 1, -1, maxFn),
		prim("=", 2, 2, cmp(func(a, b float64) bool { return a == b })),
		prim("<", 2, 2, cmp(func(a, b float64) bool { return a < b })),
		prim(">", 2, 2, cmp(func(a, b float64) bool { return a > b })),
		prim("<=", 2, 2, cmp(func(a, b float64) bool { return a <= b })),
		prim(">=", 2, 2, cmp(func(a, b float64) bool { return a >= b })),
		prim("cons", 2, 2, cons),
		prim("first", 1, 1, first),
		prim("rest", 1, 1, rest),
		prim("empty", 0, 0, constant(values.TheEmpty)),
		prim("empty?", 1, 1, isEmpty),
	}
}

func number(v values.Value, who string) (float64, error) {
	n, ok := v.(values.Number)
	if !ok {
		return 0, &evaluator.TypeMismatchError{Context: who, Value: v}
	}
	return float64(n), nil
}

func numbers(args []values.Value, who string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		n, err := number(a, who)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func add(args []values.Value) (values.Value, error) {
	ns, err := numbers(args, "+")
	if err != nil {
		return nil, err
	}
	sum := 0.0
	for _, n := range ns {
		sum += n
	}
	return values.Number(sum), nil
}

func subtract(args []values.Value) (values.Value, error) {
	ns, err := numbers(args, "-")
	if err != nil {
		return nil, err
	}
	result := ns[0]
	for _, n := range ns[1:] {
		result -= n
	}
	return values.Number(result), nil
}

func multiply(args []values.Value) (values.Value, error) {
	ns, err := numbers(args, "*")
	if err != nil {
		return nil, err
	}
	product := 1.0
	for _, n := range ns {
		product *= n
	}
	return values.Number(product), nil
}

func divide(args []values.Value) (values.Value, error) {
	ns, err := numbers(args, "/")
	if err != nil {
		return nil, err
	}
	denom := 1.0
	for _, n := range ns[1:] {
		denom *= n
	}
	if denom == 0 {
		return nil, &evaluator.ArithError{Message: "division by zero"}
	}
	return values.Number(ns[0] / denom), nil
}

func modulo(args []values.Value) (values.Value, error) {
	ns, err := numbers(args, "modulo")
	if err != nil {
		return nil, err
	}
	if ns[1] == 0 {
		return nil, &evaluator.ArithError{Message: "modulo by zero"}
	}
	return values.Number(math.Mod(ns[0], ns[1])), nil
}

func expt(args []values.Value) (values.Value, error) {
	ns, err := numbers(args, "expt")
	if err != nil {
		return nil, err
	}
	return values.Number(math.Pow(ns[0], ns[1])), nil
}

func logBase(args []values.Value) (values.Value, error) {
	ns, err := numbers(args, "log")
	if err != nil {
		return nil, err
	}
	if ns[0] <= 0 || ns[1] <= 0 {
		return nil, &evaluator.ArithError{Message: "log of a non-positive number"}
	}
	return values.Number(math.Log(ns[0]) / math.Log(ns[1])), nil
}

func sqrt(args []values.Value) (values.Value, error) {
	n, err := number(args[0], "sqrt")
	if err != nil {
		return nil, err
	}
	return values.Number(math.Pow(n, 0.5)), nil
}

func floorFn(args []values.Value) (values.Value, error) {
	n, err := number(args[0], "floor")
	if err != nil {
		return nil, err
	}
	return values.Number(math.Floor(n)), nil
}

func minFn(args []values.Value) (values.Value, error) {
	ns, err := numbers(args, "min")
	if err != nil {
		return nil, err
	}
	m := ns[0]
	for _, n := range ns[1:] {
		if n < m {
			m = n
		}
	}
	return values.Number(m), nil
}

func maxFn(args []values.Value) (values.Value, error) {
	ns, err := numbers(args, "max")
	if err != nil {
		return nil, err
	}
	m := ns[0]
	for _, n := range ns[1:] {
		if n > m {
			m = n
		}
	}
	return values.Number(m), nil
}

func cmp(op func(a, b float64) bool) func([]values.Value) (values.Value, error) {
	return func(args []values.Value) (values.Value, error) {
		ns, err := numbers(args, "comparison")
		if err != nil {
			return nil, err
		}
		return values.Boolean(op(ns[0], ns[1])), nil
	}
}

// cons builds a two-cell Pair; it does not build a proper list, so
// (cons 1 (cons 2 empty)) yields (1.0 . (2.0 . '())).
func cons(args []values.Value) (values.Value, error) {
	return &values.Pair{Head: args[0], Tail: args[1]}, nil
}

func first(args []values.Value) (values.Value, error) {
	p, ok := args[0].(*values.Pair)
	if !ok {
		return nil, &evaluator.TypeMismatchError{Context: "first", Value: args[0]}
	}
	return p.Head, nil
}

func rest(args []values.Value) (values.Value, error) {
	p, ok := args[0].(*values.Pair)
	if !ok {
		return nil, &evaluator.TypeMismatchError{Context: "rest", Value: args[0]}
	}
	return p.Tail, nil
}

func isEmpty(args []values.Value) (values.Value, error) {
	_, ok := args[0].(values.Empty)
	return values.Boolean(ok), nil
}
