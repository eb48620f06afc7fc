// Package evaluator implements the recursive tree-walking interpreter
// described in spec.md section 4.3: a single Eval(node, env) function
// dispatching by form shape and by head symbol, delegating ordinary
// calls to values.Callable.
package evaluator

import (
	"github.com/leinonen/racket-lisp/pkg/ast"
	"github.com/leinonen/racket-lisp/pkg/environment"
	"github.com/leinonen/racket-lisp/pkg/values"
)

// specialForms is the set of head symbols that receive the
// unevaluated tail and bespoke evaluation rules, rather than uniform
// pre-evaluation. It is filled in init because its handlers call Eval,
// which reads it.
var specialForms map[string]func(tail []ast.Node, env values.Environment) (values.Value, error)

func init() {
	specialForms = map[string]func(tail []ast.Node, env values.Environment) (values.Value, error){
		"define":       evalDefine,
		"cond":         evalCond,
		"and":          evalAnd,
		"or":           evalOr,
		"check-expect": evalCheckExpect,
	}
}

// Eval evaluates one AST node in env per the dispatch rules of
// spec.md section 4.3.
func Eval(node ast.Node, env values.Environment) (values.Value, error) {
	switch n := node.(type) {
	case ast.NumLit:
		return values.Number(n.Value), nil

	case ast.QuotedSym:
		return values.Symbol(n.Name), nil

	case ast.Ident:
		v, err := env.Lookup(n.Name)
		if err != nil {
			return nil, unbound(err, n.Name)
		}
		if callable, ok := v.(values.Callable); ok {
			min, variadic := callable.Arity()
			if min == 0 && !variadic {
				// A zero-argument constant callable (e.g. the empty,
				// true, false, pi primitives): a bare reference
				// invokes it.
				return Apply(callable, nil)
			}
			// A callable of arity > 0 (or a variadic one) used as a
			// bare identifier: spec.md section 4.3 calls this
			// undefined behaviour in the source language; here it is
			// a reported TypeMismatch rather than an implicit call.
			return nil, &TypeMismatchError{Context: "variable reference", Value: callable}
		}
		return v, nil

	case ast.Form:
		if len(n.Children) == 0 {
			return nil, &EmptyFormError{}
		}
		if head, ok := n.Head().(ast.Ident); ok {
			if handler, ok := specialForms[head.Name]; ok {
				return handler(n.Tail(), env)
			}
		}
		return apply(n, env)

	default:
		return nil, &TypeMismatchError{Context: "eval", Value: node}
	}
}

func unbound(err error, name string) error {
	if _, ok := err.(*environment.UnboundError); ok {
		return &UnboundError{Name: name}
	}
	return err
}

// apply resolves the head (must yield a Callable), evaluates each
// tail child left-to-right strictly (applicative order), and applies.
// An identifier head is looked up directly rather than through Eval's
// bare-reference rule, so a callable of any arity can be applied.
func apply(form ast.Form, env values.Environment) (values.Value, error) {
	var headVal values.Value
	var err error
	if ident, ok := form.Head().(ast.Ident); ok {
		if headVal, err = env.Lookup(ident.Name); err != nil {
			err = unbound(err, ident.Name)
		}
	} else {
		headVal, err = Eval(form.Head(), env)
	}
	if err != nil {
		return nil, err
	}
	callable, ok := headVal.(values.Callable)
	if !ok {
		return nil, &TypeMismatchError{Context: "application", Value: headVal}
	}

	args := make([]values.Value, 0, len(form.Tail()))
	for _, child := range form.Tail() {
		v, err := Eval(child, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	return Apply(callable, args)
}

// Apply invokes a Callable (Primitive or Procedure) with already
// evaluated arguments.
func Apply(callable values.Callable, args []values.Value) (values.Value, error) {
	switch fn := callable.(type) {
	case *values.Primitive:
		if len(args) < fn.Min || (fn.Max >= 0 && len(args) > fn.Max) {
			return nil, &ArityError{Who: fn.Name, Want: arityDesc(fn.Min, fn.Max), Got: len(args)}
		}
		return fn.Fn(args)

	case *values.Procedure:
		if len(args) != len(fn.Params) {
			return nil, &ArityError{Who: procName(fn), Want: itoa(len(fn.Params)), Got: len(args)}
		}
		frame, err := fn.Env.ExtendLocal(fn.Params, args)
		if err != nil {
			return nil, err
		}
		return Eval(fn.Body, frame)

	default:
		return nil, &TypeMismatchError{Context: "apply", Value: callable}
	}
}

func procName(p *values.Procedure) string {
	if p.Name == "" {
		return "procedure"
	}
	return p.Name
}
