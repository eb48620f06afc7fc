package evaluator

import (
	"github.com/leinonen/racket-lisp/pkg/ast"
	"github.com/leinonen/racket-lisp/pkg/values"
)

// evalDefine implements spec.md section 4.3's two define shapes. Both
// always install into the top-level frame (ExtendTop), resolving the
// "define anywhere installs into whichever frame is current" bug
// flagged in spec.md section 9.
func evalDefine(tail []ast.Node, env values.Environment) (values.Value, error) {
	if len(tail) != 2 {
		return nil, &ArityError{Who: "define", Want: "2", Got: len(tail)}
	}

	if form, ok := tail[0].(ast.Form); ok {
		// (define (name p1 ... pk) body)
		if len(form.Children) == 0 {
			return nil, &ArityError{Who: "define", Want: "a name in the parameter form", Got: 0}
		}
		nameIdent, ok := form.Head().(ast.Ident)
		if !ok {
			return nil, &TypeMismatchError{Context: "define procedure name", Value: form.Head()}
		}
		params := make([]string, 0, len(form.Tail()))
		for _, p := range form.Tail() {
			pi, ok := p.(ast.Ident)
			if !ok {
				return nil, &TypeMismatchError{Context: "define parameter", Value: p}
			}
			params = append(params, pi.Name)
		}
		proc := &values.Procedure{
			Name:   nameIdent.Name,
			Params: params,
			Body:   tail[1],
			Env:    env,
		}
		env.ExtendTop(nameIdent.Name, proc)
		return values.DefinitionResult{Name: nameIdent.Name}, nil
	}

	// (define name expr) — a single body form only; spec.md section 9
	// rejects multi-form bodies rather than silently truncating them,
	// which for this shape means define itself takes exactly 2 forms
	// (already checked above).
	nameIdent, ok := tail[0].(ast.Ident)
	if !ok {
		return nil, &TypeMismatchError{Context: "define name", Value: tail[0]}
	}
	value, err := Eval(tail[1], env)
	if err != nil {
		return nil, err
	}
	env.ExtendTop(nameIdent.Name, value)
	return values.DefinitionResult{Name: nameIdent.Name}, nil
}

// evalCond implements spec.md's cond: evaluate clauses in order,
// return the consequent of the first truthy test, else fail
// NoClauseMatched. "else" is treated as a literal truth.
func evalCond(tail []ast.Node, env values.Environment) (values.Value, error) {
	for _, clauseNode := range tail {
		clause, ok := clauseNode.(ast.Form)
		if !ok || len(clause.Children) != 2 {
			return nil, &TypeMismatchError{Context: "cond clause", Value: clauseNode}
		}
		test := clause.Children[0]
		consequent := clause.Children[1]

		truthy := true
		if ident, ok := test.(ast.Ident); !ok || ident.Name != "else" {
			v, err := Eval(test, env)
			if err != nil {
				return nil, err
			}
			truthy = values.IsTruthy(v)
		}
		if truthy {
			return Eval(consequent, env)
		}
	}
	return nil, &NoClauseMatchedError{}
}

// evalAnd short-circuits on the first falsey sub-expression, returning
// false; with no falsey sub-expression it returns true. Zero
// sub-expressions evaluate to true.
func evalAnd(tail []ast.Node, env values.Environment) (values.Value, error) {
	for _, n := range tail {
		v, err := Eval(n, env)
		if err != nil {
			return nil, err
		}
		if !values.IsTruthy(v) {
			return values.Boolean(false), nil
		}
	}
	return values.Boolean(true), nil
}

// evalOr short-circuits on the first truthy sub-expression, returning
// true; with no truthy sub-expression it returns false. Zero
// sub-expressions evaluate to false.
func evalOr(tail []ast.Node, env values.Environment) (values.Value, error) {
	for _, n := range tail {
		v, err := Eval(n, env)
		if err != nil {
			return nil, err
		}
		if values.IsTruthy(v) {
			return values.Boolean(true), nil
		}
	}
	return values.Boolean(false), nil
}

// evalCheckExpect evaluates both operands and emits a TestResult
// sentinel: it observes a value-equality outcome, it does not catch
// runtime errors raised while evaluating its operands (an error from
// either Eval call below propagates normally).
func evalCheckExpect(tail []ast.Node, env values.Environment) (values.Value, error) {
	if len(tail) != 2 {
		return nil, &ArityError{Who: "check-expect", Want: "2", Got: len(tail)}
	}
	actual, err := Eval(tail[0], env)
	if err != nil {
		return nil, err
	}
	expected, err := Eval(tail[1], env)
	if err != nil {
		return nil, err
	}
	return values.TestResult{
		Passed:       values.Equal(actual, expected),
		ActualRepr:   actual.String(),
		ExpectedRepr: expected.String(),
	}, nil
}
