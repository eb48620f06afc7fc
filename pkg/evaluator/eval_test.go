package evaluator_test

import (
	"testing"

	"github.com/leinonen/racket-lisp/pkg/builtins"
	"github.com/leinonen/racket-lisp/pkg/environment"
	"github.com/leinonen/racket-lisp/pkg/evaluator"
	"github.com/leinonen/racket-lisp/pkg/reader"
	"github.com/leinonen/racket-lisp/pkg/values"
)

func evalOne(t *testing.T, env *environment.Environment, src string) values.Value {
	t.Helper()
	forms, err := reader.Read(src)
	if err != nil {
		t.Fatalf("read(%q): %v", src, err)
	}
	if len(forms) != 1 {
		t.Fatalf("expected exactly one form in %q, got %d", src, len(forms))
	}
	v, err := evaluator.Eval(forms[0], env)
	if err != nil {
		t.Fatalf("eval(%q): %v", src, err)
	}
	return v
}

func freshEnv() *environment.Environment {
	return environment.New(builtins.NewGlobalEnvironment())
}

func TestArithmeticSum(t *testing.T) {
	v := evalOne(t, freshEnv(), "(+ 1 2 3)")
	if v.String() != "6.0" {
		t.Errorf("got %s, want 6.0", v)
	}
}

func TestDefineConstantThenReference(t *testing.T) {
	env := freshEnv()
	evalOne(t, env, "(define pi2 (* 2 pi))")
	v := evalOne(t, env, "pi2")
	if n, ok := v.(values.Number); !ok || float64(n) != 6.283185307179586 {
		t.Errorf("got %v, want 6.283185307179586", v)
	}
}

func TestRecursiveProcedure(t *testing.T) {
	env := freshEnv()
	evalOne(t, env, "(define (fact n) (cond [(= n 0) 1] [else (* n (fact (- n 1)))]))")
	v := evalOne(t, env, "(fact 5)")
	if v.String() != "120.0" {
		t.Errorf("got %s, want 120.0", v)
	}
}

func TestConsConsConsBuildsDottedPair(t *testing.T) {
	v := evalOne(t, freshEnv(), "(cons 1 (cons 2 (cons 3 empty)))")
	if v.String() != "(1.0 . (2.0 . (3.0 . '())))" {
		t.Errorf("got %s", v)
	}
}

func TestCheckExpectPass(t *testing.T) {
	v := evalOne(t, freshEnv(), "(check-expect (modulo 10 3) 1)")
	tr, ok := v.(values.TestResult)
	if !ok || !tr.Passed {
		t.Errorf("got %#v, want a passing TestResult", v)
	}
}

func TestCheckExpectFailurePrintsBothSides(t *testing.T) {
	v := evalOne(t, freshEnv(), "(check-expect 1 2)")
	tr, ok := v.(values.TestResult)
	if !ok || tr.Passed {
		t.Fatalf("got %#v, want a failing TestResult", v)
	}
	if tr.ActualRepr != "1.0" || tr.ExpectedRepr != "2.0" {
		t.Errorf("got actual=%q expected=%q, want 1.0 and 2.0", tr.ActualRepr, tr.ExpectedRepr)
	}
}

func TestAndShortCircuits(t *testing.T) {
	env := freshEnv()
	// (and false (/ 1 0)) must not evaluate the second operand; if it
	// did, the division by zero would raise an ArithError and evalOne
	// would fail the test.
	v := evalOne(t, env, "(and false (/ 1 0))")
	if b, ok := v.(values.Boolean); !ok || bool(b) {
		t.Errorf("got %#v, want Boolean(false)", v)
	}
}

func TestOrShortCircuits(t *testing.T) {
	v := evalOne(t, freshEnv(), "(or true (/ 1 0))")
	if b, ok := v.(values.Boolean); !ok || !bool(b) {
		t.Errorf("got %#v, want Boolean(true)", v)
	}
}

func TestZeroArgAndOr(t *testing.T) {
	env := freshEnv()
	if v := evalOne(t, env, "(and)"); v.String() != "True" {
		t.Errorf("(and) = %s, want True", v)
	}
	if v := evalOne(t, env, "(or)"); v.String() != "False" {
		t.Errorf("(or) = %s, want False", v)
	}
}

func TestCondNoClauseMatchedFails(t *testing.T) {
	forms, err := reader.Read("(cond [false 1])")
	if err != nil {
		t.Fatal(err)
	}
	_, err = evaluator.Eval(forms[0], freshEnv())
	if _, ok := err.(*evaluator.NoClauseMatchedError); !ok {
		t.Errorf("got %#v, want NoClauseMatchedError", err)
	}
}

func TestUnboundIdentifier(t *testing.T) {
	forms, err := reader.Read("nope")
	if err != nil {
		t.Fatal(err)
	}
	_, err = evaluator.Eval(forms[0], freshEnv())
	if _, ok := err.(*evaluator.UnboundError); !ok {
		t.Errorf("got %#v, want UnboundError", err)
	}
}

func TestFirstOnEmptyFails(t *testing.T) {
	forms, err := reader.Read("(first empty)")
	if err != nil {
		t.Fatal(err)
	}
	_, err = evaluator.Eval(forms[0], freshEnv())
	if _, ok := err.(*evaluator.TypeMismatchError); !ok {
		t.Errorf("got %#v, want TypeMismatchError", err)
	}
}

func TestDivideByZeroFails(t *testing.T) {
	forms, err := reader.Read("(/ 1 0)")
	if err != nil {
		t.Fatal(err)
	}
	_, err = evaluator.Eval(forms[0], freshEnv())
	if _, ok := err.(*evaluator.ArithError); !ok {
		t.Errorf("got %#v, want ArithError", err)
	}
}

func TestWrongArityFails(t *testing.T) {
	env := freshEnv()
	evalOne(t, env, "(define (add2 a b) (+ a b))")
	forms, err := reader.Read("(add2 1)")
	if err != nil {
		t.Fatal(err)
	}
	_, err = evaluator.Eval(forms[0], env)
	if _, ok := err.(*evaluator.ArityError); !ok {
		t.Errorf("got %#v, want ArityError", err)
	}
}

func TestDefineAlwaysTargetsTopLevel(t *testing.T) {
	env := freshEnv()
	// A procedure whose body defines another name must still install
	// that name into the top-level frame, reachable after the call
	// returns, per spec.md section 9's resolution of the original
	// top-level-vs-call-frame ambiguity.
	evalOne(t, env, "(define (make-ten) (define ten 10))")
	evalOne(t, env, "(make-ten)")
	v := evalOne(t, env, "ten")
	if v.String() != "10.0" {
		t.Errorf("got %s, want 10.0", v)
	}
}

func TestLexicalScopingSeesLaterDefines(t *testing.T) {
	env := freshEnv()
	evalOne(t, env, "(define (greeting) name)")
	evalOne(t, env, "(define name 'world)")
	v := evalOne(t, env, "(greeting)")
	if v.String() != "world" {
		t.Errorf("got %s, want world", v)
	}
}

func TestBareArityProcedureReferenceIsTypeMismatch(t *testing.T) {
	env := freshEnv()
	evalOne(t, env, "(define (id x) x)")
	forms, err := reader.Read("id")
	if err != nil {
		t.Fatal(err)
	}
	_, err = evaluator.Eval(forms[0], env)
	if _, ok := err.(*evaluator.TypeMismatchError); !ok {
		t.Errorf("got %#v, want TypeMismatchError", err)
	}
}
