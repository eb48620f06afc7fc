package builtins_test

import (
	"testing"

	"github.com/leinonen/racket-lisp/pkg/builtins"
	"github.com/leinonen/racket-lisp/pkg/environment"
	"github.com/leinonen/racket-lisp/pkg/evaluator"
	"github.com/leinonen/racket-lisp/pkg/reader"
	"github.com/leinonen/racket-lisp/pkg/values"
)

func eval(t *testing.T, src string) values.Value {
	t.Helper()
	forms, err := reader.Read(src)
	if err != nil {
		t.Fatalf("read(%q): %v", src, err)
	}
	if len(forms) != 1 {
		t.Fatalf("expected one form in %q", src)
	}
	env := environment.New(builtins.NewGlobalEnvironment())
	v, err := evaluator.Eval(forms[0], env)
	if err != nil {
		t.Fatalf("eval(%q): %v", src, err)
	}
	return v
}

func evalErr(t *testing.T, src string) error {
	t.Helper()
	forms, err := reader.Read(src)
	if err != nil {
		t.Fatalf("read(%q): %v", src, err)
	}
	env := environment.New(builtins.NewGlobalEnvironment())
	_, err = evaluator.Eval(forms[0], env)
	if err == nil {
		t.Fatalf("eval(%q): expected an error", src)
	}
	return err
}

func TestArithmeticPrimitives(t *testing.T) {
	cases := map[string]string{
		"(+ 1 2 3)":    "6.0",
		"(- 10 1 2)":   "7.0",
		"(* 2 3 4)":    "24.0",
		"(/ 12 2 3)":   "2.0",
		"(modulo 10 3)": "1.0",
		"(expt 2 10)":  "1024.0",
		"(log 8 2)":    "3.0",
		"(sqrt 16)":    "4.0",
		"(floor 3.7)":  "3.0",
		"(min 3 1 2)":  "1.0",
		"(max 3 1 2)":  "3.0",
	}
	for src, want := range cases {
		if got := eval(t, src).String(); got != want {
			t.Errorf("%s = %s, want %s", src, got, want)
		}
	}
}

func TestComparisonPrimitives(t *testing.T) {
	cases := map[string]string{
		"(= 1 1)":  "True",
		"(< 1 2)":  "True",
		"(> 1 2)":  "False",
		"(<= 2 2)": "True",
		"(>= 1 2)": "False",
	}
	for src, want := range cases {
		if got := eval(t, src).String(); got != want {
			t.Errorf("%s = %s, want %s", src, got, want)
		}
	}
}

func TestConsFirstRestEmpty(t *testing.T) {
	if got := eval(t, "(first (cons 1 2))").String(); got != "1.0" {
		t.Errorf("first = %s, want 1.0", got)
	}
	if got := eval(t, "(rest (cons 1 2))").String(); got != "2.0" {
		t.Errorf("rest = %s, want 2.0", got)
	}
	if got := eval(t, "(empty? empty)").String(); got != "True" {
		t.Errorf("empty? empty = %s, want True", got)
	}
	if got := eval(t, "(empty? (cons 1 2))").String(); got != "False" {
		t.Errorf("empty? pair = %s, want False", got)
	}
}

func TestDivisionByZeroIsArithError(t *testing.T) {
	if _, ok := evalErr(t, "(/ 1 0)").(*evaluator.ArithError); !ok {
		t.Error("want ArithError")
	}
}

func TestModuloByZeroIsArithError(t *testing.T) {
	if _, ok := evalErr(t, "(modulo 1 0)").(*evaluator.ArithError); !ok {
		t.Error("want ArithError")
	}
}

func TestLogOfNonPositiveIsArithError(t *testing.T) {
	if _, ok := evalErr(t, "(log -1 2)").(*evaluator.ArithError); !ok {
		t.Error("want ArithError for log of a negative number")
	}
	if _, ok := evalErr(t, "(log 8 0)").(*evaluator.ArithError); !ok {
		t.Error("want ArithError for log base zero")
	}
}

func TestFirstRestOnNonPairIsTypeMismatch(t *testing.T) {
	if _, ok := evalErr(t, "(first empty)").(*evaluator.TypeMismatchError); !ok {
		t.Error("want TypeMismatchError")
	}
	if _, ok := evalErr(t, "(rest 1)").(*evaluator.TypeMismatchError); !ok {
		t.Error("want TypeMismatchError")
	}
}

func TestArithmeticOnNonNumberIsTypeMismatch(t *testing.T) {
	if _, ok := evalErr(t, "(+ 1 empty)").(*evaluator.TypeMismatchError); !ok {
		t.Error("want TypeMismatchError")
	}
}

func TestWrongArityOnPrimitiveIsArityError(t *testing.T) {
	if _, ok := evalErr(t, "(modulo 1)").(*evaluator.ArityError); !ok {
		t.Error("want ArityError")
	}
	if _, ok := evalErr(t, "(cons 1)").(*evaluator.ArityError); !ok {
		t.Error("want ArityError")
	}
}

func TestTrueFalsePiConstants(t *testing.T) {
	if got := eval(t, "true").String(); got != "True" {
		t.Errorf("true = %s", got)
	}
	if got := eval(t, "false").String(); got != "False" {
		t.Errorf("false = %s", got)
	}
	if got := eval(t, "(* 2 pi)").String(); got != "6.283185307179586" {
		t.Errorf("2*pi = %s", got)
	}
}
