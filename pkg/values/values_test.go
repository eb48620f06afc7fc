package values_test

import (
	"testing"

	"github.com/leinonen/racket-lisp/pkg/values"
)

func TestNumberStringMatchesFloatRepr(t *testing.T) {
	cases := map[values.Number]string{
		6:                       "6.0",
		120:                     "120.0",
		4:                       "4.0",
		6.283185307179586:       "6.283185307179586",
		0:                       "0.0",
		-2.5:                    "-2.5",
	}
	for n, want := range cases {
		if got := n.String(); got != want {
			t.Errorf("Number(%v).String() = %q, want %q", float64(n), got, want)
		}
	}
}

func TestBooleanString(t *testing.T) {
	if values.Boolean(true).String() != "True" {
		t.Errorf("Boolean(true).String() = %q, want True", values.Boolean(true).String())
	}
	if values.Boolean(false).String() != "False" {
		t.Errorf("Boolean(false).String() = %q, want False", values.Boolean(false).String())
	}
}

func TestEmptyIsNotAPair(t *testing.T) {
	var v values.Value = values.TheEmpty
	if _, ok := v.(*values.Pair); ok {
		t.Error("Empty must not satisfy *Pair")
	}
}

func TestIsTruthy(t *testing.T) {
	if values.IsTruthy(values.Boolean(false)) {
		t.Error("Boolean(false) must be falsey")
	}
	truthyValues := []values.Value{
		values.Boolean(true), values.Number(0), values.TheEmpty, values.Symbol("x"),
	}
	for _, v := range truthyValues {
		if !values.IsTruthy(v) {
			t.Errorf("%v must be truthy", v)
		}
	}
}

func TestEqualStructuralOverPairs(t *testing.T) {
	a := &values.Pair{Head: values.Number(1), Tail: &values.Pair{Head: values.Number(2), Tail: values.TheEmpty}}
	b := &values.Pair{Head: values.Number(1), Tail: &values.Pair{Head: values.Number(2), Tail: values.TheEmpty}}
	if !values.Equal(a, b) {
		t.Error("structurally equal pairs must compare equal")
	}
	c := &values.Pair{Head: values.Number(1), Tail: &values.Pair{Head: values.Number(3), Tail: values.TheEmpty}}
	if values.Equal(a, c) {
		t.Error("structurally different pairs must not compare equal")
	}
}

func TestEqualNumbersByIEEE754(t *testing.T) {
	if !values.Equal(values.Number(1), values.Number(1.0)) {
		t.Error("equal floats must compare equal")
	}
	if values.Equal(values.Number(1), values.Boolean(true)) {
		t.Error("values of different kinds must not compare equal")
	}
}
