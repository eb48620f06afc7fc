// Package values defines the runtime value model: the tagged sum of
// Number, Boolean, Symbol, Pair, Empty and Callable described in
// spec.md section 3.
package values

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/leinonen/racket-lisp/pkg/ast"
)

// Value is any runtime value the evaluator produces.
type Value interface {
	fmt.Stringer
	value()
}

// Number is the dialect's sole numeric kind: a 64-bit float. There is
// no integer type and no silent promotion to any other kind.
type Number float64

func (Number) value() {}

// String renders like the host language's float repr, matching
// spec.md section 8's worked examples: "6.0" and "120.0", not Go's
// bare "%g" rendering of "6" and "120". A value already containing a
// decimal point, an exponent, or a non-finite marker is left as %g
// produces it.
func (n Number) String() string {
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Boolean is true or false. It is the only truthiness-bearing kind:
// every other value, including Number(0), is truthy.
type Boolean bool

func (Boolean) value() {}
func (b Boolean) String() string {
	if b {
		return "True"
	}
	return "False"
}

// Symbol is an interned identifier originating from a quoted atom.
// Two symbols are equal iff their names match.
type Symbol string

func (Symbol) value() {}
func (s Symbol) String() string { return string(s) }

// Empty is the distinguished empty-list sentinel. It is distinct from
// any Pair; empty? returns true only on this value.
type Empty struct{}

func (Empty) value() {}
func (Empty) String() string { return "'()" }

// TheEmpty is the single Empty instance the primitives use.
var TheEmpty = Empty{}

// Pair is an ordered two-cell tuple built by cons. It is not a proper
// list: Tail is whatever the second cons argument evaluated to, which
// may or may not itself be a Pair or Empty.
type Pair struct {
	Head Value
	Tail Value
}

func (*Pair) value() {}
func (p *Pair) String() string {
	return fmt.Sprintf("(%s . %s)", p.Head.String(), p.Tail.String())
}

// Callable is either a Primitive or a Procedure: anything application
// (the evaluator's Apply) can invoke.
type Callable interface {
	Value
	Arity() (min int, variadic bool)
}

// Primitive is a built-in function implemented in Go.
type Primitive struct {
	Name string
	Min  int
	Max  int // -1 means unbounded
	Fn   func(args []Value) (Value, error)
}

func (*Primitive) value() {}
func (p *Primitive) String() string { return "#<primitive:" + p.Name + ">" }
func (p *Primitive) Arity() (int, bool) {
	return p.Min, p.Max < 0
}

// Procedure is a user-defined procedure: a parameter list, an
// unevaluated body AST node, and the environment captured at the
// procedure's definition site.
type Procedure struct {
	Name   string
	Params []string
	Body   ast.Node
	Env    Environment
}

func (*Procedure) value() {}
func (p *Procedure) String() string {
	name := p.Name
	if name == "" {
		name = "anonymous"
	}
	return "#<procedure:" + name + ">"
}
func (p *Procedure) Arity() (int, bool) {
	return len(p.Params), false
}

// DefinitionResult is the sentinel a define form evaluates to: it
// carries the name just bound so the driver can print an "UPDATE:"
// line, and is not itself a meaningful value (spec.md section 4.5).
type DefinitionResult struct {
	Name string
}

func (DefinitionResult) value() {}
func (d DefinitionResult) String() string { return d.Name }

// TestResult is the sentinel a check-expect form evaluates to.
// Evaluation prints nothing; the driver renders the pass/fail line
// from this value (String gives that line).
type TestResult struct {
	Passed   bool
	ActualRepr   string
	ExpectedRepr string
}

func (TestResult) value() {}
func (t TestResult) String() string {
	if t.Passed {
		return "TEST PASSED!"
	}
	return fmt.Sprintf("TEST FAILED: %s != %s", t.ActualRepr, t.ExpectedRepr)
}

// Environment is the narrow interface pkg/values needs from
// pkg/environment to avoid an import cycle: a Procedure must carry its
// defining scope, but the scope's own implementation lives in
// pkg/environment and depends on nothing in this package.
type Environment interface {
	Lookup(name string) (Value, error)
	ExtendTop(name string, v Value)
	ExtendLocal(params []string, args []Value) (Environment, error)
}

// IsTruthy implements spec.md's truthiness rule: every value is
// truthy except Boolean(false).
func IsTruthy(v Value) bool {
	if b, ok := v.(Boolean); ok {
		return bool(b)
	}
	return true
}

// Equal implements structural equality over all Value variants:
// Numbers compared by IEEE-754 ==, pairs compared recursively.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case Empty:
		_, ok := b.(Empty)
		return ok
	case *Pair:
		bv, ok := b.(*Pair)
		return ok && Equal(av.Head, bv.Head) && Equal(av.Tail, bv.Tail)
	default:
		return a == b
	}
}
