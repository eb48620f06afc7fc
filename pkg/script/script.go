// Package script is the thin external-collaborator driver described
// in spec.md section 4.5: it reads a script's top-level forms,
// evaluates each against a fresh built-in-seeded environment, and
// writes one output line per form.
package script

import (
	"fmt"
	"io"

	"github.com/leinonen/racket-lisp/pkg/builtins"
	"github.com/leinonen/racket-lisp/pkg/environment"
	"github.com/leinonen/racket-lisp/pkg/evaluator"
	"github.com/leinonen/racket-lisp/pkg/reader"
	"github.com/leinonen/racket-lisp/pkg/values"
)

// Script is one source text, ready to be evaluated any number of
// times. Each Evaluate call is deterministic and independent: it
// builds a fresh built-in frame and a fresh top-level frame over it.
type Script struct {
	Source string
}

// New constructs a Script over the given source text.
func New(source string) *Script {
	return &Script{Source: source}
}

// Line is one line of the output stream: an UPDATE, an OUTPUT, or a
// test-result line, already rendered to text (renderLine builds the
// test-result line from the check-expect form's TestResult).
type Line struct {
	Kind LineKind
	Name string // set for KindUpdate
	Text string // rendered line text
}

type LineKind int

const (
	KindUpdate LineKind = iota
	KindOutput
	KindTestPass
	KindTestFail
)

// Evaluate parses and evaluates every top-level form in source order,
// writing one formatted line per form to w. A reader error aborts
// before any evaluation begins; a runtime error aborts the script at
// the form that raised it, matching spec.md section 7's "propagation
// is strictly bottom-up, any error aborts the whole script".
func (s *Script) Evaluate(w io.Writer) error {
	lines, err := s.Run()
	for _, l := range lines {
		fmt.Fprintln(w, l.Text)
	}
	return err
}

// Run evaluates every top-level form and returns the Lines produced up
// to (and not including) the form that failed, along with that
// failure if any.
func (s *Script) Run() ([]Line, error) {
	forms, err := reader.Read(s.Source)
	if err != nil {
		return nil, err
	}

	global := builtins.NewGlobalEnvironment()
	top := environment.New(global)

	var lines []Line
	for _, form := range forms {
		v, err := evaluator.Eval(form, top)
		if err != nil {
			return lines, err
		}
		lines = append(lines, renderLine(v))
	}
	return lines, nil
}

func renderLine(v values.Value) Line {
	switch r := v.(type) {
	case values.DefinitionResult:
		return Line{Kind: KindUpdate, Name: r.Name, Text: fmt.Sprintf("UPDATE: %s", r.Name)}
	case values.TestResult:
		if r.Passed {
			return Line{Kind: KindTestPass, Text: "TEST PASSED!"}
		}
		return Line{Kind: KindTestFail, Text: fmt.Sprintf("TEST FAILED: %s != %s", r.ActualRepr, r.ExpectedRepr)}
	default:
		return Line{Kind: KindOutput, Text: fmt.Sprintf("OUTPUT:  %s", v.String())}
	}
}
