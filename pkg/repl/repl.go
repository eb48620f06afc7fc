// Package repl is the interactive read-eval-print loop: readline-driven
// multi-line input with balanced-bracket detection, one long-lived
// environment so definitions accumulate across lines, and
// fatih/color-rendered output grounded on the teacher's pkg/repl
// palette (green OUTPUT, yellow UPDATE, red errors).
package repl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/leinonen/racket-lisp/pkg/builtins"
	"github.com/leinonen/racket-lisp/pkg/environment"
	"github.com/leinonen/racket-lisp/pkg/evaluator"
	"github.com/leinonen/racket-lisp/pkg/logging"
	"github.com/leinonen/racket-lisp/pkg/reader"
	"github.com/leinonen/racket-lisp/pkg/values"
)

// Options configures prompt text and color use; the zero value gives
// the "racket-lisp> " prompt, Info-level logging and uncolored output.
type Options struct {
	Prompt      string
	Color       bool
	HistoryFile string
	LogLevel    slog.Level
}

func (o Options) withDefaults() Options {
	if o.Prompt == "" {
		o.Prompt = "racket-lisp> "
	}
	return o
}

// Run drives the loop until EOF (Ctrl-D) or a "quit"/"exit" line. All
// output is written to out; the environment seeded with builtins is
// shared across every line read, so a define on one line is visible on
// the next, matching interactive use as spec.md frames it.
func Run(out io.Writer, opts Options) error {
	opts = opts.withDefaults()
	if !opts.Color {
		color.NoColor = true
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          opts.Prompt,
		HistoryFile:     opts.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer rl.Close()

	outputColor := color.New(color.FgGreen)
	updateColor := color.New(color.FgYellow)
	errorColor := color.New(color.FgRed)

	top := environment.New(builtins.NewGlobalEnvironment())

	log := logging.New(opts.LogLevel)
	ctx := logging.WithLogger(context.Background(), log)

	log.InfoContext(ctx, "repl session started")
	defer log.InfoContext(ctx, "repl session ended")

	for {
		input, err := readBalancedForm(rl, opts.Prompt)
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return nil
			}
			return err
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		if trimmed == "quit" || trimmed == "exit" {
			return nil
		}

		forms, err := reader.Read(input)
		if err != nil {
			errorColor.Fprintln(out, err.Error())
			continue
		}

		for _, form := range forms {
			log.DebugContext(ctx, "top-level form evaluated", "form", form.String())
			v, err := evaluator.Eval(form, top)
			if err != nil {
				errorColor.Fprintln(out, err.Error())
				break
			}
			printValue(out, v, outputColor, updateColor)
		}
	}
}

func printValue(out io.Writer, v values.Value, outputColor, updateColor *color.Color) {
	switch r := v.(type) {
	case values.DefinitionResult:
		updateColor.Fprintf(out, "UPDATE: %s\n", r.Name)
	case values.TestResult:
		fmt.Fprintln(out, r.String())
	default:
		outputColor.Fprintf(out, "OUTPUT:  %s\n", v.String())
	}
}

// readBalancedForm reads lines from rl until the parentheses/brackets
// typed so far are balanced (or the user enters a single bare
// "quit"/"exit" line), mirroring the teacher's bracket-counting
// continuation-prompt behavior.
func readBalancedForm(rl *readline.Instance, primaryPrompt string) (string, error) {
	var lines []string
	depth := 0
	first := true

	for {
		if first {
			rl.SetPrompt(primaryPrompt)
			first = false
		} else {
			rl.SetPrompt(strings.Repeat(" ", len(primaryPrompt)-4) + "... ")
		}

		line, err := rl.Readline()
		if err != nil {
			return "", err
		}
		lines = append(lines, line)

		trimmed := strings.TrimSpace(line)
		if len(lines) == 1 && (trimmed == "quit" || trimmed == "exit") {
			return trimmed, nil
		}

		depth += bracketDelta(line)
		if depth <= 0 && hasContent(strings.Join(lines, "\n")) {
			break
		}
	}
	return strings.Join(lines, "\n"), nil
}

func bracketDelta(line string) int {
	delta := 0
	for _, ch := range line {
		switch ch {
		case '(', '[':
			delta++
		case ')', ']':
			delta--
		}
	}
	return delta
}

func hasContent(s string) bool {
	return strings.TrimSpace(s) != ""
}
