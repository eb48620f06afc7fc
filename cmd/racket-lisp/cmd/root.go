// Package cmd is the cobra command tree for the racket-lisp binary:
// run, repl, serve and docs subcommands, grounded on
// CWBudde-go-dws/cmd/dwscript/cmd's root+subcommand layout.
package cmd

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "racket-lisp",
	Short: "A small Scheme/Racket-style Lisp interpreter",
	Long: `racket-lisp embeds a small Scheme/Racket-style Lisp core: a reader,
a lexically-scoped evaluator, and a fixed primitive library covering
arithmetic, comparisons, and two-cell pairs.

Use "run" to evaluate a script once, "repl" for an interactive session,
or "serve" to expose evaluation over HTTP.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".racketlisprc.toml", "path to an optional TOML config file")
}
