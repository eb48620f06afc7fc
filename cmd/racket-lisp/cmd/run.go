package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leinonen/racket-lisp/pkg/config"
	"github.com/leinonen/racket-lisp/pkg/logging"
	"github.com/leinonen/racket-lisp/pkg/script"
)

var runExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Evaluate a script and print its output lines",
	Long: `run evaluates a script top to bottom, printing one line per
top-level form: OUTPUT for an expression's value, UPDATE for a
definition, and a pass/fail line for each check-expect.

The source comes from -e, or from the named file, or from stdin when
neither is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		source, err := runSource(args)
		if err != nil {
			return err
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		log := logging.New(logging.ParseLevel(cfg.Log.Level))
		ctx := logging.WithLogger(context.Background(), log)

		log.InfoContext(ctx, "script started")
		lines, runErr := script.New(source).Run()
		for _, l := range lines {
			log.DebugContext(ctx, "top-level form evaluated", "text", l.Text)
			fmt.Fprintln(os.Stdout, l.Text)
		}
		if runErr != nil {
			log.InfoContext(ctx, "script finished", "forms", len(lines), "error", runErr.Error())
		} else {
			log.InfoContext(ctx, "script finished", "forms", len(lines))
		}
		return runErr
	},
}

func runSource(args []string) (string, error) {
	if runExpr != "" {
		return runExpr, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	runCmd.Flags().StringVarP(&runExpr, "eval", "e", "", "evaluate an inline expression instead of a file")
	rootCmd.AddCommand(runCmd)
}
