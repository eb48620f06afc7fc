package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/leinonen/racket-lisp/pkg/config"
	"github.com/leinonen/racket-lisp/pkg/logging"
	"github.com/leinonen/racket-lisp/pkg/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE: func(c *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return repl.Run(os.Stdout, repl.Options{
			Prompt:   cfg.REPL.Prompt,
			Color:    cfg.REPL.Color,
			LogLevel: logging.ParseLevel(cfg.Log.Level),
		})
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
