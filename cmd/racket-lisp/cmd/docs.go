package cmd

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"

	"github.com/leinonen/racket-lisp/pkg/builtins"
)

var docsMarkdown bool

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Print the built-in reference",
	Long:  `docs prints the built-in primitive reference as HTML, or as Markdown with --markdown.`,
	RunE: func(c *cobra.Command, args []string) error {
		if docsMarkdown {
			_, err := os.Stdout.WriteString(builtins.Reference)
			return err
		}
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(builtins.Reference), &buf); err != nil {
			return err
		}
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	},
}

func init() {
	docsCmd.Flags().BoolVar(&docsMarkdown, "markdown", false, "print the raw Markdown instead of rendered HTML")
	rootCmd.AddCommand(docsCmd)
}
