package server

import (
	"bytes"

	"github.com/yuin/goldmark"

	"github.com/leinonen/racket-lisp/pkg/builtins"
)

// renderDocsHTML converts builtins.Reference (the primitive table, in
// Markdown) to HTML for the /docs route.
func renderDocsHTML() (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(builtins.Reference), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
