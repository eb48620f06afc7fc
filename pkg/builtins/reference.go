package builtins

// Reference is the spec.md section 4.4 primitive table rendered as
// Markdown, used by the "racket-lisp docs" command and the HTTP
// server's /docs route (both render it to HTML with goldmark).
const Reference = `# Built-in reference

| Name | Arity | Semantics |
|---|---|---|
| ` + "`+`" + ` | >=0 | sum of Numbers; empty -> 0 |
| ` + "`-`" + ` | >=1 | a - (b+c+...) |
| ` + "`*`" + ` | >=0 | product; empty -> 1 |
| ` + "`/`" + ` | >=1 | a / (b*c*...); divide-by-zero fails |
| ` + "`modulo`" + ` | 2 | floating a mod b |
| ` + "`expt`" + ` | 2 | a**b |
| ` + "`log`" + ` | 2 | log base b of a |
| ` + "`sqrt`" + ` | 1 | a**0.5 |
| ` + "`floor`" + ` | 1 | greatest integer <= a, as a Number |
| ` + "`min`/`max`" + ` | >=1 | numeric min/max |
| ` + "`=`, `<`, `>`, `<=`, `>=`" + ` | 2 | Number compare, returns a Boolean |
| ` + "`cons`" + ` | 2 | builds a two-cell Pair |
| ` + "`first`" + ` | 1 | head of a Pair; fails on Empty |
| ` + "`rest`" + ` | 1 | tail of a Pair; fails on Empty |
| ` + "`empty`" + ` | 0 | the Empty sentinel |
| ` + "`empty?`" + ` | 1 | true iff the argument is Empty |
| ` + "`true`, `false`, `pi`" + ` | -- | constants |

` + "`cons`" + ` builds a two-element cell, not a proper list, so
` + "`(cons 1 (cons 2 empty))`" + ` yields the dotted pair
` + "`(1.0 . (2.0 . '()))`" + `. ` + "`first`/`rest`" + ` project that cell.
`
