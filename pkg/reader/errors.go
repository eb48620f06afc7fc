package reader

import "fmt"

// ErrorKind distinguishes the reader's failure modes, per spec.md
// section 4.1.
type ErrorKind int

const (
	ErrUnbalanced ErrorKind = iota
	ErrEmptyForm
	ErrBadNumber
)

// Error is the reader's typed failure, grounded on the teacher's
// pkg/minimal/errors.go ParseError (message + source position).
type Error struct {
	Kind    ErrorKind
	Message string
	Pos     int
}

func (e *Error) Error() string {
	return fmt.Sprintf("reader error at offset %d: %s", e.Pos, e.Message)
}
