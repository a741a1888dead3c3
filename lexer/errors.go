package lexer

import (
	"fmt"

	"github.com/pkg/errors"
)

// Lexer failures. They are always returned wrapped in an *Error, use
// errors.Is to match them.
var (
	ErrIntegerOverflow       = errors.New("integer literal out of range")
	ErrUnrecognizedCharacter = errors.New("unrecognized character")
)

// Error describes a lexing failure and where it happened.
type Error struct {
	Err  error
	Text string

	Line int
	Col  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %v: %q", e.Line, e.Col, e.Err, e.Text)
}

// Unwrap returns the underlying sentinel error.
func (e *Error) Unwrap() error {
	return e.Err
}
