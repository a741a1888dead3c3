package parser

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/xiam/sexp-front/lexer"
)

// Parsing failures. They are returned wrapped in an *Error, use errors.Is to
// match them.
var (
	ErrExpectedOpenParen = errors.New("expected open paren")
	ErrUnexpectedEOF     = errors.New("unexpected EOF")
	ErrUnexpectedToken   = errors.New("unexpected token")
	ErrTrailingTokens    = errors.New("unexpected tokens after top-level list")
	ErrMaxDepthExceeded  = errors.New("maximum nesting depth exceeded")
)

// Error describes a parsing failure. Found is the offending token, nil when
// the input ended. Line and Col point at the offending token or, at the end
// of input, at the last token read.
type Error struct {
	Err   error
	Found *lexer.Token

	Line int
	Col  int
}

func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Found != nil {
		msg = fmt.Sprintf("%v, found %q", msg, e.Found.Text())
	}
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, msg)
	}
	return msg
}

// Unwrap returns the underlying sentinel error.
func (e *Error) Unwrap() error {
	return e.Err
}
