// Package sexpr reads small S-expression programs into an AST.
//
// Source text is scanned into tokens by package lexer and the tokens are
// assembled into a tree of ast.Node values by package parser. A program is
// exactly one parenthesized list; symbols are runs of ASCII letters or a
// single "+", integers are unsigned decimal literals that fit in an int64.
//
// The empty list "()" is represented as a list holding one void marker.
package sexpr

import (
	"bytes"
	"io"

	"github.com/xiam/sexp-front/ast"
	"github.com/xiam/sexp-front/lexer"
	"github.com/xiam/sexp-front/parser"
)

// Reader parses programs from an io.Reader.
type Reader struct {
	r    io.Reader
	opts parser.Options
}

// Parse reads one program from in using the default options.
func Parse(in []byte) (*ast.Node, error) {
	r := NewReader(bytes.NewReader(in))
	return r.Parse()
}

// Tokenize returns the tokens of in using the default options.
func Tokenize(in []byte) ([]lexer.Token, error) {
	return lexer.Tokenize(in)
}

// NewReader creates a Reader with the default options.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// WithOptions replaces the parser options of the Reader.
func (r *Reader) WithOptions(opts parser.Options) *Reader {
	r.opts = opts
	return r
}

// Parse reads and parses the whole input.
func (r *Reader) Parse() (*ast.Node, error) {
	return parser.ParseReader(r.r, r.opts)
}
