package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/xiam/sexp-front/ast"
	"github.com/xiam/sexp-front/lexer"
)

// TokenEOF is returned by the token cursor once the input is exhausted.
var TokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0, 0)

type parserState func(p *Parser) parserState

// Options configure a Parser. The zero value is strict: unknown characters
// and tokens after the top-level list are errors and nesting is unlimited.
type Options struct {
	Lexer lexer.Options

	// MaxDepth limits how many lists can be open at once, zero means no
	// limit.
	MaxDepth int

	// AllowTrailingTokens ignores whatever follows the first complete
	// top-level list.
	AllowTrailingTokens bool

	// Logger receives debug messages. Defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

// Parser reads exactly one top-level list. Open lists are kept on an
// explicit stack, so nesting depth is not bound by the goroutine stack.
type Parser struct {
	r io.Reader

	opts Options
	log  logrus.FieldLogger

	tokens []lexer.Token
	pos    int
	last   *lexer.Token

	stack []*ast.Node
	root  *ast.Node

	lastErr error
}

// New creates a parser that reads its input from r.
func New(r io.Reader, opts Options) *Parser {
	p := newParser(opts)
	p.r = r
	return p
}

// NewFromTokens creates a parser over an already tokenized input.
func NewFromTokens(tokens []lexer.Token, opts Options) *Parser {
	p := newParser(opts)
	p.tokens = tokens
	return p
}

func newParser(opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if opts.Lexer.Logger == nil {
		opts.Lexer.Logger = logger
	}
	return &Parser{
		opts: opts,
		log:  logger,
	}
}

// Parse builds the tree. On failure Root returns nil.
func (p *Parser) Parse() error {
	if p.r != nil {
		tokens, err := lexer.TokenizeReader(p.r, p.opts.Lexer)
		if err != nil {
			return errors.Wrap(err, "tokenize")
		}
		p.tokens, p.r = tokens, nil
	}

	for state := parserDefaultState; state != nil; {
		state = state(p)
	}

	if p.lastErr != nil {
		p.root = nil
		return p.lastErr
	}

	return nil
}

// Root returns the parsed tree.
func (p *Parser) Root() *ast.Node {
	return p.root
}

func (p *Parser) peek() *lexer.Token {
	if p.pos < len(p.tokens) {
		return &p.tokens[p.pos]
	}
	return TokenEOF
}

func (p *Parser) next() *lexer.Token {
	tok := p.peek()
	if tok != TokenEOF {
		p.pos++
		p.last = tok
	}
	return tok
}

func (p *Parser) top() *ast.Node {
	return p.stack[len(p.stack)-1]
}

func (p *Parser) fail(err error, tok *lexer.Token) parserState {
	perr := &Error{Err: err}
	if tok != TokenEOF {
		perr.Found = tok
	} else {
		tok = p.last
	}
	if tok != nil {
		perr.Line, perr.Col = tok.Pos()
	}
	return parserErrorState(perr)
}

func parserErrorState(err error) parserState {
	return func(p *Parser) parserState {
		p.log.Debugf("parser error: %v", err)
		p.lastErr = err
		return nil
	}
}

func parserDefaultState(p *Parser) parserState {
	tok := p.next()
	if !tok.Is(lexer.TokenOpenList) {
		return p.fail(ErrExpectedOpenParen, tok)
	}
	return parserStateOpenList(tok)
}

func parserStateOpenList(tok *lexer.Token) parserState {
	return func(p *Parser) parserState {
		if p.opts.MaxDepth > 0 && len(p.stack) >= p.opts.MaxDepth {
			return p.fail(ErrMaxDepthExceeded, tok)
		}

		list := ast.NewList(tok)
		if len(p.stack) > 0 {
			if err := p.top().Push(list); err != nil {
				return parserErrorState(err)
			}
		}
		p.stack = append(p.stack, list)

		// "()" is a list holding a single void marker.
		if p.peek().Is(lexer.TokenCloseList) {
			closeTok := p.next()
			if _, err := list.PushValue(closeTok, ast.NewVoidValue()); err != nil {
				return parserErrorState(err)
			}
			return parserStateCloseList
		}

		return parserStateListBody
	}
}

func parserStateListBody(p *Parser) parserState {
	tok := p.next()

	var v ast.Valuer
	switch tok.Type() {
	case lexer.TokenEOF:
		return p.fail(ErrUnexpectedEOF, tok)

	case lexer.TokenOpenList:
		return parserStateOpenList(tok)

	case lexer.TokenCloseList:
		return parserStateCloseList

	case lexer.TokenSymbol:
		v = ast.NewSymbolValue(tok.Text())

	case lexer.TokenInteger:
		v = ast.NewIntValue(tok.Int())

	default:
		return p.fail(ErrUnexpectedToken, tok)
	}

	if _, err := p.top().PushValue(tok, v); err != nil {
		return parserErrorState(err)
	}
	return parserStateListBody
}

func parserStateCloseList(p *Parser) parserState {
	closed := p.top()
	p.stack = p.stack[:len(p.stack)-1]

	if len(p.stack) == 0 {
		p.root = closed
		return parserStateEnd
	}
	return parserStateListBody
}

func parserStateEnd(p *Parser) parserState {
	if p.peek().Is(lexer.TokenEOF) {
		return nil
	}
	if !p.opts.AllowTrailingTokens {
		return p.fail(ErrTrailingTokens, p.peek())
	}
	p.log.WithField("count", len(p.tokens)-p.pos).Debug("ignoring trailing tokens")
	return nil
}

// Parse reads exactly one list from in using the default options.
func Parse(in []byte) (*ast.Node, error) {
	return ParseWithOptions(in, Options{})
}

// ParseString is like Parse for a string input.
func ParseString(in string) (*ast.Node, error) {
	return ParseReader(strings.NewReader(in), Options{})
}

// ParseWithOptions reads exactly one list from in.
func ParseWithOptions(in []byte, opts Options) (*ast.Node, error) {
	return ParseReader(bytes.NewReader(in), opts)
}

// ParseReader reads exactly one list from r.
func ParseReader(r io.Reader, opts Options) (*ast.Node, error) {
	p := New(r, opts)
	if err := p.Parse(); err != nil {
		return nil, err
	}
	return p.Root(), nil
}

// ParseTokens builds a tree from tokens produced by the lexer.
func ParseTokens(tokens []lexer.Token, opts Options) (*ast.Node, error) {
	p := NewFromTokens(tokens, opts)
	if err := p.Parse(); err != nil {
		return nil, err
	}
	return p.Root(), nil
}
