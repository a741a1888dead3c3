package lexer

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/sirupsen/logrus"
)

type lexState func(*Lexer) lexState

var (
	isOpenList  = isTokenType(TokenOpenList)
	isCloseList = isTokenType(TokenCloseList)

	isInteger = isTokenType(TokenInteger)
	isLetter  = isTokenType(TokenSymbol)
)

// Options control how a Lexer deals with unexpected input. The zero value is
// ready to use.
type Options struct {
	// HaltOnUnrecognized stops scanning at the first character that matches
	// no rule and keeps the tokens found so far, instead of failing with
	// ErrUnrecognizedCharacter.
	HaltOnUnrecognized bool

	// Logger receives debug messages. Defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

// byteOrderMark is U+FEFF encoded as UTF-8.
const byteOrderMark = "\xef\xbb\xbf"

// New initializes a Lexer object
func New(r io.Reader, opts Options) *Lexer {
	// text/scanner silently drops a leading U+FEFF. It is not part of the
	// grammar, so take it out before the scanner does and report it like any
	// other unrecognized character.
	br := bufio.NewReader(r)
	leadingBOM := false
	if head, _ := br.Peek(len(byteOrderMark)); string(head) == byteOrderMark {
		_, _ = br.Discard(len(byteOrderMark))
		leadingBOM = true
	}

	s := &scanner.Scanner{}
	s.Init(br)
	// invalid UTF-8 comes back as utf8.RuneError and is reported as an
	// unrecognized character, don't print anything to stderr.
	s.Error = func(*scanner.Scanner, string) {}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Lexer{
		in:     s,
		opts:   opts,
		log:    logger,
		tokens: []Token{},
		buf:    []rune{},

		leadingBOM: leadingBOM,

		line: 1,
		col:  1,
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in *scanner.Scanner

	opts Options
	log  logrus.FieldLogger

	tokens  []Token
	lastErr error

	buf []rune

	leadingBOM bool

	line int
	col  int

	startLine int
	startCol  int
}

// Tokens returns the tokens collected by Scan.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan reads the whole input and collects its tokens.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.lastErr
}

func (lx *Lexer) mark() {
	lx.startLine, lx.startCol = lx.line, lx.col
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, *NewToken(tt, string(lx.buf), lx.startLine, lx.startCol))
	lx.mark()
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	if isNewLine(r) {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}

	lx.buf = append(lx.buf, r)
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	lx.mark()

	if lx.leadingBOM {
		lx.leadingBOM = false
		lx.buf = append(lx.buf, '\uFEFF')
		lx.col++
		return lexUnrecognized
	}

	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case isWhitespace(r):
		return lexSkipWhitespace

	case isOpenList(r):
		return lexEmit(TokenOpenList)
	case isCloseList(r):
		return lexEmit(TokenCloseList)

	case isInteger(r):
		return lexCollectStream(isInteger, lexInteger)
	case isLetter(r):
		return lexCollectStream(isLetter, lexEmit(TokenSymbol))
	case isPlus(r):
		return lexEmit(TokenSymbol)

	default:
		return lexUnrecognized
	}
}

func lexSkipWhitespace(lx *Lexer) lexState {
	for isWhitespace(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	return lexDefaultState
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexCollectStream(accept func(rune) bool, then lexState) lexState {
	return func(lx *Lexer) lexState {
		for accept(lx.peek()) {
			if _, err := lx.next(); err != nil {
				return lexStateError(err)
			}
		}
		return then
	}
}

func lexInteger(lx *Lexer) lexState {
	text := string(lx.buf)

	i64, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return lexStateError(&Error{
			Err:  ErrIntegerOverflow,
			Text: text,
			Line: lx.startLine,
			Col:  lx.startCol,
		})
	}

	lx.tokens = append(lx.tokens, *NewIntegerToken(i64, text, lx.startLine, lx.startCol))
	lx.mark()
	return lexDefaultState
}

func lexUnrecognized(lx *Lexer) lexState {
	text := string(lx.buf)

	if lx.opts.HaltOnUnrecognized {
		lx.log.WithFields(logrus.Fields{
			"line": lx.startLine,
			"col":  lx.startCol,
			"char": text,
		}).Debug("lexer halted on unrecognized character")
		return nil
	}

	return lexStateError(&Error{
		Err:  ErrUnrecognizedCharacter,
		Text: text,
		Line: lx.startLine,
		Col:  lx.startCol,
	})
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return func(lx *Lexer) lexState {
		lx.log.Debugf("lexer error: %v", err)
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it, or
// an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	return TokenizeReader(bytes.NewReader(in), Options{})
}

// TokenizeString is like Tokenize for a string input.
func TokenizeString(in string) ([]Token, error) {
	return TokenizeReader(strings.NewReader(in), Options{})
}

// TokenizeReader scans r with the given options.
func TokenizeReader(r io.Reader, opts Options) ([]Token, error) {
	lx := New(r, opts)
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}
