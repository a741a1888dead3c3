package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/pkg/errors"

	"github.com/xiam/sexp-front/lexer"
)

func main() {
	input := "(square\n  (times x -1))"

	// By default the first character outside of the grammar is an error that
	// carries its position.
	_, err := lexer.TokenizeString(input)

	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) || !errors.Is(err, lexer.ErrUnrecognizedCharacter) {
		log.Fatalf("expected an unrecognized character, got %v", err)
	}
	fmt.Printf("rejected %q at line %d, col %d\n\n", lexErr.Text, lexErr.Line, lexErr.Col)

	// HaltOnUnrecognized keeps what was read up to that character.
	tokens, err := lexer.TokenizeReader(strings.NewReader(input), lexer.Options{
		HaltOnUnrecognized: true,
	})
	if err != nil {
		log.Fatal("lexer.TokenizeReader:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		fmt.Printf("token[%d] %d:%d %v %q\n", i, line, col, tok.Type(), tok.Text())
	}
}
