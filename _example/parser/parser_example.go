package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/xiam/sexp-front/ast"
	"github.com/xiam/sexp-front/parser"
)

func main() {
	// A program cut short reports where the input ended.
	_, err := parser.ParseString(`(first (list 1 (+ 2 3)`)
	if !errors.Is(err, parser.ErrUnexpectedEOF) {
		log.Fatalf("expected an unexpected EOF, got %v", err)
	}
	fmt.Println("truncated:", err)

	// Nesting can be capped, and anything after the first list can be
	// ignored instead of rejected.
	opts := parser.Options{
		MaxDepth:            3,
		AllowTrailingTokens: true,
	}

	_, err = parser.ParseWithOptions([]byte(`(a (b (c (d))))`), opts)
	if !errors.Is(err, parser.ErrMaxDepthExceeded) {
		log.Fatalf("expected the depth limit, got %v", err)
	}
	fmt.Println("too deep:", err)

	root, err := parser.ParseWithOptions([]byte(`(first (list 1 (+ 2 3) 9) ()) (ignored)`), opts)
	if err != nil {
		log.Fatal("parser.ParseWithOptions:", err)
	}

	fmt.Printf("depth %d: %s\n\n", ast.Depth(root), ast.Encode(root))
	ast.Printer{Color: true}.Fprint(os.Stdout, root)
}
