package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xiam/sexp-front/ast"
	"github.com/xiam/sexp-front/golispconv"
	"github.com/xiam/sexp-front/lexer"
	"github.com/xiam/sexp-front/parser"
)

// Output formats of the parse command.
const (
	formatSexpr  = "sexpr"
	formatTree   = "tree"
	formatGolisp = "golisp"
)

// parseEnv provides the environment for the parse command.
type parseEnv struct {
	*rootEnv

	flagFile           string
	format             string
	maxDepth           int
	allowTrailing      bool
	haltOnUnrecognized bool
}

// getParseCmd returns the definition of the parse command.
func getParseCmd(root *rootEnv) *cobra.Command {
	env := &parseEnv{rootEnv: root}

	ret := &cobra.Command{
		Use:   "parse",
		Short: "Parse a program and print its tree",
		Long: `
Parses exactly one top-level list and prints it. The "sexpr" format prints the
canonical text of the tree, "tree" prints one node per line and "golisp"
prints the data handed to the golisp interpreter.`,
		Args: cobra.NoArgs,
		RunE: env.runParseCmd,
	}
	ret.Flags().StringVarP(&env.flagFile, "file", "f", "", "Input file to use instead of stdin")
	ret.Flags().StringVar(&env.format, "format", formatSexpr, "Output format: sexpr, tree or golisp")
	ret.Flags().IntVar(&env.maxDepth, "max-depth", 0, "Maximum nesting depth, 0 for no limit")
	ret.Flags().BoolVar(&env.allowTrailing, "allow-trailing", false, "Ignore input after the first complete list")
	ret.Flags().BoolVar(&env.haltOnUnrecognized, "halt-on-unrecognized", false, "Stop at the first unknown character instead of failing")

	return ret
}

func (e *parseEnv) runParseCmd(cmd *cobra.Command, _ []string) error {
	switch e.format {
	case formatSexpr, formatTree, formatGolisp:
	default:
		return errors.Errorf("unknown format %q", e.format)
	}

	in, closeFn, err := getFileOrStdin(cmd, e.flagFile)
	if err != nil {
		return err
	}
	defer closeInput(e.log, closeFn)

	root, err := parser.ParseReader(in, parser.Options{
		Lexer: lexer.Options{
			HaltOnUnrecognized: e.haltOnUnrecognized,
		},
		MaxDepth:            e.maxDepth,
		AllowTrailingTokens: e.allowTrailing,
		Logger:              e.log,
	})
	if err != nil {
		return err
	}
	e.log.WithField("depth", ast.Depth(root)).Debug("parsed input")

	out := cmd.OutOrStdout()
	switch e.format {
	case formatTree:
		ast.Printer{Color: !e.noColor && !color.NoColor}.Fprint(out, root)
	case formatGolisp:
		s, err := golispconv.String(root)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
	default:
		fmt.Fprintf(out, "%s\n", ast.Encode(root))
	}
	return nil
}
