package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiam/sexp-front/lexer"
)

// tokenizeEnv provides the environment for the tokenize command.
type tokenizeEnv struct {
	*rootEnv

	flagFile           string
	haltOnUnrecognized bool
}

// getTokenizeCmd returns the definition of the tokenize command.
func getTokenizeCmd(root *rootEnv) *cobra.Command {
	env := &tokenizeEnv{rootEnv: root}

	ret := &cobra.Command{
		Use:     "tokenize",
		Aliases: []string{"tok"},
		Short:   "Print the tokens of a program, one per line",
		Args:    cobra.NoArgs,
		RunE:    env.runTokenizeCmd,
	}
	ret.Flags().StringVarP(&env.flagFile, "file", "f", "", "Input file to use instead of stdin")
	ret.Flags().BoolVar(&env.haltOnUnrecognized, "halt-on-unrecognized", false, "Stop at the first unknown character instead of failing")

	return ret
}

func (e *tokenizeEnv) runTokenizeCmd(cmd *cobra.Command, _ []string) error {
	in, closeFn, err := getFileOrStdin(cmd, e.flagFile)
	if err != nil {
		return err
	}
	defer closeInput(e.log, closeFn)

	tokens, err := lexer.TokenizeReader(in, lexer.Options{
		HaltOnUnrecognized: e.haltOnUnrecognized,
		Logger:             e.log,
	})
	if err != nil {
		return err
	}
	e.log.WithField("count", len(tokens)).Debug("tokenized input")

	out := cmd.OutOrStdout()
	for _, tok := range tokens {
		line, col := tok.Pos()
		fmt.Fprintf(out, "%d:%d\t%v\t%q\n", line, col, tok.Type(), tok.Text())
	}
	return nil
}
