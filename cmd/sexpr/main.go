// sexpr reads an S-expression program and prints its tokens or its tree.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootEnv holds the flags shared by every subcommand.
type rootEnv struct {
	verbose bool
	noColor bool

	log *logrus.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd returns the sexpr command with all subcommands attached.
func newRootCmd() *cobra.Command {
	env := &rootEnv{log: logrus.New()}

	root := &cobra.Command{
		Use:   "sexpr",
		Short: "Tokenize and parse S-expression programs",
		Long: `
Reads one S-expression program from a file or stdin. A program is a single
parenthesized list of symbols, unsigned integers and nested lists.`,
		SilenceUsage:      true,
		PersistentPreRunE: env.setup,
	}
	root.PersistentFlags().BoolVarP(&env.verbose, "verbose", "v", false, "Log debug messages to stderr")
	root.PersistentFlags().BoolVar(&env.noColor, "no-color", false, "Never colorize output")

	root.AddCommand(getTokenizeCmd(env))
	root.AddCommand(getParseCmd(env))
	return root
}

func (r *rootEnv) setup(cmd *cobra.Command, _ []string) error {
	r.log.SetOutput(cmd.ErrOrStderr())
	r.log.SetLevel(logrus.WarnLevel)
	if r.verbose {
		r.log.SetLevel(logrus.DebugLevel)
	}
	return nil
}
