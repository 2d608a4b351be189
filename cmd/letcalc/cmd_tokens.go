package main

import (
	"letcalc/internal/lexer"

	"github.com/spf13/cobra"
)

type tokensEnv struct {
	*rootEnv
	jsonMode bool
}

// tokensCmd returns the definition of the tokens command.
func (env *rootEnv) tokensCmd() *cobra.Command {
	te := &tokensEnv{rootEnv: env}
	cmd := &cobra.Command{
		Use:   "tokens <expression>",
		Short: "Print the tokens of an expression.",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE:  te.run,
	}
	cmd.Flags().BoolVar(&te.jsonMode, "json", false, "print tokens as JSON")
	return cmd
}

func (te *tokensEnv) run(cmd *cobra.Command, args []string) error {
	tokens := lexer.Tokenize(args[0])
	te.log.Debugf("%d token(s) in %q", len(tokens), args[0])
	if te.jsonMode {
		return printTokensJSON(cmd.OutOrStdout(), tokens)
	}
	printTokensText(cmd.OutOrStdout(), tokens)
	return nil
}
