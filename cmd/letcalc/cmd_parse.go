package main

import (
	"errors"
	"fmt"
	"letcalc/internal/ast"
	"letcalc/internal/diag"
	"letcalc/internal/lexer"
	"letcalc/internal/parser"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

type parseEnv struct {
	*rootEnv
	pretty bool
}

// parseCmd returns the definition of the parse command.
func (env *rootEnv) parseCmd() *cobra.Command {
	pe := &parseEnv{rootEnv: env}
	cmd := &cobra.Command{
		Use:   "parse <expression>",
		Short: "Print the expression tree.",
		Long: `Print the expression tree as JSON, together with the parse
diagnostic if there is one. With --pretty the tree is dumped as Go values.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: pe.run,
	}
	cmd.Flags().BoolVar(&pe.pretty, "pretty", false, "dump the tree as Go values instead of JSON")
	return cmd
}

func (pe *parseEnv) run(cmd *cobra.Command, args []string) error {
	tree, err := parser.Parse(lexer.Tokenize(args[0]))
	if err != nil {
		pe.log.Errorf("parse %q: %v", args[0], err)
	}

	if pe.pretty {
		if err != nil {
			printError(cmd.ErrOrStderr(), err)
			return exitCode(1)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%# v\n", pretty.Formatter(tree))
		return nil
	}

	diags := []map[string]interface{}{}
	var d *diag.Diagnostic
	if errors.As(err, &d) {
		diags = append(diags, diagToMap(d))
	}
	output := map[string]interface{}{
		"ast":         ast.NodeToMap(tree),
		"diagnostics": diags,
	}
	if perr := printJSON(cmd.OutOrStdout(), output); perr != nil {
		return perr
	}
	if err != nil {
		return exitCode(1)
	}
	return nil
}
