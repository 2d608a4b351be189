package main

import (
	"fmt"
	"io"
	"letcalc/internal/ast"
	"letcalc/internal/calc"
	"letcalc/internal/runtime"
	"os"
	"strings"

	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// evalOne evaluates a single expression given on the command line.
func (env *rootEnv) evalOne(cmd *cobra.Command, expr string) error {
	env.log.Infof("evaluating %q", expr)
	value, tr, err := calc.EvaluateTrace(expr)
	env.logTrace(tr)
	if err != nil {
		env.log.Errorf("%q: %v", expr, err)
		printError(cmd.ErrOrStderr(), err)
		return exitCode(1)
	}
	env.log.Infof("%q = %d", expr, value)
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

// batch evaluates every line of r, printing one result per expression.
// Failures are reported with their line number and make the command fail
// once all lines have been evaluated.
func (env *rootEnv) batch(cmd *cobra.Command, r io.Reader, name string) error {
	env.log.Infof("evaluating lines of %s", name)
	failed := 0
	err := calc.Batch(r, func(l calc.Line) {
		if l.Err != nil {
			failed++
			env.log.Errorf("%s:%d: %q: %v", name, l.Number, l.Source, l.Err)
			printError(cmd.ErrOrStderr(), fmt.Errorf("%s:%d: %w", name, l.Number, l.Err))
			return
		}
		env.log.Infof("%s:%d: %q = %d", name, l.Number, l.Source, l.Value)
		fmt.Fprintln(cmd.OutOrStdout(), l.Value)
	})
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if failed > 0 {
		env.log.Errorf("%s: %d expression(s) failed", name, failed)
		return exitCode(1)
	}
	return nil
}

// logTrace records what each stage produced, at debug level only.
func (env *rootEnv) logTrace(tr *calc.Trace) {
	if tr == nil || !env.log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	lexemes := make([]string, len(tr.Tokens))
	for i, tok := range tr.Tokens {
		lexemes[i] = tok.Lexeme
	}
	env.log.Debugf("tokens: [%s]", strings.Join(lexemes, " "))
	if tr.Tree != nil {
		env.log.Debugf("tree (depth %d): %s\n%# v", ast.Depth(tr.Tree), tr.Tree, pretty.Formatter(tr.Tree))
	}
	if tr.Env != nil {
		env.log.Debugf("raw result %s, %d binding(s)", runtime.FormatNumber(tr.Raw), tr.Env.Len())
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
