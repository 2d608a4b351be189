// Package calc is the entry point to the expression language: it runs the
// lexer, the parser and the interpreter over one input string.
//
// Evaluations are independent. Each call builds its own tree and its own
// environment, so concurrent calls share no mutable state.
package calc

import (
	"letcalc/internal/ast"
	"letcalc/internal/lexer"
	"letcalc/internal/parser"
	"letcalc/internal/runtime"
	"letcalc/internal/token"
)

// Trace holds the intermediate products of one evaluation. Fields are
// filled in as far as the evaluation got before failing.
type Trace struct {
	Tokens []token.Token
	Tree   ast.Node
	Raw    float64 // untruncated result
	Env    *runtime.Environment
}

// Evaluate computes the integer value of source. Empty, whitespace-only and
// delimiter-only input fail with diag.BadExpression.
func Evaluate(source string) (int32, error) {
	v, _, err := EvaluateTrace(source)
	return v, err
}

// EvaluateTrace is Evaluate, additionally returning what each stage
// produced.
func EvaluateTrace(source string) (int32, *Trace, error) {
	tr := &Trace{}
	tr.Tokens = lexer.Tokenize(source)

	tree, err := parser.Parse(tr.Tokens)
	if err != nil {
		return 0, tr, err
	}
	tr.Tree = tree

	tr.Env = runtime.NewEnvironment()
	raw, err := runtime.NewInterpreter(tr.Env).Eval(tree)
	if err != nil {
		return 0, tr, err
	}
	tr.Raw = raw
	return runtime.Truncate(raw), tr, nil
}
