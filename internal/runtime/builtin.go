package runtime

import "letcalc/internal/ast"

// BuiltinFn is the Go signature for the arithmetic operations.
type BuiltinFn func(a, b float64) float64

// builtins maps each arithmetic operation to its implementation. let is not
// here: it needs the environment and is evaluated by the interpreter.
var builtins = map[ast.OpKind]BuiltinFn{
	ast.OpAdd: func(a, b float64) float64 { return a + b },
	ast.OpSub: func(a, b float64) float64 { return a - b },
	ast.OpMul: func(a, b float64) float64 { return a * b },
	// True division. A zero divisor yields ±Inf or NaN, never an error.
	ast.OpDiv: func(a, b float64) float64 { return a / b },
}

// LookupBuiltin returns the implementation of an arithmetic operation.
func LookupBuiltin(op ast.OpKind) (BuiltinFn, bool) {
	fn, ok := builtins[op]
	return fn, ok
}
