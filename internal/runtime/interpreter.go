// Package runtime evaluates expression trees.
package runtime

import (
	"letcalc/internal/ast"
	"letcalc/internal/diag"
	"letcalc/internal/span"
)

// ============================================================
// Interpreter
// ============================================================

// Interpreter walks a tree in post-order and computes its value. Values are
// float64 throughout; only the caller truncates the final result (see
// Truncate).
type Interpreter struct {
	env *Environment
}

// NewInterpreter creates an interpreter over env. A nil env gets a fresh
// environment.
func NewInterpreter(env *Environment) *Interpreter {
	if env == nil {
		env = NewEnvironment()
	}
	return &Interpreter{env: env}
}

// Env returns the environment the interpreter binds into.
func (i *Interpreter) Env() *Environment {
	return i.env
}

// Eval evaluates a tree rooted at node. The first failure aborts the walk.
func (i *Interpreter) Eval(node ast.Node) (float64, error) {
	switch n := node.(type) {
	case *ast.IntLiteral:
		return float64(n.Value), nil
	case *ast.Variable:
		return i.evalVariable(n)
	case *ast.Operation:
		return i.evalOperation(n)
	case nil:
		return 0, diag.Errorf(diag.Internal, span.Span{}, "internal error: nil node")
	default:
		return 0, diag.Errorf(diag.Internal, node.GetSpan(), "internal error: unhandled node type %T", node)
	}
}

func (i *Interpreter) evalVariable(n *ast.Variable) (float64, error) {
	val, ok := i.env.Get(n.Name)
	if !ok {
		return 0, diag.Errorf(diag.UndefinedVariable, n.Span, "undefined variable %q", n.Name)
	}
	return val, nil
}

func (i *Interpreter) evalOperation(n *ast.Operation) (float64, error) {
	arity := n.Op.Arity()
	if arity == 0 {
		return 0, diag.Errorf(diag.Internal, n.Span, "internal error: unknown operation %s", n.Op)
	}
	if len(n.Operands) != arity {
		return 0, diag.Errorf(diag.WrongNumberOfOperands, n.Span,
			"wrong number of operands for %s: want %d, got %d", n.Op, arity, len(n.Operands))
	}
	for idx, operand := range n.Operands {
		if operand == nil {
			return 0, diag.Errorf(diag.Internal, n.Span, "internal error: operand %d of %s is nil", idx+1, n.Op)
		}
	}

	if n.Op == ast.OpLet {
		return i.evalLet(n)
	}

	fn, ok := LookupBuiltin(n.Op)
	if !ok {
		return 0, diag.Errorf(diag.Internal, n.Span, "internal error: no implementation for %s", n.Op)
	}
	// Left before right: a let in the left operand binds for the right one.
	left, err := i.Eval(n.Operands[0])
	if err != nil {
		return 0, err
	}
	right, err := i.Eval(n.Operands[1])
	if err != nil {
		return 0, err
	}
	return fn(left, right), nil
}

// evalLet binds the first operand to the value of the second, then returns
// the value of the third. The value is computed before the name is bound, so
// let(a, add(a, 6), 5) fails when a is not already defined.
func (i *Interpreter) evalLet(n *ast.Operation) (float64, error) {
	target, ok := n.Operands[0].(*ast.Variable)
	if !ok {
		return 0, diag.Errorf(diag.FirstLetOperandMustBeVariable, n.Operands[0].GetSpan(),
			"leftmost operand of let must be a variable, got %s", n.Operands[0])
	}
	value, err := i.Eval(n.Operands[1])
	if err != nil {
		return 0, err
	}
	i.env.Bind(target.Name, value)
	return i.Eval(n.Operands[2])
}
