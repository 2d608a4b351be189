package runtime

import (
	"errors"
	"letcalc/internal/ast"
	"letcalc/internal/diag"
	"letcalc/internal/lexer"
	"letcalc/internal/parser"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalSource parses and evaluates source with a fresh environment.
func evalSource(t *testing.T, source string) (float64, error) {
	t.Helper()
	tree, err := parser.Parse(lexer.Tokenize(source))
	require.NoError(t, err, "parse %q", source)
	return NewInterpreter(nil).Eval(tree)
}

func expectValue(t *testing.T, source string, expected float64) {
	t.Helper()
	got, err := evalSource(t, source)
	require.NoError(t, err, source)
	assert.Equal(t, expected, got, source)
}

func expectError(t *testing.T, source string, kind diag.Kind) {
	t.Helper()
	_, err := evalSource(t, source)
	require.Error(t, err, source)
	assert.True(t, errors.Is(err, kind), "%q: expected %s, got %v", source, kind, err)
}

// ---- Tests ----

func TestLiteral(t *testing.T) {
	expectValue(t, "42", 42)
	expectValue(t, "-7", -7)
}

func TestArithmetic(t *testing.T) {
	expectValue(t, "add(1, 2)", 3)
	expectValue(t, "sub(1, 2)", -1)
	expectValue(t, "mult(add(2, 2), div(9, 3))", 12)
	expectValue(t, "add(1, mult(2, 3))", 7)
	expectValue(t, "div(7, 2)", 3.5) // true division
}

func TestDivisionByZero(t *testing.T) {
	got, err := evalSource(t, "div(1, 0)")
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))

	got, err = evalSource(t, "div(0, 0)")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestLet(t *testing.T) {
	expectValue(t, "let(a, 5, add(a, a))", 10)
	expectValue(t, "let(a, 5, let(b, mult(a, 10), add(b, a)))", 55)
	expectValue(t, "let(a,5,a)", 5)
	expectValue(t, "let(a, add(4,6), 5)", 5)
	expectValue(t, "let(Let, 5, add(Let, Let))", 10)
}

func TestLetBindingIsNeverRestored(t *testing.T) {
	// The inner let(b, 10, ...) and the outer let(b, 20, ...) share one table.
	expectValue(t, "let(a, let(b, 10, add(b, b)), let(b, 20, add(a, b)))", 40)
	// x is bound in the left operand and still visible in the right one.
	expectValue(t, "add(let(x, 1, x), x)", 2)
	// Shadowing overwrites for the rest of the walk.
	expectValue(t, "let(a, 1, add(let(a, 2, a), a))", 4)
}

func TestUndefinedVariable(t *testing.T) {
	expectError(t, "let(a, add(a,6), 5)", diag.UndefinedVariable)
	expectError(t, "let(a,a,5)", diag.UndefinedVariable)
	expectError(t, "add(x, 1)", diag.UndefinedVariable)
	// Right operand is evaluated after the left one.
	expectError(t, "add(x, let(x, 1, x))", diag.UndefinedVariable)
}

func TestFirstLetOperandMustBeVariable(t *testing.T) {
	expectError(t, "let(add(2,3), 5, 0)", diag.FirstLetOperandMustBeVariable)
	expectError(t, "let(3, 5, 0)", diag.FirstLetOperandMustBeVariable)
}

func TestLetTargetCheckedBeforeValue(t *testing.T) {
	// The value expression would fail too; the target check wins.
	expectError(t, "let(1, y, 0)", diag.FirstLetOperandMustBeVariable)
}

func TestWrongNumberOfOperands(t *testing.T) {
	tree := &ast.Operation{Op: ast.OpAdd, Operands: []ast.Node{&ast.IntLiteral{Value: 1}}}
	_, err := NewInterpreter(nil).Eval(tree)
	require.Error(t, err)
	assert.True(t, errors.Is(err, diag.WrongNumberOfOperands), err.Error())

	tree = &ast.Operation{Op: ast.OpLet, Operands: []ast.Node{&ast.Variable{Name: "a"}, &ast.IntLiteral{Value: 1}}}
	_, err = NewInterpreter(nil).Eval(tree)
	assert.True(t, errors.Is(err, diag.WrongNumberOfOperands))
}

func TestInternalErrors(t *testing.T) {
	_, err := NewInterpreter(nil).Eval(&ast.Operation{Op: ast.OpInvalid})
	assert.True(t, errors.Is(err, diag.Internal))

	_, err = NewInterpreter(nil).Eval(nil)
	assert.True(t, errors.Is(err, diag.Internal))

	_, err = NewInterpreter(nil).Eval(&ast.Operation{Op: ast.OpAdd, Operands: []ast.Node{nil, nil}})
	assert.True(t, errors.Is(err, diag.Internal))
}

func TestEnvironmentIsPerInterpreter(t *testing.T) {
	tree, err := parser.Parse(lexer.Tokenize("let(a, 5, a)"))
	require.NoError(t, err)

	first := NewInterpreter(nil)
	_, err = first.Eval(tree)
	require.NoError(t, err)
	v, ok := first.Env().Get("a")
	require.True(t, ok)
	assert.Equal(t, float64(5), v)

	lookup, err := parser.Parse(lexer.Tokenize("add(a, 0)"))
	require.NoError(t, err)
	_, err = NewInterpreter(nil).Eval(lookup)
	assert.True(t, errors.Is(err, diag.UndefinedVariable))
}

func TestTruncate(t *testing.T) {
	testCases := []struct {
		in   float64
		want int32
	}{
		{3.5, 3},
		{-3.5, -3},
		{0.999, 0},
		{math.Inf(1), math.MaxInt32},
		{math.Inf(-1), math.MinInt32},
		{math.NaN(), 0},
		{1e12, math.MaxInt32},
		{-1e12, math.MinInt32},
		{2147483647, 2147483647},
		{-2147483648, -2147483648},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, Truncate(tc.in), FormatNumber(tc.in))
	}
}

func TestLookupBuiltin(t *testing.T) {
	_, ok := LookupBuiltin(ast.OpLet)
	assert.False(t, ok)

	fn, ok := LookupBuiltin(ast.OpSub)
	require.True(t, ok)
	assert.Equal(t, float64(-1), fn(1, 2))
}
