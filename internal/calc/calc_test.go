package calc

import (
	"errors"
	"letcalc/internal/diag"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateGoodExpressions(t *testing.T) {
	testCases := map[string]int32{
		"let(a, let(b, 10, add(b, b)), let(b, 20, add(a, b))": 40,
		"let(a, 5, let(b, mult(a, 10),add(b, a)))":            55,
		"let(a, 5, add(a, a))":                                10,
		"mult(add(2, 2), div(9, 3))":                          12,
		"add(1, mult(2, 3))":                                  7,
		"add(1, 2)":                                           3,
		"let(Let, 5, add(Let, Let))":                          10,
		"let(a,5,a)":                                          5,
		"let(a, add(4,6), 5)":                                 5,
		"let(a,5,add(a,a))":                                   10,
		"let(a,5,let(b,mult(a,10),add(b,a)))":                 55,
		"mult(add(2,2),div(9,3))":                             12,
		// Delimiter problems that still evaluate.
		"add((1, 2)":                     3,
		"let(Let, 5, add(Let, Let))))))": 10,
	}
	for expr, want := range testCases {
		got, err := Evaluate(expr)
		require.NoError(t, err, expr)
		assert.Equal(t, want, got, expr)
	}
}

func TestEvaluateErrors(t *testing.T) {
	testCases := []struct {
		expr string
		kind diag.Kind
	}{
		{"", diag.BadExpression},
		{"  \t", diag.BadExpression},
		{",() ", diag.BadExpression},
		{"add(3,4,2)", diag.BadExpression},
		{"let(a,a,5) b", diag.BadExpression},
		{"[!", diag.UnknownLiteralType},
		{"add(2147483648, 1)", diag.UnknownLiteralType},
		{"b let(a,a,5) c", diag.WrongVariablePosition},
		{"let(a, add(a,6), 5)", diag.UndefinedVariable},
		{"let(a,a,5)", diag.UndefinedVariable},
		{"let(add(2,3), 5, 0)", diag.FirstLetOperandMustBeVariable},
	}
	for _, tc := range testCases {
		got, err := Evaluate(tc.expr)
		require.Error(t, err, tc.expr)
		assert.Equal(t, int32(0), got)
		assert.True(t, errors.Is(err, tc.kind), "%q: expected %s, got %v", tc.expr, tc.kind, err)
	}
}

func TestEvaluateTruncatesResult(t *testing.T) {
	testCases := map[string]int32{
		"div(7, 2)":          3,
		"div(-7, 2)":         -3,
		"div(1, 0)":          math.MaxInt32,
		"sub(0, div(1, 0))":  math.MinInt32,
		"div(0, 0)":          0,
		"mult(65536, 65536)": math.MaxInt32,
		"add(2147483647, 0)": 2147483647,
	}
	for expr, want := range testCases {
		got, err := Evaluate(expr)
		require.NoError(t, err, expr)
		assert.Equal(t, want, got, expr)
	}
}

func TestEvaluateTrace(t *testing.T) {
	v, tr, err := EvaluateTrace("let(a, 7, div(a, 2))")
	require.NoError(t, err)
	assert.Equal(t, int32(3), v)
	assert.Len(t, tr.Tokens, 6)
	assert.Equal(t, "let(a, 7, div(a, 2))", tr.Tree.String())
	assert.Equal(t, 3.5, tr.Raw)
	a, ok := tr.Env.Get("a")
	require.True(t, ok)
	assert.Equal(t, float64(7), a)

	_, tr, err = EvaluateTrace("add(1")
	require.Error(t, err)
	assert.Len(t, tr.Tokens, 2)
	assert.Nil(t, tr.Tree)
}

func TestEvaluateIsIndependentPerCall(t *testing.T) {
	_, err := Evaluate("let(a, 5, a)")
	require.NoError(t, err)

	// A binding from the previous call must not leak into this one.
	_, err = Evaluate("add(a, 1)")
	assert.True(t, errors.Is(err, diag.UndefinedVariable))

	for i := 0; i < 3; i++ {
		got, err := Evaluate("let(a, 5, let(b, mult(a, 10), add(b, a)))")
		require.NoError(t, err)
		assert.Equal(t, int32(55), got)
	}
}

func TestEvaluateConcurrently(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]int32, 32)
	errs := make([]error, len(results))
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Evaluate("let(x, 6, let(y, 7, mult(x, y)))")
		}(i)
	}
	wg.Wait()
	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, int32(42), results[i])
	}
}

func TestBatch(t *testing.T) {
	input := strings.Join([]string{
		"# comment",
		"add(1, 2)",
		"",
		"let(a, 5, a)",
		"add(a, 1)",
	}, "\n")

	var lines []Line
	err := Batch(strings.NewReader(input), func(l Line) {
		lines = append(lines, l)
	})
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, 2, lines[0].Number)
	assert.Equal(t, int32(3), lines[0].Value)
	assert.NoError(t, lines[0].Err)

	assert.Equal(t, 4, lines[1].Number)
	assert.Equal(t, int32(5), lines[1].Value)

	assert.Equal(t, 5, lines[2].Number)
	assert.True(t, errors.Is(lines[2].Err, diag.UndefinedVariable))
}
