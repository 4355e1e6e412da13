package calc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uihilab/hydrodem/calc"
	"github.com/uihilab/hydrodem/dem"
)

// TestEval verifies operator semantics, precedence, and associativity on
// hand-computed expressions.
func TestEval(t *testing.T) {
	cases := []struct {
		expr    string
		v, x, y float64
		want    float64
	}{
		{expr: "1 + 2 * 3", want: 7},
		{expr: "(1 + 2) * 3", want: 9},
		{expr: "10 - 4 - 3", want: 3},       // left-associative
		{expr: "2 ^ 3 ^ 2", want: 512},      // right-associative
		{expr: "-2 ^ 2", want: -4},          // power binds tighter than unary minus
		{expr: "7 % 4", want: 3},
		{expr: "1 < 2", want: 1},
		{expr: "2 <= 1", want: 0},
		{expr: "3 != 3", want: 0},
		{expr: "value >= 5 ? 1 : 0", v: 7, want: 1},
		{expr: "value >= 5 ? 1 : 0", v: 4, want: 0},
		{expr: "value < 0 ? -1 : value == 0 ? 0 : 1", v: -3, want: -1},
		{expr: "value < 0 ? -1 : value == 0 ? 0 : 1", v: 0, want: 0},
		{expr: "value < 0 ? -1 : value == 0 ? 0 : 1", v: 9, want: 1},
		{expr: "min(3, x)", x: 5, want: 3},
		{expr: "max(abs(-4), y)", y: 2, want: 4},
		{expr: "floor(2.7) + ceil(2.1)", want: 5},
		{expr: "pow(2, 10)", want: 1024},
		{expr: "sqrt(value) * 2", v: 9, want: 6},
		{expr: "exp(0) + cos(0)", want: 2},
	}
	for _, tc := range cases {
		p, err := calc.Compile(tc.expr)
		require.NoError(t, err, "compile %q", tc.expr)

		got, err := p.Eval(tc.v, tc.x, tc.y)
		require.NoError(t, err, "eval %q", tc.expr)
		assert.InDelta(t, tc.want, got, 1e-12, "eval %q", tc.expr)
	}
}

// TestCompile_Rejects verifies every structural defect fails at compile
// time with ErrCompile.
func TestCompile_Rejects(t *testing.T) {
	for _, expr := range []string{
		"",
		"value +",
		"2 $ 2",
		"1..2",
		"foo(1)",
		"sqrt(1, 2)",
		"min(1)",
		"bar",
		"(1 + 2",
		"1 ? 2",
		"1 2",
	} {
		_, err := calc.Compile(expr)
		assert.ErrorIs(t, err, calc.ErrCompile, "expression %q must not compile", expr)
	}
}

// TestEval_StrictArithmetic verifies runtime failures surface as ErrEval
// instead of Inf/NaN results.
func TestEval_StrictArithmetic(t *testing.T) {
	for _, expr := range []string{
		"1 / 0",
		"5 % 0",
		"sqrt(0 - 4)",
		"log(0)",
		"10 / (value - value)",
	} {
		p, err := calc.Compile(expr)
		require.NoError(t, err, "compile %q", expr)

		_, err = p.Eval(1, 0, 0)
		assert.ErrorIs(t, err, calc.ErrEval, "expression %q must fail strictly", expr)
	}
}

// TestMap verifies per-cell evaluation sees each cell's value and
// coordinates.
func TestMap(t *testing.T) {
	g, err := dem.From2D([][]float64{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)

	p, err := calc.Compile("value * 10 + x + y * 100")
	require.NoError(t, err)

	out, err := calc.Map(g, p)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 21, 130, 141}, out.Cells)
	assert.Equal(t, []float64{1, 2, 3, 4}, g.Cells, "input raster must stay untouched")
}

// TestMap_AbortsOnCellFailure verifies one failing cell aborts the whole
// run with the cell position attached.
func TestMap_AbortsOnCellFailure(t *testing.T) {
	g, err := dem.From2D([][]float64{
		{2, 0},
	})
	require.NoError(t, err)

	p, err := calc.Compile("1 / value")
	require.NoError(t, err)

	out, err := calc.Map(g, p)
	assert.Nil(t, out, "no partial raster on failure")
	require.ErrorIs(t, err, calc.ErrEval)
	assert.Contains(t, err.Error(), "(1,0)")
}

// TestMapFunc verifies the callback path and the nil guard.
func TestMapFunc(t *testing.T) {
	g, err := dem.From2D([][]float64{
		{1, 2, 3},
	})
	require.NoError(t, err)

	out, err := calc.MapFunc(g, func(v float64, x, y int) float64 {
		return v * v
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 9}, out.Cells)

	_, err = calc.MapFunc(g, nil)
	assert.ErrorIs(t, err, calc.ErrNilFunc)
}

// TestProgram_Reusable verifies a compiled Program is stateless across
// evaluations and keeps its source text.
func TestProgram_Reusable(t *testing.T) {
	p, err := calc.Compile("value + x")
	require.NoError(t, err)
	assert.Equal(t, "value + x", p.Source())

	a, err := p.Eval(1, 2, 0)
	require.NoError(t, err)
	b, err := p.Eval(10, 20, 0)
	require.NoError(t, err)
	c, err := p.Eval(1, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, 3.0, a)
	assert.Equal(t, 30.0, b)
	assert.Equal(t, a, c, "re-evaluating the same cell must be stable")
}
