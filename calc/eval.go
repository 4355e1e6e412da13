package calc

import (
	"fmt"
	"math"

	"github.com/uihilab/hydrodem/dem"
)

// node is one evaluable expression-tree vertex.
type node interface {
	eval(value, x, y float64) (float64, error)
}

// variable slots for the three cell identifiers.
const (
	varValue = iota
	varX
	varY
)

// funcArity whitelists the callable functions and their argument counts.
var funcArity = map[string]int{
	"abs": 1, "sqrt": 1, "min": 2, "max": 2, "floor": 1, "ceil": 1,
	"pow": 2, "log": 1, "exp": 1, "sin": 1, "cos": 1,
}

type litNode float64

func (n litNode) eval(_, _, _ float64) (float64, error) { return float64(n), nil }

type varNode int

func (n varNode) eval(value, x, y float64) (float64, error) {
	switch n {
	case varX:
		return x, nil
	case varY:
		return y, nil
	default:
		return value, nil
	}
}

type negNode struct {
	operand node
}

func (n negNode) eval(value, x, y float64) (float64, error) {
	v, err := n.operand.eval(value, x, y)
	if err != nil {
		return 0, err
	}

	return -v, nil
}

type binaryNode struct {
	op       string
	lhs, rhs node
}

func (n binaryNode) eval(value, x, y float64) (float64, error) {
	l, err := n.lhs.eval(value, x, y)
	if err != nil {
		return 0, err
	}
	r, err := n.rhs.eval(value, x, y)
	if err != nil {
		return 0, err
	}

	switch n.op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return 0, fmt.Errorf("%w: division by zero", ErrEval)
		}

		return l / r, nil
	case "%":
		if r == 0 {
			return 0, fmt.Errorf("%w: modulo by zero", ErrEval)
		}

		return math.Mod(l, r), nil
	case "^":
		return math.Pow(l, r), nil
	case "<":
		return bool01(l < r), nil
	case "<=":
		return bool01(l <= r), nil
	case ">":
		return bool01(l > r), nil
	case ">=":
		return bool01(l >= r), nil
	case "==":
		return bool01(l == r), nil
	default: // "!="
		return bool01(l != r), nil
	}
}

type condNode struct {
	cond, then, els node
}

func (n condNode) eval(value, x, y float64) (float64, error) {
	c, err := n.cond.eval(value, x, y)
	if err != nil {
		return 0, err
	}
	if c != 0 {
		return n.then.eval(value, x, y)
	}

	return n.els.eval(value, x, y)
}

type callNode struct {
	fn   string
	args []node
}

func (n callNode) eval(value, x, y float64) (float64, error) {
	vals := make([]float64, len(n.args))
	for i, arg := range n.args {
		v, err := arg.eval(value, x, y)
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}

	switch n.fn {
	case "abs":
		return math.Abs(vals[0]), nil
	case "sqrt":
		if vals[0] < 0 {
			return 0, fmt.Errorf("%w: sqrt of negative value %g", ErrEval, vals[0])
		}

		return math.Sqrt(vals[0]), nil
	case "min":
		return math.Min(vals[0], vals[1]), nil
	case "max":
		return math.Max(vals[0], vals[1]), nil
	case "floor":
		return math.Floor(vals[0]), nil
	case "ceil":
		return math.Ceil(vals[0]), nil
	case "pow":
		return math.Pow(vals[0], vals[1]), nil
	case "log":
		if vals[0] <= 0 {
			return 0, fmt.Errorf("%w: log of non-positive value %g", ErrEval, vals[0])
		}

		return math.Log(vals[0]), nil
	case "exp":
		return math.Exp(vals[0]), nil
	case "sin":
		return math.Sin(vals[0]), nil
	default: // "cos"
		return math.Cos(vals[0]), nil
	}
}

// bool01 converts a comparison result to the 0/1 convention of the
// expression language.
func bool01(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

// Map evaluates a compiled Program at every cell of g and returns a new
// raster of the same shape. The first failing cell aborts the whole
// operation; no partial raster is ever returned.
// Complexity: O(W×H×len(expression)).
func Map(g *dem.Grid, p *Program) (*dem.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, len(g.Cells))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := y*g.Width + x
			v, err := p.Eval(g.Cells[i], float64(x), float64(y))
			if err != nil {
				return nil, fmt.Errorf("%w at cell (%d,%d)", err, x, y)
			}
			out[i] = v
		}
	}

	return &dem.Grid{Width: g.Width, Height: g.Height, Cells: out}, nil
}

// MapFunc applies a plain Go callback to every cell, the ahead-of-time
// alternative to a compiled expression. The callback must be pure: cell
// order is unspecified.
// Returns ErrNilFunc for a nil callback.
// Complexity: O(W×H).
func MapFunc(g *dem.Grid, fn func(value float64, x, y int) float64) (*dem.Grid, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, len(g.Cells))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := y*g.Width + x
			out[i] = fn(g.Cells[i], x, y)
		}
	}

	return &dem.Grid{Width: g.Width, Height: g.Height, Cells: out}, nil
}
