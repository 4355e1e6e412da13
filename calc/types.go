// Package calc defines the Program type and sentinel errors of the
// raster calculator.
package calc

import (
	"errors"
)

// Sentinel errors for expression compilation and evaluation.
var (
	// ErrCompile indicates the expression failed to parse; the wrapped
	// message carries the offending token and its position.
	ErrCompile = errors.New("calc: expression failed to compile")
	// ErrEval indicates the expression failed during evaluation of a
	// specific cell; the whole operation is aborted.
	ErrEval = errors.New("calc: expression failed to evaluate")
	// ErrNilFunc indicates MapFunc was called with a nil callback.
	ErrNilFunc = errors.New("calc: cell function must not be nil")
)

// Program is a compiled, side-effect-free per-cell expression over the
// identifiers value, x, y. A Program holds no mutable state, so a single
// instance may be shared across goroutines.
type Program struct {
	root node
	src  string
}

// Source returns the original expression text.
func (p *Program) Source() string {
	return p.src
}

// Eval evaluates the expression for one cell.
// Returns an ErrEval-wrapped error on strict-arithmetic failures
// (division by zero, sqrt of a negative, ...).
// Complexity: O(len(expression)).
func (p *Program) Eval(value, x, y float64) (float64, error) {
	return p.root.eval(value, x, y)
}
