// Package square is the example suite: a trivial function under test and a
// case checking it over a fixed set of inputs.
package square

import (
	"testhelper/internal/registry"
	"testhelper/internal/reporter"
)

// Inputs are the fixed values the square() case checks.
var Inputs = []int{0, 1, 2, 3, 4}

// Square returns val*val
func Square(val int) int {
	return val * val
}

// Basic reports Square(v) against v*v for every input. The expected value
// goes first.
func Basic(r *reporter.Reporter) {
	for _, v := range Inputs {
		reporter.Report(r, v*v, Square(v))
	}
}

// Register adds the suite's cases to reg
func Register(reg *registry.Registry) error {
	return reg.Register(registry.Case{
		Name:        "square()",
		Description: "basic fixed value test",
		Func:        Basic,
	})
}
