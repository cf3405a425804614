// SPDX-License-Identifier: MIT
// Package core: the Complex value type, its constructor, accessors and the
// shared immutable constants. All numeric behavior lives in the sibling
// files (kernel.go, arith.go, transcend.go, trig.go, round.go).

package core

import "math"

// Complex is an immutable pair (re, im) of float64.
//
// The zero value is the complex zero. Fields are unexported on purpose:
// a Complex is only ever produced by New, by the package constants, or as
// the result of an operation, and no operation mutates its receiver or its
// arguments. A value holding NaN in either field is the canonical invalid
// value and poisons every downstream computation per IEEE-754.
type Complex struct {
	re float64
	im float64
}

// Shared immutable constants. Safe to use from any goroutine: the type has
// no mutable state, so these behave like named literals.
var (
	// Zero is the additive identity (0, 0).
	Zero = Complex{}

	// One is the multiplicative identity (1, 0).
	One = Complex{re: 1}

	// I is the imaginary unit (0, 1).
	I = Complex{im: 1}

	// Pi is the real constant (π, 0).
	Pi = Complex{re: math.Pi}

	// E is the real constant (e, 0).
	E = Complex{re: math.E}
)

// New returns the complex value (re, im).
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// Re returns the real component.
func (c Complex) Re() float64 { return c.re }

// Im returns the imaginary component.
func (c Complex) Im() float64 { return c.im }

// IsZero reports whether both components are exactly zero
// (negative zero counts as zero).
func (c Complex) IsZero() bool {
	return c.re == 0 && c.im == 0
}

// IsNaN reports whether either component is NaN, i.e. whether the value is
// the canonical invalid value.
func (c Complex) IsNaN() bool {
	return math.IsNaN(c.re) || math.IsNaN(c.im)
}

// Float64 extracts the value as a plain real number: it returns the real
// component when the imaginary component is exactly zero, and NaN
// otherwise. The NaN result marks "not representable as a real", not an
// error condition.
func (c Complex) Float64() float64 {
	if c.im != 0 {
		return math.NaN()
	}

	return c.re
}
