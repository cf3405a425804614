// SPDX-License-Identifier: MIT
// Package core: rounding and epsilon-bounded comparison.

package core

import "math"

// Epsilon is the componentwise tolerance used by Equals. Two values whose
// real and imaginary deltas both stay within Epsilon are considered equal;
// 1e-16 sits just below the relative precision of float64 around 1, so
// only genuine representation-level noise is absorbed.
const Epsilon = 1e-16

// Round returns c with both components rounded (half away from zero) to
// the given number of decimal places. Negative places round to tens,
// hundreds, and so on.
func (c Complex) Round(places int) Complex {
	return c.scaled(places, math.Round)
}

// Ceil returns c with both components rounded up to the given number of
// decimal places.
func (c Complex) Ceil(places int) Complex {
	return c.scaled(places, math.Ceil)
}

// Floor returns c with both components rounded down to the given number of
// decimal places.
func (c Complex) Floor(places int) Complex {
	return c.scaled(places, math.Floor)
}

// scaled applies the real rounding mode fn componentwise at the 10^places
// scale.
func (c Complex) scaled(places int, fn func(float64) float64) Complex {
	s := math.Pow(10, float64(places))

	return Complex{re: fn(c.re*s) / s, im: fn(c.im*s) / s}
}

// Equals reports whether c and d agree componentwise within Epsilon.
// Reflexive for every value except NaN: a value with a NaN component
// compares unequal to everything, itself included.
func (c Complex) Equals(d Complex) bool {
	return c.EqualsEps(d, Epsilon)
}

// EqualsEps reports whether c and d agree componentwise within the given
// tolerance. NaN deltas fail both comparisons, so NaN values are unequal
// to everything under any eps.
func (c Complex) EqualsEps(d Complex, eps float64) bool {
	return math.Abs(c.re-d.re) <= eps && math.Abs(c.im-d.im) <= eps
}
