// SPDX-License-Identifier: MIT
// Package parse: rendering back out of the core — canonical strings and
// (re, im) vectors. Format and Parse are inverse on the string shape.

package parse

import (
	"strconv"

	"github.com/katalvlaran/cval/core"
)

// Format renders c canonically: "a+bi" in the general case, "a" for pure
// reals, "bi" for pure imaginaries, and "i"/"-i" for the unit imaginary.
// Components print in Go's shortest round-trip form ('g', precision -1).
func Format(c core.Complex) string {
	re, im := c.Re(), c.Im()
	switch {
	case im == 0:
		return formatFloat(re)
	case re == 0:
		return imagTerm(im, false)
	default:
		return formatFloat(re) + imagTerm(im, true)
	}
}

// Vector returns c as the ordered pair [re, im].
func Vector(c core.Complex) [2]float64 {
	return [2]float64{c.Re(), c.Im()}
}

// imagTerm renders the imaginary term of magnitude v. When signed is true
// the term follows a real term and carries an explicit '+' for v ≥ 0.
func imagTerm(v float64, signed bool) string {
	switch v {
	case 1:
		if signed {
			return "+i"
		}

		return "i"
	case -1:
		return "-i"
	}

	s := formatFloat(v) + "i"
	if signed && v >= 0 {
		return "+" + s
	}

	return s
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
