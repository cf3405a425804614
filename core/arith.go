// SPDX-License-Identifier: MIT
// Package core: core arithmetic. Every operation returns a fresh value;
// receivers and arguments are never written. Division uses Smith's scaled
// algorithm so the divisor's components are never squared directly.

package core

import "math"

// Add returns c + d.
func (c Complex) Add(d Complex) Complex {
	return Complex{re: c.re + d.re, im: c.im + d.im}
}

// Sub returns c - d.
func (c Complex) Sub(d Complex) Complex {
	return Complex{re: c.re - d.re, im: c.im - d.im}
}

// Mul returns c · d by the textbook expansion
// (ac - bd, ad + bc). Overflow to ±Inf for extreme operands follows plain
// IEEE semantics and is not guarded.
func (c Complex) Mul(d Complex) Complex {
	return Complex{
		re: c.re*d.re - c.im*d.im,
		im: c.re*d.im + c.im*d.re,
	}
}

// Div returns c / d using Smith's scaled algorithm, which divides by the
// larger divisor component first so that d.re²+d.im² is never formed:
//
//	|d.re| < |d.im|:  r = d.re/d.im, t = d.re·r + d.im
//	                  → ((c.re·r + c.im)/t, (c.im·r - c.re)/t)
//	otherwise:        r = d.im/d.re, t = d.im·r + d.re
//	                  → ((c.re + c.im·r)/t, (c.im - c.re·r)/t)
//
// Div returns ErrDivisionByZero when d is the zero value.
func (c Complex) Div(d Complex) (Complex, error) {
	if d.IsZero() {
		return Zero, ErrDivisionByZero
	}

	if math.Abs(d.re) < math.Abs(d.im) {
		r := d.re / d.im
		t := d.re*r + d.im

		return Complex{re: (c.re*r + c.im) / t, im: (c.im*r - c.re) / t}, nil
	}

	r := d.im / d.re
	t := d.im*r + d.re

	return Complex{re: (c.re + c.im*r) / t, im: (c.im - c.re*r) / t}, nil
}

// Inverse returns 1 / c as (re/t, -im/t) with t = re²+im².
//
// The denominator is deliberately unguarded: Inverse is a low-traffic path
// whose typical operands are moderate, so t overflows only for component
// magnitudes beyond ~1e154 — a known precision gap. Use One.Div(c) when the
// operand may be that large. Returns ErrDivisionByZero when c is zero.
func (c Complex) Inverse() (Complex, error) {
	if c.IsZero() {
		return Zero, ErrDivisionByZero
	}

	t := c.re*c.re + c.im*c.im

	return Complex{re: c.re / t, im: -c.im / t}, nil
}

// Neg returns -c.
func (c Complex) Neg() Complex {
	return Complex{re: -c.re, im: -c.im}
}

// Conj returns the complex conjugate (re, -im).
func (c Complex) Conj() Complex {
	return Complex{re: c.re, im: -c.im}
}

// Sign returns c / |c|, the unit value with the same argument as c.
// For the zero value both components come out NaN (0/0), marking the
// result invalid rather than erroring.
func (c Complex) Sign() Complex {
	a := c.Abs()

	return Complex{re: c.re / a, im: c.im / a}
}
