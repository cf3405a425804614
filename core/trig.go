// SPDX-License-Identifier: MIT
// Package core: circular/hyperbolic layer. The forward functions are the
// closed-form (re, im) expansions; the inverse trio is expressed
// algebraically through Log, Sqrt and multiplication by the imaginary
// unit, which keeps each on the principal branch and preserves the
// round-trip invariant Sin(Asin(z)) ≈ z.

package core

import "math"

// Sin returns (sin(re)·cosh(im), cos(re)·sinh(im)).
func (c Complex) Sin() Complex {
	return Complex{
		re: math.Sin(c.re) * math.Cosh(c.im),
		im: math.Cos(c.re) * math.Sinh(c.im),
	}
}

// Cos returns (cos(re)·cosh(im), -sin(re)·sinh(im)).
func (c Complex) Cos() Complex {
	return Complex{
		re: math.Cos(c.re) * math.Cosh(c.im),
		im: -math.Sin(c.re) * math.Sinh(c.im),
	}
}

// Tan returns sin/cos through the double-angle form
// d = cos(2re)+cosh(2im) → (sin(2re)/d, sinh(2im)/d), which costs one real
// division instead of a full complex one.
func (c Complex) Tan() Complex {
	d := math.Cos(2*c.re) + math.Cosh(2*c.im)

	return Complex{re: math.Sin(2*c.re) / d, im: math.Sinh(2*c.im) / d}
}

// Sinh returns (sinh(re)·cos(im), cosh(re)·sin(im)).
func (c Complex) Sinh() Complex {
	return Complex{
		re: math.Sinh(c.re) * math.Cos(c.im),
		im: math.Cosh(c.re) * math.Sin(c.im),
	}
}

// Cosh returns (cosh(re)·cos(im), sinh(re)·sin(im)).
func (c Complex) Cosh() Complex {
	return Complex{
		re: math.Cosh(c.re) * math.Cos(c.im),
		im: math.Sinh(c.re) * math.Sin(c.im),
	}
}

// Tanh returns sinh/cosh through the double-angle form
// d = cosh(2re)+cos(2im) → (sinh(2re)/d, sin(2im)/d).
func (c Complex) Tanh() Complex {
	d := math.Cosh(2*c.re) + math.Cos(2*c.im)

	return Complex{re: math.Sinh(2*c.re) / d, im: math.Sin(2*c.im) / d}
}

// Asin returns the principal arcsine via
//
//	asin(z) = -i·log(i·z + sqrt(1 - z²))
//
// Total: the inner Sqrt and Log never hit a division, so there is no error
// path; out-of-domain inputs simply land off the real axis.
func (c Complex) Asin() Complex {
	w := One.Sub(c.Mul(c)).Sqrt()

	return I.Mul(c).Add(w).Log().Mul(I.Neg())
}

// Acos returns the principal arccosine via
//
//	acos(z) = -i·log(z + i·sqrt(1 - z²))
func (c Complex) Acos() Complex {
	w := One.Sub(c.Mul(c)).Sqrt()

	return c.Add(I.Mul(w)).Log().Mul(I.Neg())
}

// Atan returns the principal arctangent via
//
//	atan(z) = (i/2)·log((i + z) / (i - z))
//
// composed exactly from the primitives: Add, Div, Log, Mul. The division
// is singular at z = i, where Atan surfaces ErrDivisionByZero.
func (c Complex) Atan() (Complex, error) {
	q, err := I.Add(c).Div(I.Sub(c))
	if err != nil {
		return Zero, err
	}

	w := q.Log().Mul(I)

	return Complex{re: w.re / 2, im: w.im / 2}, nil
}
