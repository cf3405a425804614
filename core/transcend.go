// SPDX-License-Identifier: MIT
// Package core: transcendental layer — Exp, Log, Sqrt and the general
// complex power. Pow is the one place where exact real fast paths matter:
// raising a non-negative real or a pure imaginary to a real power must not
// pick up transcendental rounding noise from the general exp∘log route.

package core

import "math"

// Exp returns e^c = (e^re·cos(im), e^re·sin(im)).
// Large re overflows to ±Inf per IEEE; not guarded.
func (c Complex) Exp() Complex {
	e := math.Exp(c.re)

	return Complex{re: e * math.Cos(c.im), im: e * math.Sin(c.im)}
}

// Log returns the principal natural logarithm (log|c|, arg(c)), with the
// imaginary part in (-π, π]. The real part comes from the scale-safe
// LogAbs kernel, so operands near 1e300 do not overflow.
// Log(Zero) = (-Inf, 0) per IEEE; a NaN component poisons the result.
func (c Complex) Log() Complex {
	return Complex{re: c.LogAbs(), im: c.Arg()}
}

// Sqrt returns the principal square root via the half-angle identities
//
//	re' = sqrt((|c|+re)/2),  im' = ±sqrt((|c|-re)/2)
//
// where the imaginary sign is the Heaviside sign of im: -1 for im < 0 and
// +1 otherwise. Mapping im = 0 to +1 keeps negative reals on the principal
// branch (Sqrt(-4) = 2i, not -2i).
func (c Complex) Sqrt() Complex {
	r := c.Abs()
	rp := math.Sqrt((r + c.re) / 2)
	ip := math.Sqrt((r - c.re) / 2)
	if c.im < 0 {
		ip = -ip
	}

	return Complex{re: rp, im: ip}
}

// Pow returns c^y, the principal value of exp(y·log(c)).
//
// The zero base degenerates to Zero for every exponent. Two exact fast
// paths apply when the exponent is real (y.im == 0):
//
//   - non-negative real base: plain math.Pow on the real parts;
//   - pure imaginary base with an integer exponent n: (b·i)^n = b^n·i^n,
//     dispatched on n mod 4 through the four-step cycle of i^n.
//     Non-integer exponents fall through to the general path — the cycle
//     index is only meaningful for integers.
//
// General path: with a = arg(c) and l = log|c| (scale-safe LogAbs),
//
//	scale = exp(y.re·l - y.im·a),  angle = y.im·l + y.re·a
//	c^y   = (scale·cos(angle), scale·sin(angle))
//
// which is exp(y·log c) rearranged to isolate magnitude from phase.
func (c Complex) Pow(y Complex) Complex {
	if c.IsZero() {
		return Zero
	}

	if y.im == 0 {
		if c.im == 0 && c.re >= 0 {
			return Complex{re: math.Pow(c.re, y.re)}
		}
		if c.re == 0 && isInteger(y.re) {
			return imagUnitCycle(math.Pow(c.im, y.re), y.re)
		}
	}

	a := c.Arg()
	l := c.LogAbs()
	scale := math.Exp(y.re*l - y.im*a)
	angle := y.im*l + y.re*a

	return Complex{re: scale * math.Cos(angle), im: scale * math.Sin(angle)}
}

// isInteger reports whether v is a finite float64 holding an exact integer.
func isInteger(v float64) bool {
	return !math.IsInf(v, 0) && v == math.Trunc(v)
}

// imagUnitCycle places the real magnitude p = b^n onto the axis selected by
// i^n: the cycle (1, i, -1, -i) indexed by n mod 4 (normalized to 0..3 for
// negative n).
func imagUnitCycle(p, n float64) Complex {
	idx := int(math.Mod(n, 4))
	if idx < 0 {
		idx += 4
	}

	switch idx {
	case 0:
		return Complex{re: p}
	case 1:
		return Complex{im: p}
	case 2:
		return Complex{re: -p}
	default: // 3
		return Complex{im: -p}
	}
}
