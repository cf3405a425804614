// Package core provides the immutable Complex value type and every numeric
// operation of the cval library: scale-safe magnitude kernels, arithmetic,
// transcendental functions, the circular/hyperbolic family, and
// rounding/comparison helpers.
//
// The value Z = (re, im) supports:
//
//   - Stable-magnitude kernel: Abs and LogAbs never square a large operand
//     directly, so magnitudes near 1e300 stay finite
//   - Core arithmetic: Add, Sub, Mul, Smith-scaled Div, Inverse, Neg,
//     Conj, Sign
//   - Transcendentals: Exp, Log, Sqrt (Heaviside branch pick), general Pow
//     with exact fast paths for real and pure-imaginary bases
//   - Circular/hyperbolic: Sin, Cos, Tan, Sinh, Cosh, Tanh and the inverse
//     trio Asin, Acos, Atan on the principal branch
//   - Rounding to N decimal places (Round, Ceil, Floor) and epsilon-bounded
//     equality (Equals, EqualsEps)
//
// Why use core.Complex?
//
//   - Immutable — every operation returns a new value; nothing is ever
//     written in place, so values may be shared freely across goroutines.
//   - Total — apart from the two explicit failure conditions (division by
//     the zero value, Atan at its pole) every function returns for every
//     input, propagating IEEE-754 NaN/Inf instead of erroring.
//   - Deterministic — no global state beyond the shared immutable
//     constants Zero, One, I, Pi and E.
//
// Error contract (two sentinels only, matched via errors.Is):
//
//	– ErrDivisionByZero
//	    Div or Inverse with a zero divisor, and Atan(I) exactly.
//
// All other irregular outcomes — overflow to ±Inf, NaN poisoning from an
// upstream invalid value — flow through arithmetic untouched. A value with
// NaN in either field is permanently invalid and compares unequal to
// everything, including itself.
//
// See example_test.go for worked scenarios and the parse package for
// construction from strings, maps, polar and vector forms.
package core
